package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteKVRoundTrip(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get(KeyTickets); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(KeyTickets, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := kv.Get(KeyTickets)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(value) != `[]` {
		t.Fatalf("got %q", value)
	}

	// overwrite replaces the prior value
	if err := kv.Set(KeyTickets, []byte(`[1]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = kv.Get(KeyTickets)
	if string(value) != `[1]` {
		t.Fatalf("overwrite not applied, got %q", value)
	}

	if err := kv.Delete(KeyTickets); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(KeyTickets); ok {
		t.Fatal("expected key gone after delete")
	}
	if err := kv.Delete(KeyTickets); err != nil {
		t.Fatalf("deleting absent key: %v", err)
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set(KeySession, []byte(`{"token":"t"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(KeySession)
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(value) != `{"token":"t"}` {
		t.Fatalf("got %q", value)
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()

	original := []byte(`{"token":"t"}`)
	if err := kv.Set(KeySession, original); err != nil {
		t.Fatalf("set: %v", err)
	}
	original[0] = 'X'

	value, ok, err := kv.Get(KeySession)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(value) != `{"token":"t"}` {
		t.Fatal("stored value must not alias caller buffers")
	}
}
