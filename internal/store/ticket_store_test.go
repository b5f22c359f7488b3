package store

import (
	"bytes"
	"testing"
	"time"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/storage"
	"github.com/spec-kit/ticketapp/pkg/util"
)

// tickingClock advances one second per reading so updates always land
// strictly later than the writes before them.
type tickingClock struct {
	t time.Time
}

func (c *tickingClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestTicketStore() (*TicketStore, *storage.MemoryKV) {
	kv := storage.NewMemoryKV()
	clock := &tickingClock{t: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
	return NewTicketStore(kv, clock.Now), kv
}

func TestListSeedsOnce(t *testing.T) {
	s, kv := newTestTicketStore()

	first, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 seed tickets, got %d", len(first))
	}
	if first[0].ID != "1" || first[1].ID != "2" || first[2].ID != "3" {
		t.Fatalf("unexpected seed ids: %v %v %v", first[0].ID, first[1].ID, first[2].ID)
	}

	if _, ok, _ := kv.Get(storage.KeyTickets); !ok {
		t.Fatal("seeding must persist the collection")
	}

	second, err := s.List()
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(second) != 3 {
		t.Fatalf("seeding must be one-time, got %d tickets", len(second))
	}
	for i := range first {
		if second[i].ID != first[i].ID || !second[i].CreatedAt.Equal(first[i].CreatedAt) {
			t.Fatalf("second list differs at %d: %+v vs %+v", i, second[i], first[i])
		}
	}
}

func TestListFallsBackToSeedOnCorruptPayload(t *testing.T) {
	kv := storage.NewMemoryKV()
	corrupt := []byte("[{broken")
	if err := kv.Set(storage.KeyTickets, corrupt); err != nil {
		t.Fatalf("set: %v", err)
	}

	s := NewTicketStore(kv, nil)
	tickets, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("expected seed fallback, got %d tickets", len(tickets))
	}

	stored, _, _ := kv.Get(storage.KeyTickets)
	if !bytes.Equal(stored, corrupt) {
		t.Fatal("fallback must not repair the corrupt payload")
	}
}

func TestInsertPrepends(t *testing.T) {
	s, _ := newTestTicketStore()

	ticket, err := s.Insert(domain.TicketForm{
		Title:  "New ticket",
		Status: domain.TicketStatusOpen,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if ticket.ID == "" {
		t.Fatal("insert must assign an id")
	}
	if !ticket.CreatedAt.Equal(ticket.UpdatedAt) {
		t.Fatalf("createdAt %v must equal updatedAt %v", ticket.CreatedAt, ticket.UpdatedAt)
	}

	tickets, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 4 {
		t.Fatalf("expected 4 tickets, got %d", len(tickets))
	}
	if tickets[0].ID != ticket.ID {
		t.Fatalf("new ticket must come first, got %q", tickets[0].ID)
	}
	for _, existing := range tickets[1:] {
		if existing.ID == ticket.ID {
			t.Fatalf("id %q collides with existing ticket", ticket.ID)
		}
	}
}

func TestReplaceMergesInPlace(t *testing.T) {
	s, _ := newTestTicketStore()

	before, _ := s.List()
	target := before[1]

	status := domain.TicketStatusClosed
	updated, err := s.Replace(target.ID, domain.TicketPatch{Status: &status})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if updated.Status != domain.TicketStatusClosed {
		t.Fatalf("status not applied: %+v", updated)
	}
	if updated.Title != target.Title || updated.Description != target.Description {
		t.Fatal("unpatched fields must be preserved")
	}
	if !updated.CreatedAt.Equal(target.CreatedAt) {
		t.Fatal("createdAt must never change")
	}
	if !updated.UpdatedAt.After(target.UpdatedAt) {
		t.Fatalf("updatedAt %v must be strictly later than %v", updated.UpdatedAt, target.UpdatedAt)
	}

	after, _ := s.List()
	if after[1].ID != target.ID {
		t.Fatalf("ticket must keep its position, got order %v %v %v", after[0].ID, after[1].ID, after[2].ID)
	}
}

func TestReplaceMissingTicket(t *testing.T) {
	s, _ := newTestTicketStore()

	title := "anything"
	_, err := s.Replace("nope", domain.TicketPatch{Title: &title})
	if !util.IsCode(err, util.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	s, _ := newTestTicketStore()

	before, _ := s.List()
	if err := s.Remove(before[0].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	after, _ := s.List()
	if len(after) != len(before)-1 {
		t.Fatalf("expected %d tickets, got %d", len(before)-1, len(after))
	}
	if _, ok, _ := s.GetByID(before[0].ID); ok {
		t.Fatal("removed ticket must not be found")
	}

	if err := s.Remove(before[0].ID); !util.IsCode(err, util.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestStatsAddUp(t *testing.T) {
	s, _ := newTestTicketStore()

	if _, err := s.Insert(domain.TicketForm{Title: "one more", Status: domain.TicketStatusOpen}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	tickets, _ := s.List()
	status := domain.TicketStatusClosed
	if _, err := s.Replace(tickets[2].ID, domain.TicketPatch{Status: &status}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := s.Remove(tickets[3].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got := stats.OpenTickets + stats.InProgressTickets + stats.ClosedTickets; got != stats.TotalTickets {
		t.Fatalf("counts must add up: %+v", stats)
	}
	remaining, _ := s.List()
	if stats.TotalTickets != len(remaining) {
		t.Fatalf("total %d vs list length %d", stats.TotalTickets, len(remaining))
	}
}
