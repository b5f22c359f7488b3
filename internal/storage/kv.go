package storage

// Fixed record keys. The substrate holds exactly these two records.
const (
	KeySession = "ticketapp_session"
	KeyTickets = "ticketapp_tickets"
)

// KV is the local key-value substrate. Implementations are single-process and
// synchronous; values are opaque JSON payloads owned by the stores.
type KV interface {
	// Get returns the stored value for key. The second result is false when
	// the key is absent.
	Get(key string) ([]byte, bool, error)
	// Set writes the value for key, replacing any prior value.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
