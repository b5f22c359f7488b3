package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/storage"
	"github.com/spec-kit/ticketapp/pkg/util"
)

// TicketStore owns the persisted ticket collection. Every mutation replaces
// the whole stored collection; the mutex keeps each read-modify-write
// sequence atomic under concurrent callers.
type TicketStore struct {
	mu    sync.Mutex
	kv    storage.KV
	codec Codec
	now   func() time.Time
}

// NewTicketStore builds the store over the given substrate. A nil clock
// defaults to time.Now.
func NewTicketStore(kv storage.KV, now func() time.Time) *TicketStore {
	if now == nil {
		now = time.Now
	}
	return &TicketStore{kv: kv, codec: JSONCodec{}, now: now}
}

// SetCodec swaps the payload codec; call before first use.
func (s *TicketStore) SetCodec(codec Codec) {
	s.codec = codec
}

// List returns all tickets in stored order. On first access with no prior
// data it seeds the store with the fixed demo collection. A corrupt payload
// falls back to the seed set without repairing the stored record.
func (s *TicketStore) List() ([]domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// GetByID returns the ticket with the given id, or false when absent.
func (s *TicketStore) GetByID(id string) (*domain.Ticket, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load()
	if err != nil {
		return nil, false, err
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], true, nil
		}
	}
	return nil, false, nil
}

// Insert assigns a fresh id and timestamps, prepends the ticket to the
// collection, persists, and returns the stored record.
func (s *TicketStore) Insert(form domain.TicketForm) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load()
	if err != nil {
		return nil, err
	}

	now := s.now()
	ticket := domain.Ticket{
		ID:          "ticket_" + uuid.NewString(),
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tickets = append([]domain.Ticket{ticket}, tickets...)
	if err := s.save(tickets); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Replace shallow-merges the patch onto the ticket with the given id,
// refreshes UpdatedAt, and persists in place. The ticket keeps its position
// in the collection.
func (s *TicketStore) Replace(id string, patch domain.TicketPatch) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range tickets {
		if tickets[i].ID != id {
			continue
		}
		if patch.Title != nil {
			tickets[i].Title = *patch.Title
		}
		if patch.Description != nil {
			tickets[i].Description = *patch.Description
		}
		if patch.Status != nil {
			tickets[i].Status = *patch.Status
		}
		if patch.Priority != nil {
			tickets[i].Priority = *patch.Priority
		}
		tickets[i].UpdatedAt = s.now()
		if err := s.save(tickets); err != nil {
			return nil, err
		}
		return &tickets[i], nil
	}
	return nil, util.NewNotFound("ticket")
}

// Remove deletes the ticket with the given id and persists the remainder.
func (s *TicketStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load()
	if err != nil {
		return err
	}

	remaining := tickets[:0]
	for _, t := range tickets {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(tickets) {
		return util.NewNotFound("ticket")
	}
	return s.save(remaining)
}

// Stats recomputes the dashboard counts by scanning the full collection.
func (s *TicketStore) Stats() (domain.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load()
	if err != nil {
		return domain.DashboardStats{}, err
	}

	stats := domain.DashboardStats{TotalTickets: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case domain.TicketStatusOpen:
			stats.OpenTickets++
		case domain.TicketStatusInProgress:
			stats.InProgressTickets++
		case domain.TicketStatusClosed:
			stats.ClosedTickets++
		}
	}
	return stats, nil
}

// load reads the stored collection, seeding on first access. Callers must
// hold the mutex.
func (s *TicketStore) load() ([]domain.Ticket, error) {
	payload, ok, err := s.kv.Get(storage.KeyTickets)
	if err != nil {
		return nil, err
	}
	if !ok {
		seed := seedTickets()
		if err := s.save(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var tickets []domain.Ticket
	if err := s.codec.Unmarshal(payload, &tickets); err != nil {
		// corrupt payload: serve the seed set, leave the record as is
		return seedTickets(), nil
	}
	return tickets, nil
}

func (s *TicketStore) save(tickets []domain.Ticket) error {
	payload, err := s.codec.Marshal(tickets)
	if err != nil {
		return err
	}
	return s.kv.Set(storage.KeyTickets, payload)
}
