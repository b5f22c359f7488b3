package events

import (
	"time"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated  EventType = "ticket_created"
	EventTicketUpdated  EventType = "ticket_updated"
	EventTicketDeleted  EventType = "ticket_deleted"
	EventSessionStarted EventType = "session_started"
	EventSessionEnded   EventType = "session_ended"
)

// Event represents a lifecycle event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// TicketPayload describes ticket lifecycle events.
type TicketPayload struct {
	TicketID string                `json:"ticket_id"`
	Title    string                `json:"title,omitempty"`
	Status   domain.TicketStatus   `json:"status,omitempty"`
	Priority domain.TicketPriority `json:"priority,omitempty"`
}

// SessionPayload describes session lifecycle events.
type SessionPayload struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}
