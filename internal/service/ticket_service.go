package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/store"
	"github.com/spec-kit/ticketapp/internal/validation"
	"github.com/spec-kit/ticketapp/pkg/util"
)

// TicketService is the validated entry point for ticket workflows. Invalid
// form data never reaches the store.
type TicketService struct {
	tickets    *store.TicketStore
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	latency    Latency
}

// TicketDependencies bundles collaborators for ticket service.
type TicketDependencies struct {
	Tickets    *store.TicketStore
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Latency    Latency
}

// NewTicketService constructs the service.
func NewTicketService(cfg config.Config, deps TicketDependencies) *TicketService {
	latency := deps.Latency
	if latency == nil {
		latency = NewFixedLatency(cfg.Latency.TicketDelay())
	}
	return &TicketService{
		tickets:    deps.Tickets,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		latency:    latency,
	}
}

// List returns all tickets in stored order, newest first.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	s.metrics.RecordOp("tickets.list")
	s.latency.Pause()

	tickets, err := s.tickets.List()
	if err != nil {
		s.metrics.RecordFailure("tickets.list", util.CodeOf(err))
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// Get returns the ticket with the given id, or nil when absent. Absence is
// not an error here; callers that need a failure use Update or Delete.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	s.metrics.RecordOp("tickets.get")
	s.latency.Pause()

	ticket, ok, err := s.tickets.GetByID(id)
	if err != nil {
		s.metrics.RecordFailure("tickets.get", util.CodeOf(err))
		return nil, util.ToDomainError(err)
	}
	if !ok {
		return nil, nil
	}
	return ticket, nil
}

// Create validates the form and inserts a new ticket at the head of the
// collection.
func (s *TicketService) Create(ctx context.Context, form domain.TicketForm) (*domain.Ticket, error) {
	s.metrics.RecordOp("tickets.create")
	s.latency.Pause()

	if fields := validation.Ticket(form); fields != nil {
		s.metrics.RecordFailure("tickets.create", util.CodeValidationFailed)
		return nil, util.NewValidationError(fields)
	}

	ticket, err := s.tickets.Insert(form)
	if err != nil {
		s.metrics.RecordFailure("tickets.create", util.CodeOf(err))
		return nil, util.ToDomainError(err)
	}
	s.publish(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketPayload{
			TicketID: ticket.ID,
			Title:    ticket.Title,
			Status:   ticket.Status,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// Update validates the supplied fields and merges them onto the stored
// ticket. Fails with NOT_FOUND when no ticket has the id.
func (s *TicketService) Update(ctx context.Context, id string, patch domain.TicketPatch) (*domain.Ticket, error) {
	s.metrics.RecordOp("tickets.update")
	s.latency.Pause()

	if fields := validation.TicketPatch(patch); fields != nil {
		s.metrics.RecordFailure("tickets.update", util.CodeValidationFailed)
		return nil, util.NewValidationError(fields)
	}

	ticket, err := s.tickets.Replace(id, patch)
	if err != nil {
		s.metrics.RecordFailure("tickets.update", util.CodeOf(err))
		return nil, util.ToDomainError(err)
	}
	s.publish(ctx, events.Event{
		Type: events.EventTicketUpdated,
		Payload: events.TicketPayload{
			TicketID: ticket.ID,
			Title:    ticket.Title,
			Status:   ticket.Status,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// Delete removes the ticket with the given id. Fails with NOT_FOUND when no
// ticket has the id.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	s.metrics.RecordOp("tickets.delete")
	s.latency.Pause()

	if err := s.tickets.Remove(id); err != nil {
		s.metrics.RecordFailure("tickets.delete", util.CodeOf(err))
		return util.ToDomainError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventTicketDeleted,
		Payload: events.TicketPayload{TicketID: id},
	})
	return nil
}

// Stats recomputes the dashboard counts from the current collection.
func (s *TicketService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	s.metrics.RecordOp("tickets.stats")
	s.latency.Pause()

	stats, err := s.tickets.Stats()
	if err != nil {
		s.metrics.RecordFailure("tickets.stats", util.CodeOf(err))
		return domain.DashboardStats{}, util.ToDomainError(err)
	}
	return stats, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
