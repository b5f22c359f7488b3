package store

import (
	"time"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// seedTickets returns the fixed demo collection used to initialize an empty
// ticket store. Callers get a fresh copy each time.
func seedTickets() []domain.Ticket {
	return []domain.Ticket{
		{
			ID:          "1",
			Title:       "Setup project repository",
			Description: "Create initial project structure and setup Git repository",
			Status:      domain.TicketStatusClosed,
			Priority:    domain.TicketPriorityHigh,
			CreatedAt:   time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Design landing page",
			Description: "Create wireframes and mockups for the landing page",
			Status:      domain.TicketStatusInProgress,
			Priority:    domain.TicketPriorityHigh,
			CreatedAt:   time.Date(2025, time.October, 22, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, time.October, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Implement authentication",
			Description: "Add login and signup functionality with form validation",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityMedium,
			CreatedAt:   time.Date(2025, time.October, 23, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, time.October, 23, 0, 0, 0, 0, time.UTC),
		},
	}
}
