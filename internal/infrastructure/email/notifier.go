package email

import (
	"context"
	"fmt"

	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/domain/user"
	"fixwise/internal/shared/goroutine"
	"fixwise/internal/shared/logger"
)

// EmailSender is the slice of SMTPEmailService the notifier needs.
type EmailSender interface {
	SendTicketStatusEmail(to, ticketNumber, fromStatus, toStatus string) error
	SendWorkCompletedEmail(to, ticketNumber string) error
}

// TicketNotifier emails the reporter when their ticket changes state. Sends
// are asynchronous and best-effort; a failed send is logged and dropped.
type TicketNotifier struct {
	sender     EmailSender
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	log        logger.Interface
}

func NewTicketNotifier(
	sender EmailSender,
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	log logger.Interface,
) *TicketNotifier {
	return &TicketNotifier{
		sender:     sender,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		log:        log,
	}
}

// Register subscribes the notifier to the ticket lifecycle events it cares
// about.
func (n *TicketNotifier) Register(dispatcher *events.InMemoryDispatcher) error {
	if err := dispatcher.Subscribe(ticket.EventTypeStatusChanged, n.handleStatusChanged); err != nil {
		return fmt.Errorf("failed to subscribe to status changes: %w", err)
	}
	if err := dispatcher.Subscribe(ticket.EventTypeWorkCompleted, n.handleWorkCompleted); err != nil {
		return fmt.Errorf("failed to subscribe to work completions: %w", err)
	}
	return nil
}

func (n *TicketNotifier) handleStatusChanged(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	goroutine.SafeGo(n.log, "email.status_changed", func() {
		to, err := n.reporterEmail(e.TicketID)
		if err != nil {
			n.log.Warn("skipping status email", "ticket_id", e.TicketID, "error", err)
			return
		}

		if err := n.sender.SendTicketStatusEmail(to, e.TicketNumber, e.FromStatus.String(), e.ToStatus.String()); err != nil {
			n.log.Warn("failed to send status email",
				"ticket_number", e.TicketNumber,
				"error", err)
		}
	})

	return nil
}

func (n *TicketNotifier) handleWorkCompleted(event events.DomainEvent) error {
	e, ok := event.(*ticket.WorkCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	goroutine.SafeGo(n.log, "email.work_completed", func() {
		to, err := n.reporterEmail(e.TicketID)
		if err != nil {
			n.log.Warn("skipping work completed email", "ticket_id", e.TicketID, "error", err)
			return
		}

		if err := n.sender.SendWorkCompletedEmail(to, e.TicketNumber); err != nil {
			n.log.Warn("failed to send work completed email",
				"ticket_number", e.TicketNumber,
				"error", err)
		}
	})

	return nil
}

func (n *TicketNotifier) reporterEmail(ticketID uint) (string, error) {
	ctx := context.Background()

	t, err := n.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return "", err
	}

	reporter, err := n.userRepo.GetByID(ctx, t.ReporterID())
	if err != nil {
		return "", err
	}

	return reporter.Email().String(), nil
}
