package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixwise/internal/domain/billing"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
)

func TestCompleteWorkUseCase_FullCompletion(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusInProgress, uintPtr(5), uintPtr(7), uintPtr(42))
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	workOrderRepo := &mockWorkOrderRepository{}
	milestoneRepo := &mockMilestoneRepository{}
	publisher := &mockPublisher{}
	uc := NewCompleteWorkUseCase(ticketRepo, milestoneRepo, workOrderRepo, &mockTxManager{}, publisher, newTestLogger())

	result, err := uc.Execute(context.Background(), CompleteWorkCommand{
		Actor:    technicianActor(42, 7),
		TicketID: 1,
		WorkOrder: WorkOrderInput{
			Description:      "Replaced filter, checked seals",
			Parts:            []billing.Part{{Name: "Filter", Quantity: 2, Cost: 15.00}},
			OtherCharges:     []billing.OtherCharge{{Description: "Disposal", Cost: 10}},
			TimeIn:           "09:00",
			TimeOut:          "11:30",
			CompletionStatus: "completed",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "pending_confirmation", result.Ticket.Status)
	assert.Equal(t, 40.00, result.TotalCost)
	assert.Equal(t, 2.50, result.TotalHours)
	require.Len(t, workOrderRepo.saved, 1)
	assert.Equal(t, 1, workOrderRepo.saved[0].WorkOrderNumber())
	require.Len(t, milestoneRepo.saved, 1)
	assert.Equal(t, ticket.MilestoneWorkCompleted, milestoneRepo.saved[0].Type())
	assert.Contains(t, publisher.eventTypes(), ticket.EventTypeWorkCompleted)
	assert.Contains(t, publisher.eventTypes(), ticket.EventTypeStatusChanged)
}

func TestCompleteWorkUseCase_NoEventOnFailedCommit(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusInProgress, uintPtr(5), uintPtr(7), uintPtr(42))
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			return errors.NewInternalError("write failed")
		},
	}
	publisher := &mockPublisher{}
	uc := NewCompleteWorkUseCase(ticketRepo, &mockMilestoneRepository{}, &mockWorkOrderRepository{}, &mockTxManager{}, publisher, newTestLogger())

	_, err := uc.Execute(context.Background(), CompleteWorkCommand{
		Actor:    technicianActor(42, 7),
		TicketID: 1,
		WorkOrder: WorkOrderInput{
			Description:      "Replaced filter, checked seals",
			TimeIn:           "09:00",
			TimeOut:          "11:30",
			CompletionStatus: "completed",
		},
	})
	require.Error(t, err)
	assert.Empty(t, publisher.published, "a failed transaction must not emit notifications")
}

func TestCompleteWorkUseCase_ReturnNeeded(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusInProgress, uintPtr(5), uintPtr(7), uintPtr(42))
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	// One earlier visit already documented.
	workOrderRepo := &mockWorkOrderRepository{
		CountByTicketIDFunc: func(ctx context.Context, ticketID uint) (int, error) { return 1, nil },
	}
	milestoneRepo := &mockMilestoneRepository{}
	uc := NewCompleteWorkUseCase(ticketRepo, milestoneRepo, workOrderRepo, &mockTxManager{}, &mockPublisher{}, newTestLogger())

	result, err := uc.Execute(context.Background(), CompleteWorkCommand{
		Actor:    technicianActor(42, 7),
		TicketID: 1,
		WorkOrder: WorkOrderInput{
			Description:      "Needs a replacement pump, ordered",
			CompletionStatus: "return_needed",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "return_needed", result.Ticket.Status)
	require.Len(t, workOrderRepo.saved, 1)
	assert.Equal(t, 2, workOrderRepo.saved[0].WorkOrderNumber(), "sequential per ticket")
	require.Len(t, milestoneRepo.saved, 1)
	assert.Equal(t, ticket.MilestoneReturnNeeded, milestoneRepo.saved[0].Type())
}

func TestCompleteWorkUseCase_NotAssignee(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusInProgress, uintPtr(5), uintPtr(7), uintPtr(42))
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewCompleteWorkUseCase(ticketRepo, &mockMilestoneRepository{}, &mockWorkOrderRepository{}, &mockTxManager{}, &mockPublisher{}, newTestLogger())

	_, err := uc.Execute(context.Background(), CompleteWorkCommand{
		Actor:     technicianActor(43, 7),
		TicketID:  1,
		WorkOrder: WorkOrderInput{CompletionStatus: "completed"},
	})
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, tvo.StatusInProgress, tk.Status())
}

func TestCompleteWorkUseCase_InvalidCompletionStatus(t *testing.T) {
	uc := NewCompleteWorkUseCase(&mockTicketRepository{}, &mockMilestoneRepository{}, &mockWorkOrderRepository{}, &mockTxManager{}, &mockPublisher{}, newTestLogger())

	_, err := uc.Execute(context.Background(), CompleteWorkCommand{
		Actor:     technicianActor(42, 7),
		TicketID:  1,
		WorkOrder: WorkOrderInput{CompletionStatus: "done"},
	})
	assert.True(t, errors.IsValidationError(err))
}
