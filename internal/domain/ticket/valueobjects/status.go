package valueobjects

import "fmt"

// TicketStatus is the lifecycle state of a ticket. Every mutation goes
// through the transition table below; handlers never write a status directly.
type TicketStatus string

const (
	StatusPending             TicketStatus = "pending"
	StatusAccepted            TicketStatus = "accepted"
	StatusRejected            TicketStatus = "rejected"
	StatusMarketplace         TicketStatus = "marketplace"
	StatusInProgress          TicketStatus = "in-progress"
	StatusReturnNeeded        TicketStatus = "return_needed"
	StatusPendingConfirmation TicketStatus = "pending_confirmation"
	StatusReadyForBilling     TicketStatus = "ready_for_billing"
	StatusBilled              TicketStatus = "billed"
	StatusForceClosed         TicketStatus = "force_closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:             true,
	StatusAccepted:            true,
	StatusRejected:            true,
	StatusMarketplace:         true,
	StatusInProgress:          true,
	StatusReturnNeeded:        true,
	StatusPendingConfirmation: true,
	StatusReadyForBilling:     true,
	StatusBilled:              true,
	StatusForceClosed:         true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusAccepted,
		StatusRejected,
		StatusMarketplace,
		StatusForceClosed,
	},
	StatusAccepted: {
		StatusInProgress,
		StatusMarketplace,
		StatusForceClosed,
	},
	StatusMarketplace: {
		StatusAccepted,
		StatusForceClosed,
	},
	StatusInProgress: {
		StatusPendingConfirmation,
		StatusReturnNeeded,
		StatusForceClosed,
	},
	StatusReturnNeeded: {
		StatusInProgress,
		StatusForceClosed,
	},
	StatusPendingConfirmation: {
		StatusReadyForBilling,
		StatusInProgress,
		StatusForceClosed,
	},
	StatusReadyForBilling: {
		StatusBilled,
		StatusForceClosed,
	},
	// Billed, rejected and force_closed are terminal.
	StatusBilled:      {},
	StatusRejected:    {},
	StatusForceClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusBilled || ts == StatusRejected || ts == StatusForceClosed
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsAccepted() bool {
	return ts == StatusAccepted
}

func (ts TicketStatus) IsMarketplace() bool {
	return ts == StatusMarketplace
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsReturnNeeded() bool {
	return ts == StatusReturnNeeded
}

func (ts TicketStatus) IsPendingConfirmation() bool {
	return ts == StatusPendingConfirmation
}

func (ts TicketStatus) IsReadyForBilling() bool {
	return ts == StatusReadyForBilling
}

func (ts TicketStatus) IsBilled() bool {
	return ts == StatusBilled
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
