package billing

import (
	"fmt"
	"math"
	"strings"
	"time"

	vo "fixwise/internal/domain/billing/valueobjects"
)

// Part is one material line of a work order, stored embedded in the row.
type Part struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// OtherCharge is a non-part cost line (disposal fees, travel, permits).
type OtherCharge struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// WorkOrder documents one technician's work session against a ticket,
// numbered sequentially per ticket. totalCost is always re-derived from the
// stored lines, never trusted from the client.
type WorkOrder struct {
	id               uint
	ticketID         uint
	technicianID     uint
	workOrderNumber  int
	description      string
	parts            []Part
	otherCharges     []OtherCharge
	totalCost        float64
	timeIn           string
	timeOut          string
	completionStatus vo.CompletionStatus
	createdAt        time.Time
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotalCost is the single cost formula: sum of quantity-weighted part
// costs plus flat other charges, rounded to cents.
func ComputeTotalCost(parts []Part, otherCharges []OtherCharge) float64 {
	total := 0.0
	for _, p := range parts {
		total += float64(p.Quantity) * p.Cost
	}
	for _, c := range otherCharges {
		total += c.Cost
	}
	return round2(total)
}

// ComputeTotalHours derives hours worked from HH:MM clock stamps on the same
// day. Missing stamps or a time-out that does not strictly follow time-in
// yield zero rather than an error.
func ComputeTotalHours(timeIn, timeOut string) float64 {
	inMinutes, okIn := parseClock(timeIn)
	outMinutes, okOut := parseClock(timeOut)
	if !okIn || !okOut {
		return 0
	}
	if outMinutes <= inMinutes {
		return 0
	}
	return round2(float64(outMinutes-inMinutes) / 60)
}

func parseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func validateLines(parts []Part, otherCharges []OtherCharge) error {
	for _, p := range parts {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("part name is required")
		}
		if p.Quantity <= 0 {
			return fmt.Errorf("part quantity must be positive")
		}
		if p.Cost < 0 {
			return fmt.Errorf("part cost cannot be negative")
		}
	}
	for _, c := range otherCharges {
		if strings.TrimSpace(c.Description) == "" {
			return fmt.Errorf("charge description is required")
		}
		if c.Cost < 0 {
			return fmt.Errorf("charge cost cannot be negative")
		}
	}
	return nil
}

func NewWorkOrder(
	ticketID uint,
	technicianID uint,
	workOrderNumber int,
	description string,
	parts []Part,
	otherCharges []OtherCharge,
	timeIn, timeOut string,
	completionStatus vo.CompletionStatus,
) (*WorkOrder, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if workOrderNumber <= 0 {
		return nil, fmt.Errorf("work order number must be positive")
	}
	if !completionStatus.IsValid() {
		return nil, fmt.Errorf("invalid completion status")
	}
	if err := validateLines(parts, otherCharges); err != nil {
		return nil, err
	}

	if parts == nil {
		parts = []Part{}
	}
	if otherCharges == nil {
		otherCharges = []OtherCharge{}
	}

	return &WorkOrder{
		ticketID:         ticketID,
		technicianID:     technicianID,
		workOrderNumber:  workOrderNumber,
		description:      description,
		parts:            parts,
		otherCharges:     otherCharges,
		totalCost:        ComputeTotalCost(parts, otherCharges),
		timeIn:           timeIn,
		timeOut:          timeOut,
		completionStatus: completionStatus,
		createdAt:        time.Now(),
	}, nil
}

func ReconstructWorkOrder(
	id uint,
	ticketID uint,
	technicianID uint,
	workOrderNumber int,
	description string,
	parts []Part,
	otherCharges []OtherCharge,
	totalCost float64,
	timeIn, timeOut string,
	completionStatus vo.CompletionStatus,
	createdAt time.Time,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if !completionStatus.IsValid() {
		return nil, fmt.Errorf("invalid completion status")
	}
	if parts == nil {
		parts = []Part{}
	}
	if otherCharges == nil {
		otherCharges = []OtherCharge{}
	}

	return &WorkOrder{
		id:               id,
		ticketID:         ticketID,
		technicianID:     technicianID,
		workOrderNumber:  workOrderNumber,
		description:      description,
		parts:            parts,
		otherCharges:     otherCharges,
		totalCost:        totalCost,
		timeIn:           timeIn,
		timeOut:          timeOut,
		completionStatus: completionStatus,
		createdAt:        createdAt,
	}, nil
}

func (w *WorkOrder) ID() uint                               { return w.id }
func (w *WorkOrder) TicketID() uint                         { return w.ticketID }
func (w *WorkOrder) TechnicianID() uint                     { return w.technicianID }
func (w *WorkOrder) WorkOrderNumber() int                   { return w.workOrderNumber }
func (w *WorkOrder) Description() string                    { return w.description }
func (w *WorkOrder) TotalCost() float64                     { return w.totalCost }
func (w *WorkOrder) TimeIn() string                         { return w.timeIn }
func (w *WorkOrder) TimeOut() string                        { return w.timeOut }
func (w *WorkOrder) CompletionStatus() vo.CompletionStatus  { return w.completionStatus }
func (w *WorkOrder) CreatedAt() time.Time                   { return w.createdAt }

func (w *WorkOrder) Parts() []Part {
	partsCopy := make([]Part, len(w.parts))
	copy(partsCopy, w.parts)
	return partsCopy
}

func (w *WorkOrder) OtherCharges() []OtherCharge {
	chargesCopy := make([]OtherCharge, len(w.otherCharges))
	copy(chargesCopy, w.otherCharges)
	return chargesCopy
}

// TotalHours is derived from the clock stamps on every read.
func (w *WorkOrder) TotalHours() float64 {
	return ComputeTotalHours(w.timeIn, w.timeOut)
}

func (w *WorkOrder) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	w.id = id
	return nil
}
