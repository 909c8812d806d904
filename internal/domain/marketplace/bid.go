package marketplace

import (
	"fmt"
	"math"
	"strings"
	"time"

	vo "fixwise/internal/domain/marketplace/valueobjects"
)

// BidPart is an itemized material line inside a bid. Stored embedded in the
// bid row, not as a child table.
type BidPart struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// Bid is a vendor's priced proposal against a marketplace ticket. Vendor
// resubmission creates a new row linked to its predecessor so the full
// negotiation history survives; organization counters mutate the row in
// place. At most one bid per (ticket, vendor) chain is non-superseded.
type Bid struct {
	id                  uint
	ticketID            uint
	maintenanceVendorID uint
	hourlyRate          float64
	estimatedHours      float64
	parts               []BidPart
	totalAmount         float64
	notes               string
	status              vo.BidStatus
	approved            bool
	counterOffer        *float64
	counterNotes        string
	rejectionReason     string
	version             int
	previousBidID       *uint
	supersededByBidID   *uint
	isSuperseded        bool
	createdAt           time.Time
	updatedAt           time.Time
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validateBidTerms(hourlyRate, estimatedHours float64, parts []BidPart, totalAmount float64) error {
	if hourlyRate < 0 {
		return fmt.Errorf("hourly rate cannot be negative")
	}
	if estimatedHours < 0 {
		return fmt.Errorf("estimated hours cannot be negative")
	}
	if totalAmount <= 0 {
		return fmt.Errorf("total amount must be positive")
	}
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
	return nil
}

func NewBid(ticketID, vendorID uint, hourlyRate, estimatedHours float64, parts []BidPart, totalAmount float64, notes string) (*Bid, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if vendorID == 0 {
		return nil, fmt.Errorf("vendor ID is required")
	}
	if err := validateBidTerms(hourlyRate, estimatedHours, parts, totalAmount); err != nil {
		return nil, err
	}

	if parts == nil {
		parts = []BidPart{}
	}

	now := time.Now()
	return &Bid{
		ticketID:            ticketID,
		maintenanceVendorID: vendorID,
		hourlyRate:          round2(hourlyRate),
		estimatedHours:      estimatedHours,
		parts:               parts,
		totalAmount:         round2(totalAmount),
		notes:               notes,
		status:              vo.BidStatusPending,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// NewRevision creates the next bid in a vendor's chain. The caller persists
// the revision and then marks the predecessor superseded in the same
// transaction.
func (b *Bid) NewRevision(hourlyRate, estimatedHours float64, parts []BidPart, totalAmount float64, notes string) (*Bid, error) {
	if b.id == 0 {
		return nil, fmt.Errorf("cannot revise an unsaved bid")
	}
	if b.isSuperseded {
		return nil, fmt.Errorf("bid has already been superseded")
	}
	if !b.status.IsOpen() {
		return nil, fmt.Errorf("cannot revise a bid with status %s", b.status)
	}

	revision, err := NewBid(b.ticketID, b.maintenanceVendorID, hourlyRate, estimatedHours, parts, totalAmount, notes)
	if err != nil {
		return nil, err
	}
	prevID := b.id
	revision.previousBidID = &prevID
	revision.version = b.version + 1
	return revision, nil
}

func ReconstructBid(
	id uint,
	ticketID uint,
	vendorID uint,
	hourlyRate float64,
	estimatedHours float64,
	parts []BidPart,
	totalAmount float64,
	notes string,
	status vo.BidStatus,
	approved bool,
	counterOffer *float64,
	counterNotes string,
	rejectionReason string,
	version int,
	previousBidID *uint,
	supersededByBidID *uint,
	isSuperseded bool,
	createdAt, updatedAt time.Time,
) (*Bid, error) {
	if id == 0 {
		return nil, fmt.Errorf("bid ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid bid status")
	}
	if parts == nil {
		parts = []BidPart{}
	}

	return &Bid{
		id:                  id,
		ticketID:            ticketID,
		maintenanceVendorID: vendorID,
		hourlyRate:          hourlyRate,
		estimatedHours:      estimatedHours,
		parts:               parts,
		totalAmount:         totalAmount,
		notes:               notes,
		status:              status,
		approved:            approved,
		counterOffer:        counterOffer,
		counterNotes:        counterNotes,
		rejectionReason:     rejectionReason,
		version:             version,
		previousBidID:       previousBidID,
		supersededByBidID:   supersededByBidID,
		isSuperseded:        isSuperseded,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (b *Bid) ID() uint                  { return b.id }
func (b *Bid) TicketID() uint            { return b.ticketID }
func (b *Bid) MaintenanceVendorID() uint { return b.maintenanceVendorID }
func (b *Bid) HourlyRate() float64       { return b.hourlyRate }
func (b *Bid) EstimatedHours() float64   { return b.estimatedHours }
func (b *Bid) TotalAmount() float64      { return b.totalAmount }
func (b *Bid) Notes() string             { return b.notes }
func (b *Bid) Status() vo.BidStatus      { return b.status }
func (b *Bid) IsApproved() bool          { return b.approved }
func (b *Bid) CounterOffer() *float64    { return b.counterOffer }
func (b *Bid) CounterNotes() string      { return b.counterNotes }
func (b *Bid) RejectionReason() string   { return b.rejectionReason }
func (b *Bid) Version() int              { return b.version }
func (b *Bid) PreviousBidID() *uint      { return b.previousBidID }
func (b *Bid) SupersededByBidID() *uint  { return b.supersededByBidID }
func (b *Bid) IsSuperseded() bool        { return b.isSuperseded }
func (b *Bid) CreatedAt() time.Time      { return b.createdAt }
func (b *Bid) UpdatedAt() time.Time      { return b.updatedAt }

func (b *Bid) Parts() []BidPart {
	partsCopy := make([]BidPart, len(b.parts))
	copy(partsCopy, b.parts)
	return partsCopy
}

func (b *Bid) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bid ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("bid ID cannot be zero")
	}
	b.id = id
	return nil
}

// Counter records the organization's counter-offer in place. Counters are a
// negotiation message, not a new proposal, so they do not version the chain.
func (b *Bid) Counter(offer float64, notes string) error {
	if b.isSuperseded {
		return fmt.Errorf("cannot counter a superseded bid")
	}
	if !b.status.IsOpen() {
		return fmt.Errorf("cannot counter a bid with status %s", b.status)
	}
	if offer <= 0 {
		return fmt.Errorf("counter offer must be positive")
	}

	rounded := round2(offer)
	b.counterOffer = &rounded
	b.counterNotes = notes
	b.status = vo.BidStatusCountered
	b.updatedAt = time.Now()
	return nil
}

// Accept marks this bid as the winner. The caller is responsible for
// rejecting the sibling bids and transitioning the ticket in the same
// transaction.
func (b *Bid) Accept() error {
	if b.isSuperseded {
		return fmt.Errorf("cannot accept a superseded bid")
	}
	if !b.status.IsOpen() {
		return fmt.Errorf("cannot accept a bid with status %s", b.status)
	}

	b.approved = true
	b.status = vo.BidStatusAccepted
	b.updatedAt = time.Now()
	return nil
}

func (b *Bid) Reject(reason string) error {
	if b.status.IsAccepted() {
		return fmt.Errorf("cannot reject an accepted bid")
	}
	if b.status.IsRejected() {
		return fmt.Errorf("bid is already rejected")
	}

	b.rejectionReason = reason
	b.status = vo.BidStatusRejected
	b.updatedAt = time.Now()
	return nil
}

// MarkSuperseded closes this bid in favor of its successor in the chain.
func (b *Bid) MarkSuperseded(successorID uint) error {
	if b.isSuperseded {
		return fmt.Errorf("bid is already superseded")
	}
	if successorID == 0 {
		return fmt.Errorf("successor bid ID cannot be zero")
	}

	b.isSuperseded = true
	b.supersededByBidID = &successorID
	b.updatedAt = time.Now()
	return nil
}
