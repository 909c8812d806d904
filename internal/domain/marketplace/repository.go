package marketplace

import "context"

type BidRepository interface {
	Save(ctx context.Context, bid *Bid) error
	Update(ctx context.Context, bid *Bid) error
	GetByID(ctx context.Context, bidID uint) (*Bid, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Bid, error)
	// GetActiveByTicketAndVendor returns the vendor's current non-superseded
	// bid for the ticket, or a not-found error.
	GetActiveByTicketAndVendor(ctx context.Context, ticketID, vendorID uint) (*Bid, error)
	// GetActiveByTicketID returns every non-superseded bid for the ticket,
	// the set that must be settled atomically when one bid wins.
	GetActiveByTicketID(ctx context.Context, ticketID uint) ([]*Bid, error)
}
