package valueobjects

import "fmt"

// BidStatus tracks one bid through negotiation. Vendor-side resubmission
// creates a new bid row; countered and rejected are set in place.
type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusCountered BidStatus = "countered"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
)

var validBidStatuses = map[BidStatus]bool{
	BidStatusPending:   true,
	BidStatusCountered: true,
	BidStatusAccepted:  true,
	BidStatusRejected:  true,
}

func (s BidStatus) String() string {
	return string(s)
}

func (s BidStatus) IsValid() bool {
	return validBidStatuses[s]
}

func (s BidStatus) IsPending() bool {
	return s == BidStatusPending
}

func (s BidStatus) IsCountered() bool {
	return s == BidStatusCountered
}

func (s BidStatus) IsAccepted() bool {
	return s == BidStatusAccepted
}

func (s BidStatus) IsRejected() bool {
	return s == BidStatusRejected
}

// IsOpen reports whether the bid is still negotiable.
func (s BidStatus) IsOpen() bool {
	return s == BidStatusPending || s == BidStatusCountered
}

func NewBidStatus(s string) (BidStatus, error) {
	bs := BidStatus(s)
	if !bs.IsValid() {
		return "", fmt.Errorf("invalid bid status: %s", s)
	}
	return bs, nil
}
