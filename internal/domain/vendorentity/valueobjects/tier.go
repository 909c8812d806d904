package valueobjects

import "fmt"

// Tier ranks a vendor within one organization. tier_1 through tier_3 permit
// direct assignment; marketplace permits open bidding only.
type Tier string

const (
	Tier1           Tier = "tier_1"
	Tier2           Tier = "tier_2"
	Tier3           Tier = "tier_3"
	TierMarketplace Tier = "marketplace"
)

var validTiers = map[Tier]bool{
	Tier1:           true,
	Tier2:           true,
	Tier3:           true,
	TierMarketplace: true,
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	return validTiers[t]
}

// AllowsDirectAssignment reports whether an organization may hand a ticket
// straight to the vendor without going through the marketplace.
func (t Tier) AllowsDirectAssignment() bool {
	return t == Tier1 || t == Tier2 || t == Tier3
}

func (t Tier) IsMarketplace() bool {
	return t == TierMarketplace
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %s", s)
	}
	return t, nil
}
