package vendor

import (
	"fmt"
	"time"

	vo "fixwise/internal/domain/vendorentity/valueobjects"
)

// OrganizationTier links a vendor to one organization at a given tier. A
// vendor may only be directly assigned tickets of organizations where it
// holds an active tier_1..3 relation; a marketplace tier only grants bidding.
type OrganizationTier struct {
	id                  uint
	maintenanceVendorID uint
	organizationID      uint
	tier                vo.Tier
	active              bool
	createdAt           time.Time
	updatedAt           time.Time
}

func NewOrganizationTier(vendorID, organizationID uint, tier vo.Tier) (*OrganizationTier, error) {
	if vendorID == 0 {
		return nil, fmt.Errorf("vendor ID is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier")
	}

	now := time.Now()
	return &OrganizationTier{
		maintenanceVendorID: vendorID,
		organizationID:      organizationID,
		tier:                tier,
		active:              true,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructOrganizationTier(id, vendorID, organizationID uint, tier vo.Tier, active bool, createdAt, updatedAt time.Time) (*OrganizationTier, error) {
	if id == 0 {
		return nil, fmt.Errorf("tier ID cannot be zero")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier")
	}
	return &OrganizationTier{
		id:                  id,
		maintenanceVendorID: vendorID,
		organizationID:      organizationID,
		tier:                tier,
		active:              active,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (t *OrganizationTier) ID() uint                   { return t.id }
func (t *OrganizationTier) MaintenanceVendorID() uint  { return t.maintenanceVendorID }
func (t *OrganizationTier) OrganizationID() uint       { return t.organizationID }
func (t *OrganizationTier) Tier() vo.Tier              { return t.tier }
func (t *OrganizationTier) IsActive() bool             { return t.active }
func (t *OrganizationTier) CreatedAt() time.Time       { return t.createdAt }
func (t *OrganizationTier) UpdatedAt() time.Time       { return t.updatedAt }

func (t *OrganizationTier) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tier ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tier ID cannot be zero")
	}
	t.id = id
	return nil
}

// AllowsDirectAssignment reports whether this relation permits handing the
// vendor a ticket without marketplace bidding.
func (t *OrganizationTier) AllowsDirectAssignment() bool {
	return t.active && t.tier.AllowsDirectAssignment()
}

// AllowsMarketplaceBidding reports whether this relation permits bidding on
// the owning organization's marketplace tickets.
func (t *OrganizationTier) AllowsMarketplaceBidding() bool {
	return t.active && t.tier.IsMarketplace()
}

func (t *OrganizationTier) Deactivate() {
	t.active = false
	t.updatedAt = time.Now()
}
