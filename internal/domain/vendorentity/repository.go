package vendor

import "context"

type VendorRepository interface {
	Save(ctx context.Context, vendor *MaintenanceVendor) error
	Update(ctx context.Context, vendor *MaintenanceVendor) error
	GetByID(ctx context.Context, vendorID uint) (*MaintenanceVendor, error)
	List(ctx context.Context, page, pageSize int) ([]*MaintenanceVendor, int64, error)
}

type TierRepository interface {
	Save(ctx context.Context, tier *OrganizationTier) error
	Update(ctx context.Context, tier *OrganizationTier) error
	// GetActive returns the active tier relation between a vendor and an
	// organization, or a not-found error when none exists.
	GetActive(ctx context.Context, vendorID, organizationID uint) (*OrganizationTier, error)
	GetByVendorID(ctx context.Context, vendorID uint) ([]*OrganizationTier, error)
	// HasActiveMarketplaceTier reports whether the vendor holds at least one
	// active marketplace-tier relation, the eligibility gate for bidding.
	HasActiveMarketplaceTier(ctx context.Context, vendorID uint) (bool, error)
}
