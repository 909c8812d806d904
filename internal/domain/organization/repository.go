package organization

import "context"

type OrganizationRepository interface {
	Save(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, orgID uint) (*Organization, error)
	List(ctx context.Context, page, pageSize int) ([]*Organization, int64, error)
}

type LocationRepository interface {
	Save(ctx context.Context, location *Location) error
	GetByID(ctx context.Context, locationID uint) (*Location, error)
	GetByOrganizationID(ctx context.Context, orgID uint) ([]*Location, error)
}
