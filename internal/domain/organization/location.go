package organization

import (
	"fmt"
	"strings"
	"time"
)

// Location is an organization-owned address. Subadmins are assigned a subset
// of their organization's locations, which scopes the tickets they may act on.
type Location struct {
	id             uint
	organizationID uint
	name           string
	street         string
	city           string
	zip            string
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewLocation(organizationID uint, name, street, city, zip string) (*Location, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("location name is required")
	}
	if street == "" || city == "" || zip == "" {
		return nil, fmt.Errorf("location requires street, city and zip")
	}

	now := time.Now()
	return &Location{
		organizationID: organizationID,
		name:           name,
		street:         street,
		city:           city,
		zip:            zip,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructLocation(id, organizationID uint, name, street, city, zip string, active bool, createdAt, updatedAt time.Time) (*Location, error) {
	if id == 0 {
		return nil, fmt.Errorf("location ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	return &Location{
		id:             id,
		organizationID: organizationID,
		name:           name,
		street:         street,
		city:           city,
		zip:            zip,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (l *Location) ID() uint             { return l.id }
func (l *Location) OrganizationID() uint { return l.organizationID }
func (l *Location) Name() string         { return l.name }
func (l *Location) Street() string       { return l.street }
func (l *Location) City() string         { return l.city }
func (l *Location) Zip() string          { return l.zip }
func (l *Location) IsActive() bool       { return l.active }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }

func (l *Location) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("location ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("location ID cannot be zero")
	}
	l.id = id
	return nil
}
