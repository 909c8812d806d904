package organization

import (
	"fmt"
	"strings"
	"time"
)

// Organization is a customer tenant. Tickets, locations and org-side users
// hang off it.
type Organization struct {
	id        uint
	name      string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewOrganization(name string) (*Organization, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("organization name exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &Organization{
		name:      name,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOrganization(id uint, name string, active bool, createdAt, updatedAt time.Time) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	return &Organization{
		id:        id,
		name:      name,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (o *Organization) ID() uint             { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) IsActive() bool       { return o.active }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Organization) Rename(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("organization name is required")
	}
	o.name = name
	o.updatedAt = time.Now()
	return nil
}

func (o *Organization) Deactivate() {
	o.active = false
	o.updatedAt = time.Now()
}
