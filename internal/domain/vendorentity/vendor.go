package vendor

import (
	"fmt"
	"strings"
	"time"
)

// MaintenanceVendor is a service-provider tenant. Its relationship to each
// customer organization is expressed through tier records.
type MaintenanceVendor struct {
	id           uint
	name         string
	contactEmail string
	phone        string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMaintenanceVendor(name, contactEmail, phone string) (*MaintenanceVendor, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("vendor name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("vendor name exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &MaintenanceVendor{
		name:         name,
		contactEmail: contactEmail,
		phone:        phone,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructMaintenanceVendor(id uint, name, contactEmail, phone string, active bool, createdAt, updatedAt time.Time) (*MaintenanceVendor, error) {
	if id == 0 {
		return nil, fmt.Errorf("vendor ID cannot be zero")
	}
	return &MaintenanceVendor{
		id:           id,
		name:         name,
		contactEmail: contactEmail,
		phone:        phone,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (v *MaintenanceVendor) ID() uint             { return v.id }
func (v *MaintenanceVendor) Name() string         { return v.name }
func (v *MaintenanceVendor) ContactEmail() string { return v.contactEmail }
func (v *MaintenanceVendor) Phone() string        { return v.phone }
func (v *MaintenanceVendor) IsActive() bool       { return v.active }
func (v *MaintenanceVendor) CreatedAt() time.Time { return v.createdAt }
func (v *MaintenanceVendor) UpdatedAt() time.Time { return v.updatedAt }

func (v *MaintenanceVendor) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("vendor ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("vendor ID cannot be zero")
	}
	v.id = id
	return nil
}

func (v *MaintenanceVendor) Deactivate() {
	v.active = false
	v.updatedAt = time.Now()
}
