package mappers

import (
	"fmt"

	"fixwise/internal/domain/vendorentity"
	vo "fixwise/internal/domain/vendorentity/valueobjects"
	"fixwise/internal/infrastructure/persistence/models"
)

type VendorMapper interface {
	ToModel(v *vendor.MaintenanceVendor) *models.MaintenanceVendorModel
	ToDomain(model *models.MaintenanceVendorModel) (*vendor.MaintenanceVendor, error)
	TierToModel(t *vendor.OrganizationTier) *models.OrganizationTierModel
	TierToDomain(model *models.OrganizationTierModel) (*vendor.OrganizationTier, error)
}

type VendorMapperImpl struct{}

func NewVendorMapper() VendorMapper {
	return &VendorMapperImpl{}
}

func (m *VendorMapperImpl) ToModel(v *vendor.MaintenanceVendor) *models.MaintenanceVendorModel {
	return &models.MaintenanceVendorModel{
		ID:           v.ID(),
		Name:         v.Name(),
		ContactEmail: v.ContactEmail(),
		Phone:        v.Phone(),
		Active:       v.IsActive(),
		CreatedAt:    v.CreatedAt().UnixMilli(),
		UpdatedAt:    v.UpdatedAt().UnixMilli(),
	}
}

func (m *VendorMapperImpl) ToDomain(model *models.MaintenanceVendorModel) (*vendor.MaintenanceVendor, error) {
	return vendor.ReconstructMaintenanceVendor(
		model.ID,
		model.Name,
		model.ContactEmail,
		model.Phone,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *VendorMapperImpl) TierToModel(t *vendor.OrganizationTier) *models.OrganizationTierModel {
	return &models.OrganizationTierModel{
		ID:                  t.ID(),
		MaintenanceVendorID: t.MaintenanceVendorID(),
		OrganizationID:      t.OrganizationID(),
		Tier:                t.Tier().String(),
		Active:              t.IsActive(),
		CreatedAt:           t.CreatedAt().UnixMilli(),
		UpdatedAt:           t.UpdatedAt().UnixMilli(),
	}
}

func (m *VendorMapperImpl) TierToDomain(model *models.OrganizationTierModel) (*vendor.OrganizationTier, error) {
	tier, err := vo.NewTier(model.Tier)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor tier (id=%d): %w", model.ID, err)
	}
	return vendor.ReconstructOrganizationTier(
		model.ID,
		model.MaintenanceVendorID,
		model.OrganizationID,
		tier,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
