package mappers

import (
	"fixwise/internal/domain/organization"
	"fixwise/internal/infrastructure/persistence/models"
)

type OrganizationMapper interface {
	ToModel(org *organization.Organization) *models.OrganizationModel
	ToDomain(model *models.OrganizationModel) (*organization.Organization, error)
	LocationToModel(l *organization.Location) *models.LocationModel
	LocationToDomain(model *models.LocationModel) (*organization.Location, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(org *organization.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:        org.ID(),
		Name:      org.Name(),
		Active:    org.IsActive(),
		CreatedAt: org.CreatedAt().UnixMilli(),
		UpdatedAt: org.UpdatedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	return organization.ReconstructOrganization(
		model.ID,
		model.Name,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *OrganizationMapperImpl) LocationToModel(l *organization.Location) *models.LocationModel {
	return &models.LocationModel{
		ID:             l.ID(),
		OrganizationID: l.OrganizationID(),
		Name:           l.Name(),
		Street:         l.Street(),
		City:           l.City(),
		Zip:            l.Zip(),
		Active:         l.IsActive(),
		CreatedAt:      l.CreatedAt().UnixMilli(),
		UpdatedAt:      l.UpdatedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) LocationToDomain(model *models.LocationModel) (*organization.Location, error) {
	return organization.ReconstructLocation(
		model.ID,
		model.OrganizationID,
		model.Name,
		model.Street,
		model.City,
		model.Zip,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
