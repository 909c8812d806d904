package migration

import (
	"fixwise/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.OrganizationModel{},
		&models.LocationModel{},
		&models.MaintenanceVendorModel{},
		&models.OrganizationTierModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.MilestoneModel{},
		&models.BidModel{},
		&models.WorkOrderModel{},
		&models.InvoiceModel{},
	}
}
