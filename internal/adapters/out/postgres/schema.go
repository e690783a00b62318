package postgres

import (
	"kayakoyan/internal/adapters/out/postgres/chatrepo"
	"kayakoyan/internal/adapters/out/postgres/deliveryrepo"
	"kayakoyan/internal/adapters/out/postgres/listingrepo"
	"kayakoyan/internal/adapters/out/postgres/notificationrepo"
	"kayakoyan/internal/adapters/out/postgres/orderrepo"
	"kayakoyan/internal/adapters/out/postgres/paymentrepo"
	"kayakoyan/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table, parents before children.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&listingrepo.ListingDTO{},
		&listingrepo.ListingImageDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.DeliveryFileDTO{},
		&chatrepo.MessageDTO{},
		&notificationrepo.NotificationDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
