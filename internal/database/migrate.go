package database

import (
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Merchant{},
		&models.ApiKey{},
		&models.WebhookEndpoint{},
		&models.PlatformSetting{},
		&models.PaymentSession{},
		&models.Payment{},
		&models.FraudFlag{},
		&models.WebhookEvent{},
	)
}
