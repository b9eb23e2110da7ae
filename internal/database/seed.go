package database

import (
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	SandboxMerchantID = "m_sandbox"
	sandboxKeyID      = "key_sandbox"
	sandboxEndpointID = "we_sandbox"
)

type SandboxSeed struct {
	APIKey        string
	WebhookURL    string
	WebhookSecret string
}

// SeedSandbox creates an approved merchant with one API key, and a webhook
// endpoint when WebhookURL is set. Existing rows are left untouched.
func SeedSandbox(db *gorm.DB, seed SandboxSeed) error {
	merchant := models.Merchant{
		ID:           SandboxMerchantID,
		UserID:       "user_sandbox",
		BusinessName: "Sandbox Merchant",
		ContactEmail: "sandbox@example.com",
		Status:       models.MerchantStatusApproved,
	}
	if err := db.Where(models.Merchant{ID: merchant.ID}).FirstOrCreate(&merchant).Error; err != nil {
		return err
	}

	key := models.ApiKey{
		ID:            sandboxKeyID,
		MerchantID:    merchant.ID,
		Name:          "Sandbox key",
		PublicKey:     "pk_test_sandbox",
		SecretKeyHash: service.HashAPIKey(seed.APIKey),
		Active:        true,
	}
	if err := db.Where(models.ApiKey{ID: key.ID}).FirstOrCreate(&key).Error; err != nil {
		return err
	}

	if seed.WebhookURL != "" {
		endpoint := models.WebhookEndpoint{
			ID:         sandboxEndpointID,
			MerchantID: merchant.ID,
			URL:        seed.WebhookURL,
			Secret:     seed.WebhookSecret,
			Active:     true,
		}
		if err := db.Where(models.WebhookEndpoint{ID: endpoint.ID}).FirstOrCreate(&endpoint).Error; err != nil {
			return err
		}
	}

	logrus.Info("Sandbox merchant seeded successfully")
	return nil
}
