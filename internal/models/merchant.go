package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MerchantStatus string

const (
	MerchantStatusPending  MerchantStatus = "pending"
	MerchantStatusApproved MerchantStatus = "approved"
	MerchantStatusBlocked  MerchantStatus = "blocked"
)

// Merchant is owned by merchant onboarding; the gateway only reads its status.
type Merchant struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	UserID       string         `gorm:"index" json:"user_id"`
	BusinessName string         `gorm:"not null" json:"business_name"`
	ContactEmail string         `json:"contact_email,omitempty"`
	WebsiteURL   string         `json:"website_url,omitempty"`
	Status       MerchantStatus `gorm:"not null;default:pending" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (m *Merchant) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (m *Merchant) IsApproved() bool {
	return m.Status == MerchantStatusApproved
}

type ApiKey struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	MerchantID    string     `gorm:"index;not null" json:"merchant_id"`
	Name          string     `json:"name"`
	PublicKey     string     `gorm:"uniqueIndex" json:"public_key"`
	SecretKeyHash string     `gorm:"uniqueIndex;not null" json:"-"`
	Active        bool       `gorm:"not null;default:true" json:"active"`
	LastUsedAt    *time.Time `json:"last_used_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (k *ApiKey) BeforeCreate(tx *gorm.DB) (err error) {
	if k.ID == "" {
		k.ID = uuid.New().String()
	}
	return
}

type WebhookEndpoint struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	MerchantID      string     `gorm:"index;not null" json:"merchant_id"`
	URL             string     `gorm:"not null" json:"url"`
	Secret          string     `gorm:"not null" json:"-"`
	Active          bool       `gorm:"not null;default:true" json:"active"`
	LastDeliveredAt *time.Time `json:"last_delivered_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (e *WebhookEndpoint) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

const (
	SettingFeePercentage = "fee_percentage"
	SettingFeeFixed      = "fee_fixed"
)

// PlatformSetting is an operator-editable key/value pair.
type PlatformSetting struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *PlatformSetting) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
