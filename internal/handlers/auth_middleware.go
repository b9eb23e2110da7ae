package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
)

const merchantKey = "merchant"

type Authenticator interface {
	Authenticate(ctx context.Context, rawKey string) (*models.Merchant, error)
}

// RequireAPIKey rejects requests without a valid key of an approved merchant
// and stores that merchant on the gin context.
func RequireAPIKey(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := service.ExtractAPIKey(c.GetHeader("Authorization"), c.GetHeader("X-API-Key"))
		merchant, err := auth.Authenticate(c.Request.Context(), key)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(merchantKey, merchant)
		c.Next()
	}
}

// CurrentMerchant returns the merchant stored by RequireAPIKey.
func CurrentMerchant(c *gin.Context) *models.Merchant {
	v, ok := c.Get(merchantKey)
	if !ok {
		return nil
	}
	m, _ := v.(*models.Merchant)
	return m
}
