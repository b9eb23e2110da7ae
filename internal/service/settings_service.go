package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/fee"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type SettingRepo interface {
	List(ctx context.Context, opts models.ListOptions) (*[]models.PlatformSetting, error)
}

// SettingsService resolves the fee schedule for each checkout attempt:
// the configured defaults, overridden by platform_settings rows that parse.
type SettingsService struct {
	Repo     SettingRepo
	Defaults fee.Schedule
}

func NewSettingsService(repo SettingRepo, defaults fee.Schedule) *SettingsService {
	return &SettingsService{Repo: repo, Defaults: defaults}
}

// Current never fails; a store error falls back to the defaults.
func (s *SettingsService) Current(ctx context.Context) fee.Schedule {
	schedule := s.Defaults

	settings, err := s.Repo.List(ctx, models.ListOptions{})
	if err != nil {
		logrus.Warnf("Error loading fee settings, using defaults: %s", err.Error())
		return schedule
	}

	for _, setting := range *settings {
		value := strings.TrimSpace(setting.Value)
		switch setting.Key {
		case models.SettingFeePercentage:
			pct, err := decimal.NewFromString(value)
			if err != nil || pct.IsNegative() {
				logrus.Warnf("Ignoring invalid %s setting %q", setting.Key, setting.Value)
				continue
			}
			schedule.Percent = pct
		case models.SettingFeeFixed:
			fixed, err := strconv.ParseInt(value, 10, 64)
			if err != nil || fixed < 0 {
				logrus.Warnf("Ignoring invalid %s setting %q", setting.Key, setting.Value)
				continue
			}
			schedule.Fixed = fixed
		}
	}

	return schedule
}
