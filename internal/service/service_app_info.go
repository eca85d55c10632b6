package service

import (
	"context"

	"github.com/MKhiriev/recipe-manager/internal/config"
)

type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App) AppInfoService {
	return &appInfoService{version: cfg.Version}
}

// Version returns the configured application version, or "N/A" when the
// build was not stamped.
func (a *appInfoService) Version(ctx context.Context) string {
	if a.version == "" {
		return "N/A"
	}
	return a.version
}
