package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/logger"
)

// appInfoService reports the running server's version on /api/version.
type appInfoService struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg.Version is
// blank. Surrounding whitespace is dropped.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
