package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
)

// Services groups the server-side services consumed by the transport layer.
type Services struct {
	EnvelopeService EnvelopeService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		EnvelopeService: NewEnvelopeValidationService().Wrap(
			NewEnvelopeService(storages.EnvelopeStorage, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
