package service

import (
	"github.com/MKhiriev/go-name-keeper/internal/config"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/store"
)

type Services struct {
	NamesService   NamesService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		NamesService:   NewNamesValidationService().Wrap(NewNamesService(storages.NameRepository, logger)),
		AppInfoService: appInfo,
	}, nil
}
