package service

import (
	"context"

	"github.com/MKhiriev/go-name-keeper/models"
)

//go:generate mockgen -destination=../mock/services_mock.go -package=mock github.com/MKhiriev/go-name-keeper/internal/service NamesService,AppInfoService

// NamesService is the server-side use case layer over the names table.
type NamesService interface {
	List(ctx context.Context) ([]models.NameEntry, error)
	Create(ctx context.Context, request models.NameRequest) (models.NameEntry, error)
	Update(ctx context.Context, id models.EntryID, request models.NameRequest) (models.NameEntry, error)
	Delete(ctx context.Context, id models.EntryID) error
}

// NamesServiceWrapper defines middleware composition for NamesService.
// Implementations wrap an existing NamesService to add behavior such as
// validating.
type NamesServiceWrapper interface {
	Wrap(NamesService) NamesService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
