package mock_test

import (
	"github.com/MKhiriev/go-name-keeper/internal/adapter"
	"github.com/MKhiriev/go-name-keeper/internal/mock"
	"github.com/MKhiriev/go-name-keeper/internal/service"
	"github.com/MKhiriev/go-name-keeper/internal/store"
)

var (
	_ adapter.NamesAdapter     = (*mock.MockNamesAdapter)(nil)
	_ store.NameRepository     = (*mock.MockNameRepository)(nil)
	_ store.ErrorClassificator = (*mock.MockErrorClassificator)(nil)
	_ service.NamesService     = (*mock.MockNamesService)(nil)
	_ service.AppInfoService   = (*mock.MockAppInfoService)(nil)
)
