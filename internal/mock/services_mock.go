// Mocks of the service interfaces used by the handlers: NamesService and
// AppInfoService.

package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/MKhiriev/go-name-keeper/models"
	gomock "go.uber.org/mock/gomock"
)

// MockNamesService is a mock of NamesService interface.
type MockNamesService struct {
	ctrl     *gomock.Controller
	recorder *MockNamesServiceMockRecorder
	isgomock struct{}
}

// MockNamesServiceMockRecorder is the mock recorder for MockNamesService.
type MockNamesServiceMockRecorder struct {
	mock *MockNamesService
}

// NewMockNamesService creates a new mock instance.
func NewMockNamesService(ctrl *gomock.Controller) *MockNamesService {
	mock := &MockNamesService{ctrl: ctrl}
	mock.recorder = &MockNamesServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNamesService) EXPECT() *MockNamesServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockNamesService) Create(ctx context.Context, request models.NameRequest) (models.NameEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, request)
	ret0, _ := ret[0].(models.NameEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockNamesServiceMockRecorder) Create(ctx, request any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockNamesService)(nil).Create), ctx, request)
}

// Delete mocks base method.
func (m *MockNamesService) Delete(ctx context.Context, id models.EntryID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockNamesServiceMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockNamesService)(nil).Delete), ctx, id)
}

// List mocks base method.
func (m *MockNamesService) List(ctx context.Context) ([]models.NameEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]models.NameEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockNamesServiceMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockNamesService)(nil).List), ctx)
}

// Update mocks base method.
func (m *MockNamesService) Update(ctx context.Context, id models.EntryID, request models.NameRequest) (models.NameEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, request)
	ret0, _ := ret[0].(models.NameEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockNamesServiceMockRecorder) Update(ctx, id, request any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockNamesService)(nil).Update), ctx, id, request)
}

// MockAppInfoService is a mock of AppInfoService interface.
type MockAppInfoService struct {
	ctrl     *gomock.Controller
	recorder *MockAppInfoServiceMockRecorder
	isgomock struct{}
}

// MockAppInfoServiceMockRecorder is the mock recorder for MockAppInfoService.
type MockAppInfoServiceMockRecorder struct {
	mock *MockAppInfoService
}

// NewMockAppInfoService creates a new mock instance.
func NewMockAppInfoService(ctrl *gomock.Controller) *MockAppInfoService {
	mock := &MockAppInfoService{ctrl: ctrl}
	mock.recorder = &MockAppInfoServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAppInfoService) EXPECT() *MockAppInfoServiceMockRecorder {
	return m.recorder
}

// GetAppVersion mocks base method.
func (m *MockAppInfoService) GetAppVersion(ctx context.Context) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAppVersion", ctx)
	ret0, _ := ret[0].(string)
	return ret0
}

// GetAppVersion indicates an expected call of GetAppVersion.
func (mr *MockAppInfoServiceMockRecorder) GetAppVersion(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAppVersion", reflect.TypeOf((*MockAppInfoService)(nil).GetAppVersion), ctx)
}
