// Mocks of the store interfaces: NameRepository and ErrorClassificator.

package mock

import (
	context "context"
	reflect "reflect"

	store "github.com/MKhiriev/go-name-keeper/internal/store"
	models "github.com/MKhiriev/go-name-keeper/models"
	gomock "go.uber.org/mock/gomock"
)

// MockNameRepository is a mock of NameRepository interface.
type MockNameRepository struct {
	ctrl     *gomock.Controller
	recorder *MockNameRepositoryMockRecorder
	isgomock struct{}
}

// MockNameRepositoryMockRecorder is the mock recorder for MockNameRepository.
type MockNameRepositoryMockRecorder struct {
	mock *MockNameRepository
}

// NewMockNameRepository creates a new mock instance.
func NewMockNameRepository(ctrl *gomock.Controller) *MockNameRepository {
	mock := &MockNameRepository{ctrl: ctrl}
	mock.recorder = &MockNameRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNameRepository) EXPECT() *MockNameRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockNameRepository) Create(ctx context.Context, entry models.NameEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockNameRepositoryMockRecorder) Create(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockNameRepository)(nil).Create), ctx, entry)
}

// Delete mocks base method.
func (m *MockNameRepository) Delete(ctx context.Context, id models.EntryID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockNameRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockNameRepository)(nil).Delete), ctx, id)
}

// Get mocks base method.
func (m *MockNameRepository) Get(ctx context.Context, id models.EntryID) (models.NameEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(models.NameEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockNameRepositoryMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockNameRepository)(nil).Get), ctx, id)
}

// List mocks base method.
func (m *MockNameRepository) List(ctx context.Context) ([]models.NameEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]models.NameEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockNameRepositoryMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockNameRepository)(nil).List), ctx)
}

// Update mocks base method.
func (m *MockNameRepository) Update(ctx context.Context, entry models.NameEntry) (models.NameEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, entry)
	ret0, _ := ret[0].(models.NameEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockNameRepositoryMockRecorder) Update(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockNameRepository)(nil).Update), ctx, entry)
}

// MockErrorClassificator is a mock of ErrorClassificator interface.
type MockErrorClassificator struct {
	ctrl     *gomock.Controller
	recorder *MockErrorClassificatorMockRecorder
	isgomock struct{}
}

// MockErrorClassificatorMockRecorder is the mock recorder for MockErrorClassificator.
type MockErrorClassificatorMockRecorder struct {
	mock *MockErrorClassificator
}

// NewMockErrorClassificator creates a new mock instance.
func NewMockErrorClassificator(ctrl *gomock.Controller) *MockErrorClassificator {
	mock := &MockErrorClassificator{ctrl: ctrl}
	mock.recorder = &MockErrorClassificatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockErrorClassificator) EXPECT() *MockErrorClassificatorMockRecorder {
	return m.recorder
}

// Classify mocks base method.
func (m *MockErrorClassificator) Classify(err error) store.ErrorClassification {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Classify", err)
	ret0, _ := ret[0].(store.ErrorClassification)
	return ret0
}

// Classify indicates an expected call of Classify.
func (mr *MockErrorClassificatorMockRecorder) Classify(err any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Classify", reflect.TypeOf((*MockErrorClassificator)(nil).Classify), err)
}
