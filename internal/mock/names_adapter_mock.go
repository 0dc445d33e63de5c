// Mock of the adapter NamesAdapter interface.

package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/MKhiriev/go-name-keeper/models"
	gomock "go.uber.org/mock/gomock"
)

// MockNamesAdapter is a mock of NamesAdapter interface.
type MockNamesAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockNamesAdapterMockRecorder
	isgomock struct{}
}

// MockNamesAdapterMockRecorder is the mock recorder for MockNamesAdapter.
type MockNamesAdapterMockRecorder struct {
	mock *MockNamesAdapter
}

// NewMockNamesAdapter creates a new mock instance.
func NewMockNamesAdapter(ctrl *gomock.Controller) *MockNamesAdapter {
	mock := &MockNamesAdapter{ctrl: ctrl}
	mock.recorder = &MockNamesAdapterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNamesAdapter) EXPECT() *MockNamesAdapterMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockNamesAdapter) Create(ctx context.Context, text string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, text)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockNamesAdapterMockRecorder) Create(ctx, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockNamesAdapter)(nil).Create), ctx, text)
}

// Delete mocks base method.
func (m *MockNamesAdapter) Delete(ctx context.Context, id models.EntryID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockNamesAdapterMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockNamesAdapter)(nil).Delete), ctx, id)
}

// List mocks base method.
func (m *MockNamesAdapter) List(ctx context.Context) ([]models.NameEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]models.NameEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockNamesAdapterMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockNamesAdapter)(nil).List), ctx)
}

// Update mocks base method.
func (m *MockNamesAdapter) Update(ctx context.Context, id models.EntryID, text string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, text)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockNamesAdapterMockRecorder) Update(ctx, id, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockNamesAdapter)(nil).Update), ctx, id, text)
}
