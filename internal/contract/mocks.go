package contract

import (
	"context"

	"github.com/khaledelg/portfolio/schema"
	"github.com/stretchr/testify/mock"
)

// MockProfileClient is a mock implementation of ProfileClient for testing.
type MockProfileClient struct {
	mock.Mock
}

var _ ProfileClient = &MockProfileClient{} // Compile-time check

// FetchProfile implements the ProfileClient interface.
func (m *MockProfileClient) FetchProfile(ctx context.Context, identity string) (schema.ProfileData, error) {
	ret := m.Called(ctx, identity)
	data, _ := ret.Get(0).(schema.ProfileData)
	return data, ret.Error(1)
}

// MockProfileSource is a mock implementation of ProfileSource for testing.
type MockProfileSource struct {
	mock.Mock
}

var _ ProfileSource = &MockProfileSource{} // Compile-time check

// GetProfileData implements the ProfileSource interface.
func (m *MockProfileSource) GetProfileData(ctx context.Context) (schema.ProfileData, error) {
	ret := m.Called(ctx)
	data, _ := ret.Get(0).(schema.ProfileData)
	return data, ret.Error(1)
}

// Status implements the ProfileSource interface.
func (m *MockProfileSource) Status() schema.CacheStatus {
	ret := m.Called()
	status, _ := ret.Get(0).(schema.CacheStatus)
	return status
}
