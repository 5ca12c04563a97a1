package chathub_test

import (
	"givego/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock implementation of the storage.Storage
// interface, used to drive the relay without a database or Redis.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) ListUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) DeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreateResource(res *models.Resource) error {
	args := m.Called(res)
	return args.Error(0)
}

func (m *MockStorage) GetResourceByID(id string) (*models.Resource, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockStorage) ListResources() ([]models.Resource, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockStorage) ListResourcesByOwner(ownerID string) ([]models.Resource, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockStorage) SetResourceStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStorage) DeleteResource(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreateRequest(req *models.Request) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockStorage) FindRequest(requesterID, resourceID string) (*models.Request, error) {
	args := m.Called(requesterID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockStorage) ListRequestsByRequester(requesterID string) ([]models.Request, error) {
	args := m.Called(requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Request), args.Error(1)
}

func (m *MockStorage) ListRequestsByResource(resourceID string) ([]models.Request, error) {
	args := m.Called(resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Request), args.Error(1)
}

func (m *MockStorage) DeleteRequest(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreateWantedResource(want *models.WantedResource) error {
	args := m.Called(want)
	return args.Error(0)
}

func (m *MockStorage) ListWantedResources() ([]models.WantedResource, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WantedResource), args.Error(1)
}

func (m *MockStorage) ListWantedResourcesByOwner(ownerID string) ([]models.WantedResource, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WantedResource), args.Error(1)
}

func (m *MockStorage) HasResources(ownerID string) (bool, error) {
	args := m.Called(ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) AppearsInRequests(participantID string) (bool, error) {
	args := m.Called(participantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) SaveContactMessage(msg *models.ContactMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) PublishMessage(roomID string, msg models.ChatMessage) error {
	args := m.Called(roomID, msg)
	return args.Error(0)
}

func (m *MockStorage) SubscribeRooms() *redis.PubSub {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PubSub)
}
