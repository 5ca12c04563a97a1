package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"givego/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Sentinel errors translated from the underlying drivers so callers never
// match on gorm/redis error types directly.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Storage is the persistence boundary consumed by the ledger, the relay and
// the HTTP handlers.
type Storage interface {
	SaveUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	ListUsers() ([]models.User, error)
	DeleteUser(id string) error

	CreateResource(res *models.Resource) error
	GetResourceByID(id string) (*models.Resource, error)
	ListResources() ([]models.Resource, error)
	ListResourcesByOwner(ownerID string) ([]models.Resource, error)
	SetResourceStatus(id, status string) error
	DeleteResource(id string) error

	CreateRequest(req *models.Request) error
	FindRequest(requesterID, resourceID string) (*models.Request, error)
	ListRequestsByRequester(requesterID string) ([]models.Request, error)
	ListRequestsByResource(resourceID string) ([]models.Request, error)
	DeleteRequest(id string) error

	CreateWantedResource(want *models.WantedResource) error
	ListWantedResources() ([]models.WantedResource, error)
	ListWantedResourcesByOwner(ownerID string) ([]models.WantedResource, error)

	HasResources(ownerID string) (bool, error)
	AppearsInRequests(participantID string) (bool, error)

	SaveContactMessage(msg *models.ContactMessage) error

	PublishMessage(roomID string, msg models.ChatMessage) error
	SubscribeRooms() *redis.PubSub
}

// Service implements Storage over PostgreSQL (gorm) and Redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// --- Users ---

func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.DB.Find(&users).Error
	return users, err
}

func (s *Service) DeleteUser(id string) error {
	result := s.DB.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Resources ---

func (s *Service) CreateResource(res *models.Resource) error {
	return s.DB.Create(res).Error
}

func (s *Service) GetResourceByID(id string) (*models.Resource, error) {
	var res models.Resource
	err := s.DB.First(&res, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get resource %s: %v", id, err)
		return nil, err
	}
	return &res, nil
}

func (s *Service) ListResources() ([]models.Resource, error) {
	var resources []models.Resource
	err := s.DB.Where("status <> ?", models.ResourceStatusRemoved).
		Order("created_at desc").
		Find(&resources).Error
	return resources, err
}

func (s *Service) ListResourcesByOwner(ownerID string) ([]models.Resource, error) {
	var resources []models.Resource
	err := s.DB.Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&resources).Error
	return resources, err
}

// SetResourceStatus updates only the lifecycle status. Claimed resources are
// immutable apart from this field.
func (s *Service) SetResourceStatus(id, status string) error {
	result := s.DB.Model(&models.Resource{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) DeleteResource(id string) error {
	result := s.DB.Delete(&models.Resource{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Requests ---

// CreateRequest inserts a new request. The (requester_id, resource_id) unique
// index makes the insert an atomic check-and-insert: a concurrent duplicate
// loses the race at the database and comes back as ErrDuplicate.
func (s *Service) CreateRequest(req *models.Request) error {
	err := s.DB.Create(req).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *Service) FindRequest(requesterID, resourceID string) (*models.Request, error) {
	var req models.Request
	err := s.DB.Where("requester_id = ? AND resource_id = ?", requesterID, resourceID).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Service) ListRequestsByRequester(requesterID string) ([]models.Request, error) {
	var requests []models.Request
	err := s.DB.Where("requester_id = ?", requesterID).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (s *Service) ListRequestsByResource(resourceID string) ([]models.Request, error) {
	var requests []models.Request
	err := s.DB.Where("resource_id = ?", resourceID).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (s *Service) DeleteRequest(id string) error {
	result := s.DB.Delete(&models.Request{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Wanted resources ---

func (s *Service) CreateWantedResource(want *models.WantedResource) error {
	return s.DB.Create(want).Error
}

func (s *Service) ListWantedResources() ([]models.WantedResource, error) {
	var wants []models.WantedResource
	err := s.DB.Order("created_at desc").Find(&wants).Error
	return wants, err
}

func (s *Service) ListWantedResourcesByOwner(ownerID string) ([]models.WantedResource, error) {
	var wants []models.WantedResource
	err := s.DB.Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&wants).Error
	return wants, err
}

// --- Participation probes ---

func (s *Service) HasResources(ownerID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Resource{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count > 0, err
}

// AppearsInRequests reports whether the participant shows up in any request,
// on either side of it.
func (s *Service) AppearsInRequests(participantID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Request{}).
		Where("requester_id = ? OR donor_id = ?", participantID, participantID).
		Count(&count).Error
	return count > 0, err
}

// --- Contact messages ---

func (s *Service) SaveContactMessage(msg *models.ContactMessage) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save contact message from %s: %v", msg.UserID, err)
		return err
	}
	return nil
}

// --- Realtime fan-out ---

// PublishMessage publishes a stamped chat message on the room's Redis channel
// so relays on other instances can deliver it to their local members.
func (s *Service) PublishMessage(roomID string, msg models.ChatMessage) error {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, "room:"+roomID, string(msgBytes)).Err()
}

// SubscribeRooms subscribes to every room channel. Returns nil when the
// service runs without Redis (tests, admin CLI).
func (s *Service) SubscribeRooms() *redis.PubSub {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.PSubscribe(s.Ctx, "room:*")
}
