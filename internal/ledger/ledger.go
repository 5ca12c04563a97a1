// Package ledger records claims (requests) against donated resources and is
// the sole writer of the uniqueness and self-request invariants.
package ledger

import (
	"errors"

	"givego/backend/internal/models"
	"givego/backend/internal/storage"
)

var (
	// ErrResourceNotFound - the referenced resource does not exist or was removed.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrSelfRequest - a donor tried to request their own resource.
	ErrSelfRequest = errors.New("you cannot request your own donated resource")
	// ErrDuplicateRequest - the requester already has a request for this resource.
	ErrDuplicateRequest = errors.New("you have already requested this resource")
)

// Service handles the business logic for resource requests.
type Service struct {
	Storage storage.Storage

	keys keyedMutex
}

// NewService creates a new request ledger.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreateRequest claims a resource for the requester. The self-request check
// runs before the duplicate check, so a donor re-requesting their own
// resource always gets ErrSelfRequest regardless of history. The
// (requester, resource) pair is serialized with a keyed lock; the unique
// index at the storage layer backs the same rule for other writers.
//
// The resource status is left untouched: any number of requesters may
// compete for one resource, and claiming is a caller/administrator policy.
func (s *Service) CreateRequest(requesterID, resourceID string) (*models.Request, error) {
	res, err := s.Storage.GetResourceByID(resourceID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	if res.Status == models.ResourceStatusRemoved {
		return nil, ErrResourceNotFound
	}

	if res.OwnerID == requesterID {
		return nil, ErrSelfRequest
	}

	unlock := s.keys.Lock(requesterID + "|" + resourceID)
	defer unlock()

	existing, err := s.Storage.FindRequest(requesterID, resourceID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRequest
	}

	req := &models.Request{
		RequesterID:  requesterID,
		ResourceID:   res.ID,
		DonorID:      res.OwnerID,
		ResourceName: res.Name,
		Category:     res.Category,
		Description:  res.Description,
		Images:       res.Images,
	}
	if err := s.Storage.CreateRequest(req); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}
	return req, nil
}

// FindByRequester returns the requester's requests, newest first.
func (s *Service) FindByRequester(requesterID string) ([]models.Request, error) {
	return s.Storage.ListRequestsByRequester(requesterID)
}

// FindByResource returns all requests recorded against a resource.
func (s *Service) FindByResource(resourceID string) ([]models.Request, error) {
	return s.Storage.ListRequestsByResource(resourceID)
}

// ExistsForParticipant reports whether the participant has any standing in
// the ledger: appears in a request on either side, or owns a resource. A
// donor whose resource row was since deleted stays covered through the
// request snapshot.
func (s *Service) ExistsForParticipant(participantID string) (bool, error) {
	inRequests, err := s.Storage.AppearsInRequests(participantID)
	if err != nil {
		return false, err
	}
	if inRequests {
		return true, nil
	}
	return s.Storage.HasResources(participantID)
}
