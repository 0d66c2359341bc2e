package lists

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// Service wraps list business rules on top of the repository.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save persists a new list for ownerID. Name, codes and image URLs must all
// be present; a list never exists with an empty code or image set.
func (s *Service) Save(ctx context.Context, ownerID string, req SaveListRequest) (*List, error) {
	if req.Name == "" || len(req.Codes) == 0 || len(req.ImageURLs) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", shared.ErrValidation)
	}

	list := &List{
		Name:      req.Name,
		Codes:     req.Codes,
		ImageURLs: req.ImageURLs,
		OwnerID:   ownerID,
	}
	if err := s.repo.Insert(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListForOwner returns the owner's lists, newest first. No lists is an empty
// slice, not an error.
func (s *Service) ListForOwner(ctx context.Context, ownerID string) ([]List, error) {
	result, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []List{}
	}
	return result, nil
}

// Delete removes the owner's list by id.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid list id", shared.ErrValidation)
	}
	return s.repo.Delete(ctx, ownerID, id)
}

// Update applies a partial update to the owner's list. Codes and image URLs
// travel together: supplying one without the other, or either empty, is
// rejected. When the request names no updatable fields, Update reports false
// without touching storage.
func (s *Service) Update(ctx context.Context, ownerID, id string, req UpdateListRequest) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, fmt.Errorf("%w: invalid list id", shared.ErrValidation)
	}
	if (req.Codes == nil) != (req.ImageURLs == nil) {
		return false, fmt.Errorf("%w: codes and imageUrls must be supplied together", shared.ErrValidation)
	}
	if req.Codes != nil && (len(*req.Codes) == 0 || len(*req.ImageURLs) == 0) {
		return false, fmt.Errorf("%w: cannot have empty codes or imageUrls", shared.ErrValidation)
	}
	if req.Name != nil && *req.Name == "" {
		return false, fmt.Errorf("%w: name cannot be empty", shared.ErrValidation)
	}

	fields := UpdateFields{Name: req.Name}
	if req.Codes != nil {
		fields.Codes = *req.Codes
		fields.ImageURLs = *req.ImageURLs
	}
	if fields.Name == nil && fields.Codes == nil {
		return false, nil
	}

	if err := s.repo.Update(ctx, ownerID, id, fields); err != nil {
		return false, err
	}
	return true, nil
}
