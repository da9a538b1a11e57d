package catalog

import (
	"context"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

// MarkService covers one per-user destination mark table (favorites or
// visited); wire one instance per kind.
type MarkService struct {
	marks ports.MarkRepository
}

func NewMarkService(marks ports.MarkRepository) *MarkService {
	return &MarkService{marks: marks}
}

func (s *MarkService) Add(ctx context.Context, userID, destinationID int64) error {
	return s.marks.Add(ctx, userID, destinationID)
}

func (s *MarkService) Remove(ctx context.Context, userID, destinationID int64) error {
	return s.marks.Remove(ctx, userID, destinationID)
}

func (s *MarkService) List(ctx context.Context, userID int64) ([]*domain.TouristDestination, error) {
	return s.marks.ListByUser(ctx, userID)
}
