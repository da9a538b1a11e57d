package catalog

import (
	"context"
	"time"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

// ReviewService manages per-user destination reviews and their single
// optional photo.
type ReviewService struct {
	reviews ports.ReviewRepository
	media   ports.MediaStore
	now     func() time.Time
}

func NewReviewService(reviews ports.ReviewRepository, media ports.MediaStore) *ReviewService {
	return &ReviewService{reviews: reviews, media: media, now: time.Now}
}

func (s *ReviewService) GetByUser(ctx context.Context, destinationID, userID int64) (*domain.Review, error) {
	review, err := s.reviews.GetByDestinationAndUser(ctx, destinationID, userID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domerrors.ErrNotFound
	}
	return review, nil
}

func (s *ReviewService) ListByDestination(ctx context.Context, destinationID int64) ([]*domain.Review, error) {
	return s.reviews.ListByDestination(ctx, destinationID)
}

func (s *ReviewService) Add(ctx context.Context, review *domain.Review) error {
	review.Date = s.now()
	return s.reviews.Create(ctx, review)
}

// Update rewrites the caller's review of a destination; the review date
// moves to now.
func (s *ReviewService) Update(ctx context.Context, destinationID, userID int64, title, text string, calification int, imagePath string) (*domain.Review, error) {
	review, err := s.GetByUser(ctx, destinationID, userID)
	if err != nil {
		return nil, err
	}
	review.Title = title
	review.Text = text
	review.Calification = calification
	review.ImagePath = imagePath
	review.Date = s.now()
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// AddImage stores a review photo under the {destination}-{user} directory.
// A photo already attached to the review is replaced unless the same
// filename is resubmitted.
func (s *ReviewService) AddImage(ctx context.Context, destinationID, userID int64, upload ports.Upload) (string, error) {
	dir := domain.ReviewDirectory(destinationID, userID)
	existing, err := s.reviews.GetByDestinationAndUser(ctx, destinationID, userID)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.ImagePath != "" && existing.ImagePath != "/" {
		return s.media.ReplaceSingle(ctx, dir, existing.ImagePath, upload)
	}
	return s.media.AddImage(ctx, dir, upload)
}

// Delete removes the review and its photo directory. Only the author may
// delete it.
func (s *ReviewService) Delete(ctx context.Context, reviewID, userID int64) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return domerrors.ErrNotFound
	}
	if review.UserID != userID {
		return domerrors.ErrForbidden
	}
	if err := s.media.DeleteDirectory(ctx, domain.ReviewDirectory(review.TouristDestinationID, review.UserID)); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, review.ID)
}
