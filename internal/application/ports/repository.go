package ports

import (
	"context"

	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// ProfileRepository defines persistence for user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id int64) error
}

// GalleryRepository defines persistence for per-profile galleries.
type GalleryRepository interface {
	Create(ctx context.Context, gallery *domain.Gallery) error
	GetByProfileID(ctx context.Context, profileID int64) (*domain.Gallery, error)
	UpdatePhotos(ctx context.Context, profileID int64, photos domain.PhotoSet) error
	Delete(ctx context.Context, profileID int64) error
}

// ConservationAreaRepository defines persistence for conservation areas.
type ConservationAreaRepository interface {
	Create(ctx context.Context, area *domain.ConservationArea) error
	GetByID(ctx context.Context, id int64) (*domain.ConservationArea, error)
	List(ctx context.Context) ([]*domain.ConservationArea, error)
	Update(ctx context.Context, area *domain.ConservationArea) error
	UpdatePhotos(ctx context.Context, id int64, photos domain.PhotoSet, regionPath string) error
	Delete(ctx context.Context, id int64) error
}

// DestinationRepository defines persistence for tourist destinations.
type DestinationRepository interface {
	Create(ctx context.Context, dest *domain.TouristDestination) error
	GetByID(ctx context.Context, id int64) (*domain.TouristDestination, error)
	List(ctx context.Context) ([]*domain.TouristDestination, error)
	ListByCategory(ctx context.Context, beach, forest, volcano, mountain bool, limit int) ([]*domain.TouristDestination, error)
	Update(ctx context.Context, dest *domain.TouristDestination) error
	UpdatePhotos(ctx context.Context, id int64, photos domain.PhotoSet) error
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository defines persistence for destination reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByDestinationAndUser(ctx context.Context, destinationID, userID int64) (*domain.Review, error)
	ListByDestination(ctx context.Context, destinationID int64) ([]*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

// MarkRepository defines persistence for favorite and visited marks.
// Implementations are table-scoped: one instance per mark kind.
type MarkRepository interface {
	Add(ctx context.Context, userID, destinationID int64) error
	Remove(ctx context.Context, userID, destinationID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.TouristDestination, error)
}
