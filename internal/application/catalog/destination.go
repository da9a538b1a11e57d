package catalog

import (
	"context"
	"time"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

const recommendationLimit = 3

// DestinationService manages tourist destinations, their photo sets, the
// season queries, and the favorites-based recommendations.
type DestinationService struct {
	destinations ports.DestinationRepository
	favorites    ports.MarkRepository
	media        ports.MediaStore
	now          func() time.Time
}

func NewDestinationService(destinations ports.DestinationRepository, favorites ports.MarkRepository, media ports.MediaStore) *DestinationService {
	return &DestinationService{
		destinations: destinations,
		favorites:    favorites,
		media:        media,
		now:          time.Now,
	}
}

func (s *DestinationService) Create(ctx context.Context, dest *domain.TouristDestination) error {
	return s.destinations.Create(ctx, dest)
}

func (s *DestinationService) Get(ctx context.Context, id int64) (*domain.TouristDestination, error) {
	dest, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, domerrors.ErrNotFound
	}
	return dest, nil
}

func (s *DestinationService) List(ctx context.Context) ([]*domain.TouristDestination, error) {
	return s.destinations.List(ctx)
}

func (s *DestinationService) Update(ctx context.Context, dest *domain.TouristDestination) error {
	if _, err := s.Get(ctx, dest.ID); err != nil {
		return err
	}
	return s.destinations.Update(ctx, dest)
}

func (s *DestinationService) AddPhotos(ctx context.Context, id int64, photos []ports.Upload) (*domain.TouristDestination, error) {
	dest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := s.media.AddSet(ctx, domain.DestinationDirectory(dest.ID), photos)
	if err != nil {
		return nil, err
	}
	if err := s.destinations.UpdatePhotos(ctx, dest.ID, set); err != nil {
		return nil, err
	}
	dest.PhotosPath = set
	return dest, nil
}

func (s *DestinationService) UpdatePhotos(ctx context.Context, id int64, photos []ports.Upload) (*domain.TouristDestination, error) {
	dest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := s.media.ReconcileSet(ctx, domain.DestinationDirectory(dest.ID), dest.PhotosPath, photos)
	if err != nil {
		return nil, err
	}
	if err := s.destinations.UpdatePhotos(ctx, dest.ID, set); err != nil {
		return nil, err
	}
	dest.PhotosPath = set
	return dest, nil
}

func (s *DestinationService) Delete(ctx context.Context, id int64) error {
	dest, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.media.DeleteDirectory(ctx, domain.DestinationDirectory(dest.ID)); err != nil {
		return err
	}
	return s.destinations.Delete(ctx, dest.ID)
}

// Season returns the destinations whose visiting window contains month.
func (s *DestinationService) Season(ctx context.Context, month int) ([]*domain.TouristDestination, error) {
	if month < 1 || month > 12 {
		return nil, domerrors.ErrBadMonth
	}
	all, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.TouristDestination
	for _, d := range all {
		if d.InSeason(month) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Recommend suggests destinations matching the category the user favors
// most. Ties include every tied category. Users without favorites get the
// current month's in-season destinations instead.
func (s *DestinationService) Recommend(ctx context.Context, userID int64) ([]*domain.TouristDestination, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return s.Season(ctx, int(s.now().Month()))
	}

	var beach, forest, volcano, mountain int
	for _, d := range favorites {
		if d.IsBeach {
			beach++
		}
		if d.IsForest {
			forest++
		}
		if d.IsVolcano {
			volcano++
		}
		if d.IsMountain {
			mountain++
		}
	}
	maxCount := beach
	for _, n := range []int{forest, volcano, mountain} {
		if n > maxCount {
			maxCount = n
		}
	}

	var out []*domain.TouristDestination
	appendCategory := func(isBeach, isForest, isVolcano, isMountain bool) error {
		list, err := s.destinations.ListByCategory(ctx, isBeach, isForest, isVolcano, isMountain, recommendationLimit)
		if err != nil {
			return err
		}
		out = append(out, list...)
		return nil
	}
	if beach == maxCount {
		if err := appendCategory(true, false, false, false); err != nil {
			return nil, err
		}
	}
	if volcano == maxCount {
		if err := appendCategory(false, false, true, false); err != nil {
			return nil, err
		}
	}
	if forest == maxCount {
		if err := appendCategory(false, true, false, false); err != nil {
			return nil, err
		}
	}
	if mountain == maxCount {
		if err := appendCategory(false, false, false, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}
