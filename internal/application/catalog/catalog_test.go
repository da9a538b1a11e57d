package catalog

import (
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/media"
)

type fakeDestinationRepo struct {
	dests      map[int64]*domain.TouristDestination
	nextID     int64
	categoryOf func(beach, forest, volcano, mountain bool) []*domain.TouristDestination
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{dests: make(map[int64]*domain.TouristDestination), nextID: 1}
}

func (r *fakeDestinationRepo) Create(_ context.Context, d *domain.TouristDestination) error {
	d.ID = r.nextID
	r.nextID++
	r.dests[d.ID] = d
	return nil
}

func (r *fakeDestinationRepo) GetByID(_ context.Context, id int64) (*domain.TouristDestination, error) {
	return r.dests[id], nil
}

func (r *fakeDestinationRepo) List(_ context.Context) ([]*domain.TouristDestination, error) {
	out := make([]*domain.TouristDestination, 0, len(r.dests))
	for id := int64(1); id < r.nextID; id++ {
		if d, ok := r.dests[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDestinationRepo) ListByCategory(_ context.Context, beach, forest, volcano, mountain bool, _ int) ([]*domain.TouristDestination, error) {
	if r.categoryOf == nil {
		return nil, nil
	}
	return r.categoryOf(beach, forest, volcano, mountain), nil
}

func (r *fakeDestinationRepo) Update(_ context.Context, d *domain.TouristDestination) error {
	r.dests[d.ID] = d
	return nil
}

func (r *fakeDestinationRepo) UpdatePhotos(_ context.Context, id int64, photos domain.PhotoSet) error {
	r.dests[id].PhotosPath = photos
	return nil
}

func (r *fakeDestinationRepo) Delete(_ context.Context, id int64) error {
	delete(r.dests, id)
	return nil
}

type fakeMarkRepo struct {
	byUser map[int64][]*domain.TouristDestination
}

func (r *fakeMarkRepo) Add(_ context.Context, _, _ int64) error    { return nil }
func (r *fakeMarkRepo) Remove(_ context.Context, _, _ int64) error { return nil }

func (r *fakeMarkRepo) ListByUser(_ context.Context, userID int64) ([]*domain.TouristDestination, error) {
	return r.byUser[userID], nil
}

type fakeAreaRepo struct {
	areas  map[int64]*domain.ConservationArea
	nextID int64
}

func newFakeAreaRepo() *fakeAreaRepo {
	return &fakeAreaRepo{areas: make(map[int64]*domain.ConservationArea), nextID: 1}
}

func (r *fakeAreaRepo) Create(_ context.Context, a *domain.ConservationArea) error {
	a.ID = r.nextID
	r.nextID++
	r.areas[a.ID] = a
	return nil
}

func (r *fakeAreaRepo) GetByID(_ context.Context, id int64) (*domain.ConservationArea, error) {
	return r.areas[id], nil
}

func (r *fakeAreaRepo) List(_ context.Context) ([]*domain.ConservationArea, error) {
	out := make([]*domain.ConservationArea, 0, len(r.areas))
	for _, a := range r.areas {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAreaRepo) Update(_ context.Context, a *domain.ConservationArea) error {
	r.areas[a.ID] = a
	return nil
}

func (r *fakeAreaRepo) UpdatePhotos(_ context.Context, id int64, photos domain.PhotoSet, regionPath string) error {
	r.areas[id].PhotosPath = photos
	r.areas[id].RegionPath = regionPath
	return nil
}

func (r *fakeAreaRepo) Delete(_ context.Context, id int64) error {
	delete(r.areas, id)
	return nil
}

type fakeReviewRepo struct {
	reviews map[int64]*domain.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*domain.Review), nextID: 1}
}

func (r *fakeReviewRepo) Create(_ context.Context, rev *domain.Review) error {
	rev.ID = r.nextID
	r.nextID++
	r.reviews[rev.ID] = rev
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	return r.reviews[id], nil
}

func (r *fakeReviewRepo) GetByDestinationAndUser(_ context.Context, destinationID, userID int64) (*domain.Review, error) {
	for _, rev := range r.reviews {
		if rev.TouristDestinationID == destinationID && rev.UserID == userID {
			return rev, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) ListByDestination(_ context.Context, destinationID int64) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rev := range r.reviews {
		if rev.TouristDestinationID == destinationID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, rev *domain.Review) error {
	r.reviews[rev.ID] = rev
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	delete(r.reviews, id)
	return nil
}

func newTestMedia(t *testing.T) *media.Store {
	t.Helper()
	return media.NewStore(t.TempDir(), 70, zerolog.Nop())
}

func seasonal(name string, start, end int) *domain.TouristDestination {
	return &domain.TouristDestination{Name: name, StartSeason: start, EndSeason: end}
}

func TestSeason(t *testing.T) {
	t.Parallel()
	repo := newFakeDestinationRepo()
	ctx := context.Background()
	for _, d := range []*domain.TouristDestination{
		seasonal("dry season", 12, 4),
		seasonal("green season", 5, 11),
		seasonal("year round", 1, 12),
	} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	svc := NewDestinationService(repo, &fakeMarkRepo{}, newTestMedia(t))

	got, err := svc.Season(ctx, 2)
	if err != nil {
		t.Fatalf("Season: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("month 2 matched %d destinations, want 2", len(got))
	}
	for _, d := range got {
		if d.Name == "green season" {
			t.Fatal("out-of-season destination included")
		}
	}
}

func TestSeason_BadMonth(t *testing.T) {
	t.Parallel()
	svc := NewDestinationService(newFakeDestinationRepo(), &fakeMarkRepo{}, newTestMedia(t))

	for _, month := range []int{0, -1, 13} {
		if _, err := svc.Season(context.Background(), month); !errors.Is(err, domerrors.ErrBadMonth) {
			t.Fatalf("month %d: err = %v, want ErrBadMonth", month, err)
		}
	}
}

func TestRecommend_NoFavoritesFallsBackToSeason(t *testing.T) {
	t.Parallel()
	repo := newFakeDestinationRepo()
	ctx := context.Background()
	if err := repo.Create(ctx, seasonal("june spot", 5, 8)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.Create(ctx, seasonal("winter spot", 12, 2)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewDestinationService(repo, &fakeMarkRepo{}, newTestMedia(t))
	svc.now = func() time.Time { return time.Date(2022, time.June, 15, 0, 0, 0, 0, time.UTC) }

	got, err := svc.Recommend(ctx, 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 1 || got[0].Name != "june spot" {
		t.Fatalf("got %d destinations, want the in-season one", len(got))
	}
}

func TestRecommend_TieIncludesEveryTiedCategory(t *testing.T) {
	t.Parallel()
	repo := newFakeDestinationRepo()
	repo.categoryOf = func(beach, _, volcano, _ bool) []*domain.TouristDestination {
		switch {
		case beach:
			return []*domain.TouristDestination{{Name: "some beach", IsBeach: true}}
		case volcano:
			return []*domain.TouristDestination{{Name: "some volcano", IsVolcano: true}}
		default:
			return nil
		}
	}
	marks := &fakeMarkRepo{byUser: map[int64][]*domain.TouristDestination{
		7: {
			{Name: "fav 1", IsBeach: true},
			{Name: "fav 2", IsVolcano: true},
		},
	}}
	svc := NewDestinationService(repo, marks, newTestMedia(t))

	got, err := svc.Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d recommendations, want one per tied category", len(got))
	}
	if !got[0].IsBeach || !got[1].IsVolcano {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestAreaPhotoLifecycle(t *testing.T) {
	t.Parallel()
	repo := newFakeAreaRepo()
	store := newTestMedia(t)
	svc := NewAreaService(repo, store)
	ctx := context.Background()

	area := &domain.ConservationArea{Name: "Arenal", Description: "volcano and forest"}
	if err := svc.Create(ctx, area); err != nil {
		t.Fatalf("Create: %v", err)
	}

	area, err := svc.AddPhotos(ctx, area.ID,
		[]ports.Upload{
			{Filename: "a.jpg", Data: []byte("a")},
			{Filename: "b.png", Data: []byte("b")},
		},
		ports.Upload{Filename: "map.jpg", Data: []byte("map")})
	if err != nil {
		t.Fatalf("AddPhotos: %v", err)
	}
	if len(area.PhotosPath) != 2 || area.RegionPath == "" {
		t.Fatalf("photo set %v, region %q", area.PhotosPath, area.RegionPath)
	}
	keep := area.PhotosPath[0]

	// Resubmit one stored photo, add a fresh one, keep the region map.
	area, err = svc.UpdatePhotos(ctx, area.ID,
		[]ports.Upload{
			{Filename: area.PhotosPath.Filenames()[0], Data: nil},
			{Filename: "c.jpeg", Data: []byte("c")},
		},
		ports.Upload{Filename: path.Base(area.RegionPath), Data: nil})
	if err != nil {
		t.Fatalf("UpdatePhotos: %v", err)
	}
	if len(area.PhotosPath) != 2 {
		t.Fatalf("reconciled set %v", area.PhotosPath)
	}
	if area.PhotosPath[0] != keep {
		t.Fatalf("resubmitted photo moved: %q", area.PhotosPath[0])
	}
	stored := repo.areas[area.ID]
	if stored.PhotosPath.String() != area.PhotosPath.String() {
		t.Fatal("repository row out of sync with the media store")
	}

	if err := svc.Delete(ctx, area.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, area.ID); !errors.Is(err, domerrors.ErrNotFound) {
		t.Fatalf("Get after delete: %v", err)
	}
	if err := store.RemoveImage(ctx, keep); !errors.Is(err, domerrors.ErrFileNotFound) {
		t.Fatalf("photo survived area delete: %v", err)
	}
}

func TestReviewUpdate_MovesDate(t *testing.T) {
	t.Parallel()
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, newTestMedia(t))
	then := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2022, time.July, 9, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return then }
	ctx := context.Background()

	review := &domain.Review{Title: "great", Calification: 5, UserID: 3, TouristDestinationID: 8}
	if err := svc.Add(ctx, review); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !review.Date.Equal(then) {
		t.Fatalf("date = %v, want %v", review.Date, then)
	}

	svc.now = func() time.Time { return now }
	updated, err := svc.Update(ctx, 8, 3, "still great", "came back", 4, "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Date.Equal(now) {
		t.Fatalf("updated date = %v, want %v", updated.Date, now)
	}
	if updated.Calification != 4 || updated.Title != "still great" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestReviewDelete_AuthorOnly(t *testing.T) {
	t.Parallel()
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, newTestMedia(t))
	ctx := context.Background()

	review := &domain.Review{Title: "mine", UserID: 3, TouristDestinationID: 8}
	if err := svc.Add(ctx, review); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Delete(ctx, review.ID, 99); !errors.Is(err, domerrors.ErrForbidden) {
		t.Fatalf("foreign delete err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, review.ID, 3); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if err := svc.Delete(ctx, review.ID, 3); !errors.Is(err, domerrors.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
