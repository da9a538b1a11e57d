package profile

import (
	"context"
	"errors"
	"path"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/media"
)

type fakeProfileRepo struct {
	profiles map[int64]*domain.Profile
	nextID   int64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int64]*domain.Profile), nextID: 1}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	p.ID = r.nextID
	r.nextID++
	r.profiles[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID int64) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]*domain.Profile, error) {
	out := make([]*domain.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id int64) error {
	delete(r.profiles, id)
	return nil
}

type fakeGalleryRepo struct {
	galleries map[int64]*domain.Gallery
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{galleries: make(map[int64]*domain.Gallery)}
}

func (r *fakeGalleryRepo) Create(_ context.Context, g *domain.Gallery) error {
	r.galleries[g.ProfileID] = g
	return nil
}

func (r *fakeGalleryRepo) GetByProfileID(_ context.Context, profileID int64) (*domain.Gallery, error) {
	return r.galleries[profileID], nil
}

func (r *fakeGalleryRepo) UpdatePhotos(_ context.Context, profileID int64, photos domain.PhotoSet) error {
	r.galleries[profileID].PhotosPath = photos
	return nil
}

func (r *fakeGalleryRepo) Delete(_ context.Context, profileID int64) error {
	delete(r.galleries, profileID)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeProfileRepo, *fakeGalleryRepo) {
	t.Helper()
	profiles := newFakeProfileRepo()
	galleries := newFakeGalleryRepo()
	store := media.NewStore(t.TempDir(), 70, zerolog.Nop())
	return NewService(profiles, galleries, store), profiles, galleries
}

func seedProfile(t *testing.T, svc *Service, userID int64) *domain.Profile {
	t.Helper()
	p := &domain.Profile{Name: "Ana", Phone: "8888-8888", UserID: userID}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func TestAddPhoto(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	p := seedProfile(t, svc, 1)

	stored, err := svc.AddPhoto(ctx, KindProfile, p.ID, ports.Upload{Filename: "me.jpg", Data: []byte("x")})
	if err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	if stored != "/profile/profile/1.jpg" {
		t.Fatalf("stored path = %q", stored)
	}
	if repo.profiles[p.ID].ProfilePhotoPath != stored {
		t.Fatal("profile row not updated with the stored path")
	}

	data, err := svc.GetPhoto(ctx, KindProfile, p.ID)
	if err != nil {
		t.Fatalf("GetPhoto: %v", err)
	}
	if string(data) != "x" {
		t.Fatalf("photo content = %q", data)
	}
}

func TestAddPhoto_InvalidKind(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	_, err := svc.AddPhoto(context.Background(), "banner", 1, ports.Upload{Filename: "x.jpg"})
	if !errors.Is(err, domerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeletePhoto(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	p := seedProfile(t, svc, 1)

	if _, err := svc.AddPhoto(ctx, KindCover, p.ID, ports.Upload{Filename: "cover.png", Data: []byte("x")}); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	if err := svc.DeletePhoto(ctx, KindCover, p.ID); err != nil {
		t.Fatalf("DeletePhoto: %v", err)
	}
	if repo.profiles[p.ID].CoverPhotoPath != "" {
		t.Fatal("cover path not cleared")
	}
	if _, err := svc.GetPhoto(ctx, KindCover, p.ID); !errors.Is(err, domerrors.ErrFileNotFound) {
		t.Fatalf("GetPhoto after delete: %v", err)
	}
}

func TestGalleryPhotos(t *testing.T) {
	t.Parallel()
	svc, _, galleries := newTestService(t)
	ctx := context.Background()
	p := seedProfile(t, svc, 1)

	if _, err := svc.CreateGallery(ctx, p.ID); err != nil {
		t.Fatalf("CreateGallery: %v", err)
	}

	first, err := svc.AddGalleryPhotos(ctx, p.ID, []ports.Upload{
		{Filename: "a.jpg", Data: []byte("a")},
	})
	if err != nil {
		t.Fatalf("AddGalleryPhotos: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("set = %v", first)
	}

	// Appending preserves what is already stored.
	second, err := svc.AddGalleryPhotos(ctx, p.ID, []ports.Upload{
		{Filename: "b.png", Data: []byte("b")},
	})
	if err != nil {
		t.Fatalf("second AddGalleryPhotos: %v", err)
	}
	if len(second) != 2 || second[0] != first[0] {
		t.Fatalf("append lost the existing photo: %v", second)
	}

	set, err := svc.DeleteGalleryPhoto(ctx, p.ID, path.Base(first[0]))
	if err != nil {
		t.Fatalf("DeleteGalleryPhoto: %v", err)
	}
	if len(set) != 1 || set[0] != second[1] {
		t.Fatalf("set after delete = %v", set)
	}
	if galleries.galleries[p.ID].PhotosPath.String() != set.String() {
		t.Fatal("gallery row out of sync")
	}
}

func TestDeleteGalleryPhoto_MissingFileStillDropsPath(t *testing.T) {
	t.Parallel()
	svc, _, galleries := newTestService(t)
	ctx := context.Background()
	p := seedProfile(t, svc, 1)

	if _, err := svc.CreateGallery(ctx, p.ID); err != nil {
		t.Fatalf("CreateGallery: %v", err)
	}
	// A stale row entry pointing at a file that no longer exists.
	galleries.galleries[p.ID].PhotosPath = domain.PhotoSet{"/profile/gallery/1/gone.jpg"}

	set, err := svc.DeleteGalleryPhoto(ctx, p.ID, "gone.jpg")
	if err != nil {
		t.Fatalf("DeleteGalleryPhoto: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("stale entry kept: %v", set)
	}
}

func TestDelete_RemovesPhotosGalleryAndRow(t *testing.T) {
	t.Parallel()
	svc, repo, galleries := newTestService(t)
	ctx := context.Background()
	p := seedProfile(t, svc, 1)

	if _, err := svc.AddPhoto(ctx, KindProfile, p.ID, ports.Upload{Filename: "me.jpg", Data: []byte("x")}); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	if _, err := svc.CreateGallery(ctx, p.ID); err != nil {
		t.Fatalf("CreateGallery: %v", err)
	}
	if _, err := svc.AddGalleryPhotos(ctx, p.ID, []ports.Upload{{Filename: "a.jpg", Data: []byte("a")}}); err != nil {
		t.Fatalf("AddGalleryPhotos: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.profiles[p.ID]; ok {
		t.Fatal("profile row survived")
	}
	if _, ok := galleries.galleries[p.ID]; ok {
		t.Fatal("gallery row survived")
	}
	if _, err := svc.GetPhoto(ctx, KindProfile, p.ID); !errors.Is(err, domerrors.ErrFileNotFound) {
		t.Fatalf("profile photo survived: %v", err)
	}
}
