// Package profile implements the profile and gallery photo workflows:
// fixed-name profile/cover photos and the per-profile gallery PhotoSet.
package profile

import (
	"context"
	"path"
	"strconv"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

// Photo kinds for the fixed-name profile images.
const (
	KindProfile = "profile"
	KindCover   = "cover"
)

func ValidKind(kind string) bool { return kind == KindProfile || kind == KindCover }

type Service struct {
	profiles  ports.ProfileRepository
	galleries ports.GalleryRepository
	media     ports.MediaStore
}

func NewService(profiles ports.ProfileRepository, galleries ports.GalleryRepository, media ports.MediaStore) *Service {
	return &Service{profiles: profiles, galleries: galleries, media: media}
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domerrors.ErrNotFound
	}
	return p, nil
}

func (s *Service) GetByUser(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domerrors.ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *Service) Create(ctx context.Context, p *domain.Profile) error {
	return s.profiles.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *domain.Profile) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.profiles.Update(ctx, p)
}

// AddPhoto stores the profile or cover photo under the profile id as a
// fixed stem, replacing any previous one, and commits the new path on the
// profile row afterwards.
func (s *Service) AddPhoto(ctx context.Context, kind string, profileID int64, upload ports.Upload) (string, error) {
	if !ValidKind(kind) {
		return "", domerrors.ErrNotFound
	}
	p, err := s.Get(ctx, profileID)
	if err != nil {
		return "", err
	}
	stored, err := s.media.AddNamed(ctx, domain.ProfilePhotoDirectory(kind), strconv.FormatInt(profileID, 10), upload)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindProfile:
		p.ProfilePhotoPath = stored
	case KindCover:
		p.CoverPhotoPath = stored
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return "", err
	}
	return stored, nil
}

func (s *Service) GetPhoto(ctx context.Context, kind string, profileID int64) ([]byte, error) {
	if !ValidKind(kind) {
		return nil, domerrors.ErrNotFound
	}
	return s.media.GetNamed(ctx, domain.ProfilePhotoDirectory(kind), strconv.FormatInt(profileID, 10))
}

// DeletePhoto removes the stored file and clears the row's path.
func (s *Service) DeletePhoto(ctx context.Context, kind string, profileID int64) error {
	if !ValidKind(kind) {
		return domerrors.ErrNotFound
	}
	p, err := s.Get(ctx, profileID)
	if err != nil {
		return err
	}
	if err := s.media.RemoveNamed(ctx, domain.ProfilePhotoDirectory(kind), strconv.FormatInt(profileID, 10)); err != nil {
		return err
	}
	switch kind {
	case KindProfile:
		p.ProfilePhotoPath = ""
	case KindCover:
		p.CoverPhotoPath = ""
	}
	return s.profiles.Update(ctx, p)
}

// Delete removes the profile's photos, its gallery media and the row.
// Missing photos are fine on deletion.
func (s *Service) Delete(ctx context.Context, profileID int64) error {
	p, err := s.Get(ctx, profileID)
	if err != nil {
		return err
	}
	for _, kind := range []string{KindProfile, KindCover} {
		err := s.media.RemoveNamed(ctx, domain.ProfilePhotoDirectory(kind), strconv.FormatInt(profileID, 10))
		if err != nil && err != domerrors.ErrFileNotFound {
			return err
		}
	}
	if err := s.media.DeleteDirectory(ctx, domain.GalleryDirectory(profileID)); err != nil {
		return err
	}
	if g, err := s.galleries.GetByProfileID(ctx, profileID); err != nil {
		return err
	} else if g != nil {
		if err := s.galleries.Delete(ctx, profileID); err != nil {
			return err
		}
	}
	return s.profiles.Delete(ctx, p.ID)
}

// Gallery returns the profile's gallery.
func (s *Service) Gallery(ctx context.Context, profileID int64) (*domain.Gallery, error) {
	g, err := s.galleries.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domerrors.ErrNotFound
	}
	return g, nil
}

func (s *Service) CreateGallery(ctx context.Context, profileID int64) (*domain.Gallery, error) {
	g := &domain.Gallery{ProfileID: profileID}
	if err := s.galleries.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// AddGalleryPhotos appends the uploads to the gallery's PhotoSet. The
// stored list is committed only after every file landed.
func (s *Service) AddGalleryPhotos(ctx context.Context, profileID int64, uploads []ports.Upload) (domain.PhotoSet, error) {
	g, err := s.Gallery(ctx, profileID)
	if err != nil {
		return nil, err
	}
	added, err := s.media.AddSet(ctx, domain.GalleryDirectory(profileID), uploads)
	if err != nil {
		return nil, err
	}
	set := append(append(domain.PhotoSet(nil), g.PhotosPath...), added...)
	if err := s.galleries.UpdatePhotos(ctx, profileID, set); err != nil {
		return nil, err
	}
	return set, nil
}

// DeleteGalleryPhoto removes one file by name and rewrites the path list.
// A name absent from disk still drops out of the stored list, so the set
// and the directory converge.
func (s *Service) DeleteGalleryPhoto(ctx context.Context, profileID int64, name string) (domain.PhotoSet, error) {
	g, err := s.Gallery(ctx, profileID)
	if err != nil {
		return nil, err
	}
	var set domain.PhotoSet
	for _, p := range g.PhotosPath {
		if path.Base(p) == name {
			if err := s.media.RemoveImage(ctx, p); err != nil && err != domerrors.ErrFileNotFound {
				return nil, err
			}
			continue
		}
		set = append(set, p)
	}
	if err := s.galleries.UpdatePhotos(ctx, profileID, set); err != nil {
		return nil, err
	}
	return set, nil
}
