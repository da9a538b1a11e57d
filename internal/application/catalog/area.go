// Package catalog implements the workflows around conservation areas,
// tourist destinations, reviews and the favorite/visited marks. Photo
// batches go through the media store first; the database row is committed
// only after every file operation succeeded, so a row never points at
// files that were not written.
package catalog

import (
	"context"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

// AreaService manages conservation areas and their photo sets.
type AreaService struct {
	areas ports.ConservationAreaRepository
	media ports.MediaStore
}

func NewAreaService(areas ports.ConservationAreaRepository, media ports.MediaStore) *AreaService {
	return &AreaService{areas: areas, media: media}
}

func (s *AreaService) Create(ctx context.Context, area *domain.ConservationArea) error {
	return s.areas.Create(ctx, area)
}

func (s *AreaService) Get(ctx context.Context, id int64) (*domain.ConservationArea, error) {
	area, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domerrors.ErrNotFound
	}
	return area, nil
}

func (s *AreaService) List(ctx context.Context) ([]*domain.ConservationArea, error) {
	return s.areas.List(ctx)
}

func (s *AreaService) Update(ctx context.Context, area *domain.ConservationArea) error {
	if _, err := s.Get(ctx, area.ID); err != nil {
		return err
	}
	return s.areas.Update(ctx, area)
}

// AddPhotos stores the first photo batch for an area: the single region
// map plus the gallery photos.
func (s *AreaService) AddPhotos(ctx context.Context, id int64, photos []ports.Upload, region ports.Upload) (*domain.ConservationArea, error) {
	area, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dir := domain.AreaDirectory(area.ID)
	regionPath, err := s.media.AddImage(ctx, dir, region)
	if err != nil {
		return nil, err
	}
	set, err := s.media.AddSet(ctx, dir, photos)
	if err != nil {
		return nil, err
	}
	if err := s.areas.UpdatePhotos(ctx, area.ID, set, regionPath); err != nil {
		return nil, err
	}
	area.PhotosPath = set
	area.RegionPath = regionPath
	return area, nil
}

// UpdatePhotos reconciles the submitted batch against the stored set and
// applies replace-if-different semantics to the region map.
func (s *AreaService) UpdatePhotos(ctx context.Context, id int64, photos []ports.Upload, region ports.Upload) (*domain.ConservationArea, error) {
	area, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dir := domain.AreaDirectory(area.ID)
	regionPath, err := s.media.ReplaceSingle(ctx, dir, area.RegionPath, region)
	if err != nil {
		return nil, err
	}
	set, err := s.media.ReconcileSet(ctx, dir, area.PhotosPath, photos)
	if err != nil {
		return nil, err
	}
	if err := s.areas.UpdatePhotos(ctx, area.ID, set, regionPath); err != nil {
		return nil, err
	}
	area.PhotosPath = set
	area.RegionPath = regionPath
	return area, nil
}

// Delete removes the area's media directory and then the row.
func (s *AreaService) Delete(ctx context.Context, id int64) error {
	area, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.media.DeleteDirectory(ctx, domain.AreaDirectory(area.ID)); err != nil {
		return err
	}
	return s.areas.Delete(ctx, area.ID)
}
