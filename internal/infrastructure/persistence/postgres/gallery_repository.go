package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

const (
	insertGallerySQL       = `INSERT INTO gallery (photos_path, profile_id) VALUES ($1, $2)`
	selectGalleryByProfile = `SELECT profile_id, photos_path FROM gallery WHERE profile_id = $1`
	updateGalleryPhotosSQL = `UPDATE gallery SET photos_path = $1 WHERE profile_id = $2`
	deleteGallerySQL       = `DELETE FROM gallery WHERE profile_id = $1`
)

type GalleryRepository struct {
	pool *pgxpool.Pool
}

func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{pool: pool}
}

func (r *GalleryRepository) Create(ctx context.Context, g *domain.Gallery) error {
	_, err := r.pool.Exec(ctx, insertGallerySQL, g.PhotosPath.String(), g.ProfileID)
	return err
}

func (r *GalleryRepository) GetByProfileID(ctx context.Context, profileID int64) (*domain.Gallery, error) {
	var g domain.Gallery
	var photos string
	err := r.pool.QueryRow(ctx, selectGalleryByProfile, profileID).Scan(&g.ProfileID, &photos)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	g.PhotosPath = domain.ParsePhotoSet(photos)
	return &g, nil
}

func (r *GalleryRepository) UpdatePhotos(ctx context.Context, profileID int64, photos domain.PhotoSet) error {
	_, err := r.pool.Exec(ctx, updateGalleryPhotosSQL, photos.String(), profileID)
	return err
}

func (r *GalleryRepository) Delete(ctx context.Context, profileID int64) error {
	_, err := r.pool.Exec(ctx, deleteGallerySQL, profileID)
	return err
}

var _ ports.GalleryRepository = (*GalleryRepository)(nil)
