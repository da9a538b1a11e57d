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
	insertAreaSQL = `INSERT INTO conservation_area (name, description, photos_path, region_path)
		VALUES ($1, $2, $3, $4) RETURNING id`
	selectAreaByIDSQL   = `SELECT id, name, description, photos_path, region_path FROM conservation_area WHERE id = $1`
	selectAllAreasSQL   = `SELECT id, name, description, photos_path, region_path FROM conservation_area ORDER BY id`
	updateAreaSQL       = `UPDATE conservation_area SET name = $1, description = $2 WHERE id = $3`
	updateAreaPhotosSQL = `UPDATE conservation_area SET photos_path = $1, region_path = $2 WHERE id = $3`
	deleteAreaSQL       = `DELETE FROM conservation_area WHERE id = $1`
)

type AreaRepository struct {
	pool *pgxpool.Pool
}

func NewAreaRepository(pool *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{pool: pool}
}

func (r *AreaRepository) Create(ctx context.Context, area *domain.ConservationArea) error {
	return r.pool.QueryRow(ctx, insertAreaSQL,
		area.Name, area.Description, area.PhotosPath.String(), area.RegionPath).Scan(&area.ID)
}

func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*domain.ConservationArea, error) {
	area, err := scanArea(r.pool.QueryRow(ctx, selectAreaByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return area, nil
}

func (r *AreaRepository) List(ctx context.Context) ([]*domain.ConservationArea, error) {
	rows, err := r.pool.Query(ctx, selectAllAreasSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []*domain.ConservationArea
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, rows.Err()
}

func (r *AreaRepository) Update(ctx context.Context, area *domain.ConservationArea) error {
	_, err := r.pool.Exec(ctx, updateAreaSQL, area.Name, area.Description, area.ID)
	return err
}

func (r *AreaRepository) UpdatePhotos(ctx context.Context, id int64, photos domain.PhotoSet, regionPath string) error {
	_, err := r.pool.Exec(ctx, updateAreaPhotosSQL, photos.String(), regionPath, id)
	return err
}

func (r *AreaRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, deleteAreaSQL, id)
	return err
}

func scanArea(row pgx.Row) (*domain.ConservationArea, error) {
	var area domain.ConservationArea
	var photos string
	if err := row.Scan(&area.ID, &area.Name, &area.Description, &photos, &area.RegionPath); err != nil {
		return nil, err
	}
	area.PhotosPath = domain.ParsePhotoSet(photos)
	return &area, nil
}

var _ ports.ConservationAreaRepository = (*AreaRepository)(nil)
