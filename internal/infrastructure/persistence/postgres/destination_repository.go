package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

const destinationColumns = `id, name, description, schedule, fare, contact, recommendation, difficulty,
	latitude, longitude, hikes, photos_path, is_beach, is_forest, is_volcano, is_mountain,
	start_season, end_season, conservation_area_id`

const (
	insertDestinationSQL = `INSERT INTO tourist_destination
		(name, description, schedule, fare, contact, recommendation, difficulty,
		 latitude, longitude, hikes, photos_path, is_beach, is_forest, is_volcano, is_mountain,
		 start_season, end_season, conservation_area_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`
	selectDestinationByIDSQL = `SELECT ` + destinationColumns + ` FROM tourist_destination WHERE id = $1`
	selectAllDestinationsSQL = `SELECT ` + destinationColumns + ` FROM tourist_destination ORDER BY id`
	selectByCategorySQL      = `SELECT ` + destinationColumns + ` FROM tourist_destination
		WHERE ($1 = false OR is_beach) AND ($2 = false OR is_forest)
		  AND ($3 = false OR is_volcano) AND ($4 = false OR is_mountain)
		ORDER BY id LIMIT $5`
	updateDestinationSQL = `UPDATE tourist_destination SET
		name = $1, description = $2, schedule = $3, fare = $4, contact = $5, recommendation = $6,
		difficulty = $7, latitude = $8, longitude = $9, hikes = $10,
		is_beach = $11, is_forest = $12, is_volcano = $13, is_mountain = $14,
		start_season = $15, end_season = $16, conservation_area_id = $17
		WHERE id = $18`
	updateDestinationPhotosSQL = `UPDATE tourist_destination SET photos_path = $1 WHERE id = $2`
	deleteDestinationSQL       = `DELETE FROM tourist_destination WHERE id = $1`
)

type DestinationRepository struct {
	pool *pgxpool.Pool
}

func NewDestinationRepository(pool *pgxpool.Pool) *DestinationRepository {
	return &DestinationRepository{pool: pool}
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.TouristDestination) error {
	return r.pool.QueryRow(ctx, insertDestinationSQL,
		d.Name, d.Description, d.Schedule, d.Fare, d.Contact, d.Recommendation, d.Difficulty,
		d.Latitude, d.Longitude, d.Hikes, d.PhotosPath.String(),
		d.IsBeach, d.IsForest, d.IsVolcano, d.IsMountain,
		d.StartSeason, d.EndSeason, d.ConservationAreaID).Scan(&d.ID)
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.TouristDestination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, selectDestinationByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]*domain.TouristDestination, error) {
	return r.queryMany(ctx, selectAllDestinationsSQL)
}

func (r *DestinationRepository) ListByCategory(ctx context.Context, beach, forest, volcano, mountain bool, limit int) ([]*domain.TouristDestination, error) {
	return r.queryMany(ctx, selectByCategorySQL, beach, forest, volcano, mountain, limit)
}

func (r *DestinationRepository) Update(ctx context.Context, d *domain.TouristDestination) error {
	_, err := r.pool.Exec(ctx, updateDestinationSQL,
		d.Name, d.Description, d.Schedule, d.Fare, d.Contact, d.Recommendation, d.Difficulty,
		d.Latitude, d.Longitude, d.Hikes,
		d.IsBeach, d.IsForest, d.IsVolcano, d.IsMountain,
		d.StartSeason, d.EndSeason, d.ConservationAreaID, d.ID)
	return err
}

func (r *DestinationRepository) UpdatePhotos(ctx context.Context, id int64, photos domain.PhotoSet) error {
	_, err := r.pool.Exec(ctx, updateDestinationPhotosSQL, photos.String(), id)
	return err
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, deleteDestinationSQL, id)
	return err
}

func (r *DestinationRepository) queryMany(ctx context.Context, sql string, args ...any) ([]*domain.TouristDestination, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.TouristDestination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDestination(row pgx.Row) (*domain.TouristDestination, error) {
	var d domain.TouristDestination
	var photos string
	if err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Schedule, &d.Fare, &d.Contact,
		&d.Recommendation, &d.Difficulty, &d.Latitude, &d.Longitude, &d.Hikes, &photos,
		&d.IsBeach, &d.IsForest, &d.IsVolcano, &d.IsMountain,
		&d.StartSeason, &d.EndSeason, &d.ConservationAreaID); err != nil {
		return nil, err
	}
	d.PhotosPath = domain.ParsePhotoSet(photos)
	return &d, nil
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
