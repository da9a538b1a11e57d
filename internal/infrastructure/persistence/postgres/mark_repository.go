package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

// Mark tables share one shape: (id, user_id, tourist_destination_id).
const (
	FavoriteTable = "favorite_destination"
	VisitedTable  = "visited_destination"
)

const qualifiedDestinationColumns = `td.id, td.name, td.description, td.schedule, td.fare, td.contact,
	td.recommendation, td.difficulty, td.latitude, td.longitude, td.hikes, td.photos_path,
	td.is_beach, td.is_forest, td.is_volcano, td.is_mountain,
	td.start_season, td.end_season, td.conservation_area_id`

// MarkRepository implements ports.MarkRepository over one mark table.
type MarkRepository struct {
	pool      *pgxpool.Pool
	insertSQL string
	deleteSQL string
	listSQL   string
}

func NewMarkRepository(pool *pgxpool.Pool, table string) *MarkRepository {
	return &MarkRepository{
		pool: pool,
		insertSQL: fmt.Sprintf(
			`INSERT INTO %s (user_id, tourist_destination_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table),
		deleteSQL: fmt.Sprintf(
			`DELETE FROM %s WHERE user_id = $1 AND tourist_destination_id = $2`, table),
		listSQL: fmt.Sprintf(
			`SELECT `+qualifiedDestinationColumns+` FROM tourist_destination td
			 JOIN %s m ON m.tourist_destination_id = td.id
			 WHERE m.user_id = $1 ORDER BY td.id`, table),
	}
}

func (r *MarkRepository) Add(ctx context.Context, userID, destinationID int64) error {
	_, err := r.pool.Exec(ctx, r.insertSQL, userID, destinationID)
	return err
}

func (r *MarkRepository) Remove(ctx context.Context, userID, destinationID int64) error {
	_, err := r.pool.Exec(ctx, r.deleteSQL, userID, destinationID)
	return err
}

func (r *MarkRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.TouristDestination, error) {
	rows, err := r.pool.Query(ctx, r.listSQL, userID)
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

var _ ports.MarkRepository = (*MarkRepository)(nil)
