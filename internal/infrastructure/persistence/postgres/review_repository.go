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
	insertReviewSQL = `INSERT INTO review (title, text, date, calification, image_path, user_id, tourist_destination_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	selectReviewByIDSQL = `SELECT id, title, text, date, calification, image_path, user_id, tourist_destination_id
		FROM review WHERE id = $1`
	selectReviewByDestUserSQL = `SELECT id, title, text, date, calification, image_path, user_id, tourist_destination_id
		FROM review WHERE tourist_destination_id = $1 AND user_id = $2`
	selectReviewsByDestSQL = `SELECT id, title, text, date, calification, image_path, user_id, tourist_destination_id
		FROM review WHERE tourist_destination_id = $1 ORDER BY date DESC`
	updateReviewSQL = `UPDATE review SET title = $1, text = $2, date = $3, calification = $4, image_path = $5 WHERE id = $6`
	deleteReviewSQL = `DELETE FROM review WHERE id = $1`
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.pool.QueryRow(ctx, insertReviewSQL,
		review.Title, review.Text, review.Date, review.Calification,
		review.ImagePath, review.UserID, review.TouristDestinationID).Scan(&review.ID)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectReviewByIDSQL, id))
}

func (r *ReviewRepository) GetByDestinationAndUser(ctx context.Context, destinationID, userID int64) (*domain.Review, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectReviewByDestUserSQL, destinationID, userID))
}

func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID int64) ([]*domain.Review, error) {
	rows, err := r.pool.Query(ctx, selectReviewsByDestSQL, destinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Title, &rv.Text, &rv.Date, &rv.Calification,
			&rv.ImagePath, &rv.UserID, &rv.TouristDestinationID); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	_, err := r.pool.Exec(ctx, updateReviewSQL,
		review.Title, review.Text, review.Date, review.Calification, review.ImagePath, review.ID)
	return err
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, deleteReviewSQL, id)
	return err
}

func (r *ReviewRepository) scanOne(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.Title, &rv.Text, &rv.Date, &rv.Calification,
		&rv.ImagePath, &rv.UserID, &rv.TouristDestinationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rv, nil
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
