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
	insertProfileSQL = `INSERT INTO profile (name, phone, profile_photo_path, cover_photo_path, user_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	selectProfileByIDSQL   = `SELECT id, name, phone, profile_photo_path, cover_photo_path, user_id FROM profile WHERE id = $1`
	selectProfileByUserSQL = `SELECT id, name, phone, profile_photo_path, cover_photo_path, user_id FROM profile WHERE user_id = $1`
	selectAllProfilesSQL   = `SELECT id, name, phone, profile_photo_path, cover_photo_path, user_id FROM profile ORDER BY id`
	updateProfileSQL       = `UPDATE profile SET name = $1, phone = $2, profile_photo_path = $3, cover_photo_path = $4 WHERE id = $5`
	deleteProfileSQL       = `DELETE FROM profile WHERE id = $1`
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	return r.pool.QueryRow(ctx, insertProfileSQL,
		p.Name, p.Phone, photoPathColumn(p.ProfilePhotoPath), photoPathColumn(p.CoverPhotoPath), p.UserID).Scan(&p.ID)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectProfileByIDSQL, id))
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectProfileByUserSQL, userID))
}

func (r *ProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	rows, err := r.pool.Query(ctx, selectAllProfilesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	_, err := r.pool.Exec(ctx, updateProfileSQL,
		p.Name, p.Phone, photoPathColumn(p.ProfilePhotoPath), photoPathColumn(p.CoverPhotoPath), p.ID)
	return err
}

func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, deleteProfileSQL, id)
	return err
}

func (r *ProfileRepository) scanOne(row pgx.Row) (*domain.Profile, error) {
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var profilePath, coverPath string
	if err := row.Scan(&p.ID, &p.Name, &p.Phone, &profilePath, &coverPath, &p.UserID); err != nil {
		return nil, err
	}
	p.ProfilePhotoPath = normalizePhotoPath(profilePath)
	p.CoverPhotoPath = normalizePhotoPath(coverPath)
	return &p, nil
}

// Legacy rows use "/" for "no photo"; canonical is "". Written rows keep
// the legacy sentinel so existing mobile clients keep working.
func normalizePhotoPath(s string) string {
	if s == "/" {
		return ""
	}
	return s
}

func photoPathColumn(s string) string {
	if s == "" {
		return "/"
	}
	return s
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)
