package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
)

type donorRepository struct {
	db *sql.DB
}

func NewDonorRepository(db *sql.DB) repository.DonorRepository {
	return &donorRepository{db: db}
}

const donorColumns = `id, username, email, phone, password_hash, role, created_on, updated_on`

func scanDonor(row *sql.Row) (*domain.Donor, error) {
	d := &domain.Donor{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&d.ID, &d.Username, &d.Email, &d.Phone, &d.PasswordHash, &d.Role, &createdOn, &updatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	d.CreatedOn = createdOn.Format(dateFormat)
	d.UpdatedOn = updatedOn.Format(dateFormat)
	return d, nil
}

func (r *donorRepository) Create(ctx context.Context, d *domain.Donor) error {
	query := `INSERT INTO donors (username, email, phone, password_hash, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format(dateFormat)
	d.CreatedOn = now
	d.UpdatedOn = now
	if d.Role == "" {
		d.Role = domain.RoleDonor
	}
	logger.DatabaseCall("donors.insert", query, "username", d.Username)
	err := r.db.QueryRowContext(ctx, query, d.Username, d.Email, d.Phone, d.PasswordHash, d.Role, d.CreatedOn, d.UpdatedOn).Scan(&d.ID)
	if err != nil {
		logger.DatabaseResult("donors.insert", 0, err)
		return mapError(err)
	}
	logger.DatabaseResult("donors.insert", 1, nil)
	return nil
}

func (r *donorRepository) GetByID(ctx context.Context, id int32) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE id = $1`
	return scanDonor(r.db.QueryRowContext(ctx, query, id))
}

func (r *donorRepository) GetByUsername(ctx context.Context, username string) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE username = $1`
	return scanDonor(r.db.QueryRowContext(ctx, query, username))
}

func (r *donorRepository) GetByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE LOWER(email) = LOWER($1)`
	return scanDonor(r.db.QueryRowContext(ctx, query, email))
}

func (r *donorRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Donor, error) {
	// Either field colliding alone is a hit; registration rejects on any.
	query := `SELECT ` + donorColumns + ` FROM donors WHERE username = $1 OR LOWER(email) = LOWER($2) LIMIT 1`
	return scanDonor(r.db.QueryRowContext(ctx, query, username, email))
}

func (r *donorRepository) UpdateProfile(ctx context.Context, id int32, patch domain.DonorPatch) error {
	var sets []string
	var args []interface{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if len(sets) == 0 {
		return nil
	}
	add("updated_on", time.Now().Format(dateFormat))
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE donors SET %s WHERE id=$%d`, strings.Join(sets, ", "), len(args))
	_, err := r.db.ExecContext(ctx, query, args...)
	return mapError(err)
}

func (r *donorRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	query := `UPDATE donors SET password_hash=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, passwordHash, time.Now().Format(dateFormat), id)
	return mapError(err)
}

func (r *donorRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM donors WHERE id=$1`
	logger.DatabaseCall("donors.delete", query, "id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("donors.delete", 0, err)
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	logger.DatabaseResult("donors.delete", n, nil)
	return nil
}
