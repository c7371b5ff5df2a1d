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

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

const orgColumns = `id, username, email, password_hash, phone, COALESCE(description, ''), COALESCE(image, ''), COALESCE(address, ''), location, children_count, status, created_on, updated_on`

type orgScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrganization(row orgScanner) (*domain.Organization, error) {
	o := &domain.Organization{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&o.ID, &o.Username, &o.Email, &o.PasswordHash, &o.Phone, &o.Description,
		&o.Image, &o.Address, &o.Location, &o.ChildrenCount, &o.Status, &createdOn, &updatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	o.CreatedOn = createdOn.Format(dateFormat)
	o.UpdatedOn = updatedOn.Format(dateFormat)
	return o, nil
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO organizations (username, email, password_hash, phone, description, image, address, location, children_count, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now().Format(dateFormat)
	o.CreatedOn = now
	o.UpdatedOn = now
	if o.Image == "" {
		o.Image = domain.DefaultOrgImage
	}
	if o.Location == "" {
		o.Location = domain.DefaultOrgLocation
	}
	if o.Status == "" {
		o.Status = domain.OrgStatusIncomplete
	}
	logger.DatabaseCall("organizations.insert", query, "username", o.Username)
	err := r.db.QueryRowContext(ctx, query, o.Username, o.Email, o.PasswordHash, o.Phone, o.Description,
		o.Image, o.Address, o.Location, o.ChildrenCount, o.Status, o.CreatedOn, o.UpdatedOn).Scan(&o.ID)
	if err != nil {
		logger.DatabaseResult("organizations.insert", 0, err)
		return mapError(err)
	}
	logger.DatabaseResult("organizations.insert", 1, nil)
	return nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`
	return scanOrganization(r.db.QueryRowContext(ctx, query, id))
}

func (r *organizationRepository) GetByUsername(ctx context.Context, username string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE username = $1`
	return scanOrganization(r.db.QueryRowContext(ctx, query, username))
}

func (r *organizationRepository) GetByEmail(ctx context.Context, email string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE LOWER(email) = LOWER($1)`
	return scanOrganization(r.db.QueryRowContext(ctx, query, email))
}

func (r *organizationRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE username = $1 OR LOWER(email) = LOWER($2) LIMIT 1`
	return scanOrganization(r.db.QueryRowContext(ctx, query, username, email))
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations ORDER BY username`
	return r.list(ctx, query)
}

func (r *organizationRepository) ListByStatus(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE status = $1 ORDER BY username`
	return r.list(ctx, query, status)
}

func (r *organizationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *o)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) UpdateProfile(ctx context.Context, id int32, patch domain.OrganizationPatch) error {
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
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.ChildrenCount != nil {
		add("children_count", *patch.ChildrenCount)
	}
	if len(sets) == 0 {
		return nil
	}
	add("updated_on", time.Now().Format(dateFormat))
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE organizations SET %s WHERE id=$%d`, strings.Join(sets, ", "), len(args))
	_, err := r.db.ExecContext(ctx, query, args...)
	return mapError(err)
}

func (r *organizationRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	query := `UPDATE organizations SET password_hash=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, passwordHash, time.Now().Format(dateFormat), id)
	return mapError(err)
}

func (r *organizationRepository) SetStatus(ctx context.Context, id int32, status domain.OrgStatus) error {
	query := `UPDATE organizations SET status=$1, updated_on=$2 WHERE id=$3`
	logger.DatabaseCall("organizations.set_status", query, "id", id, "status", status)
	res, err := r.db.ExecContext(ctx, query, status, time.Now().Format(dateFormat), id)
	if err != nil {
		logger.DatabaseResult("organizations.set_status", 0, err)
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	logger.DatabaseResult("organizations.set_status", n, nil)
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *organizationRepository) UpdateStatus(ctx context.Context, id int32, expected, target domain.OrgStatus) (bool, error) {
	query := `UPDATE organizations SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`
	logger.DatabaseCall("organizations.update_status", query, "id", id, "expected", expected, "target", target)
	res, err := r.db.ExecContext(ctx, query, target, time.Now().Format(dateFormat), id, expected)
	if err != nil {
		logger.DatabaseResult("organizations.update_status", 0, err)
		return false, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	logger.DatabaseResult("organizations.update_status", n, nil)
	return n > 0, nil
}

func (r *organizationRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM organizations WHERE id=$1`
	logger.DatabaseCall("organizations.delete", query, "id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("organizations.delete", 0, err)
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	logger.DatabaseResult("organizations.delete", n, nil)
	return nil
}
