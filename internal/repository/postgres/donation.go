package postgres

import (
	"context"
	"database/sql"
	"time"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
)

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, d *domain.Donation) error {
	// Status is always pending at creation; callers cannot choose it.
	query := `INSERT INTO donations (donor_id, organization_id, food_type, pickup_address, pickup_date, pickup_time, donor_phone, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	d.Status = domain.DonationStatusPending
	d.CreatedOn = time.Now().Format(dateFormat)
	logger.DatabaseCall("donations.insert", query, "donor_id", d.DonorID, "organization_id", d.OrganizationID)
	err := r.db.QueryRowContext(ctx, query, d.DonorID, d.OrganizationID, d.FoodType, d.PickupAddress,
		d.PickupDate, d.PickupTime, d.DonorPhone, d.Status, d.CreatedOn).Scan(&d.ID)
	if err != nil {
		logger.DatabaseResult("donations.insert", 0, err)
		return mapError(err)
	}
	logger.DatabaseResult("donations.insert", 1, nil)
	return nil
}

func (r *donationRepository) GetByID(ctx context.Context, id int32) (*domain.Donation, error) {
	d := &domain.Donation{}
	query := `SELECT id, donor_id, organization_id, food_type, pickup_address, pickup_date, pickup_time, donor_phone, status, created_on
	          FROM donations WHERE id = $1`
	var pickupDate, createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.DonorID, &d.OrganizationID, &d.FoodType,
		&d.PickupAddress, &pickupDate, &d.PickupTime, &d.DonorPhone, &d.Status, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	d.PickupDate = pickupDate.Format(dateFormat)
	d.CreatedOn = createdOn.Format(dateFormat)
	return d, nil
}

const donationListColumns = `d.id, d.donor_id, d.organization_id, d.food_type, d.pickup_address, d.pickup_date, d.pickup_time, d.donor_phone, d.status, d.created_on, dn.username, o.username
	          FROM donations d
	          JOIN donors dn ON d.donor_id = dn.id
	          JOIN organizations o ON d.organization_id = o.id`

func (r *donationRepository) ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error) {
	query := `SELECT ` + donationListColumns + ` WHERE d.donor_id = $1 ORDER BY d.id DESC`
	return r.list(ctx, query, donorID)
}

func (r *donationRepository) ListByOrganization(ctx context.Context, orgID int32) ([]domain.Donation, error) {
	query := `SELECT ` + donationListColumns + ` WHERE d.organization_id = $1 ORDER BY d.id DESC`
	return r.list(ctx, query, orgID)
}

func (r *donationRepository) ListAcceptedForDate(ctx context.Context, date string) ([]domain.Donation, error) {
	query := `SELECT ` + donationListColumns + ` WHERE d.status = 'accepted' AND d.pickup_date = $1 ORDER BY d.id`
	return r.list(ctx, query, date)
}

func (r *donationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		var pickupDate, createdOn time.Time
		if err := rows.Scan(&d.ID, &d.DonorID, &d.OrganizationID, &d.FoodType, &d.PickupAddress,
			&pickupDate, &d.PickupTime, &d.DonorPhone, &d.Status, &createdOn,
			&d.DonorUsername, &d.OrganizationUsername); err != nil {
			return nil, err
		}
		d.PickupDate = pickupDate.Format(dateFormat)
		d.CreatedOn = createdOn.Format(dateFormat)
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *donationRepository) UpdateStatus(ctx context.Context, id int32, expected, target domain.DonationStatus) (bool, error) {
	query := `UPDATE donations SET status=$1 WHERE id=$2 AND status=$3`
	logger.DatabaseCall("donations.update_status", query, "id", id, "expected", expected, "target", target)
	res, err := r.db.ExecContext(ctx, query, target, id, expected)
	if err != nil {
		logger.DatabaseResult("donations.update_status", 0, err)
		return false, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	logger.DatabaseResult("donations.update_status", n, nil)
	return n > 0, nil
}
