package postgres

import (
	"database/sql"
	"errors"

	"secondserve-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.DonorRepository
	repository.OrganizationRepository
	repository.DonationRepository
	repository.SessionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		DonorRepository:        NewDonorRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		DonationRepository:     NewDonationRepository(db),
		SessionRepository:      NewSessionRepository(db),
	}
}

// mapError translates driver errors into repository sentinels so the
// service layer never has to know about lib/pq.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}

const dateFormat = "2006-01-02"
