package jobs

import (
	"context"
	"time"

	"secondserve-backend/internal/logger"
)

const jobTimeout = 5 * time.Minute

// PurgeExpiredSessions deletes sessions whose expiry has passed. Expired
// sessions are already refused at resolve time; this just keeps the
// table from growing without bound.
func (jr *JobRunner) PurgeExpiredSessions() {
	jr.runWithRecovery("PurgeExpiredSessions", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := jr.store.SessionRepository.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to purge expired sessions", "error", err)
			return
		}
		logger.Info("Purged expired sessions", "deleted", n)
	})
}

// SendPickupReminders emails every donor with an accepted donation
// scheduled for pickup tomorrow.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		donations, err := jr.store.DonationRepository.ListAcceptedForDate(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list donations for reminders", "date", tomorrow, "error", err)
			return
		}

		sent := 0
		for _, d := range donations {
			donor, err := jr.store.DonorRepository.GetByID(ctx, d.DonorID)
			if err != nil {
				logger.Warn("Skipping reminder, donor lookup failed", "donation_id", d.ID, "donor_id", d.DonorID, "error", err)
				continue
			}
			err = jr.email.SendPickupReminder(ctx, donor.Email, donor.Username, d.FoodType, d.PickupDate, d.PickupTime)
			if err != nil {
				logger.Warn("Failed to send pickup reminder", "donation_id", d.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Pickup reminders sent", "date", tomorrow, "count", sent, "total", len(donations))
	})
}
