package domain

type DonationStatus string

const (
	DonationStatusPending  DonationStatus = "pending"
	DonationStatusAccepted DonationStatus = "accepted"
	DonationStatusRejected DonationStatus = "rejected"
	DonationStatusReceived DonationStatus = "received"
)

// Donation is a pickup request a donor files against an organization.
// Everything but status is immutable after creation; status moves through
// pending -> accepted -> received, or pending -> rejected.
type Donation struct {
	ID             int32          `json:"id"`
	DonorID        int32          `json:"donor_id"`
	OrganizationID int32          `json:"organization_id"`
	FoodType       string         `json:"food_type"`
	PickupAddress  string         `json:"pickup_address"`
	PickupDate     string         `json:"pickup_date"` // YYYY-MM-DD
	PickupTime     string         `json:"pickup_time"`
	DonorPhone     string         `json:"donor_phone"`
	Status         DonationStatus `json:"status"`
	CreatedOn      string         `json:"created_on"`

	// DonorUsername and OrganizationUsername are joined in for list
	// views; they are not authoritative donation data.
	DonorUsername        string `json:"donor_username,omitempty"`
	OrganizationUsername string `json:"organization_username,omitempty"`
}

// CanTransitionTo reports whether the donation state machine defines an
// edge from s to target. rejected and received are terminal.
func (s DonationStatus) CanTransitionTo(target DonationStatus) bool {
	switch s {
	case DonationStatusPending:
		return target == DonationStatusAccepted || target == DonationStatusRejected
	case DonationStatusAccepted:
		return target == DonationStatusReceived
	default:
		return false
	}
}
