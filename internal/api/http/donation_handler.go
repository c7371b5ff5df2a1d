package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/service"
)

type DonationHandler struct {
	donations service.DonationService
	orgs      service.OrganizationService
	render    *Renderer
}

func NewDonationHandler(donations service.DonationService, orgs service.OrganizationService, render *Renderer) *DonationHandler {
	return &DonationHandler{donations: donations, orgs: orgs, render: render}
}

// ShowOrganization is the donor-facing organization page with the
// donation form.
func (h *DonationHandler) ShowOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	org, err := h.orgs.Get(r.Context(), id)
	if err != nil {
		FlashError(w, "Organization not found")
		http.Redirect(w, r, "/donor/index", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "organization_show.html", map[string]interface{}{
		"Organization": org,
	})
}

// Create files a new pickup request. The donor identity comes from the
// session, never from the form.
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	orgID, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	d := &domain.Donation{
		OrganizationID: orgID,
		FoodType:       r.FormValue("food_type"),
		PickupAddress:  r.FormValue("pickup_address"),
		PickupDate:     r.FormValue("pickup_date"),
		PickupTime:     r.FormValue("pickup_time"),
		DonorPhone:     r.FormValue("donor_phone"),
	}

	if err := h.donations.Create(r.Context(), p.PrincipalID(), d); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			FlashError(w, "Please fill in all donation fields")
			http.Redirect(w, r, "/organizations/"+strconv.Itoa(int(orgID)), http.StatusSeeOther)
		default:
			logger.Error("Failed to create donation", "donor_id", p.PrincipalID(), "organization_id", orgID, "error", err)
			FlashError(w, "Something went wrong. Please try again.")
			http.Redirect(w, r, "/donor/index", http.StatusSeeOther)
		}
		return
	}
	FlashSuccess(w, "Donation request submitted!")
	http.Redirect(w, r, "/donor/donations", http.StatusSeeOther)
}

// Accept, Reject and MarkReceived are the organization's decisions on a
// pending request. All three funnel through decide for the shared error
// handling.

func (h *DonationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.donations.Accept, "Donation accepted!")
}

func (h *DonationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.donations.Reject, "Donation rejected.")
}

func (h *DonationHandler) MarkReceived(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.donations.MarkReceived, "Donation marked as received!")
}

func (h *DonationHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, orgID, donationID int32) (*domain.Donation, error),
	successMsg string,
) {
	p, _ := PrincipalFrom(r.Context())
	donationID, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	_, err = apply(r.Context(), p.PrincipalID(), donationID)
	switch {
	case err == nil:
		FlashSuccess(w, successMsg)
	case errors.Is(err, service.ErrUnauthorized):
		FlashError(w, "You cannot act on this donation")
	case errors.Is(err, service.ErrInvalidTransition):
		FlashError(w, "This donation can no longer be updated")
	case errors.Is(err, service.ErrConflictingTransition):
		FlashError(w, "This donation was just updated by someone else. Please refresh.")
	default:
		logger.Error("Failed to update donation", "donation_id", donationID, "error", err)
		FlashError(w, "Something went wrong. Please try again.")
	}
	http.Redirect(w, r, "/organization/dashboard", http.StatusSeeOther)
}

func pathID(r *http.Request, key string) (int32, error) {
	n, err := strconv.ParseInt(mux.Vars(r)[key], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
