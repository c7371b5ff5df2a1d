package http

import (
	"errors"
	"net/http"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/service"
)

type DonorHandler struct {
	donors    service.DonorService
	orgs      service.OrganizationService
	donations service.DonationService
	render    *Renderer
}

func NewDonorHandler(donors service.DonorService, orgs service.OrganizationService, donations service.DonationService, render *Renderer) *DonorHandler {
	return &DonorHandler{donors: donors, orgs: orgs, donations: donations, render: render}
}

// Index is the donor landing page: the organization directory.
func (h *DonorHandler) Index(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgs.List(r.Context())
	if err != nil {
		logger.Error("Failed to list organizations", "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "donor_index.html", map[string]interface{}{
		"Organizations": orgs,
	})
}

// Donations lists the donor's own pickup requests.
func (h *DonorHandler) Donations(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	donations, err := h.donations.ListByDonor(r.Context(), p.PrincipalID())
	if err != nil {
		logger.Error("Failed to list donations", "donor_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/donor/index", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "donor_donations.html", map[string]interface{}{
		"Donations": donations,
	})
}

func (h *DonorHandler) ShowProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	donor, err := h.donors.Get(r.Context(), p.PrincipalID())
	if err != nil {
		logger.Error("Failed to load donor profile", "donor_id", p.PrincipalID(), "error", err)
		http.Redirect(w, r, "/donor/index", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "donor_profile.html", map[string]interface{}{
		"Donor": donor,
	})
}

func (h *DonorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())

	patch := domain.DonorPatch{}
	if v := r.FormValue("username"); v != "" {
		patch.Username = &v
	}
	if v := r.FormValue("email"); v != "" {
		patch.Email = &v
	}
	if v := r.FormValue("phone"); v != "" {
		patch.Phone = &v
	}

	if err := h.donors.UpdateProfile(r.Context(), p.PrincipalID(), patch); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			FlashError(w, "Please fill in all fields correctly")
		case errors.Is(err, service.ErrDuplicateCredential):
			FlashError(w, "That username or email is already taken")
		default:
			logger.Error("Failed to update donor profile", "donor_id", p.PrincipalID(), "error", err)
			FlashError(w, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/donor/profile", http.StatusSeeOther)
		return
	}
	FlashSuccess(w, "Profile updated!")
	http.Redirect(w, r, "/donor/profile", http.StatusSeeOther)
}

func (h *DonorHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	if err := h.donors.Delete(r.Context(), p.PrincipalID()); err != nil {
		logger.Error("Failed to delete donor account", "donor_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/donor/profile", http.StatusSeeOther)
		return
	}
	clearSessionCookie(w)
	FlashSuccess(w, "Your account has been deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
