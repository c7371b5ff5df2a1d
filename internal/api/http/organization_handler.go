package http

import (
	"errors"
	"net/http"
	"strconv"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/service"
)

type OrganizationHandler struct {
	orgs      service.OrganizationService
	donations service.DonationService
	render    *Renderer
}

func NewOrganizationHandler(orgs service.OrganizationService, donations service.DonationService, render *Renderer) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs, donations: donations, render: render}
}

// Dashboard shows the organization its incoming pickup requests and its
// current verification status.
func (h *OrganizationHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())

	org, err := h.orgs.Get(r.Context(), p.PrincipalID())
	if err != nil {
		logger.Error("Failed to load organization", "organization_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	donations, err := h.donations.ListByOrganization(r.Context(), p.PrincipalID())
	if err != nil {
		logger.Error("Failed to list donations", "organization_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.render.Render(w, r, "organization_dashboard.html", map[string]interface{}{
		"Organization": org,
		"Donations":    donations,
	})
}

func (h *OrganizationHandler) ShowVerificationForm(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	org, err := h.orgs.Get(r.Context(), p.PrincipalID())
	if err != nil {
		logger.Error("Failed to load organization", "organization_id", p.PrincipalID(), "error", err)
		http.Redirect(w, r, "/organization/dashboard", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "organization_verify.html", map[string]interface{}{
		"Organization": org,
	})
}

// SubmitVerification takes the vetting details and queues the
// organization for admin review. Resubmitting always lands the record
// back in pending, whatever was decided before.
func (h *OrganizationHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())

	patch := orgPatchFromForm(r)
	if err := h.orgs.SubmitVerification(r.Context(), p.PrincipalID(), patch); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			FlashError(w, "Please fill in all verification fields correctly")
		default:
			logger.Error("Failed to submit verification", "organization_id", p.PrincipalID(), "error", err)
			FlashError(w, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/organization/verify", http.StatusSeeOther)
		return
	}
	FlashSuccess(w, "Verification details submitted! An admin will review them shortly.")
	http.Redirect(w, r, "/organization/dashboard", http.StatusSeeOther)
}

func (h *OrganizationHandler) ShowProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	org, err := h.orgs.Get(r.Context(), p.PrincipalID())
	if err != nil {
		logger.Error("Failed to load organization profile", "organization_id", p.PrincipalID(), "error", err)
		http.Redirect(w, r, "/organization/dashboard", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "organization_profile.html", map[string]interface{}{
		"Organization": org,
	})
}

func (h *OrganizationHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())

	patch := orgPatchFromForm(r)
	if err := h.orgs.UpdateProfile(r.Context(), p.PrincipalID(), patch); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			FlashError(w, "Please fill in all fields correctly")
		case errors.Is(err, service.ErrDuplicateCredential):
			FlashError(w, "That username or email is already taken")
		default:
			logger.Error("Failed to update organization profile", "organization_id", p.PrincipalID(), "error", err)
			FlashError(w, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
		return
	}
	FlashSuccess(w, "Profile updated!")
	http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
}

func (h *OrganizationHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	if err := h.orgs.Delete(r.Context(), p.PrincipalID()); err != nil {
		logger.Error("Failed to delete organization account", "organization_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
		return
	}
	clearSessionCookie(w)
	FlashSuccess(w, "Your account has been deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func orgPatchFromForm(r *http.Request) domain.OrganizationPatch {
	patch := domain.OrganizationPatch{}
	if v := r.FormValue("username"); v != "" {
		patch.Username = &v
	}
	if v := r.FormValue("email"); v != "" {
		patch.Email = &v
	}
	if v := r.FormValue("phone"); v != "" {
		patch.Phone = &v
	}
	if v := r.FormValue("description"); v != "" {
		patch.Description = &v
	}
	if v := r.FormValue("address"); v != "" {
		patch.Address = &v
	}
	if v := r.FormValue("location"); v != "" {
		patch.Location = &v
	}
	if v := r.FormValue("children_count"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			count := int32(n)
			patch.ChildrenCount = &count
		}
	}
	return patch
}
