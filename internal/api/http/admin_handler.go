package http

import (
	"context"
	"errors"
	"net/http"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/service"
)

type AdminHandler struct {
	admin  service.AdminService
	render *Renderer
}

func NewAdminHandler(admin service.AdminService, render *Renderer) *AdminHandler {
	return &AdminHandler{admin: admin, render: render}
}

// Dashboard shows every organization with its verification status.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.admin.ListOrganizations(r.Context())
	if err != nil {
		logger.Error("Failed to list organizations", "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "admin_dashboard.html", map[string]interface{}{
		"Organizations": orgs,
	})
}

func (h *AdminHandler) Pending(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.OrgStatusPending, "admin_pending.html")
}

func (h *AdminHandler) Verified(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.OrgStatusVerified, "admin_verified.html")
}

func (h *AdminHandler) Rejected(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.OrgStatusRejected, "admin_rejected.html")
}

func (h *AdminHandler) listByStatus(w http.ResponseWriter, r *http.Request, status domain.OrgStatus, view string) {
	orgs, err := h.admin.ListOrganizationsByStatus(r.Context(), status)
	if err != nil {
		logger.Error("Failed to list organizations", "status", status, "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, view, map[string]interface{}{
		"Organizations": orgs,
	})
}

// Verify approves a pending or previously rejected organization.
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.admin.Verify, "Organization verified!", "/admin/pending")
}

// Reject turns down a pending organization.
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.admin.Reject, "Organization rejected.", "/admin/pending")
}

// Revoke withdraws an earlier approval; the organization goes back to
// rejected and drops out of the verified directory.
func (h *AdminHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.admin.Reject, "Verification revoked.", "/admin/verified")
}

func (h *AdminHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, orgID int32) (*domain.Organization, error),
	successMsg, backTo string,
) {
	orgID, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	_, err = apply(r.Context(), orgID)
	switch {
	case err == nil:
		FlashSuccess(w, successMsg)
	case errors.Is(err, service.ErrInvalidTransition):
		FlashError(w, "This organization cannot be decided on yet")
	case errors.Is(err, service.ErrConflictingTransition):
		FlashError(w, "This organization was just updated by someone else. Please refresh.")
	default:
		logger.Error("Failed to update organization status", "organization_id", orgID, "error", err)
		FlashError(w, "Something went wrong. Please try again.")
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}
