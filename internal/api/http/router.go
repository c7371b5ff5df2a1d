package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"secondserve-backend/internal/domain"
)

type Handlers struct {
	Auth         *AuthHandler
	Donor        *DonorHandler
	Donation     *DonationHandler
	Organization *OrganizationHandler
	Admin        *AdminHandler
	Media        *MediaHandler
}

// NewRouter wires the route surface. Public pages only attach the
// principal when one exists; the /donor, /organization and /admin
// subtrees each sit behind the login gate plus their role gate.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	// Public pages.
	public := r.NewRoute().Subrouter()
	public.Use(auth.Attach)
	public.HandleFunc("/", h.Auth.Root).Methods(http.MethodGet)
	public.HandleFunc("/login", h.Auth.ShowLogin).Methods(http.MethodGet)
	public.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	public.HandleFunc("/signup/donor", h.Auth.ShowDonorSignup).Methods(http.MethodGet)
	public.HandleFunc("/signup/donor", h.Auth.DonorSignup).Methods(http.MethodPost)
	public.HandleFunc("/signup/organization", h.Auth.ShowOrganizationSignup).Methods(http.MethodGet)
	public.HandleFunc("/signup/organization", h.Auth.OrganizationSignup).Methods(http.MethodPost)
	public.HandleFunc("/forgot", h.Auth.ShowForgotPassword).Methods(http.MethodGet)
	public.HandleFunc("/forgot", h.Auth.ForgotPassword).Methods(http.MethodPost)
	public.HandleFunc("/reset/{token}", h.Auth.ShowResetPassword).Methods(http.MethodGet)
	public.HandleFunc("/reset/{token}", h.Auth.ResetPassword).Methods(http.MethodPost)
	public.HandleFunc("/media/{key}", h.Media.Serve).Methods(http.MethodGet)

	// Donor pages. Admins browse them too.
	donor := r.PathPrefix("/donor").Subrouter()
	donor.Use(auth.RequireLogin, auth.RequireRole(domain.RoleDonor, domain.RoleAdmin))
	donor.HandleFunc("/index", h.Donor.Index).Methods(http.MethodGet)
	donor.HandleFunc("/donations", h.Donor.Donations).Methods(http.MethodGet)
	donor.HandleFunc("/profile", h.Donor.ShowProfile).Methods(http.MethodGet)
	donor.HandleFunc("/profile", h.Donor.UpdateProfile).Methods(http.MethodPost)
	donor.HandleFunc("/profile/delete", h.Donor.DeleteAccount).Methods(http.MethodPost)

	// Donor-facing organization pages and the donation form live outside
	// the /organization prefix so they do not hit the organization gate.
	donorOrgs := r.PathPrefix("/organizations").Subrouter()
	donorOrgs.Use(auth.RequireLogin, auth.RequireRole(domain.RoleDonor, domain.RoleAdmin))
	donorOrgs.HandleFunc("/{id:[0-9]+}", h.Donation.ShowOrganization).Methods(http.MethodGet)
	donorOrgs.HandleFunc("/{id:[0-9]+}/donate", h.Donation.Create).Methods(http.MethodPost)

	// Organization pages.
	org := r.PathPrefix("/organization").Subrouter()
	org.Use(auth.RequireLogin, auth.RequireRole(domain.RoleOrganization))
	org.HandleFunc("/dashboard", h.Organization.Dashboard).Methods(http.MethodGet)
	org.HandleFunc("/verify", h.Organization.ShowVerificationForm).Methods(http.MethodGet)
	org.HandleFunc("/verify", h.Organization.SubmitVerification).Methods(http.MethodPost)
	org.HandleFunc("/profile", h.Organization.ShowProfile).Methods(http.MethodGet)
	org.HandleFunc("/profile", h.Organization.UpdateProfile).Methods(http.MethodPost)
	org.HandleFunc("/profile/delete", h.Organization.DeleteAccount).Methods(http.MethodPost)
	org.HandleFunc("/image", h.Media.UploadOrganizationImage).Methods(http.MethodPost)

	// Donation decisions, organization side.
	decisions := r.PathPrefix("/donations").Subrouter()
	decisions.Use(auth.RequireLogin, auth.RequireRole(domain.RoleOrganization))
	decisions.HandleFunc("/{id:[0-9]+}/accept", h.Donation.Accept).Methods(http.MethodPost)
	decisions.HandleFunc("/{id:[0-9]+}/reject", h.Donation.Reject).Methods(http.MethodPost)
	decisions.HandleFunc("/{id:[0-9]+}/received", h.Donation.MarkReceived).Methods(http.MethodPost)

	// Admin pages.
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireLogin, auth.RequireRole(domain.RoleAdmin))
	admin.HandleFunc("/dashboard", h.Admin.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/pending", h.Admin.Pending).Methods(http.MethodGet)
	admin.HandleFunc("/verified", h.Admin.Verified).Methods(http.MethodGet)
	admin.HandleFunc("/rejected", h.Admin.Rejected).Methods(http.MethodGet)
	admin.HandleFunc("/organizations/{id:[0-9]+}/verify", h.Admin.Verify).Methods(http.MethodPost)
	admin.HandleFunc("/organizations/{id:[0-9]+}/reject", h.Admin.Reject).Methods(http.MethodPost)
	admin.HandleFunc("/organizations/{id:[0-9]+}/revoke", h.Admin.Revoke).Methods(http.MethodPost)

	return r
}
