package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/service"
)

type AuthHandler struct {
	auth     service.AuthService
	sessions service.SessionService
	render   *Renderer
}

func NewAuthHandler(auth service.AuthService, sessions service.SessionService, render *Renderer) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, render: render}
}

// landingPath maps a principal role to its dashboard.
func landingPath(p domain.Principal) string {
	switch p.PrincipalRole() {
	case domain.RoleAdmin:
		return "/admin/dashboard"
	case domain.RoleOrganization:
		return "/organization/dashboard"
	default:
		return "/donor/index"
	}
}

// Root sends authenticated users to their dashboard and everyone else
// to the public home page.
func (h *AuthHandler) Root(w http.ResponseWriter, r *http.Request) {
	if p, ok := PrincipalFrom(r.Context()); ok {
		http.Redirect(w, r, landingPath(p), http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "home.html", nil)
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if p, ok := PrincipalFrom(r.Context()); ok {
		http.Redirect(w, r, landingPath(p), http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "login.html", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	p, err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			FlashError(w, "Invalid username or password")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		logger.Error("Login failed", "username", username, "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sess, err := h.sessions.Issue(r.Context(), p)
	if err != nil {
		logger.Error("Failed to issue session", "principal_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	setSessionCookie(w, sess.Token, sess.ExpiresAt)
	FlashSuccess(w, "Welcome back, "+p.PrincipalUsername()+"!")
	http.Redirect(w, r, landingPath(p), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			logger.Warn("Failed to destroy session", "error", err)
		}
	}
	clearSessionCookie(w)
	FlashSuccess(w, "Logged you out!")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) ShowDonorSignup(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, "donor_signup.html", nil)
}

func (h *AuthHandler) DonorSignup(w http.ResponseWriter, r *http.Request) {
	donor, err := h.auth.RegisterDonor(r.Context(),
		r.FormValue("username"),
		r.FormValue("email"),
		r.FormValue("phone"),
		r.FormValue("password"),
	)
	if err != nil {
		h.signupError(w, r, err, "/signup/donor")
		return
	}
	h.startSession(w, r, donor, "Welcome to Second Serve, "+donor.Username+"!")
}

func (h *AuthHandler) ShowOrganizationSignup(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, "organization_signup.html", nil)
}

func (h *AuthHandler) OrganizationSignup(w http.ResponseWriter, r *http.Request) {
	org, err := h.auth.RegisterOrganization(r.Context(),
		r.FormValue("username"),
		r.FormValue("email"),
		r.FormValue("phone"),
		r.FormValue("password"),
	)
	if err != nil {
		h.signupError(w, r, err, "/signup/organization")
		return
	}
	h.startSession(w, r, org, "Welcome to Second Serve, "+org.Username+"!")
}

func (h *AuthHandler) signupError(w http.ResponseWriter, r *http.Request, err error, backTo string) {
	switch {
	case errors.Is(err, service.ErrDuplicateCredential):
		FlashError(w, "A user with the given username, email or phone is already registered")
	case errors.Is(err, service.ErrInvalidInput):
		FlashError(w, "Please fill in all fields correctly")
	default:
		logger.Error("Signup failed", "error", err)
		FlashError(w, "Something went wrong. Please try again.")
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, p domain.Principal, greeting string) {
	sess, err := h.sessions.Issue(r.Context(), p)
	if err != nil {
		logger.Error("Failed to issue session after signup", "principal_id", p.PrincipalID(), "error", err)
		FlashSuccess(w, "Account created. Please log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	setSessionCookie(w, sess.Token, sess.ExpiresAt)
	FlashSuccess(w, greeting)
	http.Redirect(w, r, landingPath(p), http.StatusSeeOther)
}

func (h *AuthHandler) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, "forgot_password.html", nil)
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if err := h.auth.RequestPasswordReset(r.Context(), email); err != nil {
		logger.Error("Password reset request failed", "error", err)
	}
	// Same reply whether or not the address is registered.
	FlashSuccess(w, "If that email is registered, a reset link is on its way.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) ShowResetPassword(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	h.render.Render(w, r, "reset_password.html", map[string]string{"Token": token})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	password := r.FormValue("password")

	if err := h.auth.ResetPassword(r.Context(), token, password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			FlashError(w, "Password must be at least 6 characters")
			http.Redirect(w, r, "/reset/"+token, http.StatusSeeOther)
		default:
			FlashError(w, "This reset link is invalid or has expired.")
			http.Redirect(w, r, "/forgot", http.StatusSeeOther)
		}
		return
	}
	FlashSuccess(w, "Password updated. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
