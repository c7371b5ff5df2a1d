package http

import (
	"net/http"
	"time"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/service"
)

// SessionCookie holds the opaque session token; everything else lives
// server-side.
const SessionCookie = "secondserve_session"

type AuthMiddleware struct {
	sessions service.SessionService
}

func NewAuthMiddleware(sessions service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Attach resolves the session principal when a cookie is present but
// never denies. Used on public pages so the view can show the current
// user and login pages can bounce the already-authenticated.
func (m *AuthMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			if p, err := m.sessions.Resolve(r.Context(), cookie.Value); err == nil {
				r = r.WithContext(WithPrincipal(r.Context(), p))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireLogin admits a request only when its session resolves to a live
// principal. On denial the request is dropped: one flash notice, one
// redirect to the login entry point.
func (m *AuthMiddleware) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			if p, err := m.sessions.Resolve(r.Context(), cookie.Value); err == nil {
				next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
				return
			}
			// Stale token; drop the cookie so the browser stops
			// sending it.
			clearSessionCookie(w)
		}
		FlashError(w, "You must be logged in first!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
}

// RequireRole gates a route group to the given roles. It assumes
// RequireLogin already ran; anyone else is bounced to their own landing
// page.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if ok {
				for _, role := range roles {
					if p.PrincipalRole() == role {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
		})
	}
}

func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
