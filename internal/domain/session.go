package domain

import "time"

type PrincipalModel string

const (
	ModelDonor PrincipalModel = "Donor"
	ModelOrg   PrincipalModel = "Org"
)

// SessionReference is the compact payload persisted in the session store.
// The id/model field names are the wire contract with the store and must
// round-trip unchanged.
type SessionReference struct {
	ID    int32          `json:"id"`
	Model PrincipalModel `json:"model"`
}

// ReferenceFor maps a principal to its store tag. The dispatch is by role,
// not by probing the tables: registration guarantees donors and admins
// live in the donor table and everything else in the organization table.
func ReferenceFor(p Principal) SessionReference {
	model := ModelOrg
	if r := p.PrincipalRole(); r == RoleDonor || r == RoleAdmin {
		model = ModelDonor
	}
	return SessionReference{ID: p.PrincipalID(), Model: model}
}

// Session is a server-side login session. The token is the only thing the
// browser holds; the reference is resolved back to a live principal on
// every request.
type Session struct {
	Token     string
	Reference SessionReference
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
