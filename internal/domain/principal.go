package domain

type Role string

const (
	RoleDonor        Role = "donor"
	RoleAdmin        Role = "admin"
	RoleOrganization Role = "organization"
)

// Principal is an authenticated actor. Donors (including admins) and
// organizations live in separate tables but share one login surface, so
// everything downstream of authentication works against this interface.
type Principal interface {
	PrincipalID() int32
	PrincipalRole() Role
	PrincipalUsername() string
	PrincipalEmail() string
}
