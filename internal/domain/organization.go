package domain

type OrgStatus string

const (
	OrgStatusIncomplete OrgStatus = "incomplete"
	OrgStatusPending    OrgStatus = "pending"
	OrgStatusVerified   OrgStatus = "verified"
	OrgStatusRejected   OrgStatus = "rejected"
)

const (
	// DefaultOrgImage is substituted when an organization leaves the
	// image field empty.
	DefaultOrgImage = "/media/placeholder-org.png"

	DefaultOrgLocation = "Ballari"
)

type Organization struct {
	ID            int32     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Phone         string    `json:"phone"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Address       string    `json:"address"`
	Location      string    `json:"location"`
	ChildrenCount int32     `json:"children_count"`
	Status        OrgStatus `json:"status"`
	CreatedOn     string    `json:"created_on"`
	UpdatedOn     string    `json:"updated_on"`
}

func (o *Organization) PrincipalID() int32        { return o.ID }
func (o *Organization) PrincipalRole() Role       { return RoleOrganization }
func (o *Organization) PrincipalUsername() string { return o.Username }
func (o *Organization) PrincipalEmail() string    { return o.Email }

// OrganizationPatch carries a partial profile update. Nil fields are left
// untouched; status, role and id are not updatable through this path.
type OrganizationPatch struct {
	Username      *string
	Email         *string
	Phone         *string
	Description   *string
	Image         *string
	Address       *string
	Location      *string
	ChildrenCount *int32
}

// CanTransitionTo reports whether an admin decision may move a vetting
// record from s to target. Decisions are reversible between verified and
// rejected; an organization that never submitted details (incomplete)
// cannot be decided on.
func (s OrgStatus) CanTransitionTo(target OrgStatus) bool {
	switch target {
	case OrgStatusVerified:
		return s == OrgStatusPending || s == OrgStatusRejected
	case OrgStatusRejected:
		return s == OrgStatusPending || s == OrgStatusVerified
	default:
		return false
	}
}
