package domain

type Donor struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"` // 10 digits
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"` // donor or admin
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}

func (d *Donor) PrincipalID() int32        { return d.ID }
func (d *Donor) PrincipalRole() Role       { return d.Role }
func (d *Donor) PrincipalUsername() string { return d.Username }
func (d *Donor) PrincipalEmail() string    { return d.Email }

// DonorPatch carries a partial profile update. Nil fields are left
// untouched; role and id are not updatable through this path.
type DonorPatch struct {
	Username *string
	Email    *string
	Phone    *string
}
