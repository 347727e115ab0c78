package domain

// Role names the kind of account a claim token was issued for.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleHospital Role = "hospital"
)

// Principal is the authenticated caller decoded from a claim token.
// It is either a DonorPrincipal or a HospitalPrincipal.
type Principal interface {
	SubjectID() string
	Role() Role
	principal()
}

type DonorPrincipal struct {
	ID string
}

func (p DonorPrincipal) SubjectID() string { return p.ID }
func (p DonorPrincipal) Role() Role        { return RoleDonor }
func (DonorPrincipal) principal()          {}

type HospitalPrincipal struct {
	ID      string
	IsAdmin bool
}

func (p HospitalPrincipal) SubjectID() string { return p.ID }
func (p HospitalPrincipal) Role() Role        { return RoleHospital }
func (HospitalPrincipal) principal()          {}

// IsHospitalAdmin reports whether p is a hospital principal carrying the admin flag.
func IsHospitalAdmin(p Principal) bool {
	h, ok := p.(HospitalPrincipal)
	return ok && h.IsAdmin
}
