package domain

// Donor is an individual who registered to give blood.
type Donor struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BloodGroup   string `json:"bloodGroup"`
	Location     string `json:"location"`
	PasswordHash string `json:"-"`
}

// MatchKey returns the blood-match query this donor answers.
func (d *Donor) MatchKey() MatchKey {
	return MatchKey{BloodGroup: d.BloodGroup, Location: d.Location}
}
