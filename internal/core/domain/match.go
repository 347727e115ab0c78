package domain

// MatchKey identifies a blood-match query.
type MatchKey struct {
	BloodGroup string
	Location   string
}

// Empty reports whether either half of the query is missing.
func (k MatchKey) Empty() bool {
	return k.BloodGroup == "" || k.Location == ""
}

// MatchResult holds donors and hospitals able to supply a blood group in a location.
// Slices are never nil so the JSON shape is stable.
type MatchResult struct {
	Found     bool       `json:"found"`
	Donors    []Donor    `json:"donors"`
	Hospitals []Hospital `json:"hospitals"`
}

// NewMatchResult builds a result and derives Found from the two sets.
func NewMatchResult(donors []Donor, hospitals []Hospital) *MatchResult {
	if donors == nil {
		donors = []Donor{}
	}
	if hospitals == nil {
		hospitals = []Hospital{}
	}
	return &MatchResult{
		Found:     len(donors) > 0 || len(hospitals) > 0,
		Donors:    donors,
		Hospitals: hospitals,
	}
}
