package domain

// BloodStock is the number of units a hospital holds for one blood type.
type BloodStock struct {
	Type  string `json:"type"`
	Units int    `json:"units"`
}

// Hospital is a registered facility together with its inventory snapshot.
// Inventory is supplied wholesale at registration and never edited.
type Hospital struct {
	ID           string       `json:"_id"`
	HospitalName string       `json:"hospitalName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	Blood        []BloodStock `json:"blood"`
	PasswordHash string       `json:"-"`
	IsAdmin      bool         `json:"isAdmin"`
}

// Stocks reports whether the inventory lists bloodType, whatever its unit count.
func (h *Hospital) Stocks(bloodType string) bool {
	for _, b := range h.Blood {
		if b.Type == bloodType {
			return true
		}
	}
	return false
}

// MatchKeys returns one blood-match query per distinct blood type in stock.
func (h *Hospital) MatchKeys() []MatchKey {
	seen := make(map[string]struct{}, len(h.Blood))
	keys := make([]MatchKey, 0, len(h.Blood))
	for _, b := range h.Blood {
		if _, ok := seen[b.Type]; ok {
			continue
		}
		seen[b.Type] = struct{}{}
		keys = append(keys, MatchKey{BloodGroup: b.Type, Location: h.City})
	}
	return keys
}
