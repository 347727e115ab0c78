package handler

import "encoding/json"

// errorResponse is the envelope returned on 4xx/5xx responses. Error carries
// the underlying cause on 500s only.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// --- Requests ---

type registerDonorRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required"`
	Phone      string `json:"phone"      validate:"required"`
	BloodGroup string `json:"bloodGroup" validate:"required"`
	Location   string `json:"location"   validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// registerHospitalRequest keeps blood raw so a malformed inventory is reported
// as an inventory error rather than a generic bind failure.
type registerHospitalRequest struct {
	HospitalName string          `json:"hospitalName" validate:"required"`
	Email        string          `json:"email"        validate:"required"`
	Phone        string          `json:"phone"        validate:"required"`
	Address      string          `json:"address"      validate:"required"`
	City         string          `json:"city"         validate:"required"`
	Blood        json.RawMessage `json:"blood"        validate:"required" swaggertype:"array,object"`
	Password     string          `json:"password"     validate:"required"`
}

type bloodEntryRequest struct {
	Type  string `json:"type"  validate:"required"`
	Units *int   `json:"units" validate:"required,gte=0"`
}

type inventoryRequest struct {
	Entries []bloodEntryRequest `json:"blood" validate:"min=1,dive"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type findBloodRequest struct {
	BloodGroup string `json:"bloodGroup"`
	Location   string `json:"location"`
}

// --- Responses ---
// Response-only types owned by the transport layer. None of them has a
// password field.

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type bloodResponse struct {
	Type  string `json:"type"`
	Units int    `json:"units"`
}

type donorResponse struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BloodGroup string `json:"bloodGroup"`
	Location   string `json:"location"`
}

type hospitalResponse struct {
	ID           string          `json:"_id"`
	HospitalName string          `json:"hospitalName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Blood        []bloodResponse `json:"blood"`
	IsAdmin      bool            `json:"isAdmin"`
}

type donorLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
}

type hospitalLoginResponse struct {
	Message      string          `json:"message"`
	Token        string          `json:"token"`
	HospitalName string          `json:"hospitalName"`
	Blood        []bloodResponse `json:"blood"`
}

type donorDashboardResponse struct {
	Message string        `json:"message"`
	Donor   donorResponse `json:"donor"`
}

type hospitalDashboardResponse struct {
	Message  string           `json:"message"`
	Hospital hospitalResponse `json:"hospital"`
}

type adminDataResponse struct {
	Hospital hospitalResponse `json:"hospital"`
}

type findBloodResponse struct {
	Found     bool               `json:"found"`
	Donors    []donorResponse    `json:"donors"`
	Hospitals []hospitalResponse `json:"hospitals"`
}
