package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("all fields are required")
	ErrInvalidBlood       = errors.New("blood must be an array of {type, units}")
	ErrDonorExists        = errors.New("donor already exists")
	ErrHospitalExists     = errors.New("hospital already exists")
	ErrDonorNotFound      = errors.New("donor not found")
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access denied")
	ErrAdminOnly          = fmt.Errorf("%w: admins only", ErrForbidden)
)
