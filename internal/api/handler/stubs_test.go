package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/core/ports"
)

type stubDonorService struct {
	registerFn func(ctx context.Context, in ports.RegisterDonorInput) (string, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.DonorLogin, error)
	profileFn  func(ctx context.Context, id string) (*domain.Donor, error)
}

func (s *stubDonorService) Register(ctx context.Context, in ports.RegisterDonorInput) (string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubDonorService) Login(ctx context.Context, email, password string) (*ports.DonorLogin, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubDonorService) Profile(ctx context.Context, id string) (*domain.Donor, error) {
	return s.profileFn(ctx, id)
}

type stubHospitalService struct {
	registerFn func(ctx context.Context, in ports.RegisterHospitalInput) (string, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.HospitalLogin, error)
	profileFn  func(ctx context.Context, id string) (*domain.Hospital, error)
}

func (s *stubHospitalService) Register(ctx context.Context, in ports.RegisterHospitalInput) (string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubHospitalService) Login(ctx context.Context, email, password string) (*ports.HospitalLogin, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubHospitalService) Profile(ctx context.Context, id string) (*domain.Hospital, error) {
	return s.profileFn(ctx, id)
}

type stubMatchService struct {
	findFn func(ctx context.Context, key domain.MatchKey) (*domain.MatchResult, error)
}

func (s *stubMatchService) FindBlood(ctx context.Context, key domain.MatchKey) (*domain.MatchResult, error) {
	return s.findFn(ctx, key)
}

// newContext builds an echo context with the validator registered. body may be empty.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return body
}

// httpCode returns the status carried by err when it is an echo.HTTPError.
func httpCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func httpMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, _ := he.Message.(string)
		return msg
	}
	return ""
}
