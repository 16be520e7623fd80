package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/services"
)

type stubRosterService struct {
	addResult   *models.Student
	addErr      error
	listResult  []models.Student
	listErr     error
	removeErr   error
	lastAccount int64
	lastName    string
	lastStudent int64
}

func (s *stubRosterService) AddStudent(_ context.Context, accountID int64, name string) (*models.Student, error) {
	s.lastAccount = accountID
	s.lastName = name
	return s.addResult, s.addErr
}

func (s *stubRosterService) ListStudents(_ context.Context, accountID int64) ([]models.Student, error) {
	s.lastAccount = accountID
	return s.listResult, s.listErr
}

func (s *stubRosterService) RemoveStudent(_ context.Context, accountID, studentID int64) error {
	s.lastAccount = accountID
	s.lastStudent = studentID
	return s.removeErr
}

func newStudentTestApp(handler *StudentHandler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("account_id", "7")
		return c.Next()
	})
	app.Post("/api/v1/students", handler.CreateStudent)
	app.Get("/api/v1/students", handler.ListStudents)
	app.Delete("/api/v1/students/:id", handler.DeleteStudent)
	return app
}

func TestCreateStudentReturnsStudentWithCode(t *testing.T) {
	service := &stubRosterService{
		addResult: &models.Student{ID: 3, AccountID: 7, Name: "Ana", Code: "AN4X7Q"},
	}
	app := newStudentTestApp(&StudentHandler{service: service})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{"name":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastAccount != 7 || service.lastName != "Ana" {
		t.Fatalf("unexpected service call: account %d, name %q", service.lastAccount, service.lastName)
	}

	var body struct {
		Student models.Student `json:"student"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Student.Code != "AN4X7Q" {
		t.Fatalf("expected access code in response, got %+v", body.Student)
	}
}

func TestCreateStudentReportsQuotaWithNumbers(t *testing.T) {
	service := &stubRosterService{
		addErr: &services.QuotaExceededError{Current: 1, Max: 1},
	}
	app := newStudentTestApp(&StudentHandler{service: service})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{"name":"Bruno"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	var body struct {
		Current int64 `json:"current"`
		Max     int64 `json:"max"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Current != 1 || body.Max != 1 {
		t.Fatalf("expected current/max 1/1 in body, got %+v", body)
	}
}

func TestCreateStudentRejectsBlankName(t *testing.T) {
	service := &stubRosterService{addErr: services.ErrInvalidInput}
	app := newStudentTestApp(&StudentHandler{service: service})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDeleteStudentReportsForeignRowAsNotFound(t *testing.T) {
	service := &stubRosterService{removeErr: pgx.ErrNoRows}
	app := newStudentTestApp(&StudentHandler{service: service})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/students/99", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if service.lastStudent != 99 {
		t.Fatalf("expected student id 99 forwarded, got %d", service.lastStudent)
	}
}

func TestListStudentsReturnsRoster(t *testing.T) {
	service := &stubRosterService{
		listResult: []models.Student{
			{ID: 1, Name: "Ana", Code: "AN4X7Q"},
			{ID: 2, Name: "Bruno", Code: "BR19ZZ"},
		},
	}
	app := newStudentTestApp(&StudentHandler{service: service})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Students []models.Student `json:"students"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Students) != 2 || body.Students[0].Name != "Ana" {
		t.Fatalf("unexpected roster: %+v", body.Students)
	}
}
