package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/models"
	ucAppointment "github.com/kinafsalud/turnos-api/internal/usecase/appointment"
)

// slotsRepo cobre só o que a rota de disponibilidade toca.
type slotsRepo struct {
	schedules []models.Schedule
	booked    []models.Appointment
}

func (r *slotsRepo) GetSede(context.Context, uuid.UUID) (*models.Sede, error) {
	panic("not used")
}
func (r *slotsRepo) GetService(context.Context, uuid.UUID) (*models.Service, error) {
	panic("not used")
}
func (r *slotsRepo) GetProfessional(context.Context, uuid.UUID) (*models.User, error) {
	panic("not used")
}
func (r *slotsRepo) ListActiveSchedules(context.Context, int, uuid.UUID, uuid.UUID) ([]models.Schedule, error) {
	return r.schedules, nil
}
func (r *slotsRepo) ListAppointmentsForDay(context.Context, time.Time, time.Time) ([]models.Appointment, error) {
	return r.booked, nil
}
func (r *slotsRepo) ClaimAppointment(context.Context, *models.Appointment) error {
	panic("not used")
}
func (r *slotsRepo) GetAppointment(context.Context, uuid.UUID) (*models.Appointment, error) {
	panic("not used")
}
func (r *slotsRepo) UpdateAppointment(context.Context, *models.Appointment) error {
	panic("not used")
}
func (r *slotsRepo) ListAppointmentsForClient(context.Context, uuid.UUID) ([]models.Appointment, error) {
	panic("not used")
}
func (r *slotsRepo) ListAllAppointments(context.Context) ([]models.Appointment, error) {
	panic("not used")
}

var _ domain.Repository = (*slotsRepo)(nil)

func slotsRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandler(
		ucAppointment.NewGetAvailability(repo, nil, 60),
		nil, nil, nil, nil, nil,
		nil, repo,
	)

	r := gin.New()
	r.GET("/api/slots", h.Slots)
	return r
}

func getSlots(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/slots"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Success bool   `json:"success"`
		Code    string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Success {
		t.Fatalf("success = true on error response")
	}
	return body.Code
}

func TestSlots_MissingParams(t *testing.T) {
	r := slotsRouter(&slotsRepo{})

	queries := []string{
		"",
		"?date=2026-09-07",
		"?date=2026-09-07&serviceId=" + uuid.NewString(),
		"?serviceId=" + uuid.NewString() + "&sedeId=" + uuid.NewString(),
	}

	for _, q := range queries {
		w := getSlots(t, r, q)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: status = %d, want 400", q, w.Code)
		}
		if code := errorCode(t, w); code != "missing_params" {
			t.Fatalf("query %q: error_code = %s, want missing_params", q, code)
		}
	}
}

func TestSlots_InvalidIDs(t *testing.T) {
	r := slotsRouter(&slotsRepo{})

	w := getSlots(t, r, "?date=2026-09-07&serviceId=abc&sedeId="+uuid.NewString())
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_service_id" {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = getSlots(t, r, "?date=2026-09-07&serviceId="+uuid.NewString()+"&sedeId=abc")
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_sede_id" {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestSlots_InvalidDate(t *testing.T) {
	r := slotsRouter(&slotsRepo{})

	w := getSlots(t, r, "?date=07-09-2026&serviceId="+uuid.NewString()+"&sedeId="+uuid.NewString())
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_date" {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestSlots_OK(t *testing.T) {
	proID := uuid.New()
	repo := &slotsRepo{
		schedules: []models.Schedule{{
			ProfessionalID: proID,
			Professional: &models.User{
				ID:        proID,
				FirstName: "Ana",
				LastName:  "Pilates",
				Role:      models.RoleProfessional,
				Active:    true,
			},
			Weekday:   1,
			StartTime: "09:00",
			EndTime:   "11:00",
			Active:    true,
		}},
	}
	r := slotsRouter(repo)

	w := getSlots(t, r, "?date=2026-09-07&serviceId="+uuid.NewString()+"&sedeId="+uuid.NewString())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool          `json:"success"`
		Data    []domain.Slot `json:"data"`
		Total   int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.Success || body.Total != 2 {
		t.Fatalf("body = %s, want success with 2 slots", w.Body.String())
	}
	if body.Data[0].Time != "09:00" || body.Data[1].Time != "10:00" {
		t.Fatalf("slots = %v", body.Data)
	}
	if body.Data[0].Professional.FirstName != "Ana" {
		t.Fatalf("professional = %+v", body.Data[0].Professional)
	}
}

func TestSlots_EmptyDayIsNotAnError(t *testing.T) {
	r := slotsRouter(&slotsRepo{})

	w := getSlots(t, r, "?date=2026-09-07&serviceId="+uuid.NewString()+"&sedeId="+uuid.NewString())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool          `json:"success"`
		Data    []domain.Slot `json:"data"`
		Total   int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.Success || body.Total != 0 || len(body.Data) != 0 {
		t.Fatalf("body = %s, want empty list", w.Body.String())
	}
}
