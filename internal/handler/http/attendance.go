package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffsync/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync/staffsync-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
	BulkMarkAttendance(w http.ResponseWriter, r *http.Request)
	GetMarkPage(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListAttendance implements AttendanceHandler. Range selection comes from
// query params; bad values degrade to the default range instead of
// erroring.
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := attendance.ListQuery{
		Preset:    r.URL.Query().Get("preset"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.ListView(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded successfully", result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}

// BulkMarkAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) BulkMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.BulkMark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance saved successfully", result)
}

// GetCalendar implements AttendanceHandler
func (h *attendanceHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	q := attendance.CalendarQuery{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
	}

	result, err := h.attendanceService.Calendar(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetMarkPage implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMarkPage(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.MarkPage(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
