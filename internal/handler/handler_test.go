package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/handler/dto"
	hmocks "github.com/successxx/punctual/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

type testDeps struct {
	hosts        *hmocks.MockHostSvc
	rules        *hmocks.MockRuleSvc
	availability *hmocks.MockAvailabilitySvc
	bookings     *hmocks.MockBookingSvc
}

func setupRouter(t *testing.T) (*testDeps, http.Handler) {
	t.Helper()
	d := &testDeps{
		hosts:        hmocks.NewMockHostSvc(t),
		rules:        hmocks.NewMockRuleSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		bookings:     hmocks.NewMockBookingSvc(t),
	}

	h := NewHandler(d.hosts, d.rules, d.availability, d.bookings)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/hosts", h.CreateHost)
		api.GET("/hosts/:id", h.GetHost)
		api.PUT("/hosts/:id/config", h.UpdateHostConfig)
		api.GET("/hosts/:id/rules", h.ListRules)
		api.POST("/hosts/:id/rules", h.CreateRule)
		api.PUT("/hosts/:id/rules/:rule_id", h.UpdateRule)
		api.DELETE("/hosts/:id/rules/:rule_id", h.DeleteRule)
		api.GET("/hosts/:id/slots", h.GetSlots)
		api.POST("/hosts/:id/bookings", h.CreateBooking)
		api.GET("/hosts/:id/bookings", h.ListHostBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/reschedule", h.RescheduleBooking)
	}

	return d, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

var (
	slotStart = time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)
	slotEnd   = slotStart.Add(30 * time.Minute)
)

func testBooking(hostID string) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.NewString(),
		HostID:     hostID,
		GuestName:  "Ada",
		GuestEmail: "ada@example.com",
		Start:      slotStart,
		End:        slotEnd,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  slotStart.Add(-24 * time.Hour),
	}
}

// --- Hosts ---

func TestHandler_CreateHost_Success(t *testing.T) {
	d, r := setupRouter(t)

	host := &domain.Host{
		ID:    uuid.NewString(),
		Name:  "Grace",
		Email: "grace@example.com",
		SchedulingConfig: domain.SchedulingConfig{
			Timezone:        "America/New_York",
			BookingDuration: 30 * time.Minute,
			BufferTime:      15 * time.Minute,
		},
	}
	d.hosts.EXPECT().Create(mock.Anything, domain.CreateHostInput{
		Name:                   "Grace",
		Email:                  "grace@example.com",
		Timezone:               "America/New_York",
		BookingDurationMinutes: 30,
		BufferMinutes:          15,
	}).Return(host, nil)

	w := doJSON(r, http.MethodPost, "/api/hosts", dto.CreateHostRequest{
		Name:                   "Grace",
		Email:                  "grace@example.com",
		Timezone:               "America/New_York",
		BookingDurationMinutes: 30,
		BufferMinutes:          15,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.HostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.BookingDurationMinutes)
	assert.Equal(t, 15, resp.BufferMinutes)
	assert.Equal(t, "America/New_York", resp.Timezone)
}

func TestHandler_CreateHost_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/hosts", `{"name":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.CodeValidation, decodeError(t, w).Code)
}

func TestHandler_CreateHost_EmailTaken(t *testing.T) {
	d, r := setupRouter(t)

	d.hosts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(r, http.MethodPost, "/api/hosts", dto.CreateHostRequest{
		Name: "Grace", Email: "grace@example.com", Timezone: "UTC", BookingDurationMinutes: 30,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetHost_NotFound(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	d.hosts.EXPECT().Get(mock.Anything, hostID).Return(nil, domain.ErrHostNotFound)

	w := doJSON(r, http.MethodGet, "/api/hosts/"+hostID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.CodeNotFound, decodeError(t, w).Code)
}

func TestHandler_GetHost_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/hosts/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateHostConfig_Success(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	host := &domain.Host{ID: hostID, SchedulingConfig: domain.SchedulingConfig{
		Timezone: "Europe/Berlin", BookingDuration: 45 * time.Minute,
	}}
	d.hosts.EXPECT().UpdateConfig(mock.Anything, hostID, domain.UpdateConfigInput{
		Timezone:               "Europe/Berlin",
		BookingDurationMinutes: 45,
	}).Return(host, nil)

	w := doJSON(r, http.MethodPut, "/api/hosts/"+hostID+"/config", dto.UpdateConfigRequest{
		Timezone: "Europe/Berlin", BookingDurationMinutes: 45,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Rules ---

func TestHandler_CreateRule_Success(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	want := domain.RuleInput{
		DayOfWeek: 1,
		StartTime: domain.NewTimeOfDay(9, 0),
		EndTime:   domain.NewTimeOfDay(17, 0),
	}
	d.rules.EXPECT().Create(mock.Anything, hostID, want).Return(&domain.AvailabilityRule{
		ID:        uuid.NewString(),
		HostID:    hostID,
		DayOfWeek: time.Monday,
		StartTime: want.StartTime,
		EndTime:   want.EndTime,
		Active:    true,
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+hostID+"/rules",
		`{"day_of_week":1,"start_time":"09:00","end_time":"17:00"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RuleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)
	assert.Equal(t, 1, resp.DayOfWeek)
}

func TestHandler_CreateRule_SundayIsZero(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	d.rules.EXPECT().Create(mock.Anything, hostID, domain.RuleInput{
		DayOfWeek: 0,
		StartTime: domain.NewTimeOfDay(10, 0),
		EndTime:   domain.EndOfDay,
	}).Return(&domain.AvailabilityRule{ID: uuid.NewString(), HostID: hostID, EndTime: domain.EndOfDay}, nil)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+hostID+"/rules",
		`{"day_of_week":0,"start_time":"10:00","end_time":"24:00"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateRule_InvalidTime(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/rules",
		`{"day_of_week":1,"start_time":"9am","end_time":"17:00"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRule_MissingDay(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/rules",
		`{"start_time":"09:00","end_time":"17:00"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRule_Overlap(t *testing.T) {
	d, r := setupRouter(t)

	d.rules.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrRuleOverlap)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/rules",
		`{"day_of_week":1,"start_time":"09:00","end_time":"17:00"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.CodeRuleOverlap, decodeError(t, w).Code)
}

func TestHandler_UpdateRule_NotFound(t *testing.T) {
	d, r := setupRouter(t)

	hostID, ruleID := uuid.NewString(), uuid.NewString()
	d.rules.EXPECT().Update(mock.Anything, hostID, ruleID, mock.Anything).Return(nil, domain.ErrRuleNotFound)

	w := doJSON(r, http.MethodPut, "/api/hosts/"+hostID+"/rules/"+ruleID,
		`{"day_of_week":2,"start_time":"09:00","end_time":"12:00"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteRule_Success(t *testing.T) {
	d, r := setupRouter(t)

	hostID, ruleID := uuid.NewString(), uuid.NewString()
	d.rules.EXPECT().Deactivate(mock.Anything, hostID, ruleID).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/hosts/"+hostID+"/rules/"+ruleID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_ListRules_IncludeInactive(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	d.rules.EXPECT().List(mock.Anything, hostID, false).Return([]*domain.AvailabilityRule{
		{ID: uuid.NewString(), HostID: hostID, Active: false},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/hosts/"+hostID+"/rules?include_inactive=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RuleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListRules_ActiveOnlyByDefault(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	d.rules.EXPECT().List(mock.Anything, hostID, true).Return([]*domain.AvailabilityRule{}, nil)

	w := doJSON(r, http.MethodGet, "/api/hosts/"+hostID+"/rules", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Slots ---

func TestHandler_GetSlots_Success(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	d.availability.EXPECT().GetSlots(mock.Anything, hostID, "2026-10-19").Return(&domain.SlotList{
		HostID:   hostID,
		Date:     "2026-10-19",
		Timezone: "America/New_York",
		Duration: 30 * time.Minute,
		Slots:    []domain.Slot{{Start: slotStart, End: slotEnd}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/hosts/"+hostID+"/slots?date=2026-10-19", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2026-10-19T14:00:00Z", resp.Slots[0].Start)
	assert.Equal(t, "2026-10-19T14:30:00Z", resp.Slots[0].End)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestHandler_GetSlots_EmptyListIsNotAnError(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	d.availability.EXPECT().GetSlots(mock.Anything, hostID, "2026-10-18").Return(&domain.SlotList{
		HostID: hostID, Date: "2026-10-18", Slots: []domain.Slot{},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/hosts/"+hostID+"/slots?date=2026-10-18", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []any{}, resp["slots"])
}

func TestHandler_GetSlots_MissingDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/hosts/"+uuid.NewString()+"/slots", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	booking := testBooking(hostID)
	d.bookings.EXPECT().Commit(mock.Anything, domain.CommitBookingInput{
		HostID:     hostID,
		Start:      slotStart,
		End:        slotEnd,
		GuestName:  "Ada",
		GuestEmail: "ada@example.com",
	}).Return(booking, nil)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+hostID+"/bookings",
		`{"start_time":"2026-10-19T14:00:00Z","end_time":"2026-10-19T14:30:00Z","guest_name":"Ada","guest_email":"ada@example.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2026-10-19T14:00:00Z", resp.StartTime)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	d, r := setupRouter(t)

	d.bookings.EXPECT().Commit(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create booking: %w", domain.ErrSlotConflict))

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/bookings",
		`{"start_time":"2026-10-19T14:00:00Z","end_time":"2026-10-19T14:30:00Z","guest_name":"Ada","guest_email":"ada@example.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.CodeSlotTaken, resp.Code)
	assert.Equal(t, "this time was just taken", resp.Error)
}

func TestHandler_CreateBooking_StorageUnavailable(t *testing.T) {
	d, r := setupRouter(t)

	d.bookings.EXPECT().Commit(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("lock host: %w", domain.ErrStorageUnavailable))

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/bookings",
		`{"start_time":"2026-10-19T14:00:00Z","end_time":"2026-10-19T14:30:00Z","guest_name":"Ada","guest_email":"ada@example.com"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, dto.CodeStorageUnavailable, decodeError(t, w).Code)
}

func TestHandler_CreateBooking_Validation(t *testing.T) {
	d, r := setupRouter(t)

	d.bookings.EXPECT().Commit(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: start is in the past", domain.ErrValidation))

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/bookings",
		`{"start_time":"2020-10-19T14:00:00Z","end_time":"2020-10-19T14:30:00Z","guest_name":"Ada","guest_email":"ada@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_MalformedTime(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/bookings",
		`{"start_time":"tomorrow","end_time":"2026-10-19T14:30:00Z","guest_name":"Ada","guest_email":"ada@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_UnknownHost(t *testing.T) {
	d, r := setupRouter(t)

	d.bookings.EXPECT().Commit(mock.Anything, mock.Anything).Return(nil, domain.ErrHostNotFound)

	w := doJSON(r, http.MethodPost, "/api/hosts/"+uuid.NewString()+"/bookings",
		`{"start_time":"2026-10-19T14:00:00Z","end_time":"2026-10-19T14:30:00Z","guest_name":"Ada","guest_email":"ada@example.com"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListHostBookings_Success(t *testing.T) {
	d, r := setupRouter(t)

	hostID := uuid.NewString()
	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)
	d.bookings.EXPECT().ListByHost(mock.Anything, hostID, from, to).
		Return([]*domain.Booking{testBooking(hostID)}, nil)

	w := doJSON(r, http.MethodGet,
		"/api/hosts/"+hostID+"/bookings?from=2026-10-19T00:00:00Z&to=2026-10-26T00:00:00Z", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListHostBookings_BadRange(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/hosts/"+uuid.NewString()+"/bookings?from=yesterday", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	d, r := setupRouter(t)

	bookingID := uuid.NewString()
	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(r, http.MethodGet, "/api/bookings/"+bookingID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	d, r := setupRouter(t)

	booking := testBooking(uuid.NewString())
	booking.Status = domain.BookingStatusCancelled
	cancelledAt := slotStart.Add(-time.Hour)
	booking.CancelledAt = &cancelledAt
	d.bookings.EXPECT().Cancel(mock.Anything, booking.ID).Return(booking, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "2026-10-19T13:00:00Z", *resp.CancelledAt)
}

func TestHandler_RescheduleBooking_Success(t *testing.T) {
	d, r := setupRouter(t)

	oldID := uuid.NewString()
	next := testBooking(uuid.NewString())
	next.Start = slotStart.Add(time.Hour)
	next.End = slotEnd.Add(time.Hour)
	next.RescheduledFrom = &oldID
	d.bookings.EXPECT().Reschedule(mock.Anything, domain.RescheduleInput{
		BookingID: oldID,
		Start:     next.Start,
		End:       next.End,
	}).Return(next, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+oldID+"/reschedule",
		`{"start_time":"2026-10-19T15:00:00Z","end_time":"2026-10-19T15:30:00Z"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.RescheduledFrom)
	assert.Equal(t, oldID, *resp.RescheduledFrom)
}

func TestHandler_RescheduleBooking_AlreadyCancelled(t *testing.T) {
	d, r := setupRouter(t)

	oldID := uuid.NewString()
	d.bookings.EXPECT().Reschedule(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingCancelled)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+oldID+"/reschedule",
		`{"start_time":"2026-10-19T15:00:00Z","end_time":"2026-10-19T15:30:00Z"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.CodeBookingCancelled, decodeError(t, w).Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	d, r := setupRouter(t)

	bookingID := uuid.NewString()
	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, assert.AnError)

	w := doJSON(r, http.MethodGet, "/api/bookings/"+bookingID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.CodeInternal, resp.Code)
	assert.NotContains(t, resp.Error, assert.AnError.Error())
}
