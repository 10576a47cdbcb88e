package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = "1"

type HostSvc interface {
	Create(ctx context.Context, input domain.CreateHostInput) (*domain.Host, error)
	Get(ctx context.Context, id string) (*domain.Host, error)
	UpdateConfig(ctx context.Context, id string, input domain.UpdateConfigInput) (*domain.Host, error)
}

type RuleSvc interface {
	Create(ctx context.Context, hostID string, input domain.RuleInput) (*domain.AvailabilityRule, error)
	Update(ctx context.Context, hostID, ruleID string, input domain.RuleInput) (*domain.AvailabilityRule, error)
	Deactivate(ctx context.Context, hostID, ruleID string) error
	List(ctx context.Context, hostID string, activeOnly bool) ([]*domain.AvailabilityRule, error)
}

type AvailabilitySvc interface {
	GetSlots(ctx context.Context, hostID, date string) (*domain.SlotList, error)
}

type BookingSvc interface {
	Commit(ctx context.Context, input domain.CommitBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	Reschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByHost(ctx context.Context, hostID string, from, to time.Time) ([]*domain.Booking, error)
}

type Handler struct {
	hostService         HostSvc
	ruleService         RuleSvc
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
}

func NewHandler(
	hostService HostSvc,
	ruleService RuleSvc,
	availabilityService AvailabilitySvc,
	bookingService BookingSvc,
) *Handler {
	return &Handler{
		hostService:         hostService,
		ruleService:         ruleService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
	}
}

// Hosts

func (h *Handler) CreateHost(c *ginext.Context) {
	var req dto.CreateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.CreateHostInput{
		Name:                   req.Name,
		Email:                  req.Email,
		TelegramChatID:         req.TelegramChatID,
		Timezone:               req.Timezone,
		BookingDurationMinutes: req.BookingDurationMinutes,
		BufferMinutes:          req.BufferMinutes,
	}

	host, err := h.hostService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHostResponse(host))
}

func (h *Handler) GetHost(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}

	host, err := h.hostService.Get(c.Request.Context(), hostID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHostResponse(host))
}

func (h *Handler) UpdateHostConfig(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}

	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.UpdateConfigInput{
		Timezone:               req.Timezone,
		BookingDurationMinutes: req.BookingDurationMinutes,
		BufferMinutes:          req.BufferMinutes,
	}

	host, err := h.hostService.UpdateConfig(c.Request.Context(), hostID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHostResponse(host))
}

// Availability rules

func (h *Handler) CreateRule(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}

	input, ok := bindRule(c)
	if !ok {
		return
	}

	rule, err := h.ruleService.Create(c.Request.Context(), hostID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

func (h *Handler) UpdateRule(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}
	ruleID, ok := idParam(c, "rule_id", "invalid rule id")
	if !ok {
		return
	}

	input, ok := bindRule(c)
	if !ok {
		return
	}

	rule, err := h.ruleService.Update(c.Request.Context(), hostID, ruleID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

func (h *Handler) DeleteRule(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}
	ruleID, ok := idParam(c, "rule_id", "invalid rule id")
	if !ok {
		return
	}

	if err := h.ruleService.Deactivate(c.Request.Context(), hostID, ruleID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListRules(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}

	activeOnly := c.Query("include_inactive") != "true"

	rules, err := h.ruleService.List(c.Request.Context(), hostID, activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RuleResponse, 0, len(rules))
	for _, r := range rules {
		resp = append(resp, dto.ToRuleResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Slots

func (h *Handler) GetSlots(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		badRequest(c, "date is required, expected YYYY-MM-DD")
		return
	}

	list, err := h.availabilityService.GetSlots(c.Request.Context(), hostID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotListResponse(list))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}

	var req dto.CommitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.CommitBookingInput{
		HostID:     hostID,
		Start:      req.StartTime,
		End:        req.EndTime,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		Notes:      req.Notes,
	}

	booking, err := h.bookingService.Commit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListHostBookings(c *ginext.Context) {
	hostID, ok := idParam(c, "id", "invalid host id")
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		badRequest(c, "invalid from, expected RFC3339")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		badRequest(c, "invalid to, expected RFC3339")
		return
	}

	bookings, err := h.bookingService.ListByHost(c.Request.Context(), hostID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	bookingID, ok := idParam(c, "id", "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, ok := idParam(c, "id", "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RescheduleBooking(c *ginext.Context) {
	bookingID, ok := idParam(c, "id", "invalid booking id")
	if !ok {
		return
	}

	var req dto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.Reschedule(c.Request.Context(), domain.RescheduleInput{
		BookingID: bookingID,
		Start:     req.StartTime,
		End:       req.EndTime,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	// Not-found errors wrap ErrValidation, so they go first.
	case errors.Is(err, domain.ErrHostNotFound),
		errors.Is(err, domain.ErrRuleNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeNotFound})

	case errors.Is(err, domain.ErrSlotConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrSlotConflict.Error(), Code: dto.CodeSlotTaken})

	case errors.Is(err, domain.ErrRuleOverlap):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeRuleOverlap})

	case errors.Is(err, domain.ErrBookingCancelled):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeBookingCancelled})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeValidation})

	case errors.Is(err, domain.ErrStorageUnavailable):
		c.Header("Retry-After", retryAfterSeconds)
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "service is busy, please try again",
			Code:  dto.CodeStorageUnavailable,
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: dto.CodeInternal})
	}
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: dto.CodeValidation})
}

func idParam(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, msg)
		return "", false
	}
	return id, true
}

func bindRule(c *ginext.Context) (domain.RuleInput, bool) {
	var req dto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return domain.RuleInput{}, false
	}

	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		badRequest(c, "invalid start_time, expected HH:MM")
		return domain.RuleInput{}, false
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		badRequest(c, "invalid end_time, expected HH:MM")
		return domain.RuleInput{}, false
	}

	return domain.RuleInput{DayOfWeek: *req.DayOfWeek, StartTime: start, EndTime: end}, true
}
