package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/core/json_types"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/in"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
	"github.com/suchimauz/slot-appointment-service/internal/utils"
)

const (
	errorInvalidDate        = "InvalidDate"
	errorInvalidAppointment = "InvalidAppointment"
	errorInternal           = "InternalError"
)

type SlotAppointmentController struct {
	useCase in.SlotAppointmentUseCase
	clock   out.ClockPort
	horizon domain.BookingHorizon
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewSlotAppointmentController(useCase in.SlotAppointmentUseCase, clock out.ClockPort, cfg *config.Config, logger out.LoggerPort) *SlotAppointmentController {
	return &SlotAppointmentController{
		useCase: useCase,
		clock:   clock,
		horizon: domain.BookingHorizon{MaxMonths: cfg.Appointment.MaxMonthsForAnAppointment},
		cfg:     cfg,
		logger:  logger,
	}
}

func (c *SlotAppointmentController) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", c.health)

	api := router.Group("/api/SlotAppointment")
	if len(c.cfg.Auth.BasicClients) > 0 {
		api.Use(c.basicAuth())
	}
	{
		api.GET("/GetWeeklyFreeSlots", c.getWeeklyFreeSlots)
		api.POST("/TakeSlotByUser", c.takeSlotByUser)
	}
}

type freeSlotResponse struct {
	Start json_types.DateTime `json:"Start"`
	End   json_types.DateTime `json:"End"`
}

type weeklyFreeSlotsResponse struct {
	FacilityID uuid.UUID          `json:"FacilityId"`
	FreeSlots  []freeSlotResponse `json:"FreeSlots"`
}

type takeSlotRequest struct {
	FacilityID uuid.UUID           `json:"FacilityId"`
	Start      json_types.DateTime `json:"Start"`
	End        json_types.DateTime `json:"End"`
	Comments   string              `json:"Comments"`
	Patient    domain.Patient      `json:"Patient"`
}

type takeSlotResponse struct {
	Booked bool `json:"booked"`
}

func (c *SlotAppointmentController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (c *SlotAppointmentController) getWeeklyFreeSlots(ctx *gin.Context) {
	rawDate := ctx.Query("desiredDate")
	if rawDate == "" {
		c.respondError(ctx, http.StatusBadRequest, errorInvalidDate, "The appointment desired date is required.")
		return
	}

	desiredDate, err := utils.ParseDate(rawDate)
	if err != nil {
		c.respondError(ctx, http.StatusBadRequest, errorInvalidDate, "Invalid desired date format")
		return
	}

	if err := c.horizon.Check(c.clock.Now(), desiredDate); err != nil {
		c.respondError(ctx, http.StatusBadRequest, errorInvalidDate, err.Error())
		return
	}

	schedule, err := c.useCase.GetWeeklyFreeSlots(ctx.Request.Context(), desiredDate)
	if err != nil {
		c.respondUseCaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWeeklyFreeSlotsResponse(schedule))
}

func (c *SlotAppointmentController) takeSlotByUser(ctx *gin.Context) {
	var req takeSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respondError(ctx, http.StatusBadRequest, errorInvalidAppointment, "The appointment data is not valid.")
		return
	}

	// null и {} разбираются без ошибки, но без дат запись не имеет смысла
	if req.Start.Date.IsZero() || req.End.Date.IsZero() {
		c.respondError(ctx, http.StatusBadRequest, errorInvalidAppointment, "The appointment data is not valid.")
		return
	}

	booked, err := c.useCase.TakeAppointmentByUser(ctx.Request.Context(), &domain.AppointmentRequest{
		FacilityID: req.FacilityID,
		Start:      req.Start.Date,
		End:        req.End.Date,
		Comments:   req.Comments,
		Patient:    req.Patient,
	})
	if err != nil {
		c.respondUseCaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, takeSlotResponse{Booked: booked})
}

func (c *SlotAppointmentController) respondUseCaseError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDateOutOfRange):
		c.respondError(ctx, http.StatusBadRequest, errorInvalidDate, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		c.respondError(ctx, http.StatusBadRequest, errorInvalidAppointment, err.Error())
	default:
		c.logger.Error("http.request.failed", out.LogFields{
			"path":  ctx.FullPath(),
			"error": err.Error(),
		})
		c.respondError(ctx, http.StatusInternalServerError, errorInternal, err.Error())
	}
}

func (c *SlotAppointmentController) respondError(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, gin.H{
		"error":   code,
		"message": message,
	})
}

func (c *SlotAppointmentController) basicAuth() gin.HandlerFunc {
	accounts := make(gin.Accounts, len(c.cfg.Auth.BasicClients))
	for _, client := range c.cfg.Auth.BasicClients {
		accounts[client.Username] = client.Password
	}

	return gin.BasicAuth(accounts)
}

func newWeeklyFreeSlotsResponse(schedule *domain.ScheduleResponse) weeklyFreeSlotsResponse {
	response := weeklyFreeSlotsResponse{
		FreeSlots: make([]freeSlotResponse, 0),
	}
	if schedule == nil {
		return response
	}

	response.FacilityID = schedule.FacilityID
	for _, slot := range schedule.FreeSlots {
		response.FreeSlots = append(response.FreeSlots, freeSlotResponse{
			Start: json_types.NewDateTime(slot.Start),
			End:   json_types.NewDateTime(slot.End),
		})
	}

	return response
}
