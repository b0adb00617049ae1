package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	ucReservation "github.com/barberia-app/barberia-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	create       *ucReservation.CreateReservation
	finalize     *ucReservation.FinalizeTotals
	updateStatus *ucReservation.UpdateStatus
	slots        *ucReservation.AvailableSlots
	loyalty      *ucReservation.LoyaltyStats
	queries      *ucReservation.Queries
}

func NewReservationHandler(
	create *ucReservation.CreateReservation,
	finalize *ucReservation.FinalizeTotals,
	updateStatus *ucReservation.UpdateStatus,
	slots *ucReservation.AvailableSlots,
	loyalty *ucReservation.LoyaltyStats,
	queries *ucReservation.Queries,
) *ReservationHandler {
	return &ReservationHandler{
		create:       create,
		finalize:     finalize,
		updateStatus: updateStatus,
		slots:        slots,
		loyalty:      loyalty,
		queries:      queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	RegisteredUserID *uint  `json:"registered_user_id"`
	IsGuest          bool   `json:"is_guest"`
	GuestName        string `json:"guest_name"`
	GuestPhone       string `json:"guest_phone"`
	GuestEmail       string `json:"guest_email"`

	BarberID uint   `json:"barber_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes"`

	Services []ucReservation.ItemInput `json:"services"`
	Products []ucReservation.ItemInput `json:"products"`
}

type UpdateStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	CancelledBy string `json:"cancelled_by"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		UserID:     req.RegisteredUserID,
		IsGuest:    req.IsGuest,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		BarberID:   req.BarberID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
		Services:   req.Services,
		Products:   req.Products,
	})
	if err != nil {
		// The booking itself committed; only totals are missing.
		if httperr.IsTotalsPending(err) && out != nil {
			httpresp.Created(c, out)
			return
		}
		writeUsecaseError(c, err)
		return
	}

	httpresp.Created(c, out)
}

// ======================================================
// READS
// ======================================================

func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	out, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ReservationHandler) List(c *gin.Context) {
	out, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	out, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReservationHandler) ListByGuestPhone(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		httperr.BadRequest(c, "phone_required", "Guest phone is required.")
		return
	}

	out, err := h.queries.ListByGuestPhone(c.Request.Context(), phone)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReservationHandler) ListByBarber(c *gin.Context) {
	barberID, ok := paramUint(c, "barber_id")
	if !ok {
		return
	}

	out, err := h.queries.ListByBarber(c.Request.Context(), barberID, c.Query("date"))
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReservationHandler) ListByStatus(c *gin.Context) {
	out, err := h.queries.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReservationHandler) Stats(c *gin.Context) {
	out, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *ReservationHandler) AvailableSlots(c *gin.Context) {
	barberStr := c.Query("barber_id")
	date := c.Query("date")
	if barberStr == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "barber_id and date are required.")
		return
	}

	barberID, err := strconv.ParseUint(barberStr, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id must be numeric.")
		return
	}

	out, err := h.slots.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// LOYALTY STATS
// ======================================================

func (h *ReservationHandler) LoyaltyStats(c *gin.Context) {
	userID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	out, err := h.loyalty.Execute(c.Request.Context(), userID)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// STATUS UPDATE
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "status_required", "Status is required.")
		return
	}

	out, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status, req.CancelledBy)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// FINALIZE (repair path for totals_pending bookings)
// ======================================================

func (h *ReservationHandler) Finalize(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	out, err := h.finalize.Execute(c.Request.Context(), id)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// DELETE (admin)
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.queries.Delete(c.Request.Context(), id); err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}
