package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/resto-pos/dto"
	"github.com/danuartha/resto-pos/events"
	"github.com/danuartha/resto-pos/services"
	"github.com/danuartha/resto-pos/utils"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

// GetAllReservations -> list seluruh reservasi
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Service.GetAll()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", dto.NewReservationResponses(reservations))
}

// GetReservationByID -> detail 1 reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation_id")
	if !ok {
		return
	}

	reservation, err := rc.Service.GetByID(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", dto.NewReservationResponse(*reservation))
}

// CreateReservation -> buat reservasi; slot (meja, waktu) harus kosong
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.ReservationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Create(req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastReservationUpdate(*reservation)
	utils.InfoLogger.Printf("Reservation %d created for table %d at %s",
		reservation.ID, reservation.TableID, reservation.EventTime.Format(time.RFC3339))
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", dto.NewReservationResponse(*reservation))
}

// UpdateReservation -> partial update; perubahan waktu/meja dicek ulang konfliknya
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation_id")
	if !ok {
		return
	}

	var req dto.ReservationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Update(id, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastReservationUpdate(*reservation)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", dto.NewReservationResponse(*reservation))
}

// DeleteReservation
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation_id")
	if !ok {
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"reservation_id": id})
}

// GetReservationsByStatus -> filter per nama status
func (rc *ReservationController) GetReservationsByStatus(c *gin.Context) {
	status := c.Query("status")

	reservations, err := rc.Service.GetByStatus(status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservations with status: "+status, dto.NewReservationResponses(reservations))
}

// GetReservationsByTableAndRange -> kalender satu meja pada rentang waktu
func (rc *ReservationController) GetReservationsByTableAndRange(c *gin.Context) {
	tableID, ok := parseIDParam(c, "table_id")
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid from parameter"))
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid to parameter"))
		return
	}

	reservations, err := rc.Service.GetByTableAndDateRange(tableID, from, to)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservations for table", dto.NewReservationResponses(reservations))
}
