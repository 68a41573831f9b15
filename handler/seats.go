package handler

import (
	"fmt"
	"log"
	"time"

	"cinema_ops/constants"
	"cinema_ops/database"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

const HoldTimeout = 10 * time.Minute

// HoldSeat parks seats for a buyer session before purchase. Transitions
// run under row locks so two sessions cannot hold the same seat.
func HoldSeat(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	var input struct {
		SeatIds        []uint `json:"seatIds" validate:"required"`
		GuestSessionId string `json:"guestSessionId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
	}
	if len(input.SeatIds) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Seat IDs are required", nil)
	}

	heldBy := input.GuestSessionId
	if customer, ok := c.Locals("customer").(*model.Customer); ok && customer != nil {
		heldBy = fmt.Sprintf("USER_%d", customer.ID)
	} else if heldBy == "" {
		heldBy = "GUEST_" + uuid.New().String()
	}

	tx := db.Begin()

	var screening model.Screening
	if err := tx.Where("public_code = ?", code).First(&screening).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
	}
	if screening.StartTime.Before(time.Now()) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Screening already started", nil)
	}

	until := time.Now().Add(HoldTimeout)
	for _, seatId := range input.SeatIds {
		var stSeat model.ScreeningSeat
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("seat_id = ? AND screening_id = ?", seatId, screening.ID).
			First(&stSeat).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Seat %d not in this screening", seatId), err)
		}
		if err := stSeat.Hold(heldBy, until); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_NOT_AVAILABLE, err)
		}
		if err := tx.Save(&stSeat).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot hold seat", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}
	PublishSeatState(screening.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"heldSeatIds": input.SeatIds,
		"expiresAt":   until,
		"heldBy":      heldBy,
	})
}

// ReleaseSeat frees held seats; only the holding session may release.
func ReleaseSeat(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	var input struct {
		SeatIds []uint `json:"seatIds" validate:"required"`
		HeldBy  string `json:"heldBy" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
	}

	var screening model.Screening
	if err := db.Where("public_code = ?", code).First(&screening).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
	}

	tx := db.Begin()
	for _, seatId := range input.SeatIds {
		var stSeat model.ScreeningSeat
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("seat_id = ? AND screening_id = ?", seatId, screening.ID).
			First(&stSeat).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Seat %d not in this screening", seatId), err)
		}
		if err := stSeat.ReleaseHold(input.HeldBy); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, fmt.Sprintf("Seat %d is not held by this session", seatId), err)
		}
		if err := tx.Save(&stSeat).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot release seat", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}
	PublishSeatState(screening.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, "Released")
}

// ExpireSeatHolds sweeps lapsed holds back to AVAILABLE. Wired to the
// minutely cron in main.
func ExpireSeatHolds() {
	db := database.DB

	var expired []model.ScreeningSeat
	if err := db.Where("status = ? AND expired_at < ?", model.SeatHeld, time.Now()).
		Find(&expired).Error; err != nil {
		log.Printf("hold expiry scan: %v", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	screenings := map[uint]bool{}
	for _, seat := range expired {
		if err := db.Model(&seat).Updates(map[string]any{
			"status":     model.SeatAvailable,
			"held_by":    "",
			"expired_at": nil,
		}).Error; err != nil {
			log.Printf("hold expiry for seat %d: %v", seat.SeatId, err)
			continue
		}
		screenings[seat.ScreeningId] = true
	}
	for id := range screenings {
		PublishSeatState(id)
	}
	log.Printf("released %d expired holds", len(expired))
}
