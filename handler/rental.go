package handler

import (
	"errors"
	"fmt"
	"time"

	"cinema_ops/constants"
	"cinema_ops/database"
	"cinema_ops/helper"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRental books a room for a private window. Overlaps with other
// confirmed rentals or with screenings in the same room are rejected.
func CreateRental(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("createRentalInput").(model.CreateRentalInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := db.Begin()

	var room model.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, input.RoomId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err, "roomId")
	}
	if room.Status != model.RoomAvailable {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room is not available", nil, "roomId")
	}

	var overlapping int64
	if err := tx.Model(&model.RoomRental{}).
		Where("room_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			input.RoomId, model.RentalConfirmed, input.EndTime, input.StartTime).
		Count(&overlapping).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check rentals", err)
	}
	if overlapping > 0 {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Room already rented in this window", nil, "startTime")
	}

	if err := tx.Model(&model.Screening{}).
		Where("room_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			input.RoomId, model.ScreeningEnded, input.EndTime, input.StartTime).
		Count(&overlapping).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check screenings", err)
	}
	if overlapping > 0 {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Room has a screening in this window", nil, "startTime")
	}

	rental := model.RoomRental{
		RoomId:      input.RoomId,
		RenterName:  input.RenterName,
		RenterEmail: input.RenterEmail,
		Phone:       input.Phone,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Price:       helper.CalculateRentalPrice(&room, input.StartTime, input.EndTime),
		Status:      model.RentalConfirmed,
	}
	if err := tx.Create(&rental).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create rental", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	window := fmt.Sprintf("%s to %s",
		rental.StartTime.Format("2006-01-02 15:04"),
		rental.EndTime.Format("2006-01-02 15:04"))
	utils.SendRentalConfirmation(rental.RenterEmail, rental.RenterName, room.Name, window,
		helper.FormatMoney(rental.Price, helper.DefaultMoneyFormat))

	return utils.SuccessResponse(c, fiber.StatusCreated, rental)
}

func GetRentals(c *fiber.Ctx) error {
	query := database.DB.Model(&model.RoomRental{})
	if roomId := c.QueryInt("roomId"); roomId > 0 {
		query = query.Where("room_id = ?", roomId)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rentals []model.RoomRental
	if err := query.Order("start_time ASC").Find(&rentals).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch rentals", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rentals)
}

func CancelRental(c *fiber.Ctx) error {
	db := database.DB
	rentalId, ok := c.Locals("rentalId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var rental model.RoomRental
	if err := db.First(&rental, rentalId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Rental not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch rental", err)
	}
	if rental.Status != model.RentalConfirmed {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Rental is not confirmed", nil)
	}

	now := time.Now()
	rental.Status = model.RentalCancelled
	rental.CancelledAt = &now
	if err := db.Save(&rental).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to cancel rental", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rental)
}
