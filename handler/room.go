package handler

import (
	"errors"
	"strconv"

	"cinema_ops/constants"
	"cinema_ops/database"
	"cinema_ops/helper"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetRooms(c *fiber.Ctx) error {
	var rooms []model.Room
	if err := database.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch rooms", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

func GetRoomById(c *fiber.Ctx) error {
	roomId, err := strconv.ParseUint(c.Params("roomId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid room id", err)
	}

	var room model.Room
	if err := database.DB.Preload("Seats", func(db *gorm.DB) *gorm.DB {
		return db.Order("seats.id ASC")
	}).First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch room", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// CreateRoom creates the room and synthesizes its seat map in one
// transaction. The layout is generated exactly once; seats are never
// regenerated for an existing room.
func CreateRoom(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("createRoomInput").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := db.Begin()
	newRoom := &model.Room{
		Name:            input.Name,
		RoomNumber:      input.RoomNumber,
		Capacity:        input.Capacity,
		CoupleQuota:     input.CoupleQuota,
		AccessibleQuota: input.AccessibleQuota,
		Status:          model.RoomAvailable,
	}
	if input.HourlyRentalRate != nil {
		newRoom.HourlyRentalRate = *input.HourlyRentalRate
	}

	if err := tx.Create(newRoom).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create room", err)
	}

	seats := helper.GenerateSeatMap(input.Capacity, input.CoupleQuota, input.AccessibleQuota)
	if len(seats) == 0 {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Capacity must be positive", nil, "capacity")
	}
	for i := range seats {
		seats[i].RoomId = newRoom.ID
	}
	if err := tx.Create(&seats).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create seats", err)
	}

	var createdRoom model.Room
	if err := tx.Preload("Seats").First(&createdRoom, newRoom.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load created room", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	counts := helper.SeatKindCounts(seats)
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"room":            createdRoom,
		"capacityUnits":   helper.CountSeatUnits(seats),
		"coupleSeats":     counts[model.SeatCouple],
		"accessibleSeats": counts[model.SeatAccessible],
	})
}

func EditRoom(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("editRoomInput").(model.EditRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	roomId, ok := c.Locals("roomId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var room model.Room
	if err := db.First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch room", err)
	}

	// Capacity and quotas are immutable: the seat map is generated once.
	if err := copier.CopyWithOption(&room, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to apply changes", err)
	}

	if err := db.Save(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update room", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func DeleteRoom(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var screeningCount int64
	if err := db.Model(&model.Screening{}).Where("room_id IN ?", input.IDs).Count(&screeningCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check screenings", err)
	}
	if screeningCount > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room has scheduled screenings", nil, "ids")
	}

	tx := db.Begin()
	if err := tx.Where("room_id IN ?", input.IDs).Delete(&model.Seat{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete seats", err)
	}
	if err := tx.Delete(&model.Room{}, input.IDs).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete rooms", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

// GetRoomMap renders the room's seat grid as text. Without a screening
// code query all seats print as available; with one, reserved seats for
// that screening are marked.
func GetRoomMap(c *fiber.Ctx) error {
	roomId, err := strconv.ParseUint(c.Params("roomId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid room id", err)
	}

	var seats []model.Seat
	if err := database.DB.Where("room_id = ?", roomId).Order("id ASC").Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch seats", err)
	}
	if len(seats) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}

	reserved := map[uint]bool{}
	if code := c.Query("screening"); code != "" {
		var screening model.Screening
		if err := database.DB.Where("public_code = ?", code).First(&screening).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
		}
		var taken []model.ScreeningSeat
		if err := database.DB.Where("screening_id = ? AND status <> ?", screening.ID, model.SeatAvailable).
			Find(&taken).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch seat states", err)
		}
		for _, s := range taken {
			reserved[s.SeatId] = true
		}
	}

	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(helper.RenderSeatMap(seats, reserved))
}
