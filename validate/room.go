package validate

import (
	"cinema_ops/database"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if input.Capacity <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Capacity must be positive", nil, "capacity")
		}
		if input.CoupleQuota < 0 || input.AccessibleQuota < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Quotas must not be negative", nil, "coupleQuota")
		}
		// Quotas beyond capacity are tolerated; generation stops at
		// capacity units regardless.

		var count int64
		if err := database.DB.Model(&model.Room{}).
			Where("room_number = ?", input.RoomNumber).Count(&count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check room number", err)
		}
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room number already in use", nil, "roomNumber")
		}

		c.Locals("createRoomInput", input)
		return c.Next()
	}
}

func EditRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditRoomInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("editRoomInput", input)
		return c.Next()
	}
}
