package validate

import (
	"time"

	"cinema_ops/database"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateScreening() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScreeningInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if input.StartTime.Before(time.Now()) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Start time is in the past", nil, "startTime")
		}

		// Reject double booking of the room.
		var overlapping int64
		if err := database.DB.Model(&model.Screening{}).
			Where("room_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				input.RoomId, model.ScreeningEnded, input.EndTime, input.StartTime).
			Count(&overlapping).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check screenings", err)
		}
		if overlapping > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Room already has a screening in this window", nil, "startTime")
		}

		c.Locals("createScreeningInput", input)
		return c.Next()
	}
}
