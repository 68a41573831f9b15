package validate

import (
	"time"

	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRental() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRentalInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if input.StartTime.Before(time.Now()) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Start time is in the past", nil, "startTime")
		}

		c.Locals("createRentalInput", input)
		return c.Next()
	}
}
