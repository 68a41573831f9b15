package validate

import (
	"cinema_ops/model"

	"github.com/gofiber/fiber/v2"
)

func CreateFoodOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFoodOrderInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("createFoodOrderInput", input)
		return c.Next()
	}
}
