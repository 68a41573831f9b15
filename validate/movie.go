package validate

import (
	"cinema_ops/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovieInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("createMovieInput", input)
		return c.Next()
	}
}

func EditMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditMovieInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("editMovieInput", input)
		return c.Next()
	}
}
