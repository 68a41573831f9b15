package validate

import (
	"errors"
	"fmt"
	"strconv"

	"cinema_ops/constants"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById parses the numeric path param named key and stashes it in locals
// as "<key>".
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.ParseUint(params, 10, 64)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Id must be a number", errors.New("params invalid"))
		}

		c.Locals(key, uint(valueKey))
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if len(input.IDs) == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ids to delete must not be empty", nil, "ids")
		}

		c.Locals("deleteIds", input)
		return c.Next()
	}
}

// parseAndValidate fills input from the body and runs struct validation.
// It writes the error response itself and reports whether to continue.
func parseAndValidate(c *fiber.Ctx, input any) bool {
	if err := c.BodyParser(input); err != nil {
		utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
		return false
	}
	if err := validate.Struct(input); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
		return false
	}
	return true
}
