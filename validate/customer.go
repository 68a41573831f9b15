package validate

import (
	"cinema_ops/constants"
	"cinema_ops/helper"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
)

func RegisterCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterCustomerInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		existing, err := helper.GetCustomerByEmail(input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check email", err)
		}
		if existing != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMAIL_ALREADY_EXISTS, nil, "email")
		}

		c.Locals("registerCustomerInput", input)
		return c.Next()
	}
}

func EditCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCustomerInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("editCustomerInput", input)
		return c.Next()
	}
}
