package middleware

import (
	"crypto/subtle"
	"errors"
	"os"

	"cinema_ops/constants"
	"cinema_ops/helper"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
)

// StaffOnly guards counter/admin endpoints with the shared staff key.
// Session auth is out of scope here; the key comes from the environment.
func StaffOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-Staff-Key")
		expected := os.Getenv("STAFF_API_KEY")
		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.STAFF_KEY_MISSING, errors.New("staff key mismatch"))
		}
		return c.Next()
	}
}

// OptionalCustomer resolves the customer from the X-Customer-Email header
// when present, so purchases can attach loyalty without a session.
func OptionalCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Get("X-Customer-Email")
		if email == "" {
			return c.Next()
		}
		customer, err := helper.GetCustomerByEmail(email)
		if err == nil && customer != nil {
			c.Locals("customer", customer)
		}
		return c.Next()
	}
}
