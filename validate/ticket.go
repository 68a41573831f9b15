package validate

import (
	"cinema_ops/constants"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
)

func PurchaseTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PurchaseTicketInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		// A discount is never silent: the variant must carry its reason.
		if input.Seat.Kind == model.TicketDiscounted && input.Seat.DiscountReason == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Discounted tickets need a reason", nil, "seat.discountReason")
		}
		if input.Seat.Kind == model.TicketFullPrice && input.Seat.DiscountReason != "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Full price tickets carry no discount reason", nil, "seat.discountReason")
		}
		if input.PaymentMethod != constants.PAYMENT_CASH && input.PaymentMethod != constants.PAYMENT_CARD {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown payment method", nil, "paymentMethod")
		}
		if input.RedeemPoints > 0 && input.CustomerEmail == "" && c.Locals("customer") == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Redeeming points needs a customer", nil, "redeemPoints")
		}

		c.Locals("purchaseTicketInput", input)
		return c.Next()
	}
}
