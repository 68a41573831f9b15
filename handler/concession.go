package handler

import (
	"errors"
	"time"

	"cinema_ops/constants"
	"cinema_ops/database"
	"cinema_ops/helper"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetConcessionItems(c *fiber.Ctx) error {
	var items []model.ConcessionItem
	if err := database.DB.Where("active = ?", true).Order("category, name").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch items", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

// CreateFoodOrder settles a concession sale through the same change
// calculator tickets use.
func CreateFoodOrder(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("createFoodOrderInput").(model.CreateFoodOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := db.Begin()

	var lines []model.FoodOrderItem
	total := 0.0
	for _, line := range input.Items {
		var item model.ConcessionItem
		if err := tx.Where("id = ? AND active = ?", line.ConcessionItemId, true).First(&item).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Item not on sale", err, "items")
		}
		lineTotal := helper.RoundMoney(item.Price * float64(line.Quantity))
		total = helper.RoundMoney(total + lineTotal)
		lines = append(lines, model.FoodOrderItem{
			ConcessionItemId: item.ID,
			ItemName:         item.Name,
			UnitPrice:        item.Price,
			Quantity:         line.Quantity,
			LineTotal:        lineTotal,
		})
	}

	change, breakdown, err := helper.ComputeChange(total, input.AmountPaid)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, model.ErrInsufficientPayment) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusPaymentRequired, constants.PAYMENT_INSUFFICIENT, err, "amountPaid")
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Settlement failed", err)
	}

	now := time.Now()
	order := model.FoodOrder{
		PublicCode:      "ORD-" + uuid.New().String()[:8],
		Status:          model.FoodOrderPaid,
		TotalAmount:     total,
		PaymentMethod:   input.PaymentMethod,
		AmountPaid:      input.AmountPaid,
		ChangeAmount:    change,
		ChangeBreakdown: breakdown,
		PaidAt:          &now,
	}
	if input.CustomerEmail != "" {
		var customer model.Customer
		if err := tx.Where("email = ?", input.CustomerEmail).First(&customer).Error; err == nil {
			order.CustomerId = &customer.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load customer", err)
		}
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create order", err)
	}
	for i := range lines {
		lines[i].FoodOrderId = order.ID
	}
	if err := tx.Create(&lines).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create order lines", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	order.Items = lines
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"order":           order,
		"change":          change,
		"changeBreakdown": breakdown,
	})
}

func GetFoodOrders(c *fiber.Ctx) error {
	var input model.Pagination
	if err := c.QueryParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
	}

	query := database.DB.Model(&model.FoodOrder{}).Preload("Items")

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count orders", err)
	}

	var orders []model.FoodOrder
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch orders", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}
