package handler

import (
	"errors"
	"strconv"

	"cinema_ops/constants"
	"cinema_ops/database"
	"cinema_ops/helper"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func RegisterCustomer(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("registerCustomerInput").(model.RegisterCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	customer := model.Customer{
		UserName: input.UserName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hash,
		IsActive: true,
	}
	if err := db.Create(&customer).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMAIL_ALREADY_EXISTS, err, "email")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, customer)
}

func GetCustomers(c *fiber.Ctx) error {
	var input model.FilterCustomer
	if err := c.QueryParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
	}

	query := database.DB.Model(&model.Customer{})
	if input.SearchKey != "" {
		key := "%" + input.SearchKey + "%"
		query = query.Where("email ILIKE ? OR user_name ILIKE ? OR phone ILIKE ?", key, key, key)
	}
	if input.Active != nil {
		query = query.Where("is_active = ?", *input.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count customers", err)
	}

	var customers []model.Customer
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("created_at DESC").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch customers", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId, err := strconv.ParseUint(c.Params("customerId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer id", err)
	}

	var customer model.Customer
	if err := database.DB.Preload("Tickets", func(db *gorm.DB) *gorm.DB {
		return db.Order("purchased_at DESC").Limit(20)
	}).First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch customer", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func EditCustomer(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("editCustomerInput").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	customerId, ok := c.Locals("customerId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch customer", err)
	}

	if err := copier.CopyWithOption(&customer, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to apply changes", err)
	}
	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update customer", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// GetCustomerPoints reports the loyalty balance and how much it is worth
// against a ticket redemption.
func GetCustomerPoints(c *fiber.Ctx) error {
	customerId, err := strconv.ParseUint(c.Params("customerId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer id", err)
	}

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch customer", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"points":          customer.Points,
		"redemptionValue": helper.RoundMoney(float64(customer.Points) * helper.RedeemPointValue),
	})
}
