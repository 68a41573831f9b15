package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"cinema_ops/constants"
	"cinema_ops/database"
	"cinema_ops/helper"
	"cinema_ops/model"
	"cinema_ops/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseTicket sells one seat for one screening. The whole settlement is
// a single transaction: variant pricing, loyalty redemption, payment
// validation, change breakdown, seat reservation and point credit either
// all happen or none do.
func PurchaseTicket(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")
	input, ok := c.Locals("purchaseTicketInput").(model.PurchaseTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var screening model.Screening
	if err := tx.Preload("Movie").Where("public_code = ?", code).First(&screening).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
	}
	if screening.StartTime.Before(time.Now()) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Screening already started", nil)
	}

	var stSeat model.ScreeningSeat
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Seat").
		Where("seat_id = ? AND screening_id = ?", input.Seat.SeatId, screening.ID).
		First(&stSeat).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Seat not in this screening", err)
	}

	// Variant pricing off the screening base price and the seat weight.
	facePrice := helper.RoundMoney(screening.Price * stSeat.Seat.PriceModifier())
	price, err := helper.ComputeTicketPrice(input.Seat.Kind, facePrice)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid ticket kind", err, "kind")
	}
	surcharge := 0.0
	if input.IsAdvance {
		surcharge = helper.AdvanceSurcharge
	}

	// Resolve the loyalty customer, locking the row so concurrent
	// purchases by the same customer serialize on the balance.
	var customer *model.Customer
	email := input.CustomerEmail
	if cust, ok := c.Locals("customer").(*model.Customer); ok && cust != nil {
		email = cust.Email
	}
	if email != "" {
		var found model.Customer
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", email).First(&found).Error
		if err == nil {
			customer = &found
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load customer", err)
		}
	}

	// Redemption shortfall is recoverable: the sale proceeds undiscounted.
	pointsSpent := 0
	redemptionRefused := false
	discount := 0.0
	if input.RedeemPoints > 0 {
		if customer != nil && customer.SpendPoints(input.RedeemPoints) {
			pointsSpent = input.RedeemPoints
			discount = helper.RedemptionDiscount(pointsSpent, price)
		} else {
			redemptionRefused = true
		}
	}

	owed := helper.RoundMoney(price + surcharge - discount)
	change, breakdown, err := helper.ComputeChange(owed, input.AmountPaid)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, model.ErrInsufficientPayment) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusPaymentRequired, constants.PAYMENT_INSUFFICIENT, err, "amountPaid")
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Settlement failed", err)
	}

	if err := stSeat.Reserve(input.HeldBy); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_NOT_AVAILABLE, err)
	}

	now := time.Now()
	ticket := model.Ticket{
		TicketCode:       "TKT-" + uuid.New().String()[:10],
		Kind:             input.Seat.Kind,
		DiscountReason:   input.Seat.DiscountReason,
		SeatRow:          stSeat.SeatRow,
		SeatNumber:       stSeat.SeatNumber,
		FacePrice:        facePrice,
		Price:            price,
		IsAdvance:        input.IsAdvance,
		AdvanceSurcharge: surcharge,
		PaymentMethod:    input.PaymentMethod,
		AmountPaid:       input.AmountPaid,
		ChangeAmount:     change,
		ChangeBreakdown:  breakdown,
		PointsSpent:      pointsSpent,
		PurchasedAt:      now,
		Status:           model.TicketIssued,
		ScreeningId:      screening.ID,
		SeatId:           stSeat.SeatId,
		ScreeningSeatId:  stSeat.ID,
	}
	if customer != nil {
		ticket.CustomerId = &customer.ID
		ticket.PointsEarned = helper.EarnedPoints(owed)
	}

	if err := tx.Create(&ticket).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create ticket", err)
	}

	stSeat.TicketId = &ticket.ID
	if err := tx.Save(&stSeat).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reserve seat", err)
	}

	if customer != nil {
		customer.EarnPoints(ticket.PointsEarned)
		if err := tx.Save(customer).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update loyalty balance", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	PublishSeatState(screening.ID)

	if email != "" {
		sendTicketReceipt(&ticket, &screening, email)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"ticket":            ticket,
		"owed":              owed,
		"change":            change,
		"changeBreakdown":   breakdown,
		"redemptionRefused": redemptionRefused,
		"pointsEarned":      ticket.PointsEarned,
	})
}

func sendTicketReceipt(ticket *model.Ticket, screening *model.Screening, email string) {
	token, err := helper.GenerateGateToken(helper.GateClaims{
		TicketCode:  ticket.TicketCode,
		ScreeningId: screening.ID,
	}, screening.EndTime)
	if err != nil {
		log.Printf("gate token for %s: %v", ticket.TicketCode, err)
		return
	}
	qr, err := utils.GenerateQRCode(token, 256)
	if err != nil {
		log.Printf("gate QR for %s: %v", ticket.TicketCode, err)
		qr = nil
	}

	f := helper.DefaultMoneyFormat
	utils.SendTicketReceiptEmail(email, utils.TicketReceiptData{
		TicketCode:    ticket.TicketCode,
		MovieTitle:    screening.Movie.Title,
		Screening:     screening.StartTime.Format("2006-01-02 15:04"),
		Seat:          fmt.Sprintf("%s%d", ticket.SeatRow, ticket.SeatNumber),
		KindLabel:     helper.TicketKindLabel(ticket.Kind, ticket.DiscountReason),
		Price:         helper.FormatMoney(ticket.Price, f),
		Paid:          helper.FormatMoney(ticket.AmountPaid, f),
		Change:        helper.FormatMoney(ticket.ChangeAmount, f),
		ChangeLines:   ticket.ChangeBreakdown.Lines(),
		PointsEarned:  ticket.PointsEarned,
		PointsSpent:   ticket.PointsSpent,
		PaymentMethod: ticket.PaymentMethod,
	}, qr)
}

// CheckInTicket marks attendance at the gate. It accepts either a scanned
// gate token or a plain ticket code from the counter.
func CheckInTicket(c *fiber.Ctx) error {
	var input struct {
		Token      string `json:"token"`
		TicketCode string `json:"ticketCode"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
	}

	code := input.TicketCode
	if input.Token != "" {
		claims, err := helper.ParseGateToken(input.Token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid gate token", err)
		}
		code = claims.TicketCode
	}
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ticket code or token required", nil)
	}

	var ticket model.Ticket
	if err := database.DB.Where("ticket_code = ?", code).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ticket", err)
	}

	if err := ticket.CheckIn(time.Now()); err != nil {
		if errors.Is(err, model.ErrDoubleCheckIn) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ALREADY_CHECKED_IN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ticket cannot be checked in", err)
	}
	if err := database.DB.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update ticket", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticketCode":  ticket.TicketCode,
		"checkedInAt": ticket.CheckedInAt,
	})
}

// CancelTicket voids an unused ticket and releases its seat. Refunds are
// out of scope; the seat simply goes back on sale.
func CancelTicket(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("ticketCode")

	tx := db.Begin()

	var ticket model.Ticket
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("ticket_code = ?", code).First(&ticket).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ticket", err)
	}
	if ticket.Status != model.TicketIssued {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only issued tickets can be cancelled", model.ErrTicketNotActive)
	}

	var stSeat model.ScreeningSeat
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stSeat, ticket.ScreeningSeatId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch seat", err)
	}
	if err := stSeat.Release(); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, "Seat is not reserved", err)
	}
	if err := tx.Save(&stSeat).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to release seat", err)
	}

	now := time.Now()
	ticket.Status = model.TicketCancelled
	ticket.CancelledAt = &now

	// Claw back the points this ticket earned, as far as the balance
	// allows.
	if ticket.CustomerId != nil && ticket.PointsEarned > 0 {
		var customer model.Customer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&customer, *ticket.CustomerId).Error; err == nil {
			customer.SpendPoints(ticket.PointsEarned)
			if err := tx.Save(&customer).Error; err != nil {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update loyalty balance", err)
			}
		}
	}

	if err := tx.Save(&ticket).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to cancel ticket", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	PublishSeatState(ticket.ScreeningId)
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func GetTicketByCode(c *fiber.Ctx) error {
	code := c.Params("ticketCode")

	var ticket model.Ticket
	if err := database.DB.Preload("Screening").Preload("Screening.Movie").
		Where("ticket_code = ?", code).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ticket", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetTicketReceipt renders the printable receipt text.
func GetTicketReceipt(c *fiber.Ctx) error {
	code := c.Params("ticketCode")

	var ticket model.Ticket
	if err := database.DB.Preload("Screening").Preload("Screening.Movie").
		Where("ticket_code = ?", code).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(helper.TicketReceipt(&ticket, ticket.Screening.Movie.Title, helper.DefaultMoneyFormat))
}

// GetTicketQR returns the gate QR PNG for a ticket.
func GetTicketQR(c *fiber.Ctx) error {
	code := c.Params("ticketCode")

	var ticket model.Ticket
	if err := database.DB.Preload("Screening").
		Where("ticket_code = ?", code).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	token, err := helper.GenerateGateToken(helper.GateClaims{
		TicketCode:  ticket.TicketCode,
		ScreeningId: ticket.ScreeningId,
	}, ticket.Screening.EndTime)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sign gate token", err)
	}
	qr, err := utils.GenerateQRCode(token, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render QR", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qr)
}

func GetTickets(c *fiber.Ctx) error {
	var input model.FilterTicketInput
	if err := c.QueryParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
	}

	query := database.DB.Model(&model.Ticket{})
	if input.ScreeningId > 0 {
		query = query.Where("screening_id = ?", input.ScreeningId)
	}
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	if input.StartDate != nil {
		query = query.Where("purchased_at >= ?", *input.StartDate)
	}
	if input.EndDate != nil {
		query = query.Where("purchased_at < ?", *input.EndDate)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count tickets", err)
	}

	var tickets []model.Ticket
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("purchased_at DESC").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tickets", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       tickets,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

// ExpireTickets voids issued tickets whose screening started more than 30
// minutes ago without a check-in. Wired to the minutely cron in main.
func ExpireTickets() {
	db := database.DB
	now := time.Now()

	var expiredTickets []model.Ticket
	err := db.
		Joins("JOIN screenings ON screenings.id = tickets.screening_id").
		Where("tickets.status = ? AND screenings.start_time < ?", model.TicketIssued, now.Add(-30*time.Minute)).
		Find(&expiredTickets).Error
	if err != nil {
		log.Printf("ticket expiry scan: %v", err)
		return
	}
	if len(expiredTickets) == 0 {
		return
	}

	for _, ticket := range expiredTickets {
		ticket.Status = model.TicketExpired
		if err := db.Save(&ticket).Error; err != nil {
			log.Printf("ticket expiry %s: %v", ticket.TicketCode, err)
		}
	}
	log.Printf("expired %d unclaimed tickets", len(expiredTickets))
}
