package handler

import (
	"errors"
	"fmt"
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

// CreateScreening schedules a showing and bulk-creates its seat inventory
// (one AVAILABLE ScreeningSeat per physical seat) in the same transaction.
func CreateScreening(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("createScreeningInput").(model.CreateScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := db.Begin()

	var room model.Room
	if err := tx.First(&room, input.RoomId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err, "roomId")
	}
	if room.Status != model.RoomAvailable {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room is not available", nil, "roomId")
	}
	var movie model.Movie
	if err := tx.First(&movie, input.MovieId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, err, "movieId")
	}

	price := helper.CalculateBasePrice(input.StartTime, input.Format)
	if input.Price != nil {
		price = helper.RoundMoney(*input.Price)
	}

	screening := &model.Screening{
		PublicCode: "SCR-" + uuid.New().String()[:8],
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Price:      price,
		Status:     model.ScreeningUpcoming,
		Format:     input.Format,
		MovieId:    input.MovieId,
		RoomId:     input.RoomId,
	}
	if err := tx.Create(screening).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create screening", err)
	}

	if err := helper.CreateScreeningSeats(tx, screening.ID, room.ID); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create screening seats", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, screening)
}

func GetScreenings(c *fiber.Ctx) error {
	var input model.FilterScreeningInput
	if err := c.QueryParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_BODY, err)
	}

	query := database.DB.Model(&model.Screening{}).Preload("Movie").Preload("Room")
	if input.MovieId > 0 {
		query = query.Where("movie_id = ?", input.MovieId)
	}
	if input.RoomId > 0 {
		query = query.Where("room_id = ?", input.RoomId)
	}
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	if input.StartDate != "" {
		if t, err := time.Parse("2006-01-02", input.StartDate); err == nil {
			query = query.Where("start_time >= ?", t)
		}
	}
	if input.EndDate != "" {
		if t, err := time.Parse("2006-01-02", input.EndDate); err == nil {
			query = query.Where("start_time < ?", t.Add(24*time.Hour))
		}
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count screenings", err)
	}

	var screenings []model.Screening
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("start_time ASC").Find(&screenings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch screenings", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       screenings,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

// SeatUI is the per-seat shape sent to clients and over the live socket.
type SeatUI struct {
	Id           uint       `json:"id"`
	SeatId       uint       `json:"seatId"`
	Label        string     `json:"label"`
	Kind         string     `json:"kind"`
	Units        int        `json:"units"`
	Preferential bool       `json:"preferential"`
	Status       string     `json:"status"`
	HeldBy       string     `json:"heldBy,omitempty"`
	ExpiredAt    *time.Time `json:"expiredAt,omitempty"`
}

// FetchScreeningSeats groups the screening's seat states by row.
func FetchScreeningSeats(screeningId uint) (map[string][]SeatUI, error) {
	var seats []model.ScreeningSeat
	if err := database.DB.
		Preload("Seat").
		Where("screening_id = ?", screeningId).
		Order("id ASC").
		Find(&seats).Error; err != nil {
		return nil, err
	}

	result := make(map[string][]SeatUI)
	for _, s := range seats {
		result[s.SeatRow] = append(result[s.SeatRow], SeatUI{
			Id:           s.ID,
			SeatId:       s.SeatId,
			Label:        fmt.Sprintf("%s%d", s.SeatRow, s.SeatNumber),
			Kind:         string(s.Seat.Kind),
			Units:        s.Seat.Units,
			Preferential: s.Seat.Preferential,
			Status:       s.Status,
			HeldBy:       s.HeldBy,
			ExpiredAt:    s.ExpiredAt,
		})
	}
	return result, nil
}

func GetScreeningByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var screening model.Screening
	if err := database.DB.Preload("Movie").Preload("Room").
		Where("public_code = ?", code).First(&screening).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch screening", err)
	}

	seats, err := FetchScreeningSeats(screening.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch seats", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"screening": screening,
		"seats":     seats,
	})
}
