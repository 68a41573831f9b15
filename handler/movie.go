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

func GetMovies(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Movie{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var movies []model.Movie
	if err := query.Order("date_release DESC").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movies", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

func GetMovieBySlug(c *fiber.Ctx) error {
	var movie model.Movie
	if err := database.DB.Preload("Screenings", func(db *gorm.DB) *gorm.DB {
		return db.Where("status <> ?", model.ScreeningEnded).Order("start_time ASC")
	}).Where("slug = ?", c.Params("slug")).First(&movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movie", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func CreateMovie(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("createMovieInput").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := db.Begin()

	movie := model.Movie{
		Title:       input.Title,
		Slug:        helper.GenerateUniqueMovieSlug(tx, input.Title),
		DurationMin: input.DurationMin,
		Rating:      input.Rating,
		DateRelease: input.DateRelease,
		DateEnd:     input.DateEnd,
		Status:      model.MovieComingSoon,
	}
	if err := tx.Create(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Commit failed", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func EditMovie(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("editMovieInput").(model.EditMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	movieId, ok := c.Locals("movieId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movie", err)
	}

	if err := copier.CopyWithOption(&movie, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to apply changes", err)
	}
	if err := db.Save(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// UploadMoviePoster stores the poster on cloudinary and saves its URL.
func UploadMoviePoster(c *fiber.Ctx) error {
	movieId, err := strconv.ParseUint(c.Params("movieId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie id", err)
	}

	var movie model.Movie
	if err := database.DB.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movie", err)
	}

	file, err := c.FormFile("poster")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Poster file is required", err, "poster")
	}

	url, err := helper.UploadPoster(c.Context(), file, movie.Slug)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to upload poster", err)
	}

	movie.PosterUrl = &url
	if err := database.DB.Save(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovie(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var screeningCount int64
	if err := db.Model(&model.Screening{}).
		Where("movie_id IN ? AND status <> ?", input.IDs, model.ScreeningEnded).
		Count(&screeningCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check screenings", err)
	}
	if screeningCount > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Movie has scheduled screenings", nil, "ids")
	}

	if err := db.Delete(&model.Movie{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movies", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
