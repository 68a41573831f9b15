package model

import "time"

type MovieStatus string

const (
	MovieComingSoon MovieStatus = "COMING_SOON"
	MovieNowShowing MovieStatus = "NOW_SHOWING"
	MovieEnded      MovieStatus = "ENDED"
)

type Movie struct {
	DTO
	Title       string      `gorm:"not null" validate:"required" json:"title"`
	Slug        string      `gorm:"uniqueIndex;size:120" json:"slug"`
	DurationMin int         `validate:"required,gt=0" json:"durationMin"`
	Rating      string      `gorm:"size:8" json:"rating"` // G, PG, PG-13, R
	PosterUrl   *string     `json:"posterUrl"`
	Status      MovieStatus `gorm:"not null;default:'COMING_SOON'" json:"status"`
	DateRelease time.Time   `json:"dateRelease"`
	DateEnd     *time.Time  `json:"dateEnd"`

	Screenings []Screening `gorm:"foreignKey:MovieId" json:"screenings,omitempty"`
}

type CreateMovieInput struct {
	Title       string     `json:"title" validate:"required"`
	DurationMin int        `json:"durationMin" validate:"required,gt=0"`
	Rating      string     `json:"rating" validate:"omitempty,oneof=G PG PG-13 R"`
	DateRelease time.Time  `json:"dateRelease" validate:"required"`
	DateEnd     *time.Time `json:"dateEnd" validate:"omitempty,gtfield=DateRelease"`
}

type EditMovieInput struct {
	Title       *string      `json:"title"`
	DurationMin *int         `json:"durationMin" validate:"omitempty,gt=0"`
	Rating      *string      `json:"rating" validate:"omitempty,oneof=G PG PG-13 R"`
	Status      *MovieStatus `json:"status" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
	DateEnd     *time.Time   `json:"dateEnd"`
}
