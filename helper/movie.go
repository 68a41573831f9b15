package helper

import (
	"log"
	"time"

	"cinema_ops/database"
	"cinema_ops/model"

	"github.com/go-co-op/gocron/v2"
)

var movieScheduler gocron.Scheduler

// AutoUpdateMovieStatus flips movies to NOW_SHOWING on their release day
// and to ENDED once the end date has passed.
func AutoUpdateMovieStatus() {
	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)

	var movies []model.Movie
	if err := db.Find(&movies).Error; err != nil {
		log.Printf("movie status sweep: %v", err)
		return
	}

	for _, movie := range movies {
		updated := false

		release := movie.DateRelease.Truncate(24 * time.Hour)
		if !today.Before(release) && movie.Status == model.MovieComingSoon {
			movie.Status = model.MovieNowShowing
			updated = true
		}
		if movie.DateEnd != nil {
			end := movie.DateEnd.Truncate(24 * time.Hour)
			if today.After(end) && movie.Status == model.MovieNowShowing {
				movie.Status = model.MovieEnded
				updated = true
			}
		}

		if updated {
			if err := db.Save(&movie).Error; err != nil {
				log.Printf("movie status update '%s': %v", movie.Title, err)
			}
		}
	}
}

func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateMovieStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("movie status scheduler started (00:05)")
}

func StopMovieStatusScheduler() {
	if movieScheduler != nil {
		_ = movieScheduler.Shutdown()
	}
}
