package helper

import (
	"errors"
	"log"
	"time"

	"cinema_ops/database"
	"cinema_ops/model"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// CreateScreeningSeats builds the per-screening availability rows, one per
// physical seat, all AVAILABLE. Bulk insert, same transaction as the
// screening itself.
func CreateScreeningSeats(tx *gorm.DB, screeningId uint, roomId uint) error {
	var seats []model.Seat
	if err := tx.Where("room_id = ?", roomId).Order("id ASC").Find(&seats).Error; err != nil {
		return err
	}
	if len(seats) == 0 {
		return errors.New("room has no seats")
	}

	screeningSeats := make([]model.ScreeningSeat, 0, len(seats))
	for _, seat := range seats {
		screeningSeats = append(screeningSeats, model.ScreeningSeat{
			ScreeningId: screeningId,
			SeatId:      seat.ID,
			SeatRow:     seat.Row,
			SeatNumber:  seat.Number,
			Status:      model.SeatAvailable,
		})
	}
	return tx.Create(&screeningSeats).Error
}

var screeningScheduler gocron.Scheduler

// UpdateScreeningStatuses walks screenings through UPCOMING -> ONGOING ->
// ENDED based on the clock.
func UpdateScreeningStatuses() {
	db := database.DB
	now := time.Now()

	if err := db.Model(&model.Screening{}).
		Where("status = ? AND start_time <= ? AND end_time > ?", model.ScreeningUpcoming, now, now).
		Update("status", model.ScreeningOngoing).Error; err != nil {
		log.Printf("screening status update (ongoing): %v", err)
	}
	if err := db.Model(&model.Screening{}).
		Where("status <> ? AND end_time <= ?", model.ScreeningEnded, now).
		Update("status", model.ScreeningEnded).Error; err != nil {
		log.Printf("screening status update (ended): %v", err)
	}
}

func StartScreeningStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	screeningScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(UpdateScreeningStatuses),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("screening status scheduler started (every 5m)")
}

func StopScreeningStatusScheduler() {
	if screeningScheduler != nil {
		_ = screeningScheduler.Shutdown()
	}
}
