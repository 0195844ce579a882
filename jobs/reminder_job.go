package jobs

import (
	"log"
	"time"

	"github.com/lessonbooker/server/database"
	"github.com/lessonbooker/server/models"
	"github.com/lessonbooker/server/websocket"
)

// SendLessonReminders nudges both parties of any lesson starting in
// roughly an hour. The push goes over the change-notification hub; the
// client surfaces it as an upcoming-lesson banner. Runs every 5
// minutes, so the one-hour mark is matched with a 5-minute window.
func SendLessonReminders() {
	log.Println("Running job: SendLessonReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcoming []models.Booking
	err := database.DB.
		Where("start_time BETWEEN ? AND ?", lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming lessons: %v", err)
		return
	}

	notifier := websocket.HubNotifier{}
	for _, booking := range upcoming {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)
		notifier.Emit(booking.StudentID.String())
		notifier.Emit(booking.InstructorID.String())
	}
}
