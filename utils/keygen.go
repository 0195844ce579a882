package utils

import (
	"math/rand"
	"time"

	"github.com/lessonbooker/server/models"
	"gorm.io/gorm"
)

const registrationKeyLength = 16
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueRegistrationKey produces a signup key not yet present
// in the registration_keys table.
func GenerateUniqueRegistrationKey(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, registrationKeyLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		key := string(b)

		var existing models.RegistrationKey
		err := tx.Where("key = ?", key).First(&existing).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return key, nil
			}
			return "", err
		}
	}
}
