package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

// GenerateBookingReference returns a human readable booking reference.
// Format: EVT-YYYYMMDD-HHMMSS-RANDOM
func GenerateBookingReference(now time.Time) string {
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("EVT-%s-%s-%s", datePart, timePart, randomPart)
}
