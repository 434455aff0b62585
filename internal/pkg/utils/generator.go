package utils

import (
	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}
