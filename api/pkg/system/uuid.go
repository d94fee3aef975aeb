package system

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	SessionPrefix = "ses_"
)

func GenerateUUID() string {
	return uuid.New().String()
}

func newID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateSessionID names one local upload attempt; the backend never sees
// it, it only keys logs and the single-active-session check.
func GenerateSessionID() string {
	return fmt.Sprintf("%s%s", SessionPrefix, newID())
}
