package ui

import "github.com/google/uuid"

func newSessionID() string {
	uid, err := uuid.NewV6()
	if err != nil {
		return uuid.NewString()
	}
	return uid.String()
}
