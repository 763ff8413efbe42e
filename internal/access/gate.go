// Package access restricts the editing commands to a single user.
package access

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrUnauthorized = errors.New("not authorized")

type Gate struct {
	allowedUserID string
}

func NewGate(allowedUserID string) Gate {
	return Gate{allowedUserID: allowedUserID}
}

// Check fails with ErrUnauthorized for anyone but the allowed user.
// A gate without an allowed user rejects everybody
func (gate Gate) Check(userID string) error {
	if gate.allowedUserID == "" || userID != gate.allowedUserID {
		log.Warn().Msg(fmt.Sprintf("User %s is not authorized", userID))
		return ErrUnauthorized
	}
	return nil
}
