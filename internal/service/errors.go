package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrInvalidStatus      = errors.New("invalid status transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// conflictOnDuplicate maps a unique-index violation onto ErrConflict. The
// services pre-check daily uniqueness before inserting, but two concurrent
// submissions can both pass the pre-check; the loser then hits the constraint
// and must surface the same conflict the pre-check would have reported.
func conflictOnDuplicate(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	}
	return err
}
