package database

import (
	"errors"

	"gorm.io/gorm"
	sqlite "modernc.org/sqlite"
)

// SQLite extended result codes for constraint violations. gorm's
// TranslateError only recognizes the mattn driver's error types, so
// the modernc codes have to be checked directly.
const (
	sqliteConstraintUnique     = 2067
	sqliteConstraintPrimaryKey = 1555
)

// IsDuplicateKey reports whether err is a unique constraint violation,
// whichever driver produced it.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey
	}

	return false
}
