package database

import "errors"

// ErrNotReady is returned when a caller asks for the pool before the
// startup ping has succeeded.
var ErrNotReady = errors.New("database not ready")
