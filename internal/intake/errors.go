package intake

import "errors"

// ErrInvalidKind indicates a form kind outside the known catalog.
var ErrInvalidKind = errors.New("invalid form kind")
