package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Handlers
// translate it to a 404; everything else surfaces as a store error.
var ErrNotFound = errors.New("record not found")

// ErrInUse is returned when deleting a row that dependent rows still
// reference. The UI check against dependents is advisory only; the
// foreign keys are the real guard.
var ErrInUse = errors.New("record is referenced by other records")
