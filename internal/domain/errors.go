package domain

import "errors"

// ErrBoxOccupied is returned when a rental would double-book a box that
// already carries an active or overdue rental. The storage layer raises it
// from the partial unique index on open rentals.
var ErrBoxOccupied = errors.New("box already occupied by an active or overdue rental")
