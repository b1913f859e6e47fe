package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrRoomBlockNotFound   = errors.New("room block not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrExhausted           = errors.New("room no longer available, choose another")
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
	ErrBucketFull          = errors.New("allocation bucket is full")
	ErrEventNotBookable    = errors.New("event is not open for bookings")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrPersistence = errors.New("persistence error")
)
