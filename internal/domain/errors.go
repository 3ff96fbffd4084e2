package domain

import "errors"

var (
	ErrUnknownSet       = errors.New("unknown set")
	ErrSlotAlreadySetUp = errors.New("land slot already set up")
	ErrCardNotFound     = errors.New("card not found")
	ErrNoBasicLands     = errors.New("no basic lands")
	ErrInvalidRate      = errors.New("rate must be between 0 and 1")
	ErrInvalidPacks     = errors.New("packs must be between 1 and 100")
)
