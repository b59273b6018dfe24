package music

import (
	"errors"
	"fmt"
)

// Error kinds. Every rule error below wraps exactly one of them, so callers can
// match either the specific rule or the broad kind with errors.Is.
var (
	ErrValidation = errors.New("invalid value")
	ErrDuplicate  = errors.New("duplicate")
	ErrCapacity   = errors.New("capacity exceeded")
	ErrNotFound   = errors.New("not found")
	ErrIndex      = errors.New("index out of range")
)

// Album errors
var (
	ErrEmptyArtist   = fmt.Errorf("%w: the artist cannot be null or empty", ErrValidation)
	ErrInvalidArtist = fmt.Errorf("%w: the artist contains invalid characters", ErrValidation)
	ErrInvalidGenre  = fmt.Errorf("%w: the genre is not a valid value", ErrValidation)
	ErrMinPrice      = fmt.Errorf("%w: the album price must be greater than MIN_PRICE", ErrValidation)
	ErrMaxPrice      = fmt.Errorf("%w: the album price must be less than MAX_PRICE (or 80%% of MAX_PRICE if the album is available online)", ErrValidation)

	ErrTrackExists    = fmt.Errorf("%w: the track already exists in this album", ErrDuplicate)
	ErrAlbumFull      = fmt.Errorf("%w: the album cannot hold more tracks", ErrCapacity)
	ErrTrackNotExists = fmt.Errorf("%w: some of the tracks does not exist in this album", ErrNotFound)
	ErrWrongIndex     = fmt.Errorf("%w: wrong index", ErrIndex)
)

// Album cover errors
var (
	ErrCoverName     = fmt.Errorf("%w: the name cannot be an empty value", ErrValidation)
	ErrCoverArtist   = fmt.Errorf("%w: the artist cannot be an empty value", ErrValidation)
	ErrMinResolution = fmt.Errorf("%w: width and height must be positive numbers", ErrValidation)
	ErrMaxResolution = fmt.Errorf("%w: the image resolution (i.e., width * height) cannot be greater than MAX_RESOLUTION", ErrValidation)
)

// Track errors
var (
	ErrMinDuration = fmt.Errorf("%w: duration must be greater than 0", ErrValidation)
)

// Kind returns the broad error kind wrapped by err, or nil when err is not one
// of this package's errors.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrDuplicate, ErrCapacity, ErrNotFound, ErrIndex} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
