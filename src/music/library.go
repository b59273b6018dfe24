package music

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrAlbumNotFound = fmt.Errorf("%w: album not found", ErrNotFound)
	ErrAlbumExists   = fmt.Errorf("%w: album already in the library", ErrDuplicate)
)

// Library is the interface for managing the albums of the catalog.
// It's our primary repository interface for the library domain.
type Library interface {
	// AddAlbum stores album, ErrAlbumExists if its id is taken.
	AddAlbum(ctx context.Context, album *Album) error
	// GetAlbum returns ErrAlbumNotFound for unknown ids.
	GetAlbum(ctx context.Context, id uuid.UUID) (*Album, error)
	GetAlbums(ctx context.Context) ([]*Album, error)
	GetAlbumsCount(ctx context.Context) (int, error)
	DeleteAlbum(ctx context.Context, id uuid.UUID) error
}
