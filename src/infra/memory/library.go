package memory

import (
	"context"
	"sync"

	"github.com/contre95/pressing/src/music"
	"github.com/google/uuid"
)

// Library is an in-memory implementation of the music.Library interface
type Library struct {
	albums sync.Map // map[uuid.UUID]*music.Album
}

// NewLibrary creates a new in-memory library
func NewLibrary() *Library {
	return &Library{}
}

// AddAlbum adds a new album to the library
func (l *Library) AddAlbum(ctx context.Context, album *music.Album) error {
	if _, loaded := l.albums.LoadOrStore(album.ID(), album); loaded {
		return music.ErrAlbumExists
	}
	return nil
}

// GetAlbum returns a specific album by ID
func (l *Library) GetAlbum(ctx context.Context, id uuid.UUID) (*music.Album, error) {
	if value, ok := l.albums.Load(id); ok {
		if album, ok := value.(*music.Album); ok {
			return album, nil
		}
	}
	return nil, music.ErrAlbumNotFound
}

// GetAlbums returns all albums in no particular order
func (l *Library) GetAlbums(ctx context.Context) ([]*music.Album, error) {
	var albums []*music.Album
	l.albums.Range(func(key, value any) bool {
		if album, ok := value.(*music.Album); ok {
			albums = append(albums, album)
		}
		return true
	})
	return albums, nil
}

// GetAlbumsCount returns the number of albums
func (l *Library) GetAlbumsCount(ctx context.Context) (int, error) {
	n := 0
	l.albums.Range(func(key, value any) bool {
		n++
		return true
	})
	return n, nil
}

// DeleteAlbum removes an album from the library by ID
func (l *Library) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	if _, loaded := l.albums.LoadAndDelete(id); !loaded {
		return music.ErrAlbumNotFound
	}
	return nil
}
