package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/contre95/pressing/src/music"
	"github.com/google/uuid"
)

func newAlbum(t *testing.T, title string) *music.Album {
	t.Helper()
	album, err := music.NewAlbum(title, "miles davis", "jazz")
	if err != nil {
		t.Fatalf("NewAlbum() error = %v", err)
	}
	return album
}

func TestLibrary_AddGetDelete(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary()
	album := newAlbum(t, "Kind of Blue")

	if err := lib.AddAlbum(ctx, album); err != nil {
		t.Fatalf("AddAlbum() error = %v", err)
	}
	if err := lib.AddAlbum(ctx, album); !errors.Is(err, music.ErrAlbumExists) {
		t.Errorf("second AddAlbum() error = %v, want %v", err, music.ErrAlbumExists)
	}

	got, err := lib.GetAlbum(ctx, album.ID())
	if err != nil || got != album {
		t.Fatalf("GetAlbum() = %v, %v, want the stored album", got, err)
	}
	if _, err := lib.GetAlbum(ctx, uuid.New()); !errors.Is(err, music.ErrAlbumNotFound) {
		t.Errorf("GetAlbum(unknown) error = %v, want %v", err, music.ErrAlbumNotFound)
	}

	if err := lib.DeleteAlbum(ctx, album.ID()); err != nil {
		t.Fatalf("DeleteAlbum() error = %v", err)
	}
	if err := lib.DeleteAlbum(ctx, album.ID()); !errors.Is(err, music.ErrNotFound) {
		t.Errorf("second DeleteAlbum() error = %v, want %v", err, music.ErrNotFound)
	}
}

func TestLibrary_GetAlbumsAndCount(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary()
	for _, title := range []string{"Kind of Blue", "Milestones", "Sketches of Spain"} {
		if err := lib.AddAlbum(ctx, newAlbum(t, title)); err != nil {
			t.Fatalf("AddAlbum() error = %v", err)
		}
	}

	albums, err := lib.GetAlbums(ctx)
	if err != nil {
		t.Fatalf("GetAlbums() error = %v", err)
	}
	if len(albums) != 3 {
		t.Errorf("len(GetAlbums()) = %d, want 3", len(albums))
	}
	n, err := lib.GetAlbumsCount(ctx)
	if err != nil || n != 3 {
		t.Errorf("GetAlbumsCount() = %d, %v, want 3", n, err)
	}
}
