package library

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/contre95/pressing/src/features/config"
	"github.com/contre95/pressing/src/features/metrics"
	"github.com/contre95/pressing/src/music"
	"github.com/google/uuid"
	"github.com/gosimple/unidecode"
)

// ErrCatalogFull is returned when catalog.max_albums albums are already stored.
var ErrCatalogFull = fmt.Errorf("%w: the catalog cannot hold more albums", music.ErrCapacity)

// Service is the domain service for the library feature. Albums are not safe
// for concurrent use, so every album read and mutation goes through the
// service lock. Albums returned by the service must only be changed through
// its methods when they are shared between goroutines.
type Service struct {
	mu            sync.Mutex
	library       music.Library
	configManager *config.Manager
	metrics       *metrics.Collector
	now           func() time.Time
}

// NewService creates a new library service. collector may be nil.
func NewService(lib music.Library, cfgManager *config.Manager, collector *metrics.Collector) *Service {
	return &Service{
		library:       lib,
		configManager: cfgManager,
		metrics:       collector,
		now:           time.Now,
	}
}

// CreateAlbum builds a new album and adds it to the library.
func (s *Service) CreateAlbum(ctx context.Context, title, artist, genre string) (*music.Album, error) {
	album, err := music.NewAlbum(title, artist, genre)
	if err != nil {
		s.rejected("create_album", err, "title", title, "artist", artist, "genre", genre)
		return nil, err
	}
	if err := s.AddAlbum(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// AddAlbum adds an already built album to the library.
func (s *Service) AddAlbum(ctx context.Context, album *music.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit := s.configManager.Get().Catalog.MaxAlbums; limit > 0 {
		count, err := s.library.GetAlbumsCount(ctx)
		if err != nil {
			return fmt.Errorf("failed to count albums: %w", err)
		}
		if count >= limit {
			s.rejected("add_album", ErrCatalogFull, "limit", limit)
			return ErrCatalogFull
		}
	}
	if err := s.library.AddAlbum(ctx, album); err != nil {
		s.rejected("add_album", err, "album", album.ID())
		return err
	}
	s.metrics.AlbumCreated()
	slog.Info("Album added", "id", album.ID(), "title", album.Title(), "artist", album.Artist(), "genre", album.Genre())
	s.refreshGenreGauge(ctx)
	return nil
}

// GetAlbum returns the album with the given id.
func (s *Service) GetAlbum(ctx context.Context, id uuid.UUID) (*music.Album, error) {
	return s.library.GetAlbum(ctx, id)
}

// GetAlbums returns all albums ordered by title, then artist.
func (s *Service) GetAlbums(ctx context.Context) ([]*music.Album, error) {
	albums, err := s.library.GetAlbums(ctx)
	if err != nil {
		slog.Error("GetAlbums failed", "error", err)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slices.SortFunc(albums, func(a, b *music.Album) int {
		if c := cmp.Compare(a.Title(), b.Title()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Artist(), b.Artist()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return albums, nil
}

// DeleteAlbum removes an album from the library.
func (s *Service) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.library.DeleteAlbum(ctx, id); err != nil {
		return err
	}
	slog.Info("Album deleted", "id", id)
	s.refreshGenreGauge(ctx)
	return nil
}

// AddTrack adds track to the first free slot of the album.
func (s *Service) AddTrack(ctx context.Context, albumID uuid.UUID, track *music.Track) error {
	return s.update(ctx, albumID, "add_track", func(album *music.Album) error {
		if err := album.AddTrack(track); err != nil {
			return err
		}
		if track != nil {
			s.metrics.TrackAdded()
			slog.Debug("Track added", "album", albumID, "track", track.Name(), "count", album.TrackCount())
		}
		return nil
	})
}

// RemoveTrack removes track from the album.
func (s *Service) RemoveTrack(ctx context.Context, albumID uuid.UUID, track *music.Track) error {
	return s.update(ctx, albumID, "remove_track", func(album *music.Album) error {
		album.RemoveTrack(track)
		return nil
	})
}

// SwapTracks exchanges the slots of two tracks of the album.
func (s *Service) SwapTracks(ctx context.Context, albumID uuid.UUID, t1, t2 *music.Track) error {
	return s.update(ctx, albumID, "swap_tracks", func(album *music.Album) error {
		return album.SwapTracks(t1, t2)
	})
}

// SetPrice sets the album price.
func (s *Service) SetPrice(ctx context.Context, albumID uuid.UUID, price float64) error {
	return s.update(ctx, albumID, "set_price", func(album *music.Album) error {
		return album.SetPrice(price)
	})
}

// SetAvailableOnline changes the online availability of the album and
// reports whether its price had to be lowered to the online cap.
func (s *Service) SetAvailableOnline(ctx context.Context, albumID uuid.UUID, availableOnline bool) (bool, error) {
	clamped := false
	err := s.update(ctx, albumID, "set_available_online", func(album *music.Album) error {
		before := album.Price()
		if album.SetAvailableOnline(availableOnline) {
			clamped = true
			s.metrics.PriceClamped()
			slog.Info("Album price lowered to the online cap", "album", albumID, "from", before, "to", album.Price())
		}
		return nil
	})
	return clamped, err
}

// SetAlbumCover replaces or clears the cover of the album.
func (s *Service) SetAlbumCover(ctx context.Context, albumID uuid.UUID, name, artist string, width, height int) error {
	return s.update(ctx, albumID, "set_album_cover", func(album *music.Album) error {
		return album.SetAlbumCover(name, artist, width, height)
	})
}

// SetAlbumCoverFromImage sets the cover of the album using the dimensions of
// the encoded image read from r.
func (s *Service) SetAlbumCoverFromImage(ctx context.Context, albumID uuid.UUID, name, artist string, r io.Reader) error {
	cover, err := music.NewAlbumCoverFromImage(name, artist, r)
	if err != nil {
		s.rejected("set_album_cover", err, "album", albumID)
		return err
	}
	return s.SetAlbumCover(ctx, albumID, cover.Name(), cover.Artist(), cover.Width(), cover.Height())
}

// Search returns the albums whose title or artist contains query, ignoring
// case. With catalog.search_transliterate accents are ignored too.
func (s *Service) Search(ctx context.Context, query string) ([]*music.Album, error) {
	albums, err := s.GetAlbums(ctx)
	if err != nil {
		return nil, err
	}
	translit := s.configManager.Get().Catalog.SearchTransliterate
	q := searchKey(strings.TrimSpace(query), translit)
	if q == "" {
		return albums, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []*music.Album
	for _, album := range albums {
		if strings.Contains(searchKey(album.Title(), translit), q) ||
			strings.Contains(searchKey(album.Artist(), translit), q) {
			found = append(found, album)
		}
	}
	slog.Debug("Search completed", "query", query, "count", len(found))
	return found, nil
}

func searchKey(s string, translit bool) string {
	if translit {
		s = unidecode.Unidecode(s)
	}
	return strings.ToLower(s)
}

// ReleaseLabel returns the formatted release date of the album, relative to
// the current date in the catalog timezone.
func (s *Service) ReleaseLabel(ctx context.Context, albumID uuid.UUID) (string, bool, error) {
	album, err := s.library.GetAlbum(ctx, albumID)
	if err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	label, ok := album.FormattedReleaseDateAt(s.now().In(s.configManager.Location()))
	return label, ok, nil
}

// Stats summarizes the catalog.
func (s *Service) Stats(ctx context.Context) (*metrics.CatalogStats, error) {
	albums, err := s.library.GetAlbums(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return metrics.Summarize(albums), nil
}

// update runs fn on the album under the service lock, counting failures.
func (s *Service) update(ctx context.Context, albumID uuid.UUID, operation string, fn func(*music.Album) error) error {
	album, err := s.library.GetAlbum(ctx, albumID)
	if err != nil {
		s.rejected(operation, err, "album", albumID)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(album); err != nil {
		s.rejected(operation, err, "album", albumID)
		return err
	}
	return nil
}

func (s *Service) rejected(operation string, err error, args ...any) {
	s.metrics.ValidationFailed(operation, err)
	slog.Warn("Catalog operation rejected", append([]any{"operation", operation, "error", err}, args...)...)
}

// refreshGenreGauge must be called with s.mu held.
func (s *Service) refreshGenreGauge(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	albums, err := s.library.GetAlbums(ctx)
	if err != nil {
		slog.Warn("Failed to refresh genre metrics", "error", err)
		return
	}
	s.metrics.SetGenreDistribution(metrics.Summarize(albums).GenreDistribution())
}
