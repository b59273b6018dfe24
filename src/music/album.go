package music

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Album pricing limits.
const (
	MinPrice       = 4.99
	MaxPrice       = 29.99
	MaxOnlinePrice = MaxPrice * 0.8
	DefaultPrice   = 14.99
)

// albumGenres are the only genre values an album accepts, already normalized.
var albumGenres = map[string]MusicGenre{
	"ROCK&ROLL": GenreRockNRoll,
	"JAZZ":      GenreJazz,
	"POP":       GenrePop,
	"DISCO":     GenreDisco,
	"CLASSICAL": GenreClassical,
}

var artistPattern = regexp.MustCompile(`^[A-Z][a-z]+(-[A-Z][a-z]+)*$`)

// Album is a priced record of an artist with an optional cover and up to
// MaxTracks tracks. Every setter validates its input and leaves the album
// unchanged on error.
type Album struct {
	id              uuid.UUID
	title           string
	artist          string
	genre           string
	releaseDate     time.Time
	availableOnline bool
	price           float64
	albumCover      *AlbumCover
	tracks          [MaxTracks]*Track
}

// NewAlbum creates an album with a fresh id and the default price.
func NewAlbum(title, artist, genre string) (*Album, error) {
	a := &Album{
		id:    uuid.New(),
		title: title,
		price: DefaultPrice,
	}
	if err := a.SetArtist(artist); err != nil {
		return nil, err
	}
	if err := a.SetGenre(genre); err != nil {
		return nil, err
	}
	return a, nil
}

// NewAlbumWithRelease creates an album and then applies the release date,
// online availability and price, in that order. The price is therefore
// checked against the online cap when availableOnline is true.
func NewAlbumWithRelease(title, artist, genre string, releaseDate time.Time, availableOnline bool, price float64) (*Album, error) {
	a, err := NewAlbum(title, artist, genre)
	if err != nil {
		return nil, err
	}
	a.SetReleaseDate(releaseDate)
	a.SetAvailableOnline(availableOnline)
	if err := a.SetPrice(price); err != nil {
		return nil, err
	}
	return a, nil
}

// NewAlbumWithCover is NewAlbumWithRelease followed by SetAlbumCover.
func NewAlbumWithCover(title, artist, genre string, releaseDate time.Time, availableOnline bool, price float64,
	coverName, coverArtist string, coverWidth, coverHeight int) (*Album, error) {
	a, err := NewAlbumWithRelease(title, artist, genre, releaseDate, availableOnline, price)
	if err != nil {
		return nil, err
	}
	if err := a.SetAlbumCover(coverName, coverArtist, coverWidth, coverHeight); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Album) ID() uuid.UUID { return a.id }

// SetID replaces the album id. uuid.Nil generates a new random id.
func (a *Album) SetID(id uuid.UUID) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	a.id = id
}

func (a *Album) Title() string { return a.title }

func (a *Album) SetTitle(title string) { a.title = title }

func (a *Album) Artist() string { return a.artist }

// SetArtist capitalizes every word of artist and joins them with hyphens,
// e.g. "miles davis" becomes "Miles-Davis". Only ASCII letters are accepted.
func (a *Album) SetArtist(artist string) error {
	words := splitWords(artist)
	if len(words) == 0 {
		return ErrEmptyArtist
	}
	for i, w := range words {
		words[i] = capitalize(w)
	}
	formatted := strings.Join(words, "-")
	if !artistPattern.MatchString(formatted) {
		slog.Debug("Rejected album artist", "artist", artist, "formatted", formatted)
		return ErrInvalidArtist
	}
	a.artist = formatted
	return nil
}

func (a *Album) Genre() string { return a.genre }

// SetGenre accepts ROCK&ROLL, JAZZ, POP, DISCO or CLASSICAL, ignoring case and
// surrounding whitespace.
func (a *Album) SetGenre(genre string) error {
	normalized := strings.ToUpper(strings.TrimSpace(genre))
	if _, ok := albumGenres[normalized]; !ok {
		slog.Debug("Rejected album genre", "genre", genre)
		return ErrInvalidGenre
	}
	a.genre = normalized
	return nil
}

// MusicGenre returns the enumerated genre matching the album genre.
func (a *Album) MusicGenre() (MusicGenre, bool) {
	g, ok := albumGenres[a.genre]
	return g, ok
}

// AlbumGenres returns the accepted album genre values, sorted.
func AlbumGenres() []string {
	genres := make([]string, 0, len(albumGenres))
	for g := range albumGenres {
		genres = append(genres, g)
	}
	slices.Sort(genres)
	return genres
}

func (a *Album) AvailableOnline() bool { return a.availableOnline }

// SetAvailableOnline never fails. Making the album available online while its
// price is above MaxOnlinePrice lowers the price to MaxOnlinePrice, and the
// returned value reports whether that happened.
func (a *Album) SetAvailableOnline(availableOnline bool) bool {
	a.availableOnline = availableOnline
	if availableOnline && a.price > MaxOnlinePrice {
		slog.Debug("Clamping online album price", "album", a.id, "from", a.price, "to", MaxOnlinePrice)
		a.price = MaxOnlinePrice
		return true
	}
	return false
}

// Price returns the price rounded to three decimals.
func (a *Album) Price() float64 {
	return math.Round(a.price*1000) / 1000
}

// SetPrice sets the price. The upper bound depends on the current online
// availability: MaxPrice offline, MaxOnlinePrice online.
func (a *Album) SetPrice(price float64) error {
	if price < MinPrice {
		return ErrMinPrice
	}
	if price > a.maxPrice() {
		return ErrMaxPrice
	}
	a.price = price
	return nil
}

func (a *Album) maxPrice() float64 {
	if a.availableOnline {
		return MaxOnlinePrice
	}
	return MaxPrice
}

// AlbumCover returns the cover, or nil when the album has none.
func (a *Album) AlbumCover() *AlbumCover { return a.albumCover }

// SetAlbumCover replaces the cover when both name and artist are non-empty
// and clears it otherwise. When the new cover is invalid the error is
// returned and the previous cover is kept.
func (a *Album) SetAlbumCover(name, artist string, width, height int) error {
	if name == "" || artist == "" {
		a.albumCover = nil
		return nil
	}
	cover, err := NewAlbumCover(name, artist, width, height)
	if err != nil {
		return err
	}
	a.albumCover = cover
	return nil
}

// ReleaseDate returns the release date, the zero time when unset.
func (a *Album) ReleaseDate() time.Time { return a.releaseDate }

// SetReleaseDate sets the release date. Only the calendar date is kept; the
// zero time unsets it.
func (a *Album) SetReleaseDate(releaseDate time.Time) {
	if releaseDate.IsZero() {
		a.releaseDate = time.Time{}
		return
	}
	y, m, d := releaseDate.Date()
	a.releaseDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HasReleaseDate reports whether a release date is set.
func (a *Album) HasReleaseDate() bool { return !a.releaseDate.IsZero() }

// FormattedReleaseDate is FormattedReleaseDateAt the current local time.
func (a *Album) FormattedReleaseDate() (string, bool) {
	return a.FormattedReleaseDateAt(time.Now())
}

// FormattedReleaseDateAt describes the release date relative to now, e.g.
// "Released on March 7, 2019 (7 years ago)". It returns false when the album
// has no release date.
func (a *Album) FormattedReleaseDateAt(now time.Time) (string, bool) {
	if !a.HasReleaseDate() {
		return "", false
	}
	release := a.releaseDate
	return fmt.Sprintf("Released on %s %d, %d %s",
		release.Month(), release.Day(), release.Year(), relativeYear(release.Year(), now.Year())), true
}

func relativeYear(year, current int) string {
	switch diff := year - current; {
	case diff == 0:
		return "(this year)"
	case diff == -1:
		return "(last year)"
	case diff == 1:
		return "(next year)"
	case diff > 0:
		return fmt.Sprintf("(in %s)", pluralYears(diff))
	default:
		return fmt.Sprintf("(%s ago)", pluralYears(-diff))
	}
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

func (a *Album) String() string {
	return fmt.Sprintf("%s - %s [%s] %.2f", a.artist, a.title, a.genre, a.Price())
}
