package music

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxResolution is the largest width*height an album cover may have.
const MaxResolution = 1166400

const (
	defaultCoverWidth  = 560
	defaultCoverHeight = 480
)

// AlbumCover describes the cover image of an album.
type AlbumCover struct {
	name   string
	artist string
	width  int
	height int
}

// NewAlbumCover creates a cover, validating name, artist, width and height in
// that order. The resolution check of each dimension uses the other one's
// current value, so the width is checked against the default height of 480.
func NewAlbumCover(name, artist string, width, height int) (*AlbumCover, error) {
	c := &AlbumCover{width: defaultCoverWidth, height: defaultCoverHeight}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetArtist(artist); err != nil {
		return nil, err
	}
	if err := c.SetWidth(width); err != nil {
		return nil, err
	}
	if err := c.SetHeight(height); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *AlbumCover) Name() string { return c.name }

// SetName sets the cover name, which cannot be blank. It is stored verbatim.
func (c *AlbumCover) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCoverName
	}
	c.name = name
	return nil
}

func (c *AlbumCover) Artist() string { return c.artist }

// SetArtist stores the artist with every word title-cased and single spaced.
func (c *AlbumCover) SetArtist(artist string) error {
	words := splitWords(artist)
	if len(words) == 0 {
		return ErrCoverArtist
	}
	for i, w := range words {
		words[i] = capitalize(w)
	}
	c.artist = strings.Join(words, " ")
	return nil
}

func (c *AlbumCover) Width() int { return c.width }

// SetWidth sets the width in pixels, checked against the current height.
func (c *AlbumCover) SetWidth(width int) error {
	if width <= 0 {
		return ErrMinResolution
	}
	if width > MaxResolution/c.height {
		return ErrMaxResolution
	}
	c.width = width
	return nil
}

func (c *AlbumCover) Height() int { return c.height }

// SetHeight sets the height in pixels, checked against the current width.
func (c *AlbumCover) SetHeight(height int) error {
	if height <= 0 {
		return ErrMinResolution
	}
	if height > MaxResolution/c.width {
		return ErrMaxResolution
	}
	c.height = height
	return nil
}

// Resolution returns width*height.
func (c *AlbumCover) Resolution() int {
	return c.width * c.height
}

// AspectRatio returns the reduced width:height ratio, e.g. "16:9".
func (c *AlbumCover) AspectRatio() string {
	d := gcd(c.width, c.height)
	return fmt.Sprintf("%d:%d", c.width/d, c.height/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// splitWords splits s on ASCII whitespace only. Other spaces such as U+00A0
// stay inside the words.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	})
}

// capitalize upper-cases the first letter of word and lower-cases the rest.
func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
