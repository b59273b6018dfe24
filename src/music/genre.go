package music

import (
	"cmp"
	"slices"
)

// MusicGenre is one of a closed set of genres, each carrying a description,
// a single character code and an average tempo in beats per minute.
type MusicGenre int

const (
	GenreAlternative MusicGenre = iota
	GenreBlues
	GenreClassical
	GenreCountry
	GenreDisco
	GenreJazz
	GenreMetal
	GenrePop
	GenreRockNRoll
	GenreRNB
	GenreOther
)

type genreInfo struct {
	name        string
	description string
	code        byte
	tempo       int
}

// Indexed by MusicGenre; the order here is the enumeration order.
var genreTable = [...]genreInfo{
	GenreAlternative: {"ALTERNATIVE", "Alternative Rock", 'A', 125},
	GenreBlues:       {"BLUES", "Blues", 'B', 80},
	GenreClassical:   {"CLASSICAL", "Classical Music", 'C', 60},
	GenreCountry:     {"COUNTRY", "Country Music", 'Y', 120},
	GenreDisco:       {"DISCO", "Disco", 'D', 130},
	GenreJazz:        {"JAZZ", "Jazz", 'J', 100},
	GenreMetal:       {"METAL", "Metal", 'M', 140},
	GenrePop:         {"POP", "Pop Music", 'P', 110},
	GenreRockNRoll:   {"ROCK_N_ROLL", "Rock & Roll", 'R', 150},
	GenreRNB:         {"R_N_B", "R & B", 'N', 90},
	GenreOther:       {"OTHER", "Other", 'O', 105},
}

var genresByCode = func() map[byte]MusicGenre {
	m := make(map[byte]MusicGenre, len(genreTable))
	for _, g := range Genres() {
		if _, dup := m[g.Code()]; !dup {
			m[g.Code()] = g
		}
	}
	return m
}()

// Genres returns every genre in enumeration order.
func Genres() []MusicGenre {
	genres := make([]MusicGenre, len(genreTable))
	for i := range genreTable {
		genres[i] = MusicGenre(i)
	}
	return genres
}

// Valid reports whether g is one of the defined genres.
func (g MusicGenre) Valid() bool {
	return g >= 0 && int(g) < len(genreTable)
}

func (g MusicGenre) String() string {
	if !g.Valid() {
		return "UNKNOWN"
	}
	return genreTable[g].name
}

// Description returns the display name of the genre.
func (g MusicGenre) Description() string {
	if !g.Valid() {
		return ""
	}
	return genreTable[g].description
}

// Code returns the single uppercase character identifying the genre.
func (g MusicGenre) Code() byte {
	if !g.Valid() {
		return 0
	}
	return genreTable[g].code
}

// Tempo returns the average beats per minute of the genre.
func (g MusicGenre) Tempo() int {
	if !g.Valid() {
		return 0
	}
	return genreTable[g].tempo
}

// GenreByCode returns the genre identified by code.
func GenreByCode(code byte) (MusicGenre, bool) {
	g, ok := genresByCode[code]
	return g, ok
}

// GenresSortedByCode returns every genre ordered by ascending code.
func GenresSortedByCode() []MusicGenre {
	genres := Genres()
	slices.SortStableFunc(genres, func(a, b MusicGenre) int {
		return cmp.Compare(a.Code(), b.Code())
	})
	return genres
}

// NextHigherTempo returns the genre with the smallest tempo strictly greater
// than g's. When several genres share that tempo the first one in enumeration
// order wins. A genre with the highest tempo returns itself.
func (g MusicGenre) NextHigherTempo() MusicGenre {
	next, found := g, false
	for _, other := range Genres() {
		if other == g || other.Tempo() <= g.Tempo() {
			continue
		}
		if !found || other.Tempo() < next.Tempo() {
			next, found = other, true
		}
	}
	return next
}
