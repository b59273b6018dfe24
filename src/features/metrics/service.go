package metrics

import (
	"github.com/contre95/pressing/src/music"
)

const (
	TypeGenreCounts  = "genre_counts"
	TypeCompleteness = "album_completeness"
)

// Summarize computes catalog statistics for albums.
func Summarize(albums []*music.Album) *CatalogStats {
	genres := make(map[string]int)
	var withCover, withRelease, online int
	stats := &CatalogStats{TotalAlbums: len(albums)}

	for _, album := range albums {
		genres[album.Genre()]++
		stats.TotalTracks += album.TrackCount()
		if album.AlbumCover() != nil {
			withCover++
		}
		if album.HasReleaseDate() {
			withRelease++
		}
		if album.AvailableOnline() {
			online++
		}
	}

	for _, genre := range music.AlbumGenres() {
		stats.GenreCounts = append(stats.GenreCounts, Metric{Type: TypeGenreCounts, Key: genre, Value: genres[genre]})
	}
	stats.Completeness = []Metric{
		{Type: TypeCompleteness, Key: "has_cover", Value: withCover},
		{Type: TypeCompleteness, Key: "has_release_date", Value: withRelease},
		{Type: TypeCompleteness, Key: "available_online", Value: online},
	}
	return stats
}
