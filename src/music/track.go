package music

import "fmt"

// Track is a single song of an album. Two tracks are the same track only when
// they are the same *Track.
type Track struct {
	name     string
	composer string
	duration int
}

// NewTrack creates a track lasting duration seconds.
func NewTrack(name string, duration int, composer string) (*Track, error) {
	t := &Track{name: name, composer: composer}
	if err := t.SetDuration(duration); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Track) Name() string { return t.name }

func (t *Track) SetName(name string) { t.name = name }

func (t *Track) Composer() string { return t.composer }

func (t *Track) SetComposer(composer string) { t.composer = composer }

// Duration returns the track length in seconds.
func (t *Track) Duration() int { return t.duration }

// SetDuration sets the track length in seconds. It must be positive.
func (t *Track) SetDuration(seconds int) error {
	if seconds <= 0 {
		return ErrMinDuration
	}
	t.duration = seconds
	return nil
}

func (t *Track) String() string {
	return fmt.Sprintf("%s (%s) %s", t.name, t.composer, formatDuration(t.duration))
}

// formatDuration renders seconds as HH:MM:SS. Hours are not wrapped at 24.
func formatDuration(total int) string {
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
