package music

// MaxTracks is the number of track slots of an album.
const MaxTracks = 30

// Tracks returns a copy of the track slots. Empty slots are nil.
func (a *Album) Tracks() [MaxTracks]*Track {
	return a.tracks
}

// Track returns the track in slot index, nil when the slot is empty.
func (a *Album) Track(index int) (*Track, error) {
	if index < 0 || index >= MaxTracks {
		return nil, ErrWrongIndex
	}
	return a.tracks[index], nil
}

// TrackCount returns the number of occupied slots.
func (a *Album) TrackCount() int {
	n := 0
	for _, t := range a.tracks {
		if t != nil {
			n++
		}
	}
	return n
}

// IsInTheAlbum reports whether track occupies a slot of the album.
func (a *Album) IsInTheAlbum(track *Track) bool {
	return a.indexOf(track) >= 0
}

func (a *Album) indexOf(track *Track) int {
	if track == nil {
		return -1
	}
	for i, t := range a.tracks {
		if t == track {
			return i
		}
	}
	return -1
}

// AddTrack puts track in the first empty slot. Adding a nil track does nothing.
func (a *Album) AddTrack(track *Track) error {
	if track == nil {
		return nil
	}
	if a.IsInTheAlbum(track) {
		return ErrTrackExists
	}
	for i, t := range a.tracks {
		if t == nil {
			a.tracks[i] = track
			return nil
		}
	}
	return ErrAlbumFull
}

// RemoveTrack empties the slot holding track, leaving a gap. Unknown or nil
// tracks are ignored.
func (a *Album) RemoveTrack(track *Track) {
	if i := a.indexOf(track); i >= 0 {
		a.tracks[i] = nil
	}
}

// SwapTracks exchanges the slots of two tracks of the album. It does nothing
// if either track is nil.
func (a *Album) SwapTracks(t1, t2 *Track) error {
	if t1 == nil || t2 == nil {
		return nil
	}
	i, j := a.indexOf(t1), a.indexOf(t2)
	if i < 0 || j < 0 {
		return ErrTrackNotExists
	}
	a.tracks[i], a.tracks[j] = a.tracks[j], a.tracks[i]
	return nil
}

// EmptyAlbum removes every track.
func (a *Album) EmptyAlbum() {
	a.tracks = [MaxTracks]*Track{}
}

// TotalDuration returns the summed duration of all tracks as HH:MM:SS.
func (a *Album) TotalDuration() string {
	total := 0
	for _, t := range a.tracks {
		if t != nil {
			total += t.Duration()
		}
	}
	return formatDuration(total)
}
