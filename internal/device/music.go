package device

import "fmt"

// Fixed music player settings.
const (
	DefaultVolume   = 50
	DefaultPlaylist = "Default Playlist"
)

// MusicPlayer plays the default playlist at a fixed volume.
// Volume and playlist never change after construction.
type MusicPlayer struct {
	base
	playing  bool
	volume   int
	playlist string
}

// NewMusicPlayer creates a stopped music player.
func NewMusicPlayer(location string, opts ...Option) *MusicPlayer {
	m := &MusicPlayer{volume: DefaultVolume, playlist: DefaultPlaylist}
	m.init(KindMusicPlayer, location, opts)
	return m
}

// Activate starts playback.
func (m *MusicPlayer) Activate() {
	m.mu.Lock()
	m.playing = true
	msg := fmt.Sprintf("%s music player is ON - Playing: %s (Volume: %d)", m.location, m.playlist, m.volume)
	m.mu.Unlock()

	m.notify(msg)
}

// Deactivate stops playback.
func (m *MusicPlayer) Deactivate() {
	m.mu.Lock()
	m.playing = false
	m.mu.Unlock()

	m.notify(m.location + " music player is OFF")
}

// Describe returns the playing/stopped state, with playlist and volume when playing.
func (m *MusicPlayer) Describe() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing {
		return m.location + " Music: STOPPED"
	}
	return fmt.Sprintf("%s Music: PLAYING %s (Vol: %d)", m.location, m.playlist, m.volume)
}

// IsPlaying reports whether playback is running.
func (m *MusicPlayer) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// Volume returns the fixed playback volume.
func (m *MusicPlayer) Volume() int { return m.volume }

// Playlist returns the fixed playlist name.
func (m *MusicPlayer) Playlist() string { return m.playlist }

// State returns {"playing": bool, "volume": int, "playlist": string}.
func (m *MusicPlayer) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{"playing": m.playing, "volume": m.volume, "playlist": m.playlist}
}
