package facade

import (
	"sync"

	"github.com/playkit-ui/playkit/engine"
	"github.com/playkit-ui/playkit/playback"
)

// fakeTrackManager is an in-memory engine.TrackManager for facade tests.
type fakeTrackManager struct {
	mu              sync.Mutex
	renditions      []*engine.Rendition
	audios          []*engine.AudioTrack
	texts           []*engine.TextTrack
	activeRendition *engine.Rendition
	activeAudio     *engine.AudioTrack
	activeText      *engine.TextTrack
	auto            bool
	selectErr       error

	autoEnables int
}

func (f *fakeTrackManager) Renditions() []*engine.Rendition {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.renditions
}

func (f *fakeTrackManager) AudioTracks() []*engine.AudioTrack {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.audios
}

func (f *fakeTrackManager) TextTracks() []*engine.TextTrack {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.texts
}

func (f *fakeTrackManager) ActiveRendition() *engine.Rendition {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeRendition
}

func (f *fakeTrackManager) ActiveAudio() *engine.AudioTrack {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeAudio
}

func (f *fakeTrackManager) ActiveText() *engine.TextTrack {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeText
}

func (f *fakeTrackManager) AutoBitrateEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auto
}

func (f *fakeTrackManager) SelectRendition(r *engine.Rendition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return f.selectErr
	}
	f.activeRendition = r
	f.auto = false
	return nil
}

func (f *fakeTrackManager) SelectAudio(t *engine.AudioTrack) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return f.selectErr
	}
	f.activeAudio = t
	return nil
}

func (f *fakeTrackManager) SelectText(t *engine.TextTrack) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return f.selectErr
	}
	f.activeText = t
	return nil
}

func (f *fakeTrackManager) ClearText() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return f.selectErr
	}
	f.activeText = nil
	return nil
}

func (f *fakeTrackManager) EnableAutoBitrate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return f.selectErr
	}
	f.auto = true
	f.activeRendition = nil
	f.autoEnables++
	return nil
}

// fakeEngine is a controllable in-memory engine.Engine. Seeks never complete
// on their own; tests drive completion explicitly via completeSeek.
type fakeEngine struct {
	mu        sync.Mutex
	tm        *fakeTrackManager
	listeners map[engine.Event]map[int]engine.Listener
	nextID    int

	loads    []engine.MediaConfig
	seeks    []float64
	plays    int
	pauses   int
	releases int

	position float64
	duration float64
	volume   float64
	muted    bool
	paused   bool
	live     bool
	rate     float64
	state    playback.State

	loadErr error
	seekErr error
	playErr error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		tm:        &fakeTrackManager{},
		listeners: make(map[engine.Event]map[int]engine.Listener),
		volume:    1,
		rate:      1,
	}
}

func (f *fakeEngine) Load(cfg engine.MediaConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loads = append(f.loads, cfg)
	return nil
}

func (f *fakeEngine) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.playErr != nil {
		return f.playErr
	}
	f.plays++
	f.paused = false
	return nil
}

func (f *fakeEngine) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
	f.paused = true
	return nil
}

func (f *fakeEngine) Seek(seconds float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seekErr != nil {
		return f.seekErr
	}
	f.seeks = append(f.seeks, seconds)
	return nil
}

func (f *fakeEngine) Release() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases++
	return nil
}

func (f *fakeEngine) Position() float64     { f.mu.Lock(); defer f.mu.Unlock(); return f.position }
func (f *fakeEngine) Duration() float64     { f.mu.Lock(); defer f.mu.Unlock(); return f.duration }
func (f *fakeEngine) Volume() float64       { f.mu.Lock(); defer f.mu.Unlock(); return f.volume }
func (f *fakeEngine) Muted() bool           { f.mu.Lock(); defer f.mu.Unlock(); return f.muted }
func (f *fakeEngine) Paused() bool          { f.mu.Lock(); defer f.mu.Unlock(); return f.paused }
func (f *fakeEngine) Live() bool            { f.mu.Lock(); defer f.mu.Unlock(); return f.live }
func (f *fakeEngine) PlaybackRate() float64 { f.mu.Lock(); defer f.mu.Unlock(); return f.rate }

func (f *fakeEngine) State() playback.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeEngine) SeekRange() engine.Range {
	f.mu.Lock()
	defer f.mu.Unlock()
	return engine.Range{Start: 0, End: f.duration}
}

func (f *fakeEngine) TrackManager() engine.TrackManager { return f.tm }

func (f *fakeEngine) SetVolume(v float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = v
	return nil
}

func (f *fakeEngine) SetMuted(m bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = m
	return nil
}

func (f *fakeEngine) SetPlaybackRate(r float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rate = r
	return nil
}

func (f *fakeEngine) On(ev engine.Event, fn engine.Listener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listeners[ev] == nil {
		f.listeners[ev] = make(map[int]engine.Listener)
	}
	f.nextID++
	id := f.nextID
	f.listeners[ev][id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners[ev], id)
	}
}

// emit dispatches an engine event to its registered listeners, like a real
// engine would from its own event loop.
func (f *fakeEngine) emit(ev engine.Event, data any) {
	f.mu.Lock()
	fns := make([]engine.Listener, 0, len(f.listeners[ev]))
	for _, fn := range f.listeners[ev] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(data)
	}
}

// completeSeek resolves the oldest in-flight seek with the given authoritative position.
func (f *fakeEngine) completeSeek(position float64, ok bool) {
	f.emit(engine.EventSeekCompleted, engine.SeekCompleted{Position: position, OK: ok})
}

func (f *fakeEngine) seekLog() []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]float64(nil), f.seeks...)
}

func (f *fakeEngine) loadLog() []engine.MediaConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]engine.MediaConfig(nil), f.loads...)
}

// immediateFactory yields the given fake to the facade as soon as Init runs.
func immediateFactory(f *fakeEngine) engine.Factory {
	return func(element any, base engine.MediaConfig) (engine.Engine, error) {
		return f, nil
	}
}

// gatedFactory blocks engine construction until the gate channel is closed,
// simulating slow asynchronous engine setup.
func gatedFactory(f *fakeEngine, gate <-chan struct{}) engine.Factory {
	return func(element any, base engine.MediaConfig) (engine.Engine, error) {
		<-gate
		return f, nil
	}
}
