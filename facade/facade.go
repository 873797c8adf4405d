// Package facade exposes the player facade that UI components interact with instead of the raw engine.
//
// The facade buffers calls made before the underlying engine is ready, translates low-level engine
// events into a coherent UI event model, resolves races between user seeks and engine position
// reports, reconciles track availability, and drives the controls auto-hide state machine.
package facade

import (
	"errors"
	"fmt"
	"sync"

	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/playkit-ui/playkit/controls"
	"github.com/playkit-ui/playkit/engine"
	"github.com/playkit-ui/playkit/event"
	"github.com/playkit-ui/playkit/key"
	"github.com/playkit-ui/playkit/log"
	"github.com/playkit-ui/playkit/playback"
	"github.com/playkit-ui/playkit/queue"
	"github.com/playkit-ui/playkit/track"
	"github.com/playkit-ui/playkit/ui"
)

// Options tunes facade construction. The zero value is valid.
type Options struct {
	// Initializer runs once, immediately after the engine instance is
	// constructed and before the action queue drains. Errors are logged and
	// do not abort initialization.
	Initializer func(e engine.Engine) error

	// Labeler overrides the default track labeling policy.
	Labeler track.Labeler
}

// Player is the state-synchronization facade over the external media engine.
//
// It is the single writer of all cached playback state; UI components are
// read-only observers reached exclusively through emitted events and getters,
// and must mutate exclusively through facade methods.
type Player struct {
	mu      sync.Mutex
	factory engine.Factory
	options Options

	engine      engine.Handle
	initStarted bool
	attached    bool
	detach      []func()

	queue    *queue.Queue
	controls *controls.Machine
	seeker   *seeker
	events   *event.Emitter[ui.Kind, ui.Event]
	labeler  track.Labeler

	lastConfig mo.Option[engine.MediaConfig]
	loaded     bool

	state        playback.State
	duration     float64
	volume       float64
	muted        bool
	rate         float64
	lastPosition float64
	menuVisible  bool

	videoTracks []track.Track
	audioTracks []track.Track
	textTracks  []track.Track
	activeVideo mo.Option[track.Track]
	activeAudio mo.Option[track.Track]
	activeText  mo.Option[track.Track]

	// playingRendition is the variant the adaptive bitrate logic currently
	// plays. Cleared only on release/reset, never during list recomputation.
	playingRendition *engine.Rendition
}

// New creates a facade bound to an engine factory. The engine itself is not
// constructed until Init. options may be nil.
func New(factory engine.Factory, options *Options) *Player {
	p := &Player{
		factory: factory,
		queue:   queue.New(),
		events:  event.New[ui.Kind, ui.Event](),
		state:   playback.Unset,
		volume:  1,
		rate:    1,
	}

	if options != nil {
		p.options = *options
	}

	p.labeler = p.options.Labeler
	if p.labeler == nil {
		p.labeler = track.NewLabeler(p.playingHeight)
	}

	p.controls = controls.New(func(visible bool) {
		p.emitUIEvent(ui.ControlsVisibility{Visible: visible})
	})
	p.seeker = &seeker{
		command: p.commandSeek,
		publish: p.publishPosition,
		live:    p.livePosition,
	}

	// Unset is a disabled state: controls start pinned.
	p.controls.Pin()

	return p
}

// Init constructs the underlying engine instance exactly once; subsequent
// calls are no-ops. Engine construction, the optional user initializer and the
// queue drain run asynchronously; Ready resolves once the drain finishes.
func (p *Player) Init(element any, base engine.MediaConfig) {
	p.mu.Lock()
	if p.initStarted {
		p.mu.Unlock()
		return
	}
	p.initStarted = true
	p.mu.Unlock()

	go p.initialize(element, base)
}

func (p *Player) initialize(element any, base engine.MediaConfig) {
	eng, err := p.factory(element, base)
	if err != nil {
		log.Errorf("engine construction failed: %v", err)
		return
	}

	if init := p.options.Initializer; init != nil {
		if err := init(eng); err != nil {
			log.Warnf("engine initializer: %v", err)
		}
	}

	p.mu.Lock()
	p.engine = mo.Some(eng)
	p.mu.Unlock()

	p.attachListeners(eng)
	p.queue.Open()
}

// Ready returns a channel that is closed once the engine exists and all
// actions queued before readiness have executed.
func (p *Player) Ready() <-chan struct{} {
	return p.queue.Ready()
}

// handle snapshots the engine reference under lock.
func (p *Player) handle() engine.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.engine
}

// withEngine runs an engine-dependent operation: queued before readiness,
// immediate afterwards.
func (p *Player) withEngine(op func(e engine.Engine) error) error {
	return p.queue.Submit(func() error {
		e, ok := p.handle().Get()
		if !ok {
			return errors.New("engine not initialized")
		}
		return op(e)
	})
}

// Load loads media into the engine, deferred through the action queue until
// Init is ready. A non-nil cfg becomes the new active configuration and resets
// previously loaded media first; a nil cfg reloads the last-provided
// configuration, supporting retry-after-release flows.
//
// When the call is deferred, the returned error is nil regardless of the
// eventual outcome; engine failures during the drain surface through the
// error state transition and the logs, not the return value.
func (p *Player) Load(cfg *engine.MediaConfig, autoplay bool) error {
	p.mu.Lock()
	if cfg != nil {
		p.lastConfig = mo.Some(*cfg)
	}
	target, ok := p.lastConfig.Get()
	p.mu.Unlock()

	if !ok {
		return errors.New("load: no media configuration available")
	}

	reset := cfg != nil
	return p.withEngine(func(e engine.Engine) error {
		p.ensureListeners(e)

		if reset && p.isLoaded() {
			if err := e.Release(); err != nil {
				log.Warnf("reset before load: %v", err)
			}
		}

		p.setState(playback.Preparing)

		if err := e.Load(target); err != nil {
			p.setState(playback.Error)
			return fmt.Errorf("load %q: %w", target.Source, err)
		}

		p.mu.Lock()
		p.loaded = true
		p.mu.Unlock()

		if autoplay {
			if err := e.Play(); err != nil {
				return fmt.Errorf("autoplay: %w", err)
			}
		}
		return nil
	})
}

// Release detaches all engine listeners, releases the underlying engine
// resources and resets cached track/position/duration state to defaults,
// emitting the corresponding zeroed UI events. The last media configuration is
// retained so a subsequent Load(nil, ...) can retry.
func (p *Player) Release() error {
	return p.withEngine(func(e engine.Engine) error {
		p.detachListeners()
		err := e.Release()
		p.resetCachedState()
		return err
	})
}

func (p *Player) isLoaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// resetCachedState zeroes everything the facade caches and announces the
// zeroed values to consumers.
func (p *Player) resetCachedState() {
	p.mu.Lock()
	p.loaded = false
	p.duration = 0
	p.videoTracks = nil
	p.audioTracks = nil
	p.textTracks = nil
	p.activeVideo = mo.None[track.Track]()
	p.activeAudio = mo.None[track.Track]()
	p.activeText = mo.None[track.Track]()
	p.playingRendition = nil
	p.lastPosition = 0
	p.mu.Unlock()

	p.seeker.Reset()
	p.setState(playback.Idle)

	p.emitUIEvent(ui.Position{Seconds: 0})
	p.emitUIEvent(ui.DurationChanged{Seconds: 0})
	p.emitUIEvent(ui.VideoTracksAvailable{})
	p.emitUIEvent(ui.AudioTracksAvailable{})
	p.emitUIEvent(ui.TextTracksAvailable{})
}

// setState updates the cached playback state, emits the state UI event once
// per transition, and couples controls pinning to the state: pinned while
// paused or disabled, unpinned otherwise.
func (p *Player) setState(s playback.State) {
	p.mu.Lock()
	if p.state == s {
		p.mu.Unlock()
		return
	}
	p.state = s
	p.mu.Unlock()

	p.emitUIEvent(ui.StateChanged{State: s})

	if !s.Enabled() || s == playback.Paused {
		p.controls.Pin()
	} else {
		p.controls.Unpin()
	}
}

// State returns the normalized playback state.
func (p *Player) State() playback.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Enabled reports whether UI controls should be interactive.
func (p *Player) Enabled() bool {
	return p.State().Enabled()
}

// Playing reports whether playback is actively progressing.
func (p *Player) Playing() bool {
	return p.State() == playback.Playing
}

// SetPlaying resumes or suspends playback. Setting true on an unloaded
// configuration triggers an implicit load first; implicit-load failures are
// logged and swallowed so UI event handlers are never broken by them.
func (p *Player) SetPlaying(playing bool) {
	if !playing {
		if err := p.withEngine(func(e engine.Engine) error { return e.Pause() }); err != nil {
			log.Warnf("pause: %v", err)
		}
		return
	}

	if !p.isLoaded() {
		if err := p.Load(nil, true); err != nil {
			log.Warnf("implicit load: %v", err)
		}
		return
	}

	if err := p.withEngine(func(e engine.Engine) error { return e.Play() }); err != nil {
		log.Warnf("play: %v", err)
	}
}

// Position returns the seek target while a user seek is in flight, and the
// engine's live playback position otherwise. Returns 0 before Init.
func (p *Player) Position() float64 {
	return p.seeker.Position()
}

// SetPosition requests a user seek to an absolute position in seconds.
func (p *Player) SetPosition(seconds float64) {
	p.seeker.Request(seconds)
}

// UserSeeking reports whether a user-initiated seek is still unresolved.
func (p *Player) UserSeeking() bool {
	return p.seeker.UserSeeking()
}

// StepPosition seeks by the configured seek step, forward for a positive
// direction and backward for a negative one.
func (p *Player) StepPosition(direction int) {
	step := viper.GetFloat64(key.PlayerSeekStep)
	if step <= 0 {
		step = 10
	}
	if direction > 0 {
		p.SetPosition(p.Position() + step)
	} else if direction < 0 {
		p.SetPosition(max(p.Position()-step, 0))
	}
}

// Duration returns the cached media duration in seconds.
func (p *Player) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// Live reports whether the loaded media is a live stream. Returns false before Init.
func (p *Player) Live() bool {
	if e, ok := p.handle().Get(); ok {
		return e.Live()
	}
	return false
}

// SeekRange returns the engine's currently seekable window. Zero before Init.
func (p *Player) SeekRange() engine.Range {
	if e, ok := p.handle().Get(); ok {
		return e.SeekRange()
	}
	return engine.Range{}
}

// Volume returns the cached volume in the range [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume adjusts the volume. Equal values are no-ops; observable changes
// emit exactly one volume UI event.
func (p *Player) SetVolume(volume float64) {
	volume = clamp(volume, 0, 1)

	p.mu.Lock()
	if p.volume == volume {
		p.mu.Unlock()
		return
	}
	p.volume = volume
	p.mu.Unlock()

	if err := p.withEngine(func(e engine.Engine) error { return e.SetVolume(volume) }); err != nil {
		log.Warnf("set volume: %v", err)
	}
	p.emitUIEvent(ui.VolumeChanged{Volume: volume})
}

// StepVolume adjusts the volume by the configured step, up for a positive
// direction and down for a negative one.
func (p *Player) StepVolume(direction int) {
	step := float64(viper.GetInt(key.PlayerVolumeStep)) / 100
	if step <= 0 {
		step = 0.1
	}
	if direction > 0 {
		p.SetVolume(p.Volume() + step)
	} else if direction < 0 {
		p.SetVolume(p.Volume() - step)
	}
}

// Muted returns the cached mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetMuted adjusts the mute state. Equal values are no-ops.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	if p.muted == muted {
		p.mu.Unlock()
		return
	}
	p.muted = muted
	p.mu.Unlock()

	if err := p.withEngine(func(e engine.Engine) error { return e.SetMuted(muted) }); err != nil {
		log.Warnf("set muted: %v", err)
	}
	p.emitUIEvent(ui.MutedChanged{Muted: muted})
}

// Rate returns the cached playback rate multiplier.
func (p *Player) Rate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rate
}

// SetRate adjusts the playback rate. Equal values are no-ops.
func (p *Player) SetRate(rate float64) {
	p.mu.Lock()
	if p.rate == rate || rate <= 0 {
		p.mu.Unlock()
		return
	}
	p.rate = rate
	p.mu.Unlock()

	if err := p.withEngine(func(e engine.Engine) error { return e.SetPlaybackRate(rate) }); err != nil {
		log.Warnf("set rate: %v", err)
	}
	p.emitUIEvent(ui.RateChanged{Rate: rate})
}

// VideoTrack returns the active video track: the synthetic ABR entry in
// automatic mode, the concrete rendition otherwise. Mutate via SelectTrack.
func (p *Player) VideoTrack() track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.activeVideo.Get(); ok {
		return t
	}
	return track.Track{ID: track.UnavailableID(track.TypeVideo), Type: track.TypeVideo, Selected: true}
}

// AudioTrack returns the active audio track. Mutate via SelectTrack.
func (p *Player) AudioTrack() track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.activeAudio.Get(); ok {
		return t
	}
	return track.Track{ID: track.OffID(track.TypeAudio), Type: track.TypeAudio, Selected: true}
}

// TextTrack returns the active text track. Mutate via SelectTrack.
func (p *Player) TextTrack() track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.activeText.Get(); ok {
		return t
	}
	return track.Track{ID: track.OffID(track.TypeText), Type: track.TypeText, Selected: true}
}

// VideoTracks returns a copy of the published video track list.
func (p *Player) VideoTracks() []track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]track.Track(nil), p.videoTracks...)
}

// AudioTracks returns a copy of the published audio track list.
func (p *Player) AudioTracks() []track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]track.Track(nil), p.audioTracks...)
}

// TextTracks returns a copy of the published text track list.
func (p *Player) TextTracks() []track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]track.Track(nil), p.textTracks...)
}

// SelectTrack asks the engine to switch to the given track. Selecting the
// synthetic ABR track re-enables automatic bitrate selection; selecting the
// synthetic text off track disables subtitles. Engine failures are caught and
// logged with the offending track, never propagated: UI state stays unchanged.
func (p *Player) SelectTrack(t track.Track) {
	err := p.withEngine(func(e engine.Engine) error {
		tm := e.TrackManager()
		if tm == nil {
			return errors.New("engine exposes no track manager")
		}

		switch t.Type {
		case track.TypeVideo:
			if t.ID == track.IDAuto {
				if err := tm.EnableAutoBitrate(); err != nil {
					return err
				}
			} else {
				r, ok := t.Native.(*engine.Rendition)
				if !ok {
					return errors.New("stale native handle")
				}
				if err := tm.SelectRendition(r); err != nil {
					return err
				}
			}
		case track.TypeAudio:
			a, ok := t.Native.(*engine.AudioTrack)
			if !ok {
				return errors.New("stale native handle")
			}
			if err := tm.SelectAudio(a); err != nil {
				return err
			}
		case track.TypeText:
			if t.ID == track.OffID(track.TypeText) {
				if err := tm.ClearText(); err != nil {
					return err
				}
			} else {
				tt, ok := t.Native.(*engine.TextTrack)
				if !ok {
					return errors.New("stale native handle")
				}
				if err := tm.SelectText(tt); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("unknown track type %q", t.Type)
		}

		p.refreshTracks(e)
		return nil
	})
	if err != nil {
		log.Warnf("select track %s/%s: %v", t.Type, t.ID, err)
	}
}

// ControlsVisible reports the externally observable controls visibility.
func (p *Player) ControlsVisible() bool {
	return p.controls.Visible()
}

// SetControlsVisible dispatches to the visibility state machine.
func (p *Player) SetControlsVisible(visible bool) {
	p.controls.SetVisible(visible)
}

// SetControlsMode switches the controls visibility policy.
func (p *Player) SetControlsMode(mode controls.Mode) {
	p.controls.SetMode(mode)
}

// MenuVisible reports whether the slide-in menu is open.
func (p *Player) MenuVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.menuVisible
}

// SetMenuVisible toggles the slide-in menu. Equal values are no-ops.
func (p *Player) SetMenuVisible(visible bool) {
	p.mu.Lock()
	if p.menuVisible == visible {
		p.mu.Unlock()
		return
	}
	p.menuVisible = visible
	p.mu.Unlock()

	p.emitUIEvent(ui.MenuVisibility{Visible: visible})
}

// SurfaceInteraction signals a generic user interaction with the player
// surface (e.g. pointer movement). It shows the controls unless the slide-in
// menu is open.
func (p *Player) SurfaceInteraction() {
	if !p.MenuVisible() {
		p.controls.Show()
	}
	p.emitUIEvent(ui.SurfaceInteraction{})
}

// HoverPosition reports the media position currently under the pointer.
func (p *Player) HoverPosition(seconds float64) {
	p.emitUIEvent(ui.HoverPosition{Seconds: seconds})
}

// OnUIEvent registers a listener for one channel of the UI event catalogue.
func (p *Player) OnUIEvent(kind ui.Kind, fn func(ui.Event)) event.Subscription[ui.Kind] {
	return p.events.On(kind, fn)
}

// OneUIEvent registers a listener that deregisters after its first invocation.
func (p *Player) OneUIEvent(kind ui.Kind, fn func(ui.Event)) event.Subscription[ui.Kind] {
	return p.events.One(kind, fn)
}

// OffUIEvent removes a previously registered listener.
func (p *Player) OffUIEvent(sub event.Subscription[ui.Kind]) {
	p.events.Off(sub)
}

func (p *Player) emitUIEvent(e ui.Event) {
	p.events.Emit(e.Kind(), e)
}

// publishPosition emits a position UI event, suppressing redundant values.
func (p *Player) publishPosition(seconds float64) {
	p.mu.Lock()
	if p.lastPosition == seconds {
		p.mu.Unlock()
		return
	}
	p.lastPosition = seconds
	p.mu.Unlock()

	p.emitUIEvent(ui.Position{Seconds: seconds})
}

// commandSeek issues a single engine seek command; completion arrives through
// the engine's seek-completed event.
func (p *Player) commandSeek(seconds float64) {
	if err := p.withEngine(func(e engine.Engine) error { return e.Seek(seconds) }); err != nil {
		log.Warnf("seek to %.3f: %v", seconds, err)
	}
}

// livePosition reads the engine's playback position, defaulting to 0 before Init.
func (p *Player) livePosition() float64 {
	if e, ok := p.handle().Get(); ok {
		return e.Position()
	}
	return 0
}

// playingHeight reports the vertical resolution of the rendition the adaptive
// bitrate logic currently plays, or 0.
func (p *Player) playingHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playingRendition != nil {
		return p.playingRendition.Height
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
