// Package facade exposes the player facade that UI components interact with instead of the raw engine.
package facade

import (
	"github.com/samber/mo"

	"github.com/playkit-ui/playkit/engine"
	"github.com/playkit-ui/playkit/log"
	"github.com/playkit-ui/playkit/track"
	"github.com/playkit-ui/playkit/ui"
)

// attachListeners subscribes the facade's interpretation layer to every
// low-level engine event and records the detach functions for Release.
func (p *Player) attachListeners(e engine.Engine) {
	p.mu.Lock()
	if p.attached {
		p.mu.Unlock()
		return
	}
	p.attached = true
	p.mu.Unlock()

	detach := []func(){
		e.On(engine.EventStateChanged, p.onStateChanged),
		e.On(engine.EventTimeUpdate, p.onTimeUpdate),
		e.On(engine.EventDurationChange, p.onDurationChange),
		e.On(engine.EventVolumeChange, p.onVolumeChange),
		e.On(engine.EventRateChange, p.onRateChange),
		e.On(engine.EventTracksAdded, p.onTracksChanged),
		e.On(engine.EventAudioTrackChanged, p.onTracksChanged),
		e.On(engine.EventVideoTrackChanged, p.onTracksChanged),
		e.On(engine.EventTextTrackChanged, p.onTracksChanged),
		e.On(engine.EventBitrateChanged, p.onBitrateChanged),
		e.On(engine.EventSeekCompleted, p.onSeekCompleted),
	}

	p.mu.Lock()
	p.detach = detach
	p.mu.Unlock()
}

// ensureListeners re-attaches the listener layer when a load follows a release.
func (p *Player) ensureListeners(e engine.Engine) {
	p.mu.Lock()
	attached := p.attached
	p.mu.Unlock()

	if !attached {
		p.attachListeners(e)
	}
}

// detachListeners removes every engine subscription installed by attachListeners.
func (p *Player) detachListeners() {
	p.mu.Lock()
	detach := p.detach
	p.detach = nil
	p.attached = false
	p.mu.Unlock()

	for _, off := range detach {
		off()
	}
}

func (p *Player) onStateChanged(data any) {
	change, ok := data.(engine.StateChange)
	if !ok {
		log.Debugf("state change with unexpected payload %T", data)
		return
	}
	p.setState(change.State)
}

func (p *Player) onTimeUpdate(data any) {
	update, ok := data.(engine.TimeUpdate)
	if !ok {
		return
	}

	// Engine position reports lag user intent while a seek is unresolved;
	// suppress them so the UI never snaps back to a stale position.
	if p.seeker.UserSeeking() {
		return
	}
	p.publishPosition(update.Position)
}

func (p *Player) onDurationChange(data any) {
	change, ok := data.(engine.DurationChange)
	if !ok {
		return
	}

	p.mu.Lock()
	if p.duration == change.Duration {
		p.mu.Unlock()
		return
	}
	p.duration = change.Duration
	p.mu.Unlock()

	p.emitUIEvent(ui.DurationChanged{Seconds: change.Duration})
}

func (p *Player) onVolumeChange(data any) {
	change, ok := data.(engine.VolumeChange)
	if !ok {
		return
	}

	p.mu.Lock()
	volumeChanged := p.volume != change.Volume
	mutedChanged := p.muted != change.Muted
	p.volume = change.Volume
	p.muted = change.Muted
	p.mu.Unlock()

	if volumeChanged {
		p.emitUIEvent(ui.VolumeChanged{Volume: change.Volume})
	}
	if mutedChanged {
		p.emitUIEvent(ui.MutedChanged{Muted: change.Muted})
	}
}

func (p *Player) onRateChange(data any) {
	change, ok := data.(engine.RateChange)
	if !ok {
		return
	}

	p.mu.Lock()
	if p.rate == change.Rate {
		p.mu.Unlock()
		return
	}
	p.rate = change.Rate
	p.mu.Unlock()

	p.emitUIEvent(ui.RateChanged{Rate: change.Rate})
}

func (p *Player) onTracksChanged(any) {
	if e, ok := p.handle().Get(); ok {
		p.refreshTracks(e)
	}
}

func (p *Player) onBitrateChanged(data any) {
	change, ok := data.(engine.BitrateChange)
	if !ok || change.Rendition == nil {
		return
	}

	p.mu.Lock()
	if p.playingRendition == change.Rendition {
		p.mu.Unlock()
		return
	}
	p.playingRendition = change.Rendition
	p.mu.Unlock()

	playing := track.FromRendition(change.Rendition, false)
	playing.Label = p.labeler(playing)
	p.emitUIEvent(ui.PlayingRenditionChanged{Track: playing})
}

func (p *Player) onSeekCompleted(data any) {
	completed, ok := data.(engine.SeekCompleted)
	if !ok {
		return
	}
	if !completed.OK {
		log.Debugf("engine seek failed near %.3f", completed.Position)
	}
	p.seeker.Complete(completed.Position)
}

// refreshTracks recomputes all normalized track lists and active tracks from
// the engine's track manager and publishes only what actually changed under
// the track identity rule.
func (p *Player) refreshTracks(e engine.Engine) {
	tm := e.TrackManager()
	if tm == nil {
		return
	}

	videos := track.Videos(tm)
	audios := track.Audios(tm)
	texts := track.Texts(tm)
	track.Apply(videos, p.labeler)
	track.Apply(audios, p.labeler)
	track.Apply(texts, p.labeler)

	activeVideo := track.ActiveVideo(tm)
	activeAudio := track.ActiveAudio(tm)
	activeText := track.ActiveText(tm)
	activeVideo.Label = p.labeler(activeVideo)
	activeAudio.Label = p.labeler(activeAudio)
	activeText.Label = p.labeler(activeText)

	p.mu.Lock()
	publishVideos := track.Changed(p.videoTracks, videos)
	publishAudios := track.Changed(p.audioTracks, audios)
	publishTexts := track.Changed(p.textTracks, texts)
	if publishVideos {
		p.videoTracks = videos
	}
	if publishAudios {
		p.audioTracks = audios
	}
	if publishTexts {
		p.textTracks = texts
	}

	videoChanged := changedActive(p.activeVideo, activeVideo)
	audioChanged := changedActive(p.activeAudio, activeAudio)
	textChanged := changedActive(p.activeText, activeText)
	p.activeVideo = mo.Some(activeVideo)
	p.activeAudio = mo.Some(activeAudio)
	p.activeText = mo.Some(activeText)
	p.mu.Unlock()

	if publishVideos {
		p.emitUIEvent(ui.VideoTracksAvailable{Tracks: videos})
	}
	if publishAudios {
		p.emitUIEvent(ui.AudioTracksAvailable{Tracks: audios})
	}
	if publishTexts {
		p.emitUIEvent(ui.TextTracksAvailable{Tracks: texts})
	}
	if videoChanged {
		p.emitUIEvent(ui.VideoTrackChanged{Track: activeVideo})
	}
	if audioChanged {
		p.emitUIEvent(ui.AudioTrackChanged{Track: activeAudio})
	}
	if textChanged {
		p.emitUIEvent(ui.TextTrackChanged{Track: activeText})
	}
}

// changedActive applies the track identity rule to an optional previous value.
func changedActive(previous mo.Option[track.Track], next track.Track) bool {
	old, ok := previous.Get()
	if !ok {
		return true
	}
	return !old.Same(next)
}
