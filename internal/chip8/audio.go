package chip8

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// ManageAudio decodes the beep sample at assetPath once, loops it
// indefinitely through the speaker, and pauses/resumes playback as vm's
// sound timer transitions to and from zero. It runs until done is closed.
// Passing mute skips device initialization entirely; ManageAudio then just
// blocks on done, so the beep gate has no audible effect without touching
// VM semantics (BeepOn is still computed normally).
func (vm *VM) ManageAudio(assetPath string, mute bool, done <-chan struct{}) error {
	if mute {
		<-done
		return nil
	}

	f, err := os.Open(assetPath)
	if err != nil {
		return fmt.Errorf("chip8: opening beep asset: %w", err)
	}
	defer f.Close()

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return fmt.Errorf("chip8: decoding beep asset: %w", err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("chip8: initializing speaker: %w", err)
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true}
	speaker.Play(ctrl)

	ticker := time.NewTicker(time.Second / timerHz)
	defer ticker.Stop()

	wasOn := false
	for {
		select {
		case <-done:
			return nil
		case <-ticker.C:
			on := vm.BeepOn()
			if on == wasOn {
				continue
			}
			wasOn = on

			speaker.Lock()
			ctrl.Paused = !on
			speaker.Unlock()
		}
	}
}
