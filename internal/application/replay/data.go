package replay

import (
	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/application/state"
	"github.com/younwookim/cave/internal/application/system"
)

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame.
// Each mask has one bit per system.Control.
type FrameInput struct {
	F int   `json:"f"`           // Frame number
	H uint8 `json:"h,omitempty"` // Held
	P uint8 `json:"p,omitempty"` // Pressed
	R uint8 `json:"r,omitempty"` // Released
}

// Outcome is how the recorded run ended
type Outcome struct {
	State string `json:"state"`
	Cause string `json:"cause,omitempty"`
	Score int    `json:"score"`
	Kills int    `json:"kills"`
	Ticks int    `json:"ticks"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	RunID     string       `json:"runId"`
	Seed      int64        `json:"seed"`
	Config    string       `json:"config,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Outcome   *Outcome     `json:"outcome,omitempty"`
}

// NewFrameInput packs one tick of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		H: pack(in.Held),
		P: pack(in.Pressed),
		R: pack(in.Released),
	}
}

// Input unpacks the frame into an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Held:     unpack(fi.H),
		Pressed:  unpack(fi.P),
		Released: unpack(fi.R),
	}
}

// NewOutcome describes a finished run
func NewOutcome(sum session.Summary) Outcome {
	o := Outcome{
		State: sum.Outcome.String(),
		Score: sum.Score,
		Kills: sum.Kills,
		Ticks: sum.Ticks,
	}
	if sum.Outcome == state.StateGameOver {
		o.Cause = sum.Cause.String()
	}
	return o
}

func pack(controls [system.ControlCount]bool) uint8 {
	var mask uint8
	for i, on := range controls {
		if on {
			mask |= 1 << i
		}
	}
	return mask
}

func unpack(mask uint8) [system.ControlCount]bool {
	var controls [system.ControlCount]bool
	for i := range controls {
		controls[i] = mask&(1<<i) != 0
	}
	return controls
}
