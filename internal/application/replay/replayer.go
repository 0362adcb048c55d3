package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/application/system"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

var (
	// ErrUnfinished is returned when the frames run out before the run ends
	ErrUnfinished = errors.New("replay ended before the run finished")
	// ErrNoOutcome is returned when verifying a recording without an outcome
	ErrNoOutcome = errors.New("replay has no recorded outcome")
	// ErrMismatch is returned when re-simulation disagrees with the recording
	ErrMismatch = errors.New("replay outcome mismatch")
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Save writes replay data to filename as indented JSON
func Save(filename string, data ReplayData) (err error) {
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Simulate re-runs a recording headless and returns the summary of the
// first run that ends. Frames after that are ignored.
func Simulate(cfg *config.GameConfig, data ReplayData, opts ...session.Option) (session.Summary, error) {
	var (
		result session.Summary
		done   bool
	)
	opts = append(opts, session.WithRunEnd(func(sum session.Summary) {
		if !done {
			result, done = sum, true
		}
	}))

	r := NewReplayer(data)
	s := session.New(cfg, r.Seed(), opts...)
	for !done {
		in, ok := r.GetInput()
		if !ok {
			return s.Summary(), fmt.Errorf("%w after %d frames", ErrUnfinished, r.TotalFrames())
		}
		s.Update(in)
	}
	return result, nil
}

// Verify re-runs a recording and checks it against the recorded outcome
func Verify(cfg *config.GameConfig, data ReplayData, opts ...session.Option) (session.Summary, error) {
	if data.Outcome == nil {
		return session.Summary{}, ErrNoOutcome
	}

	sum, err := Simulate(cfg, data, opts...)
	if err != nil {
		return sum, err
	}
	if got := NewOutcome(sum); got != *data.Outcome {
		return sum, fmt.Errorf("%w: recorded %+v, simulated %+v", ErrMismatch, *data.Outcome, got)
	}
	return sum, nil
}
