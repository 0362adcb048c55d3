package replay

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/application/system"
)

// Recorder captures per-tick input from session start so the first run
// of the session can be reproduced from the seed alone.
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with a fresh run id
func NewRecorder(seed int64, configName string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			RunID:     uuid.NewString(),
			Seed:      seed,
			Config:    configName,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(r.frame, in))
	r.frame++
}

// Finish stores the run outcome and stops recording
func (r *Recorder) Finish(sum session.Summary) {
	if !r.recording {
		return
	}
	o := NewOutcome(sum)
	r.data.Outcome = &o
	r.recording = false
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	return Save(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// RunID returns the id shared by the recording and the score row
func (r *Recorder) RunID() string {
	return r.data.RunID
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
