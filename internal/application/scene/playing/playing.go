// Package playing provides the main gameplay scene.
package playing

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cave/internal/application/replay"
	"github.com/younwookim/cave/internal/application/scene"
	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// RunResult is reported to the host every time a run ends
type RunResult struct {
	session.Summary
	RunID string
}

// Option configures the scene
type Option func(*Playing)

// WithRecording records input from the start and saves the first run to path.
// An empty path generates a timestamped filename.
func WithRecording(path, configName string) Option {
	return func(p *Playing) {
		p.recordPath = path
		p.configName = configName
		p.recording = true
	}
}

// WithLogger sets the scene and session logger
func WithLogger(logger *log.Logger) Option {
	return func(p *Playing) {
		p.logger = logger
	}
}

// WithRunEnd registers a callback for finished runs
func WithRunEnd(fn func(RunResult)) Option {
	return func(p *Playing) {
		p.onRunEnd = fn
	}
}

// withKeySource swaps the keyboard, for tests
func withKeySource(src KeySource) Option {
	return func(p *Playing) {
		p.source = src
	}
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	session *session.Session
	logger  *log.Logger
	keys    KeyMap
	source  KeySource
	screenW int
	screenH int
	frame   int
	runID   string

	onRunEnd func(RunResult)

	// Input recording
	recording  bool
	recorder   *replay.Recorder
	recordPath string
	configName string
}

// New creates a new Playing scene for the given seed
func New(cfg *config.GameConfig, seed int64, opts ...Option) *Playing {
	p := &Playing{
		config:  cfg,
		logger:  log.Default(),
		keys:    DefaultKeyMap(),
		source:  ebitenKeys{},
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.session = session.New(cfg, seed,
		session.WithLogger(p.logger),
		session.WithRunEnd(p.handleRunEnd),
	)

	if p.recording {
		p.recorder = replay.NewRecorder(seed, p.configName)
		p.runID = p.recorder.RunID()
		p.logger.Info("recording enabled", "path", p.recordPath, "seed", seed)
	} else {
		p.runID = uuid.NewString()
	}
	return p
}

// Session returns the underlying game session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update polls input and advances the session (implements scene.Scene)
func (p *Playing) Update(frame int) (scene.Scene, error) {
	p.frame = frame

	if p.source.JustPressed(ebiten.KeyEscape) {
		return nil, scene.ErrQuit
	}

	in := p.keys.Poll(p.source)
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	wasTerminal := p.session.State().IsTerminal()
	p.session.Update(in)
	if wasTerminal && !p.session.State().IsTerminal() {
		p.runID = uuid.NewString()
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleRunEnd(sum session.Summary) {
	p.logger.Info("run finished",
		"outcome", sum.Outcome, "score", sum.Score, "kills", sum.Kills, "ticks", sum.Ticks)

	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Finish(sum)
		p.saveRecording()
	}
	if p.onRunEnd != nil {
		p.onRunEnd(RunResult{Summary: sum, RunID: p.runID})
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit saves an unfinished recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}
}
