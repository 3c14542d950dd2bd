package breakout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrNotInitialized is the panic value for mutating a model before Initialize.
var ErrNotInitialized = errors.New("breakout: model used before Initialize")

// Snapshot is a consistent copy of the game state, taken in one critical section.
type Snapshot struct {
	Ball    GameObj
	Bat     GameObj
	Bricks  []GameObj
	Score   int
	Fast    bool
	Running bool
	Width   float64
	Height  float64
}

// tickLoop is one run of the background goroutine. Each loop owns its own
// context, so a stopped loop cannot be revived by a later Start.
type tickLoop struct {
	id     int
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func (l *tickLoop) alive() bool {
	if l.ctx.Err() != nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// Model owns all game state and the tick loop that advances it.
// Every read and write of state goes through mu.
type Model struct {
	cfg    config.BreakoutConfig
	logger *log.Logger

	mu          sync.Mutex
	initialized bool
	width       float64
	height      float64
	ball        GameObj
	bat         GameObj
	bricks      []GameObj
	score       int
	fast        bool
	pending     bool // collisions resolved, move not yet applied
	loop        *tickLoop
	loops       int

	observers Observers

	sleep func(time.Duration)
}

// NewModel creates a model. Call Initialize before Start.
func NewModel(cfg config.BreakoutConfig, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	return &Model{
		cfg:    cfg,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Config returns the configuration the model was built with.
func (m *Model) Config() config.BreakoutConfig {
	return m.cfg
}

// Initialize builds a fresh game in an arena of the given size: ball at its
// start position, bat centred near the bottom, full brick wall, zero score.
// It may be called again at any time to start over.
func (m *Model) Initialize(width, height float64) {
	ballColour := mustColour(m.cfg.Ball.Colour)
	batColour := mustColour(m.cfg.Bat.Colour)
	bricks := BuildBricks(m.cfg.Bricks)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.width = width
	m.height = height

	ball := m.cfg.Ball
	m.ball = NewGameObj(ball.StartX, ball.StartY, ball.Size, ball.Size, ballColour)

	bat := m.cfg.Bat
	batX := core.ClampF((width-bat.Width)/2, bat.MinX, bat.MaxX)
	m.bat = NewGameObj(batX, height-bat.OffsetY, bat.Width, bat.Height, batColour)

	m.bricks = bricks
	m.score = 0
	m.pending = false
	m.initialized = true

	m.logger.Info("game initialized", "width", width, "height", height, "bricks", len(bricks))
}

// mustBeInitialized panics with ErrNotInitialized. Callers hold mu.
func (m *Model) mustBeInitialized() {
	if !m.initialized {
		panic(ErrNotInitialized)
	}
}

// Start launches the tick loop, stopping any loop already running.
func (m *Model) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mustBeInitialized()

	if m.loop != nil {
		m.loop.cancel()
	}

	m.loops++
	ctx, cancel := context.WithCancel(context.Background())
	l := &tickLoop{
		id:     m.loops,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	m.loop = l

	m.logger.Info("tick loop started", "loop", l.id)
	go m.run(l)
}

// Restart builds a fresh game in the current arena and starts its loop.
func (m *Model) Restart() {
	w, h := m.arena()
	m.Initialize(w, h)
	m.Start()
}

// arena returns the current arena size, panicking before Initialize.
func (m *Model) arena() (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mustBeInitialized()
	return m.width, m.height
}

// Stop asks the running loop to finish. It does not wait, and calling it when
// nothing is running does nothing.
func (m *Model) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loop == nil || m.loop.ctx.Err() != nil {
		return
	}
	m.loop.cancel()
	m.logger.Info("tick loop stopping", "loop", m.loop.id)
}

// Running reports whether a tick loop is active.
func (m *Model) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loop != nil && m.loop.alive()
}

// Wait blocks until the current loop has exited or ctx is done.
func (m *Model) Wait(ctx context.Context) error {
	m.mu.Lock()
	l := m.loop
	m.mu.Unlock()
	if l == nil {
		return nil
	}

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the body of one tick loop goroutine.
func (m *Model) run(l *tickLoop) {
	defer close(l.done)
	defer func() {
		if r := recover(); r != nil {
			l.cancel()
			m.logger.Error("tick loop stopped", "loop", l.id, "panic", r)
		}
	}()

	m.resume(l.ctx)
	for l.ctx.Err() == nil {
		m.tick(l.ctx)
	}
	m.logger.Info("tick loop exited", "loop", l.id)
}

// tick performs one iteration: collisions, notification, sleep, movement.
// Observers see the state before the ball moves.
func (m *Model) tick(ctx context.Context) {
	if !m.stepLoop(ctx) {
		return
	}
	m.observers.Notify()
	m.sleep(m.delay())
	m.advance(ctx)
}

func (m *Model) delay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fast {
		return m.cfg.Timing.FastDelay()
	}
	return m.cfg.Timing.NormalDelay()
}

// step resolves walls, bricks and the bat against the ball's current position.
func (m *Model) step() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolve()
}

// stepLoop is step for a loop; it does nothing once ctx is cancelled.
func (m *Model) stepLoop(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	m.resolve()
	return true
}

// resolve applies one round of collisions. Callers hold mu.
func (m *Model) resolve() {
	arena := m.cfg.Arena
	b := &m.ball
	x, y := b.X, b.Y

	if x+b.Width >= m.width-arena.Border {
		b.ReverseX()
	}
	if x <= arena.Border {
		b.ReverseX()
	}
	if y+b.Height >= m.height-arena.Border {
		b.ReverseY()
		m.score += m.cfg.Scoring.HitBottom
	}
	if y <= arena.Menu {
		b.ReverseY()
	}

	// Every brick touched this tick flips Y and scores.
	var hit []int
	for i := range m.bricks {
		if m.bricks[i].CollidesWith(*b) {
			hit = append(hit, i)
			b.ReverseY()
			m.score += m.cfg.Scoring.HitBrick
		}
	}
	if len(hit) > 0 {
		m.bricks = removeIndices(m.bricks, hit)
	}

	if m.bat.CollidesWith(*b) {
		b.ReverseY()
	}
	m.pending = true
}

// advance moves the ball one step unless ctx was cancelled while sleeping.
// A skipped move stays pending for the next loop.
func (m *Model) advance(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	m.ball.Advance(m.cfg.Ball.Speed)
	m.pending = false
}

// resume applies the move a cancelled loop left pending, so a new loop never
// resolves collisions twice at the same position.
func (m *Model) resume(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.pending || ctx.Err() != nil {
		return
	}
	m.ball.Advance(m.cfg.Ball.Speed)
	m.pending = false
	m.logger.Debug("pending move applied", "x", m.ball.X, "y", m.ball.Y)
}

// removeIndices returns bricks without the entries at the given ascending indices.
func removeIndices(bricks []GameObj, idx []int) []GameObj {
	out := make([]GameObj, 0, len(bricks)-len(idx))
	next := 0
	for i, b := range bricks {
		if next < len(idx) && idx[next] == i {
			next++
			continue
		}
		out = append(out, b)
	}
	return out
}

// MoveBat moves the bat one step left (-1) or right (+1), clamped to its bounds.
func (m *Model) MoveBat(direction int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mustBeInitialized()

	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	}
	dist := float64(direction) * m.cfg.Bat.Step
	m.logger.Debug("move bat", "distance", dist)

	bat := m.cfg.Bat
	m.bat.X = core.ClampF(m.bat.X+dist, bat.MinX, bat.MaxX)
}

// SetFast selects the fast or normal tick interval.
func (m *Model) SetFast(fast bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mustBeInitialized()
	m.fast = fast
}

// Fast reports whether fast mode is on.
func (m *Model) Fast() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fast
}

// AddScore adds n (possibly negative) to the score.
func (m *Model) AddScore(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mustBeInitialized()
	m.score += n
}

// Score returns the current score.
func (m *Model) Score() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Ball returns a copy of the ball.
func (m *Model) Ball() GameObj {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ball
}

// Bat returns a copy of the bat.
func (m *Model) Bat() GameObj {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bat
}

// Bricks returns a copy of the remaining bricks.
func (m *Model) Bricks() []GameObj {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneBricks(m.bricks)
}

// Snapshot returns the whole game state from a single critical section.
func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Ball:    m.ball,
		Bat:     m.bat,
		Bricks:  cloneBricks(m.bricks),
		Score:   m.score,
		Fast:    m.fast,
		Running: m.loop != nil && m.loop.alive(),
		Width:   m.width,
		Height:  m.height,
	}
}

func cloneBricks(bricks []GameObj) []GameObj {
	if bricks == nil {
		return nil
	}
	out := make([]GameObj, len(bricks))
	copy(out, bricks)
	return out
}

// Subscribe registers fn to be called after every tick.
// fn runs on the tick goroutine and must not block for long.
func (m *Model) Subscribe(fn func()) Subscription {
	return m.observers.Subscribe(fn)
}

// Unsubscribe removes a previously registered observer.
func (m *Model) Unsubscribe(id Subscription) bool {
	return m.observers.Unsubscribe(id)
}
