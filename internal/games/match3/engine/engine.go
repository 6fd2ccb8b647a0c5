package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Config defines board shape and rules.
type Config struct {
	Width  int
	Height int
	Colors int
	Marks  int
	MinRun int

	TileW  float64
	TileH  float64
	Origin Point

	// RevertNoMatch rejects swaps that create no match.
	RevertNoMatch bool
	// ShuffleWhenStuck re-rolls the board when no swap can match.
	ShuffleWhenStuck bool

	MaxSettleCycles int
	MaxRerollPasses int
}

// DefaultConfig returns an 8x8 board with six colors.
func DefaultConfig() Config {
	return Config{
		Width:           8,
		Height:          8,
		Colors:          6,
		Marks:           int(MarkCount),
		MinRun:          DefaultMinRun,
		TileW:           64,
		TileH:           64,
		MaxRerollPasses: DefaultMaxRerollPasses,
	}
}

// Layout returns the addressing layout for this config.
func (c Config) Layout() Layout {
	return Layout{Width: c.Width, Height: c.Height, TileW: c.TileW, TileH: c.TileH, Origin: c.Origin}
}

// Validate rejects configs that cannot produce a stable board.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Colors < 1 || c.Colors > int(ColorCount) {
		return fmt.Errorf("%w: %d colors, want 1..%d", ErrInvalidConfig, c.Colors, ColorCount)
	}
	if c.Marks < 1 || c.Marks > int(MarkCount) {
		return fmt.Errorf("%w: %d marks, want 1..%d", ErrInvalidConfig, c.Marks, MarkCount)
	}
	if c.MinRun < 2 {
		return fmt.Errorf("%w: min run %d, want at least 2", ErrInvalidConfig, c.MinRun)
	}
	if c.Colors < 2 && (c.Width >= c.MinRun || c.Height >= c.MinRun) {
		return fmt.Errorf("%w: one color always matches on a %dx%d board", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TileW <= 0 || c.TileH <= 0 {
		return fmt.Errorf("%w: tile size %gx%g", ErrInvalidConfig, c.TileW, c.TileH)
	}
	return nil
}

type options struct {
	sink   EventSink
	logger *log.Logger
	source TileSource
	alloc  HandleAllocator
	seed   int64
	seeded bool
}

// Option configures an Engine.
type Option func(*options)

// WithSink sets the event sink.
func WithSink(sink EventSink) Option {
	return func(o *options) { o.sink = sink }
}

// WithLogger sets the engine logger. Output is discarded by default.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSource sets the tile source used for rolls and refills.
func WithSource(src TileSource) Option {
	return func(o *options) { o.source = src }
}

// WithAllocator sets the handle allocator.
func WithAllocator(alloc HandleAllocator) Option {
	return func(o *options) { o.alloc = alloc }
}

// WithSeed seeds the default random tile source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed, o.seeded = seed, true }
}

// Engine owns a board and drives every mutation of it.
type Engine struct {
	cfg      Config
	board    *Board
	selector Selector
	stab     Stabilizer
	source   TileSource
	alloc    HandleAllocator
	sink     EventSink
	logger   *log.Logger
	settling bool
}

// New creates a randomly rolled board with no initial match.
func New(cfg Config, opts ...Option) (*Engine, error) {
	return newEngine(cfg, nil, opts)
}

// NewFromLayout creates a board from literal rows, top row first.
// Cells marked '.' are rolled. The board is still stabilized.
func NewFromLayout(cfg Config, rows []string, opts ...Option) (*Engine, error) {
	if rows == nil {
		rows = []string{}
	}
	return newEngine(cfg, rows, opts)
}

func newEngine(cfg Config, rows []string, opts []Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		seed := o.seed
		if !o.seeded {
			seed = time.Now().UnixNano()
		}
		o.source = NewRandomSource(seed, cfg.Colors, cfg.Marks)
	}
	if o.alloc == nil {
		o.alloc = &SequentialAllocator{}
	}
	if o.sink == nil {
		o.sink = discardSink{}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:    cfg,
		board:  NewBoard(cfg.Layout()),
		source: o.source,
		alloc:  o.alloc,
		sink:   o.sink,
		logger: o.logger,
	}
	e.stab = Stabilizer{
		Resolver:        NewResolver(cfg.MinRun),
		Source:          e.source,
		Alloc:           e.alloc,
		Sink:            e.sink,
		Logger:          e.logger,
		MaxCycles:       cfg.MaxSettleCycles,
		MaxRerollPasses: cfg.MaxRerollPasses,
	}

	if rows != nil {
		if err := e.board.ParseRows(rows); err != nil {
			return nil, err
		}
	}
	if err := e.populate(); err != nil {
		return nil, err
	}
	return e, nil
}

// populate rolls empty cells, removes initial matches in place, then binds
// handles and announces every tile where it stands.
func (e *Engine) populate() error {
	l := e.board.Layout()
	for _, c := range l.AllCoords() {
		if _, filled := e.board.Get(c); !filled {
			if err := e.board.Set(c, e.source.Next()); err != nil {
				return err
			}
		}
	}
	passes, err := e.stab.Reroll(e.board)
	if err != nil {
		return e.fail("initial re-roll", err)
	}
	for _, c := range l.AllCoords() {
		h := e.alloc.Allocate()
		if err := e.board.Bind(c, h); err != nil {
			return e.fail("initial bind", err)
		}
		tile, _ := e.board.Get(c)
		e.sink.Emit(Spawned{Handle: h, Tile: tile, Origin: c, Dest: c})
	}
	e.sink.Emit(SettleComplete{})
	e.logger.Debug("board created", "width", l.Width, "height", l.Height, "reroll_passes", passes)
	return nil
}

// Config returns the engine config.
func (e *Engine) Config() Config {
	return e.cfg
}

// Board returns the board for read access.
func (e *Engine) Board() *Board {
	return e.board
}

// Layout returns the board layout.
func (e *Engine) Layout() Layout {
	return e.board.Layout()
}

// DescriptorAt returns the tile at c.
func (e *Engine) DescriptorAt(c Coord) (Descriptor, bool) {
	return e.board.Get(c)
}

// HandleAt returns the handle bound at c.
func (e *Engine) HandleAt(c Coord) (Handle, bool) {
	return e.board.HandleAt(c)
}

// Selected returns the selected cell, if any.
func (e *Engine) Selected() (Coord, bool) {
	return e.selector.Selected()
}

// ClearSelection drops any selection.
func (e *Engine) ClearSelection() {
	e.selector.Reset()
}

// Click maps a world position to a board cell.
func (e *Engine) Click(p Point) (Coord, bool) {
	return e.board.Layout().CoordAt(p)
}

// Select feeds a cell click into the selector and performs the swap it
// requests. Out-of-board cells clear the selection.
func (e *Engine) Select(c Coord) (Selection, SwapResult, error) {
	if !e.board.Layout().InBounds(c) {
		return e.selector.ClickOutside(), SwapResult{}, nil
	}
	sel := e.selector.Click(c)
	if sel.Kind != SwapRequested {
		return sel, SwapResult{}, nil
	}
	res, err := e.RequestSwap(sel.A, sel.B)
	return sel, res, err
}

// SelectAt is Select for a world position.
func (e *Engine) SelectAt(p Point) (Selection, SwapResult, error) {
	c, ok := e.Click(p)
	if !ok {
		return e.selector.ClickOutside(), SwapResult{}, nil
	}
	return e.Select(c)
}

// RequestSwap swaps two adjacent cells and settles the board.
// Rule violations are reported in the result; the error is reserved for
// broken invariants.
func (e *Engine) RequestSwap(a, b Coord) (SwapResult, error) {
	if e.settling {
		return rejected(a, b, ReasonBusy), nil
	}
	if reason := validateSwap(e.board.Layout(), a, b); reason != ReasonNone {
		return rejected(a, b, reason), nil
	}

	e.settling = true
	defer func() { e.settling = false }()

	if err := e.board.Swap(a, b); err != nil {
		return SwapResult{}, e.fail("swap", err)
	}
	if e.cfg.RevertNoMatch {
		m, err := e.stab.Resolver.Resolve(e.board)
		if err != nil {
			return SwapResult{}, e.fail("swap resolve", err)
		}
		if m.Empty() {
			if err := e.board.Swap(a, b); err != nil {
				return SwapResult{}, e.fail("swap revert", err)
			}
			return rejected(a, b, ReasonNoMatch), nil
		}
	}
	e.selector.Reset()

	ha, _ := e.board.HandleAt(a)
	hb, _ := e.board.HandleAt(b)
	e.sink.Emit(Swapped{A: a, B: b, HandleA: ha, HandleB: hb})

	done, err := e.stab.Settle(e.board)
	if err != nil {
		return SwapResult{}, e.fail("settle", err)
	}
	res := SwapResult{A: a, B: b, Applied: true, Settle: done}
	e.logger.Debug("swap applied", "a", a, "b", b, "cycles", done.Cycles, "cleared", done.TotalCleared())

	if e.cfg.ShuffleWhenStuck {
		if _, _, ok := e.FindMove(); !ok {
			if err := e.shuffle(); err != nil {
				return res, err
			}
			res.Shuffled = true
		}
	}
	return res, nil
}

// FindMove returns the first swap, in cell index order, that creates a match.
func (e *Engine) FindMove() (Coord, Coord, bool) {
	l := e.board.Layout()
	if !e.board.Filled() {
		return Coord{}, Coord{}, false
	}
	for _, a := range l.AllCoords() {
		for _, d := range [2]Coord{{1, 0}, {0, 1}} {
			b := a.Add(d.X, d.Y)
			if !l.InBounds(b) {
				continue
			}
			if e.swapMatches(a, b) {
				return a, b, true
			}
		}
	}
	return Coord{}, Coord{}, false
}

func (e *Engine) swapMatches(a, b Coord) bool {
	da, _ := e.board.Get(a)
	db, _ := e.board.Get(b)
	if da.Matches(db) {
		return false
	}
	_ = e.board.Swap(a, b)
	m, err := e.stab.Resolver.Resolve(e.board)
	_ = e.board.Swap(a, b)
	return err == nil && !m.Empty()
}

// Shuffle re-rolls the whole board so that it has no match but at least one
// possible move.
func (e *Engine) Shuffle() error {
	if e.settling {
		return fmt.Errorf("%w: shuffle during settle", ErrInvalidSwap)
	}
	e.settling = true
	defer func() { e.settling = false }()
	return e.shuffle()
}

func (e *Engine) shuffle() error {
	l := e.board.Layout()
	e.selector.Reset()
	for _, c := range l.AllCoords() {
		h, err := e.board.Unbind(c)
		if err != nil {
			return e.fail("shuffle unbind", err)
		}
		e.sink.Emit(Despawned{Handle: h, At: c})
	}

	maxPasses := e.stab.MaxRerollPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxRerollPasses
	}
	found := false
	for attempt := 0; attempt < maxPasses && !found; attempt++ {
		for _, c := range l.AllCoords() {
			if err := e.board.Set(c, e.source.Next()); err != nil {
				return e.fail("shuffle roll", err)
			}
		}
		if _, err := e.stab.Reroll(e.board); err != nil {
			return e.fail("shuffle re-roll", err)
		}
		_, _, found = e.FindMove()
	}
	if !found {
		e.logger.Warn("shuffle found no playable board", "attempts", maxPasses)
	}

	for _, c := range l.AllCoords() {
		h := e.alloc.Allocate()
		if err := e.board.Bind(c, h); err != nil {
			return e.fail("shuffle bind", err)
		}
		tile, _ := e.board.Get(c)
		e.sink.Emit(Spawned{Handle: h, Tile: tile, Origin: c, Dest: c})
	}
	e.sink.Emit(Shuffled{})
	e.logger.Debug("board shuffled")
	return nil
}

// SetColorCount changes the palette size for future tiles.
// The default random source honours it; scripted sources ignore it.
func (e *Engine) SetColorCount(n int) error {
	next := e.cfg
	next.Colors = n
	if err := next.Validate(); err != nil {
		return err
	}
	e.cfg.Colors = n
	if s, ok := e.source.(interface{ SetColorCount(int) }); ok {
		s.SetColorCount(n)
	}
	return nil
}

// fail logs invariant violations before returning them.
func (e *Engine) fail(op string, err error) error {
	if errors.Is(err, ErrInvariantViolation) || errors.Is(err, ErrMissingBinding) {
		e.logger.Error("engine invariant violated", "op", op, "err", err)
	}
	return fmt.Errorf("engine: %s: %w", op, err)
}
