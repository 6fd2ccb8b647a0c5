package match3

import (
	"sort"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// AnimationPhase is the kind of step the animator is playing.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSwap
	PhaseClear
	PhaseFall
	PhaseShuffle
)

// sprite is the visual for one tile handle. Positions are in board
// coordinates and may be fractional mid-animation.
type sprite struct {
	handle engine.Handle
	tile   engine.Descriptor

	fromX, fromY float64
	toX, toY     float64
	x, y         float64

	clearing bool
}

// animStep is a group of events played together.
type animStep struct {
	phase  AnimationPhase
	events []engine.Event
}

// animator replays engine events as sprite motion keyed by handle.
// Input is gated while Busy reports true.
type animator struct {
	sprites map[engine.Handle]*sprite
	queue   []animStep

	phase    AnimationPhase
	ticks    int
	duration int
	progress float64

	durations config.AnimationConfig
}

func newAnimator(d config.AnimationConfig) *animator {
	return &animator{
		sprites:   make(map[engine.Handle]*sprite),
		durations: d,
	}
}

// Enqueue groups events into steps and appends them to the queue.
// Despawns form a clear step; the moves and spawns of one cycle fall together.
func (a *animator) Enqueue(events []engine.Event) {
	var cur *animStep
	flush := func() {
		if cur != nil && len(cur.events) > 0 {
			a.queue = append(a.queue, *cur)
		}
		cur = nil
	}
	group := func(p AnimationPhase, ev engine.Event) {
		if cur == nil || cur.phase != p {
			flush()
			cur = &animStep{phase: p}
		}
		cur.events = append(cur.events, ev)
	}

	for _, ev := range events {
		switch ev.(type) {
		case engine.Swapped:
			flush()
			a.queue = append(a.queue, animStep{phase: PhaseSwap, events: []engine.Event{ev}})
		case engine.Despawned:
			group(PhaseClear, ev)
		case engine.Moved, engine.Spawned:
			group(PhaseFall, ev)
		case engine.Shuffled:
			flush()
			a.queue = append(a.queue, animStep{phase: PhaseShuffle, events: []engine.Event{ev}})
		case engine.SettleComplete:
			flush()
		}
	}
	flush()
}

// Busy reports whether any step is playing or queued.
func (a *animator) Busy() bool {
	return a.phase != PhaseNone || len(a.queue) > 0
}

// Phase returns the step being played.
func (a *animator) Phase() AnimationPhase {
	return a.phase
}

// Progress returns the eased progress of the current step.
func (a *animator) Progress() float64 {
	return core.EaseOutQuad(a.progress)
}

// Update advances the animation by one tick.
// Returns true if animation is still in progress.
func (a *animator) Update() bool {
	if a.phase == PhaseNone {
		if len(a.queue) == 0 {
			return false
		}
		a.begin()
	}

	a.ticks++
	a.progress = 1
	if a.duration > 0 {
		a.progress = core.ClampF(float64(a.ticks)/float64(a.duration), 0, 1)
	}
	a.interpolate()

	if a.ticks >= a.duration {
		a.finish()
	}
	return a.Busy()
}

// Flush applies every queued step instantly.
func (a *animator) Flush() {
	if a.phase != PhaseNone {
		a.finish()
	}
	for len(a.queue) > 0 {
		a.begin()
		a.finish()
	}
}

// begin pops the next step and sets up sprite endpoints.
func (a *animator) begin() {
	step := a.queue[0]
	a.queue = a.queue[1:]
	a.phase = step.phase
	a.ticks = 0
	a.progress = 0

	switch step.phase {
	case PhaseSwap:
		a.duration = a.durations.SwapTicks
	case PhaseClear:
		a.duration = a.durations.ClearTicks
	case PhaseFall:
		a.duration = a.durations.FallTicks
	case PhaseShuffle:
		a.duration = a.durations.ClearTicks
	}

	for _, ev := range step.events {
		switch e := ev.(type) {
		case engine.Swapped:
			// HandleA now lives at A and arrives from B.
			a.slide(e.HandleA, e.B, e.A)
			a.slide(e.HandleB, e.A, e.B)
		case engine.Despawned:
			if s, ok := a.sprites[e.Handle]; ok {
				s.clearing = true
			}
		case engine.Moved:
			a.slide(e.Handle, e.From, e.To)
		case engine.Spawned:
			a.sprites[e.Handle] = &sprite{handle: e.Handle, tile: e.Tile}
			a.slide(e.Handle, e.Origin, e.Dest)
		}
	}
	a.interpolate()
}

func (a *animator) slide(h engine.Handle, from, to engine.Coord) {
	s, ok := a.sprites[h]
	if !ok {
		return
	}
	s.fromX, s.fromY = float64(from.X), float64(from.Y)
	s.toX, s.toY = float64(to.X), float64(to.Y)
}

// interpolate moves every sprite toward its target.
func (a *animator) interpolate() {
	t := a.Progress()
	for _, s := range a.sprites {
		s.x = core.Lerp(s.fromX, s.toX, t)
		s.y = core.Lerp(s.fromY, s.toY, t)
	}
}

// finish snaps sprites to their targets and removes cleared ones.
func (a *animator) finish() {
	for h, s := range a.sprites {
		if s.clearing {
			delete(a.sprites, h)
			continue
		}
		s.fromX, s.fromY = s.toX, s.toY
		s.x, s.y = s.toX, s.toY
	}
	a.phase = PhaseNone
	a.ticks = 0
	a.progress = 0
}

// Sprites returns the live sprites ordered by handle.
func (a *animator) Sprites() []*sprite {
	out := make([]*sprite, 0, len(a.sprites))
	for _, s := range a.sprites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].handle < out[j].handle })
	return out
}

// SpriteAt returns the resting sprite at a board cell.
func (a *animator) SpriteAt(c engine.Coord) (*sprite, bool) {
	for _, s := range a.sprites {
		if s.toX == float64(c.X) && s.toY == float64(c.Y) && !s.clearing {
			return s, true
		}
	}
	return nil, false
}
