package engine

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// DefaultMaxRerollPasses bounds the initial re-roll loop.
const DefaultMaxRerollPasses = 1000

// Stabilizer runs resolve, clear, collapse and refill until no match remains.
type Stabilizer struct {
	Resolver        Resolver
	Source          TileSource
	Alloc           HandleAllocator
	Sink            EventSink
	Logger          *log.Logger
	MaxCycles       int
	MaxRerollPasses int
}

// Settle loops to a fixed point and emits SettleComplete.
// Exceeding MaxCycles is reported as ErrInvariantViolation.
func (s *Stabilizer) Settle(b *Board) (SettleComplete, error) {
	maxCycles := s.MaxCycles
	if maxCycles <= 0 {
		maxCycles = b.Layout().Size()
	}

	done := SettleComplete{}
	for {
		m, err := s.Resolver.Resolve(b)
		if err != nil {
			return done, err
		}
		if m.Empty() {
			break
		}
		if done.Cycles >= maxCycles {
			return done, fmt.Errorf("%w: board did not settle in %d cycles", ErrInvariantViolation, maxCycles)
		}
		done.Cycles++

		for _, c := range m.Cells {
			h, err := b.Unbind(c)
			if err != nil {
				return done, err
			}
			if err := b.Clear(c); err != nil {
				return done, err
			}
			s.emit(Despawned{Handle: h, At: c})
		}

		counts, moves, err := CollapseColumns(b, m.Cells)
		if err != nil {
			return done, err
		}
		for _, mv := range moves {
			s.emit(Moved{Handle: mv.Handle, From: mv.From, To: mv.To})
		}
		s.emit(Collapsed{EmptyCounts: counts})

		spawns, err := Refill(b, counts, s.Source, s.Alloc)
		if err != nil {
			return done, err
		}
		for _, sp := range spawns {
			s.emit(Spawned{Handle: sp.Handle, Tile: sp.Tile, Origin: sp.Origin, Dest: sp.Dest})
		}

		done.Cleared = append(done.Cleared, len(m.Cells))
		s.logger().Debug("settle cycle", "cycle", done.Cycles, "cleared", len(m.Cells), "runs", len(m.Runs), "moved", len(moves))
	}

	s.emit(done)
	return done, nil
}

// Reroll replaces every matched descriptor in place until the board has no
// match. Bindings are untouched and no events are emitted.
// It returns the number of passes that changed the board.
func (s *Stabilizer) Reroll(b *Board) (int, error) {
	maxPasses := s.MaxRerollPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxRerollPasses
	}
	for pass := 0; pass < maxPasses; pass++ {
		m, err := s.Resolver.Resolve(b)
		if err != nil {
			return pass, err
		}
		if m.Empty() {
			return pass, nil
		}
		for _, c := range m.Cells {
			if err := b.Set(c, s.Source.Next()); err != nil {
				return pass, err
			}
		}
	}
	return maxPasses, fmt.Errorf("%w: re-roll did not converge in %d passes", ErrInvariantViolation, maxPasses)
}

func (s *Stabilizer) emit(e Event) {
	if s.Sink != nil {
		s.Sink.Emit(e)
	}
}

func (s *Stabilizer) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}
