package match3

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// SimReport summarizes a headless run.
type SimReport struct {
	Moves     int
	Score     int
	BestChain int
	Cleared   int
	Shuffles  int
	Events    int
	Colors    int
	EndReason string
	Board     string
}

// Simulate plays up to maxMoves swaps on a seeded board, always taking the
// first available move. Mode limits from cfg end the run early. Every engine
// event is logged at Debug level.
func Simulate(cfg config.Match3Config, seed int64, maxMoves int, logger *log.Logger) (SimReport, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rec := &engine.Recorder{}
	eng, err := NewEngine(cfg, engine.WithSink(rec), engine.WithLogger(logger), engine.WithSeed(seed))
	if err != nil {
		return SimReport{}, fmt.Errorf("match3: cannot create engine: %w", err)
	}
	diff := config.NewDifficultyManager(cfg.Difficulty)

	var rep SimReport
	logEvents(logger, rec.Drain(), &rep)

	for rep.Moves < maxMoves {
		if reason := simEnd(cfg, rep); reason != "" {
			rep.EndReason = reason
			break
		}

		a, b, ok := eng.FindMove()
		if !ok && cfg.Rules.ShuffleWhenStuck {
			if err := eng.Shuffle(); err != nil {
				return rep, fmt.Errorf("match3: shuffle: %w", err)
			}
			rep.Shuffles++
			logEvents(logger, rec.Drain(), &rep)
			a, b, ok = eng.FindMove()
		}
		if !ok {
			rep.EndReason = "no moves left"
			break
		}

		res, err := eng.RequestSwap(a, b)
		if err != nil {
			return rep, fmt.Errorf("match3: swap %v <-> %v: %w", a, b, err)
		}
		if !res.Applied {
			return rep, fmt.Errorf("match3: hinted swap rejected: %w", res.Err())
		}

		rep.Moves++
		rep.BestChain = max(rep.BestChain, res.Settle.Cycles)
		rep.Cleared += res.Settle.TotalCleared()
		rep.Score += ScoreFor(cfg.Scoring, res.Settle.Cleared)
		if res.Shuffled {
			rep.Shuffles++
		}
		logger.Info("move", "n", rep.Moves, "a", a, "b", b, "cycles", res.Settle.Cycles, "score", rep.Score)
		logEvents(logger, rec.Drain(), &rep)

		if diff.IsEnabled() {
			want := diff.Colors(cfg.Board.Colors, rep.Score, rep.Moves)
			if want != eng.Config().Colors {
				if err := eng.SetColorCount(want); err != nil {
					logger.Warn("palette not changed", "colors", want, "err", err)
				}
			}
		}
	}
	if rep.EndReason == "" {
		if reason := simEnd(cfg, rep); reason != "" {
			rep.EndReason = reason
		} else {
			rep.EndReason = "move budget used"
		}
	}

	rep.Colors = eng.Config().Colors
	rep.Board = eng.Board().String()
	return rep, nil
}

// simEnd returns why the mode is over, or "".
func simEnd(cfg config.Match3Config, rep SimReport) string {
	switch {
	case cfg.Mode.TargetScore > 0 && rep.Score >= cfg.Mode.TargetScore:
		return "target reached"
	case cfg.Mode.MoveLimit > 0 && rep.Moves >= cfg.Mode.MoveLimit:
		return "out of moves"
	}
	return ""
}

func logEvents(logger *log.Logger, events []engine.Event, rep *SimReport) {
	rep.Events += len(events)
	for _, ev := range events {
		switch e := ev.(type) {
		case engine.Spawned:
			logger.Debug("spawned", "handle", e.Handle, "tile", e.Tile, "origin", e.Origin, "dest", e.Dest)
		case engine.Despawned:
			logger.Debug("despawned", "handle", e.Handle, "at", e.At)
		case engine.Moved:
			logger.Debug("moved", "handle", e.Handle, "from", e.From, "to", e.To)
		case engine.Swapped:
			logger.Debug("swapped", "a", e.A, "b", e.B)
		case engine.Collapsed:
			logger.Debug("collapsed", "empty", e.EmptyCounts)
		case engine.SettleComplete:
			logger.Debug("settled", "cycles", e.Cycles, "cleared", e.Cleared)
		case engine.Shuffled:
			logger.Debug("shuffled")
		}
	}
}
