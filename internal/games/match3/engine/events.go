package engine

// Event is emitted synchronously while the engine mutates the board.
// Events form a closed set; hosts switch on the concrete type.
type Event interface {
	isEvent()
}

// Spawned is sent when a new tile enters the board.
type Spawned struct {
	Handle Handle
	Tile   Descriptor
	Origin Coord
	Dest   Coord
}

// Despawned is sent when a tile leaves the board.
type Despawned struct {
	Handle Handle
	At     Coord
}

// Moved is sent when gravity relocates an existing tile.
type Moved struct {
	Handle Handle
	From   Coord
	To     Coord
}

// Swapped is sent when a player swap is applied.
type Swapped struct {
	A       Coord
	B       Coord
	HandleA Handle // handle now at A
	HandleB Handle // handle now at B
}

// Collapsed reports per-column empty counts after gravity.
type Collapsed struct {
	EmptyCounts []int
}

// SettleComplete marks the end of a stabilization run.
// Cleared holds the number of cells removed in each cycle.
type SettleComplete struct {
	Cycles  int
	Cleared []int
}

// TotalCleared returns the number of cells cleared over all cycles.
func (e SettleComplete) TotalCleared() int {
	total := 0
	for _, n := range e.Cleared {
		total += n
	}
	return total
}

// Shuffled is sent after a stuck board was re-rolled.
type Shuffled struct{}

func (Spawned) isEvent()        {}
func (Despawned) isEvent()      {}
func (Moved) isEvent()          {}
func (Swapped) isEvent()        {}
func (Collapsed) isEvent()      {}
func (SettleComplete) isEvent() {}
func (Shuffled) isEvent()       {}

// EventSink receives engine events.
type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) {
	f(e)
}

// Recorder collects events in order.
type Recorder struct {
	Events []Event
}

// Emit appends e.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Drain returns the recorded events and resets the recorder.
func (r *Recorder) Drain() []Event {
	out := make([]Event, len(r.Events))
	copy(out, r.Events)
	r.Reset()
	return out
}

type discardSink struct{}

func (discardSink) Emit(Event) {}
