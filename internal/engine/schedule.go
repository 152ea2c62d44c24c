package engine

// TimerKind identifies what a scheduled event does when it fires.
type TimerKind int

const (
	// TimerResolveCut applies a pending align-mode cut outcome.
	TimerResolveCut TimerKind = iota
)

// Scheduled is an event due at a future tick.
type Scheduled struct {
	At   uint64
	Kind TimerKind
	Hit  bool
}

// schedule returns a new queue with ev inserted in At order.
// Events due on the same tick keep insertion order.
func schedule(queue []Scheduled, ev Scheduled) []Scheduled {
	out := make([]Scheduled, 0, len(queue)+1)
	i := 0
	for i < len(queue) && queue[i].At <= ev.At {
		i++
	}
	out = append(out, queue[:i]...)
	out = append(out, ev)
	out = append(out, queue[i:]...)
	return out
}

// due splits queue into events due at or before tick and the rest.
func due(queue []Scheduled, tick uint64) (ready, rest []Scheduled) {
	i := 0
	for i < len(queue) && queue[i].At <= tick {
		i++
	}
	if i == 0 {
		return nil, queue
	}
	ready = append([]Scheduled(nil), queue[:i]...)
	if i < len(queue) {
		rest = append([]Scheduled(nil), queue[i:]...)
	}
	return ready, rest
}
