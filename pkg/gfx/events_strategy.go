package gfx

// EventsConsumerStrategy decides how many queued events are handled between two frames.
// handle returns false to stop draining, e.g. once the application asked to quit.
type EventsConsumerStrategy interface {
	Consume(poll func(timeoutMs int) (Event, bool), handle func(Event) bool, timeoutMs int) int
}

type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event) bool, timeoutMs int) int {
	return DrainMaxStrategy{}.Consume(poll, handle, timeoutMs)
}

// DrainMaxStrategy handles at most Max events per frame; Max <= 0 means no limit.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event) bool, timeoutMs int) int {
	count := 0
	event, ok := poll(timeoutMs)
	for ok {
		count++
		if !handle(event) {
			return count
		}
		if s.Max > 0 && count >= s.Max {
			return count
		}
		event, ok = poll(0)
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}

// DrainOne handles a single event per frame.
func DrainOne() EventsConsumerStrategy {
	return DrainMaxStrategy{Max: 1}
}
