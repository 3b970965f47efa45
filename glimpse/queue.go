package glimpse

import "iter"

// EventQueue buffers events in the order they were pushed until
// they are drained. The zero value is an empty queue.
type EventQueue struct {
	pending []Event
}

// Push appends an event to the end of the queue.
func (q *EventQueue) Push(event Event) {
	q.pending = append(q.pending, event)
}

// Len returns the number of events waiting to be drained.
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// Drain takes all events that are currently queued and returns them as a
// sequence. Events pushed after Drain was called are not part of the sequence,
// they are returned by the next call to Drain. This keeps a drain finite even
// if events are produced while the sequence is consumed.
//
// If iteration stops early, the events not yet consumed are put back in
// front of the queue.
func (q *EventQueue) Drain() iter.Seq[Event] {
	events := q.pending
	q.pending = nil

	return func(yield func(Event) bool) {
		for idx, event := range events {
			if !yield(event) {
				remaining := events[idx+1:]
				q.pending = append(remaining[:len(remaining):len(remaining)], q.pending...)
				return
			}
		}
	}
}
