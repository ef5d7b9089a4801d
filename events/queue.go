// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO queue of events. At most one [WindowPaint] event
// is pending at a time: sending another one while the first has not
// been removed does nothing. It is not safe for concurrent use;
// platform callbacks and the event loop all run on the main thread.
type Queue struct {
	events []Event
	paint  bool
}

// Send adds the given event to the end of the queue.
func (q *Queue) Send(ev Event) {
	if ev.Type == WindowPaint {
		if q.paint {
			return
		}
		q.paint = true
	}
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Next removes and returns the first event in the queue.
// It returns false if the queue is empty, so that a Queue
// can be used directly as a finite [Source].
func (q *Queue) Next() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	if ev.Type == WindowPaint {
		q.paint = false
	}
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return ev, true
}

// Clear removes all pending events.
func (q *Queue) Clear() {
	q.events = nil
	q.paint = false
}
