package events

import (
	"github.com/lixenwraith/vi-racer/constants"
)

// EventQueue is a fixed ring buffer for race events
// Single producer, single consumer: the engine pushes during a tick and the frame loop
// drains after it, both on the loop goroutine
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest unread one on overflow. O(1)
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++

	// Advance head if overwriting unread events
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&constants.EventBufferMask])
		eq.events[i&constants.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Clear discards pending events
func (eq *EventQueue) Clear() {
	eq.head = eq.tail
}
