package drift

import (
	"container/list"
	"sync"
)

// Queue represents a thread-safe FIFO queue for TrackedEvent items.
type Queue struct {
	mu   sync.Mutex
	list *list.List
}

// NewQueue creates and returns a new empty Queue.
func NewQueue() *Queue {
	return &Queue{list: list.New()}
}

// Enqueue adds a TrackedEvent to the end of the queue.
func (q *Queue) Enqueue(event TrackedEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.list.PushBack(event)
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len() == 0
}

// Len returns the number of TrackedEvents currently in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len()
}

// Drain removes and returns the full current contents in insertion order.
// Capture and clear happen in one critical section, so an event enqueued
// while a drained batch is in flight belongs to the next batch.
func (q *Queue) Drain() []TrackedEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := make([]TrackedEvent, 0, q.list.Len())
	for e := q.list.Front(); e != nil; e = e.Next() {
		events = append(events, e.Value.(TrackedEvent))
	}
	q.list.Init()
	return events
}
