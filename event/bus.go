package event

import "sync"

// ReaderID identifies a cursor registered on a Bus
type ReaderID uint32

// Bus is an append-only broadcast log with one cursor per reader
// Thread-Safety:
//   - Publish/Drain/RegisterReader: safe for concurrent callers, locking is internal
//   - Each reader sees every event published after its registration exactly once
//
// Retention: entries are discarded once every registered reader has drained past them
// Readers must drain every frame or the log grows without bound
type Bus[T any] struct {
	mu      sync.Mutex
	base    uint64 // Absolute index of log[0]
	log     []T
	readers map[ReaderID]uint64 // Absolute cursor per reader
	nextID  ReaderID
}

// NewBus creates an empty bus with no readers
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{
		log:     make([]T, 0, 16),
		readers: make(map[ReaderID]uint64),
		nextID:  1,
	}
}

// Publish appends an event, visible to every reader whose cursor is behind it
func (b *Bus[T]) Publish(ev T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.readers) == 0 {
		// Nobody can ever observe it
		b.base++
		return
	}
	b.log = append(b.log, ev)
}

// RegisterReader hands out a cursor positioned at the current end of the log
func (b *Bus[T]) RegisterReader() ReaderID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.readers[id] = b.end()
	return id
}

// UnregisterReader drops a cursor so it no longer pins retained entries
func (b *Bus[T]) UnregisterReader(id ReaderID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.readers[id]; !ok {
		return
	}
	delete(b.readers, id)
	b.trim()
}

// Drain returns, in publish order, all events since the reader's cursor and advances it
// Unknown readers receive nil
func (b *Bus[T]) Drain(id ReaderID) []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	cursor, ok := b.readers[id]
	if !ok {
		return nil
	}

	end := b.end()
	if cursor >= end {
		return nil
	}

	start := cursor - b.base
	out := make([]T, end-cursor)
	copy(out, b.log[start:])
	b.readers[id] = end
	b.trim()
	return out
}

// Pending returns the number of events the reader has not drained yet
func (b *Bus[T]) Pending(id ReaderID) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	cursor, ok := b.readers[id]
	if !ok {
		return 0
	}
	return int(b.end() - cursor)
}

// Retained returns the number of events physically held by the bus
func (b *Bus[T]) Retained() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.log)
}

// Readers returns the number of registered cursors
func (b *Bus[T]) Readers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.readers)
}

// end returns the absolute index one past the newest event, caller holds mu
func (b *Bus[T]) end() uint64 {
	return b.base + uint64(len(b.log))
}

// trim discards entries every reader has passed, caller holds mu
func (b *Bus[T]) trim() {
	oldest := b.end()
	for _, cursor := range b.readers {
		if cursor < oldest {
			oldest = cursor
		}
	}

	drop := int(oldest - b.base)
	if drop == 0 {
		return
	}

	remaining := copy(b.log, b.log[drop:])
	var zero T
	for i := remaining; i < len(b.log); i++ {
		b.log[i] = zero // Release references held by payloads
	}
	b.log = b.log[:remaining]
	b.base = oldest
}
