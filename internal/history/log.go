package history

import (
	"sync"
	"time"

	"furniture_store/internal/models"
)

// Entry records one operator-applied status transition so it can be undone
// later in the same session.
type Entry struct {
	ID        int64              `json:"id"`
	OrderID   uint               `json:"-"`
	OrderCode string             `json:"order_code"`
	From      models.OrderStatus `json:"from_status"`
	To        models.OrderStatus `json:"to_status"`
	Timestamp time.Time          `json:"timestamp"`
}

// Log is an in-memory, session-scoped record of status transitions. It is a
// usability aid for undo, not an audit trail: entries are unbounded, never
// persisted, and lost on restart.
type Log struct {
	mu      sync.Mutex
	lastID  int64
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

// Record appends an entry for a completed transition and returns it.
func (l *Log) Record(orderID uint, orderCode string, from, to models.OrderStatus) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	entry := Entry{
		ID:        id,
		OrderID:   orderID,
		OrderCode: orderCode,
		From:      from,
		To:        to,
		Timestamp: time.Now(),
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Get returns the entry with the given id.
func (l *Log) Get(id int64) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Remove deletes the entry with the given id, returning false when no such
// entry exists.
func (l *Log) Remove(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
