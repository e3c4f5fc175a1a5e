package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

const DefaultTTL = 6 * time.Second

type Notification struct {
	Message  string
	Severity Severity
}

// Queue holds at most one active notification. Posting while one is active
// replaces it; there is no queueing and no coalescing. Notifications
// auto-dismiss after the TTL unless dismissed manually first. Dismissal only
// clears the notification, never any task state.
type Queue struct {
	mu     sync.Mutex
	active *Notification
	seq    uint64
	ttl    time.Duration
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl}
}

func (q *Queue) Success(message string) {
	q.Post(message, SeveritySuccess)
}

func (q *Queue) Error(message string) {
	q.Post(message, SeverityError)
}

func (q *Queue) Post(message string, severity Severity) {
	q.mu.Lock()
	q.seq++
	token := q.seq
	q.active = &Notification{Message: message, Severity: severity}
	q.mu.Unlock()

	time.AfterFunc(q.ttl, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		// A later Post or Dismiss bumped the sequence; this timer is stale.
		if q.seq == token {
			q.active = nil
		}
	})
}

func (q *Queue) Dismiss() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	q.active = nil
}

func (q *Queue) Active() (Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.active == nil {
		return Notification{}, false
	}
	return *q.active, true
}
