package face

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultJournalSize bounds how many entries a Journal keeps.
const DefaultJournalSize = 500

// Entry is one timestamped line of the playback log.
type Entry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Time.Format("15:04:05"), e.Message)
}

// Journal is the append-only log panel. Entries are echoed to a std logger.
type Journal struct {
	notifyMu  sync.Mutex
	mu        sync.Mutex
	entries   []Entry
	size      int
	logger    *log.Logger
	listeners map[int]func(Entry)
	nextID    int
	now       func() time.Time
}

// NewJournal creates a Journal holding at most size entries. A nil logger
// echoes to the standard logger.
func NewJournal(size int, logger *log.Logger) *Journal {
	if size <= 0 {
		size = DefaultJournalSize
	}
	if logger == nil {
		logger = log.Default()
	}

	j := new(Journal)
	j.size = size
	j.logger = logger
	j.listeners = make(map[int]func(Entry))
	j.now = time.Now
	return j
}

// Append adds a line and returns the entry it created. Listeners see entries
// in append order and must not append themselves.
func (j *Journal) Append(msg string) Entry {
	j.notifyMu.Lock()
	defer j.notifyMu.Unlock()

	j.mu.Lock()
	e := Entry{Time: j.now(), Message: msg}
	j.entries = append(j.entries, e)
	if len(j.entries) > j.size {
		j.entries = j.entries[len(j.entries)-j.size:]
	}
	listeners := make([]func(Entry), 0, len(j.listeners))
	for _, l := range j.listeners {
		listeners = append(listeners, l)
	}
	j.mu.Unlock()

	j.logger.Println(e.String())
	for _, l := range listeners {
		l(e)
	}
	return e
}

// Appendf formats and appends a line.
func (j *Journal) Appendf(format string, args ...interface{}) Entry {
	return j.Append(fmt.Sprintf(format, args...))
}

// Entries returns a copy of the retained entries, oldest first.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Attach calls fn with the retained entries and then registers listener,
// with no append delivered in between. The returned func removes listener.
func (j *Journal) Attach(fn func(backlog []Entry), listener func(Entry)) func() {
	j.notifyMu.Lock()
	defer j.notifyMu.Unlock()
	fn(j.Entries())
	return j.Subscribe(listener)
}

// Subscribe registers fn for every new entry. The returned func removes it.
func (j *Journal) Subscribe(fn func(Entry)) func() {
	j.mu.Lock()
	id := j.nextID
	j.nextID++
	j.listeners[id] = fn
	j.mu.Unlock()

	return func() {
		j.mu.Lock()
		delete(j.listeners, id)
		j.mu.Unlock()
	}
}
