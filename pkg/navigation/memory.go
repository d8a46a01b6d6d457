package navigation

import (
	"strings"
	"sync"
)

// Memory is an in-memory Provider with a history stack and a scroll offset.
// It implements HistoryPusher and Scroller.
type Memory struct {
	mu         sync.Mutex
	entries    []string
	index      int
	scrollTop  int
	scrollLeft int
}

// NewMemory returns a Memory positioned at href.
func NewMemory(href string) *Memory {
	return &Memory{entries: []string{href}}
}

func (m *Memory) Href() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index]
}

func (m *Memory) Pathname() string {
	return ParseLocation(m.Href()).Pathname
}

func (m *Memory) Search() string {
	return ParseLocation(m.Href()).Search
}

func (m *Memory) Hash() string {
	return ParseLocation(m.Href()).Hash
}

// Replace overwrites the current history entry.
func (m *Memory) Replace(target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.index] = Resolve(m.entries[m.index], target)
}

// SetHash pushes the current URL with the given fragment and scrolls to the
// top, the way following an in-page anchor does.
func (m *Memory) SetHash(hash string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := withoutHash(m.entries[m.index]) + "#" + strings.TrimPrefix(hash, "#")
	m.push(next)
	m.scrollTop, m.scrollLeft = 0, 0
}

// PushState adds target as a new history entry without touching the scroll
// offset. Forward entries are discarded.
func (m *Memory) PushState(target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.push(Resolve(m.entries[m.index], target))
}

// Must be called with lock held.
func (m *Memory) push(href string) {
	m.entries = append(m.entries[:m.index+1], href)
	m.index++
}

// Back moves to the previous entry. It reports false at the start of history.
func (m *Memory) Back() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index == 0 {
		return false
	}
	m.index--
	return true
}

// History returns a copy of all entries, oldest first.
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Memory) Scroll() (top, left int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scrollTop, m.scrollLeft
}

func (m *Memory) ScrollTo(top, left int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scrollTop, m.scrollLeft = top, left
}

// legacy exposes a provider without HistoryPusher.
type legacy struct {
	Provider
	Scroller
}

// WithoutHistory wraps m so that it no longer satisfies HistoryPusher.
func WithoutHistory(m *Memory) Provider {
	return legacy{Provider: m, Scroller: m}
}
