package sanitizer

import (
	"container/list"
	"slices"
	"strings"
	"sync"
)

// Whitelist is a set of lower-case tag names allowed to survive StripTags.
// The zero value allows nothing.
type Whitelist struct {
	names map[string]struct{}
}

// ParseWhitelist extracts tag names from strings such as "<b><i><a>".
// Matching is case-insensitive; entries that are not exactly "<name>" with a
// letter followed by letters or digits are ignored.
func ParseWhitelist(allowed string) Whitelist {
	matches := whitelistEntryRegex.FindAllString(strings.ToLower(allowed), -1)
	if len(matches) == 0 {
		return Whitelist{}
	}

	names := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		names[m[1:len(m)-1]] = struct{}{}
	}
	return Whitelist{names: names}
}

// Allows reports whether the tag name, compared case-insensitively, is in the set.
func (w Whitelist) Allows(name string) bool {
	if len(w.names) == 0 {
		return false
	}
	_, ok := w.names[strings.ToLower(name)]
	return ok
}

// Len returns the number of distinct tag names.
func (w Whitelist) Len() int {
	return len(w.names)
}

// Names returns the tag names in sorted order.
func (w Whitelist) Names() []string {
	names := make([]string, 0, len(w.names))
	for n := range w.names {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// String renders the whitelist in its canonical "<a><b>" form.
func (w Whitelist) String() string {
	var b strings.Builder
	for _, n := range w.Names() {
		b.WriteByte('<')
		b.WriteString(n)
		b.WriteByte('>')
	}
	return b.String()
}

type whitelistEntry struct {
	key   string
	value Whitelist
}

// whitelistCache is a mutex-guarded LRU of parsed whitelists keyed by the raw
// whitelist string.
type whitelistCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newWhitelistCache(capacity int) *whitelistCache {
	return &whitelistCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		eviction: list.New(),
	}
}

func (c *whitelistCache) get(key string) (Whitelist, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*whitelistEntry).value, true
	}
	return Whitelist{}, false
}

func (c *whitelistCache) put(key string, value Whitelist) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*whitelistEntry).value = value
		return
	}

	c.items[key] = c.eviction.PushFront(&whitelistEntry{key: key, value: value})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*whitelistEntry).key)
	}
}

func (c *whitelistCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
