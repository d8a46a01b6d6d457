package urlparams

import (
	"bytes"
	"encoding/json"
)

// Params is an ordered string mapping. Keys keep the position of their first
// insertion; setting an existing key overwrites its value in place.
// A nil *Params is a valid empty mapping for all read methods.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams returns an empty mapping.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set stores value under key.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Each calls fn for every pair in insertion order until fn returns false.
func (p *Params) Each(fn func(key, value string) bool) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		if !fn(k, p.values[k]) {
			return
		}
	}
}

// Map returns an unordered copy.
func (p *Params) Map() map[string]string {
	if p == nil {
		return nil
	}
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the mapping as a JSON object preserving key order.
// Markup characters are not escaped. A nil mapping encodes as null.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encode terminates every value with a newline.
	writeString := func(s string) error {
		if err := enc.Encode(s); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(p.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
