package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// LabelCount is one entry of a breakdown.
type LabelCount struct {
	Label string
	Count int
}

// Counts maps labels to item counts and remembers the order in which the
// labels appeared in the service's JSON object. The zero value is empty
// and ready to use.
type Counts struct {
	entries []LabelCount
}

// NewCounts builds a Counts from entries in the given order. A repeated
// label keeps its first position and takes the later count.
func NewCounts(entries ...LabelCount) Counts {
	var c Counts
	for _, e := range entries {
		c.set(e.Label, e.Count)
	}
	return c
}

// Len returns the number of labels.
func (c Counts) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in insertion order.
func (c Counts) Entries() []LabelCount {
	out := make([]LabelCount, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the count for label.
func (c Counts) Get(label string) (int, bool) {
	for _, e := range c.entries {
		if e.Label == label {
			return e.Count, true
		}
	}
	return 0, false
}

func (c *Counts) set(label string, n int) {
	for i := range c.entries {
		if c.entries[i].Label == label {
			c.entries[i].Count = n
			return
		}
	}
	c.entries = append(c.entries, LabelCount{Label: label, Count: n})
}

// UnmarshalJSON decodes a JSON object token by token so that key order
// survives. null decodes to an empty Counts.
func (c *Counts) UnmarshalJSON(data []byte) error {
	*c = Counts{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("counts: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("counts: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("counts: %w", err)
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("counts: expected key, got %v", tok)
		}
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("counts: value for %q: %w", label, err)
		}
		count, err := parseCount(n)
		if err != nil {
			return fmt.Errorf("counts: value for %q: %w", label, err)
		}
		c.set(label, count)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("counts: %w", err)
	}
	return nil
}

// parseCount accepts a non-negative whole number that fits in an int.
// 3 and 3.0 are fine; 2.6, -1 and 1e30 are not.
func parseCount(n json.Number) (int, error) {
	if v, err := n.Int64(); err == nil {
		if v < 0 || int64(int(v)) != v {
			return 0, fmt.Errorf("count %s out of range", n)
		}
		return int(v), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("count %s is not a whole number", n)
	}
	if f < 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("count %s out of range", n)
	}
	return int(f), nil
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (c Counts) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		fmt.Fprintf(&b, "%d", e.Count)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
