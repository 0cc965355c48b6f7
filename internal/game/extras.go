package game

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-errors"
)

// Extras holds player fields that have no typed counterpart. Values are kept
// as encoded JSON so the record stays serializable whatever callers store.
type Extras map[string]json.RawMessage

// Set encodes v and stores it under key, replacing any previous value.
func (x *Extras) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding extra %q: %w", key, err)
	}

	if *x == nil {
		*x = Extras{}
	}
	(*x)[key] = b
	return nil
}

// Get decodes the value under key into out. It reports false when the key is absent.
func (x Extras) Get(key string, out any) (bool, error) {
	raw, ok := x[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("decoding extra %q: %w", key, err)
	}
	return true, nil
}

// Merge stores every entry of vals. Entries that fail to encode are skipped
// and reported together; the rest are still written.
func (x *Extras) Merge(vals map[string]any) error {
	el := errors.NewErrorList()
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		el.Add(x.Set(k, vals[k]))
	}
	return el.Err()
}

// Keys returns the stored keys in sorted order.
func (x Extras) Keys() []string {
	return slices.Sorted(maps.Keys(x))
}
