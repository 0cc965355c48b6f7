package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"

	"github.com/pixil98/go-errors"
)

// DirStore is a read-only set of definitions loaded from the .json asset
// files under a directory tree.
type DirStore[T ValidatingSpec] struct {
	records map[Identifier]T
}

// LoadDirStore reads every .json file below root in fsys. All broken files
// are reported together rather than stopping at the first.
func LoadDirStore[T ValidatingSpec](fsys fs.FS, root string) (*DirStore[T], error) {
	s := &DirStore[T]{
		records: map[Identifier]T{},
	}

	el := errors.NewErrorList()
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}

		asset, err := loadAsset[T](fsys, p)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", p, err))
			return nil
		}

		if _, dup := s.records[asset.Id()]; dup {
			el.Add(fmt.Errorf("%s: duplicate id %q", p, asset.Id()))
			return nil
		}

		s.records[asset.Id()] = asset.Spec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

func loadAsset[T ValidatingSpec](fsys fs.FS, p string) (*Asset[T], error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	if err := json.Unmarshal(data, asset); err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	if err := asset.Validate(); err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}

	return asset, nil
}

func (s *DirStore[T]) Get(id Identifier) (T, bool) {
	val, ok := s.records[id]
	return val, ok
}

// Ids returns every loaded id in sorted order.
func (s *DirStore[T]) Ids() []Identifier {
	return slices.Sorted(maps.Keys(s.records))
}

func (s *DirStore[T]) Len() int {
	return len(s.records)
}
