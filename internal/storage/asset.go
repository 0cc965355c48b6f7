package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	"github.com/pixil98/go-errors"
)

// CurrentVersion is the newest asset envelope version this package reads.
const CurrentVersion = 1

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

type ValidatingSpec interface {
	Validate() error
}

type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Asset is the on-disk envelope around a single definition.
type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version"`
	Identifier Identifier `json:"id"`
	Spec       T          `json:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	switch {
	case a.Version == 0:
		el.Add(fmt.Errorf("version must be set"))
	case a.Version > CurrentVersion:
		el.Add(fmt.Errorf("version %d is newer than supported version %d", a.Version, CurrentVersion))
	}

	if !identifierPattern.MatchString(a.Identifier.String()) {
		el.Add(fmt.Errorf("id %q must be non-empty and alphanumeric", a.Identifier))
	}

	if reflect.ValueOf(a.Spec).IsNil() {
		el.Add(fmt.Errorf("spec must be set"))
	} else {
		el.Add(a.Spec.Validate())
	}

	return el.Err()
}

// Lookup finds a definition by id.
type Lookup[T ValidatingSpec] interface {
	Get(Identifier) (T, bool)
}

// Ref is a reference to another asset by id. It serialises as the bare id
// and is filled in by Resolve once the referenced store is loaded.
type Ref[T ValidatingSpec] struct {
	id  Identifier
	val T
}

func NewRef[T ValidatingSpec](id Identifier) Ref[T] {
	return Ref[T]{id: id}
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.id)
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id)
}

func (r Ref[T]) Validate() error {
	if r.id == "" {
		return fmt.Errorf("%s reference is required", typeName[T]())
	}
	return nil
}

// Resolve looks the reference up in st.
func (r *Ref[T]) Resolve(st Lookup[T]) error {
	val, ok := st.Get(r.id)
	if !ok {
		return fmt.Errorf("%s %q not found", typeName[T](), r.id)
	}
	r.val = val
	return nil
}

func (r Ref[T]) Id() Identifier {
	return r.id
}

// Get returns the resolved value, or the zero value before Resolve succeeds.
func (r Ref[T]) Get() T {
	return r.val
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
