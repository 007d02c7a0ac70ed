// Package buco is the runtime companion of the bucogen generator.
//
// Bucogen emits type-state builders for struct types: every field gets a
// setter that may be called in any order, and the generated Build function
// only accepts a builder whose required fields have all been set. Forgetting a
// field is a compile error at the Build call, not a runtime check.
//
//	//go:generate go run github.com/calumari/buco/cmd/bucogen -type=Elements
//
//	type Elements struct {
//		Fire  uint8
//		Light buco.Option[uint8]
//	}
//
//	e := BuildElements(NewElementsBuilder().SetFire(1).SetLight(buco.Some[uint8](5)))
//
// Fields declared as [Option] are optional: besides BuildElements the
// generator emits one BuildElementsWithout... function per non-empty subset
// of optional fields, leaving those fields as [None]. Adding the
// //buco:strict directive to the type's doc comment disables those variants
// so every field must be set explicitly.
package buco

import "fmt"

// Option holds a value of type T or nothing. The zero Option is empty.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// OrElse returns the held value, or def when o is empty.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
