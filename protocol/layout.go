package protocol

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcproto/codec"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Field is one entry of a record's wire layout.
//
// Ref returns the codec stored in the record for this field. When decides
// whether the field is on the wire; a nil When means always. During decode
// When sees the record with only the preceding fields populated and every
// later field at its zero value.
type Field[T any] struct {
	Name string
	Ref  func(p *T) codec.Codec
	When func(p *T) bool
}

func (f *Field[T]) present(p *T) bool {
	return f.When == nil || f.When(p)
}

// Layout is the ordered list of a record's fields.
type Layout[T any] []Field[T]

// Decode resets p to its zero value and decodes the present fields in
// order. The first field error is returned unchanged, after which p and
// the stream position are unspecified.
func (l Layout[T]) Decode(p *T, r codec.Reader) error {
	var zero T
	*p = zero

	for i := range l {
		f := &l[i]
		if !f.present(p) {
			continue
		}
		if err := f.Ref(p).Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the present fields of p in order, evaluating each
// predicate against the complete record.
func (l Layout[T]) Encode(p *T, w io.Writer) error {
	for i := range l {
		f := &l[i]
		if !f.present(p) {
			continue
		}
		if err := f.Ref(p).Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Present lists the names of the fields p puts on the wire.
func (l Layout[T]) Present(p *T) []string {
	var names []string
	for i := range l {
		if l[i].present(p) {
			names = append(names, l[i].Name)
		}
	}
	return names
}

// Validate checks that every field is named uniquely and has a Ref.
func (l Layout[T]) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(l))

	for i, f := range l {
		switch {
		case f.Name == "":
			errs = append(errs, fmt.Errorf("%w: field %d has no name", ErrInvalidLayout, i))
		case seen[f.Name]:
			errs = append(errs, fmt.Errorf("%w: field %q declared twice", ErrInvalidLayout, f.Name))
		}
		seen[f.Name] = true

		if f.Ref == nil {
			errs = append(errs, fmt.Errorf("%w: field %q has no codec", ErrInvalidLayout, f.Name))
		}
	}
	return errors.Join(errs...)
}
