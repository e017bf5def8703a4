package anilist

import (
	"fmt"
	"reflect"
	"strings"
)

const optionPkgPath = "github.com/samber/mo"

// isOption reports whether t is an instantiation of mo.Option.
func isOption(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.PkgPath() == optionPkgPath && strings.HasPrefix(t.Name(), "Option[")
}

// merge copies into dst every field src carries and marks dst as full.
// Present options overwrite, non-nil pointers, slices and maps replace,
// nested structs merge field by field and other values are set when non-zero.
// dst keeps its id; an src describing another entity is refused.
func merge[PT entity](dst, src PT) error {
	if id := dst.identifier(); id != 0 && id != src.identifier() {
		return fmt.Errorf("%w: enriching %d with %d", ErrIDMismatch, id, src.identifier())
	}

	mergeStruct(reflect.ValueOf(dst).Elem(), reflect.ValueOf(src).Elem())
	dst.markFull()
	return nil
}

func mergeStruct(dst, src reflect.Value) {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}

		d, s := dst.Field(i), src.Field(i)
		switch {
		case isOption(s.Type()):
			if s.MethodByName("IsPresent").Call(nil)[0].Bool() {
				d.Set(s)
			}
		case s.Kind() == reflect.Pointer, s.Kind() == reflect.Slice, s.Kind() == reflect.Map:
			if !s.IsNil() {
				d.Set(s)
			}
		case s.Kind() == reflect.Struct:
			mergeStruct(d, s)
		default:
			if !s.IsZero() {
				d.Set(s)
			}
		}
	}
}
