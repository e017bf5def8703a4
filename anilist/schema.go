package anilist

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of a response model, e.g. Schema(&Media{}) or Schema([]*Character{}).
// Optional fields are described by the type they hold and are not required.
func Schema(v any) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.RequiredFromJSONSchemaTags = true
	reflector.Mapper = optionSchema

	return reflector.Reflect(v)
}

// optionSchema describes mo.Option[T] as the scalar T.
// It returns nil for every other type, leaving it to the reflector.
func optionSchema(t reflect.Type) *jsonschema.Schema {
	if !isOption(t) {
		return nil
	}

	method, ok := t.MethodByName("OrEmpty")
	if !ok {
		return nil
	}

	switch inner := method.Type.Out(0); inner.Kind() {
	case reflect.String:
		return &jsonschema.Schema{Type: "string"}
	case reflect.Bool:
		return &jsonschema.Schema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &jsonschema.Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &jsonschema.Schema{Type: "number"}
	default:
		return nil
	}
}
