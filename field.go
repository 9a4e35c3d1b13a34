// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

// noValue is the type behind the NoValue sentinel.
type noValue struct{}

// NoValue is a default marker for Optional fields. A field declared with
// Default: NoValue is not required, but when its variable is absent the
// field is left unset (Config.Has reports false) instead of receiving a
// default value. It is the analogue of a nullable field defaulting to null.
var NoValue any = noValue{}

// Field binds one configuration field to its source environment variable,
// declared type, and resolution rules. Fields are declared once, validated
// by [NewSchema], and immutable thereafter.
type Field struct {
	// Name identifies the field inside the built Config instance.
	Name string

	// Key is the environment variable the raw value is read from. Must be
	// non-empty unless the field embeds a nested schema (nested schemas
	// resolve their own keys recursively).
	Key string

	// Type is the declared target type.
	Type Type

	// Default, when non-nil, makes the field optional: it is used verbatim
	// when Key is absent from the source. The value must conform to Type
	// (string defaults for secret, URL, and date fields are coerced once,
	// at declaration time). The [NoValue] sentinel is allowed on Optional
	// fields only.
	Default any

	// Parse, when non-nil, replaces the type's coercer for this field.
	// It must return a value conforming to Type; the declared type still
	// drives accessors and rendering.
	Parse func(string) (any, error)

	// Delimiter overrides the "," token separator. Only meaningful for
	// sequence fields; ignored otherwise.
	Delimiter string
}

// Nested embeds sub as a single field of the enclosing schema. The nested
// schema's fields keep their own environment keys; embedding does not
// rewrite or prefix them.
func Nested(name string, sub *Schema) Field {
	return Field{Name: name, Type: Type{kind: KindNested, sub: sub}}
}

// isNested reports whether the field embeds a sub-schema.
func (f Field) isNested() bool { return f.Type.kind == KindNested }

// hasDefault reports whether absence of the source key is legal.
func (f Field) hasDefault() bool { return f.Default != nil }

// delimiter returns the effective sequence token separator.
func (f Field) delimiter() string {
	if f.Delimiter != "" {
		return f.Delimiter
	}
	return defaultDelimiter
}
