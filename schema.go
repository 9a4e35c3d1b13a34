// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Schema is an ordered, immutable set of field declarations for one
// configuration type. Create it once with [NewSchema] or [MustSchema];
// every build call walks the same declaration against a fresh source
// snapshot, so concurrent builds are safe by construction.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
	log    zerolog.Logger
}

// NewSchema validates the field declarations and returns the schema.
// Validation covers everything a build could otherwise only discover at
// runtime: empty or duplicate field names, empty source keys, unknown
// types, non-scalar sequence elements, empty enum member sets, and
// defaults that do not conform to their declared type.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: schema name must not be empty", ErrSchema)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: schema %s has no fields", ErrSchema, name)
	}

	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
		log:    zerolog.Nop(),
	}
	for _, f := range fields {
		f, err := s.checkField(f)
		if err != nil {
			return nil, err
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema is like [NewSchema] but panics on a declaration error. It is
// intended for package-level schema variables.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// checkField validates one declaration and returns it with its default
// normalized (string defaults for secret/URL/date fields coerced once).
func (s *Schema) checkField(f Field) (Field, error) {
	if f.Name == "" {
		return f, fmt.Errorf("%w: schema %s has a field with no name", ErrSchema, s.name)
	}
	if _, dup := s.index[f.Name]; dup {
		return f, fmt.Errorf("%w: schema %s declares field %q twice", ErrSchema, s.name, f.Name)
	}

	if f.isNested() {
		if f.Type.sub == nil {
			return f, fmt.Errorf("%w: field %q embeds a nil schema", ErrSchema, f.Name)
		}
		if f.Key != "" || f.Default != nil || f.Parse != nil {
			return f, fmt.Errorf("%w: nested field %q must not declare a key, default, or parse function", ErrSchema, f.Name)
		}
		return f, nil
	}

	if f.Type.kind == KindInvalid {
		return f, fmt.Errorf("%w: field %q has no declared type", ErrSchema, f.Name)
	}
	if f.Key == "" {
		return f, fmt.Errorf("%w: field %q has no source key", ErrSchema, f.Name)
	}

	switch f.Type.kind {
	case KindEnum:
		if len(f.Type.members) == 0 {
			return f, fmt.Errorf("%w: enum field %q has no members", ErrSchema, f.Name)
		}
		seen := make(map[string]struct{}, len(f.Type.members))
		for _, m := range f.Type.members {
			if _, dup := seen[m]; dup {
				return f, fmt.Errorf("%w: enum field %q declares member %q twice", ErrSchema, f.Name, m)
			}
			seen[m] = struct{}{}
		}
	case KindList, KindSet, KindTuple:
		if f.Type.elem == nil || !f.Type.elem.isScalar() {
			return f, fmt.Errorf("%w: field %q: sequence element must be a scalar type", ErrSchema, f.Name)
		}
	}

	if f.Default == NoValue {
		if !f.Type.optional {
			return f, fmt.Errorf("%w: field %q: NoValue default requires an Optional type", ErrSchema, f.Name)
		}
		return f, nil
	}
	if f.Default != nil {
		v, err := conform(f.Type, f.Default)
		if err != nil {
			return f, fmt.Errorf("%w: field %q: default %v", ErrSchema, f.Name, err)
		}
		f.Default = v
	}
	return f, nil
}

// Name returns the schema's declared name.
func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the ordered field declarations.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// FromEnv builds a Config from the process environment. The environment is
// snapshotted once per call and the snapshot handed to [Schema.FromEnviron].
func (s *Schema) FromEnv() (*Config, error) {
	return s.FromEnviron(environSnapshot())
}

// FromEnviron builds a Config from an explicit key→value snapshot. Absence
// of a key is distinct from presence with an empty value. On any missing or
// invalid field the build fails with a single [AggregateError] listing all
// of them; no partial instance is ever returned.
func (s *Schema) FromEnviron(env map[string]string) (*Config, error) {
	values, errs := s.walk(env, s.log)
	if len(errs) > 0 {
		return nil, &AggregateError{Schema: s.name, Fields: errs}
	}
	return &Config{schema: s, values: values}, nil
}

// walk resolves every field in declaration order, collecting all outcomes
// before deciding success or failure. There is no short-circuit on the
// first error: that is the central aggregation invariant.
func (s *Schema) walk(env map[string]string, log zerolog.Logger) (map[string]any, []*FieldError) {
	values := make(map[string]any, len(s.fields))
	var errs []*FieldError

	for _, f := range s.fields {
		if f.isNested() {
			sub := f.Type.sub
			subValues, subErrs := sub.walk(env, log)
			if len(subErrs) > 0 {
				errs = append(errs, subErrs...)
				continue
			}
			values[f.Name] = &Config{schema: sub, values: subValues}
			continue
		}

		raw, present := env[f.Key]
		if !present {
			switch {
			case f.Default == nil:
				log.Debug().Str("schema", s.name).Str("field", f.Name).Str("key", f.Key).
					Msg("required variable missing")
				errs = append(errs, newMissing(f.Key))
			case f.Default == NoValue:
				log.Debug().Str("schema", s.name).Str("field", f.Name).Str("key", f.Key).
					Msg("optional variable absent, field left unset")
			default:
				log.Debug().Str("schema", s.name).Str("field", f.Name).Str("key", f.Key).
					Msg("using declared default")
				values[f.Name] = f.Default
			}
			continue
		}

		v, err := f.coerceRaw(raw)
		if err != nil {
			log.Debug().Str("schema", s.name).Str("field", f.Name).Str("key", f.Key).
				Str("reason", err.Error()).Msg("coercion failed")
			errs = append(errs, newInvalid(f.Key, err.Error()))
			continue
		}
		log.Debug().Str("schema", s.name).Str("field", f.Name).Str("key", f.Key).
			Msg("resolved from environment")
		values[f.Name] = v
	}
	return values, errs
}

// coerceRaw applies the field's parse override when present, falling back
// to the type's coercer. Override results still conform to the declared
// type so accessors and rendering stay well-typed.
func (f Field) coerceRaw(raw string) (any, error) {
	if f.Parse == nil {
		return coerceValue(f.Type, raw, f.delimiter())
	}
	v, err := f.Parse(raw)
	if err != nil {
		return nil, err
	}
	return conform(f.Type, v)
}

// environSnapshot captures the process environment as an immutable map.
func environSnapshot() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
