// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import (
	"sort"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
)

// FromValues builds a Config from already-typed values keyed by field name,
// never touching the environment. Fields absent from values fall back to
// their declared defaults; required fields with neither fail with the same
// [AggregateError] the environment path raises. This is the strict direct
// path; see [Schema.FromPartial] for the opt-in lenient variant.
func (s *Schema) FromValues(values map[string]any) (*Config, error) {
	return s.buildValues(values, false)
}

// FromPartial builds a Config from already-typed values, leaving unsupplied
// no-default fields unset (Config.Has reports false) instead of failing.
// Unknown field names and non-conforming values are still rejected.
func (s *Schema) FromPartial(values map[string]any) (*Config, error) {
	return s.buildValues(values, true)
}

func (s *Schema) buildValues(supplied map[string]any, partial bool) (*Config, error) {
	values, errs := s.resolveValues(supplied, partial, s.log)
	if len(errs) > 0 {
		return nil, &AggregateError{Schema: s.name, Fields: errs}
	}
	return &Config{schema: s, values: values}, nil
}

// resolveValues runs the direct path through the same required/default rule
// table as the environment walk. Declared defaults are merged under the
// supplied values first, then every field is resolved in declaration order
// so the aggregate keeps its ordering guarantee. Unknown-name errors are
// appended last, sorted by name.
func (s *Schema) resolveValues(supplied map[string]any, partial bool, log zerolog.Logger) (map[string]any, []*FieldError) {
	var errs []*FieldError

	effective := make(map[string]any, len(supplied))
	for name, v := range supplied {
		effective[name] = v
	}

	defaults := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		if f.isNested() || !f.hasDefault() || f.Default == NoValue {
			continue
		}
		if _, ok := supplied[f.Name]; ok {
			continue
		}
		defaults[f.Name] = f.Default
	}
	if len(defaults) > 0 {
		// WithOverwriteWithEmptyValue so zero-valued defaults (false, 0, "")
		// survive the merge; supplied keys are excluded above so nothing the
		// caller passed can be clobbered.
		if err := mergo.Merge(&effective, defaults, mergo.WithOverwriteWithEmptyValue); err != nil {
			errs = append(errs, newInvalid(s.name, "merging defaults: "+err.Error()))
			return nil, errs
		}
	}

	resolved := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		v, ok := effective[f.Name]

		if f.isNested() {
			sub := f.Type.sub
			if !ok {
				if partial {
					continue
				}
				subValues, subErrs := sub.resolveValues(nil, false, log)
				if len(subErrs) > 0 {
					errs = append(errs, subErrs...)
					continue
				}
				resolved[f.Name] = &Config{schema: sub, values: subValues}
				continue
			}
			switch nested := v.(type) {
			case *Config:
				if nested.schema != sub {
					errs = append(errs, newInvalid(f.Name, "config was built from a different schema"))
					continue
				}
				resolved[f.Name] = nested
			case map[string]any:
				subValues, subErrs := sub.resolveValues(nested, partial, log)
				if len(subErrs) > 0 {
					errs = append(errs, subErrs...)
					continue
				}
				resolved[f.Name] = &Config{schema: sub, values: subValues}
			default:
				errs = append(errs, newInvalid(f.Name, "nested value must be a map[string]any or *Config"))
			}
			continue
		}

		if !ok {
			if partial || f.Default == NoValue {
				log.Debug().Str("schema", s.name).Str("field", f.Name).
					Msg("field left unset")
				continue
			}
			log.Debug().Str("schema", s.name).Str("field", f.Name).Str("key", f.Key).
				Msg("required field not supplied")
			errs = append(errs, newMissing(f.Key))
			continue
		}

		cv, err := conform(f.Type, v)
		if err != nil {
			errs = append(errs, newInvalid(f.Name, err.Error()))
			continue
		}
		resolved[f.Name] = cv
	}

	var unknown []string
	for name := range supplied {
		if _, ok := s.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		errs = append(errs, newInvalid(name, "unknown field"))
	}

	return resolved, errs
}
