// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config is an immutable configuration instance produced by one of the
// schema build paths. It is either fully populated or never returned; there
// is no partially built state. Accessors take the declared field name.
//
// Accessors panic on a field name the schema does not declare (a
// programming error, since the schema is closed at declaration time) and
// return the zero value for fields legitimately left unset by the partial
// path; use [Config.Has] to distinguish the latter.
type Config struct {
	schema *Schema
	values map[string]any
}

// Schema returns the schema this instance was built from.
func (c *Config) Schema() *Schema { return c.schema }

// Get returns the coerced value of the named field and whether it is set.
// It panics if the schema does not declare the field.
func (c *Config) Get(name string) (any, bool) {
	if _, ok := c.schema.index[name]; !ok {
		panic("envarify: schema " + c.schema.name + " has no field " + strconv.Quote(name))
	}
	v, ok := c.values[name]
	return v, ok
}

// Has reports whether the named field holds a value. It is false only for
// fields left unset by the partial construction path or a NoValue default.
func (c *Config) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Equal reports whether both instances were built from the same schema and
// hold equal field values. Secret fields compare by payload; this is the
// explicit comparison path, distinct from the masked rendering.
func (c *Config) Equal(other *Config) bool {
	if other == nil {
		return false
	}
	return c.schema == other.schema && reflect.DeepEqual(c.values, other.values)
}

// Int returns the named int field.
func (c *Config) Int(name string) int {
	v, _ := c.Get(name)
	i, _ := v.(int)
	return i
}

// Float returns the named float field.
func (c *Config) Float(name string) float64 {
	v, _ := c.Get(name)
	f, _ := v.(float64)
	return f
}

// Bool returns the named bool field.
func (c *Config) Bool(name string) bool {
	v, _ := c.Get(name)
	b, _ := v.(bool)
	return b
}

// Str returns the named string or enum field.
func (c *Config) Str(name string) string {
	v, _ := c.Get(name)
	s, _ := v.(string)
	return s
}

// Secret returns the named secret field.
func (c *Config) Secret(name string) Secret {
	v, _ := c.Get(name)
	s, _ := v.(Secret)
	return s
}

// URL returns the named URL field.
func (c *Config) URL(name string) *url.URL {
	v, _ := c.Get(name)
	u, _ := v.(*url.URL)
	return u
}

// Time returns the named date or datetime field.
func (c *Config) Time(name string) time.Time {
	v, _ := c.Get(name)
	t, _ := v.(time.Time)
	return t
}

// Dict returns the named JSON-object field.
func (c *Config) Dict(name string) map[string]any {
	v, _ := c.Get(name)
	m, _ := v.(map[string]any)
	return m
}

// Ints returns the named list or tuple field of ints.
func (c *Config) Ints(name string) []int {
	v, _ := c.Get(name)
	l, _ := v.([]int)
	return l
}

// Floats returns the named list or tuple field of floats.
func (c *Config) Floats(name string) []float64 {
	v, _ := c.Get(name)
	l, _ := v.([]float64)
	return l
}

// Strs returns the named list or tuple field of strings.
func (c *Config) Strs(name string) []string {
	v, _ := c.Get(name)
	l, _ := v.([]string)
	return l
}

// Bools returns the named list or tuple field of bools.
func (c *Config) Bools(name string) []bool {
	v, _ := c.Get(name)
	l, _ := v.([]bool)
	return l
}

// IntSet returns the named set field of ints.
func (c *Config) IntSet(name string) map[int]struct{} {
	v, _ := c.Get(name)
	set, _ := v.(map[int]struct{})
	return set
}

// StrSet returns the named set field of strings.
func (c *Config) StrSet(name string) map[string]struct{} {
	v, _ := c.Get(name)
	set, _ := v.(map[string]struct{})
	return set
}

// Nested returns the named embedded sub-config.
func (c *Config) Nested(name string) *Config {
	v, _ := c.Get(name)
	sub, _ := v.(*Config)
	return sub
}

// String renders the instance as "SchemaName(field=value, ...)" in field
// declaration order. Secret fields render masked, nested instances render
// recursively, sets render sorted, and dicts render as canonical JSON, so
// the output is deterministic and safe to log.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.schema.name)
	b.WriteByte('(')
	for i, f := range c.schema.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		v, ok := c.values[f.Name]
		if !ok {
			b.WriteString("<unset>")
			continue
		}
		b.WriteString(renderValue(f.Type, v))
	}
	b.WriteByte(')')
	return b.String()
}

func renderValue(t Type, v any) string {
	switch t.kind {
	case KindSecret:
		return maskToken
	case KindNested:
		if sub, ok := v.(*Config); ok {
			return sub.String()
		}
	case KindDate:
		if d, ok := v.(time.Time); ok {
			return d.Format(dateLayout)
		}
	case KindDateTime:
		if d, ok := v.(time.Time); ok {
			return d.Format(time.RFC3339)
		}
	case KindDict:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
	case KindSet:
		return renderSet(v)
	}
	return fmt.Sprintf("%v", v)
}

// renderSet prints set members sorted so rendering stays deterministic
// despite map iteration order.
func renderSet(v any) string {
	var members []string
	switch set := v.(type) {
	case map[int]struct{}:
		ints := make([]int, 0, len(set))
		for m := range set {
			ints = append(ints, m)
		}
		sort.Ints(ints)
		for _, m := range ints {
			members = append(members, strconv.Itoa(m))
		}
	case map[float64]struct{}:
		floats := make([]float64, 0, len(set))
		for m := range set {
			floats = append(floats, m)
		}
		sort.Float64s(floats)
		for _, m := range floats {
			members = append(members, strconv.FormatFloat(m, 'g', -1, 64))
		}
	case map[bool]struct{}:
		for _, b := range []bool{false, true} {
			if _, ok := set[b]; ok {
				members = append(members, strconv.FormatBool(b))
			}
		}
	case map[string]struct{}:
		for m := range set {
			members = append(members, m)
		}
		sort.Strings(members)
	default:
		return fmt.Sprintf("%v", v)
	}
	return "{" + strings.Join(members, ", ") + "}"
}
