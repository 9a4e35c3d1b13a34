// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import "strings"

// Kind identifies the category of a declared [Type]. The set of kinds is
// closed: every kind has exactly one coercer, so a schema that passes
// [NewSchema] validation can never hit an unsupported type at build time.
type Kind int

const (
	// KindInvalid is the zero Kind. A Field declared with the zero Type
	// is rejected by [NewSchema].
	KindInvalid Kind = iota

	// KindInt is a base-10 integer.
	KindInt
	// KindFloat is a decimal floating point number.
	KindFloat
	// KindBool is a boolean parsed from a fixed token set (see package docs).
	KindBool
	// KindString is the raw value taken verbatim.
	KindString
	// KindSecret is a string wrapped in [Secret] so it renders masked.
	KindSecret
	// KindURL is an absolute URL, optionally restricted to http(s) schemes.
	KindURL
	// KindEnum is a string restricted to a declared member set.
	KindEnum
	// KindDate is a calendar date in "2006-01-02" form.
	KindDate
	// KindDateTime is an RFC 3339 timestamp (naive timestamps without an
	// offset are accepted as well).
	KindDateTime
	// KindDict is a JSON object literal.
	KindDict
	// KindList is a delimiter-separated sequence preserving order and
	// duplicates.
	KindList
	// KindSet is a delimiter-separated sequence with duplicates removed.
	KindSet
	// KindTuple is a delimiter-separated sequence preserving order, with
	// arity fixed by the split.
	KindTuple
	// KindNested is a sub-schema embedded as a single field.
	KindNested
)

// String returns a human-readable kind name used in error reasons.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindSecret:
		return "secret"
	case KindURL:
		return "url"
	case KindEnum:
		return "enum"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindDict:
		return "dict"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindTuple:
		return "tuple"
	case KindNested:
		return "nested"
	default:
		return "invalid"
	}
}

// urlScheme restricts which schemes a KindURL type accepts.
type urlScheme int

const (
	schemeAny urlScheme = iota
	schemeHTTP
	schemeHTTPS
	schemeAnyHTTP
)

// Type is an immutable, closed declaration-time type tag. Values are built
// via the constructor functions ([Int], [SetOf], [Enum], ...) and carried by
// a [Field]; there is no way to declare a type without a matching coercer.
type Type struct {
	kind     Kind
	elem     *Type
	members  []string
	scheme   urlScheme
	sub      *Schema
	optional bool
}

// Kind reports the type's category.
func (t Type) Kind() Kind { return t.kind }

// String returns a readable type description used in declaration and
// coercion error messages.
func (t Type) String() string {
	var s string
	switch t.kind {
	case KindURL:
		switch t.scheme {
		case schemeHTTP:
			s = "http url"
		case schemeHTTPS:
			s = "https url"
		case schemeAnyHTTP:
			s = "http(s) url"
		default:
			s = "url"
		}
	case KindEnum:
		s = "enum[" + strings.Join(t.members, ", ") + "]"
	case KindList, KindSet, KindTuple:
		s = t.kind.String() + " of " + t.elem.String()
	case KindNested:
		if t.sub != nil {
			s = "nested " + t.sub.name
		} else {
			s = "nested"
		}
	default:
		s = t.kind.String()
	}
	if t.optional {
		return "optional " + s
	}
	return s
}

// isScalar reports whether the type may be a sequence element.
func (t Type) isScalar() bool {
	switch t.kind {
	case KindInt, KindFloat, KindBool, KindString:
		return true
	default:
		return false
	}
}

// Int declares a base-10 integer field.
func Int() Type { return Type{kind: KindInt} }

// Float declares a floating point field.
func Float() Type { return Type{kind: KindFloat} }

// Bool declares a boolean field. Accepted tokens are documented in the
// package comment.
func Bool() Type { return Type{kind: KindBool} }

// String declares a plain string field (the raw value, verbatim).
func String() Type { return Type{kind: KindString} }

// SecretString declares a sensitive string field. The coerced value is a
// [Secret] that renders masked everywhere except its Reveal method.
func SecretString() Type { return Type{kind: KindSecret} }

// URL declares an absolute URL field with no scheme restriction.
func URL() Type { return Type{kind: KindURL, scheme: schemeAny} }

// HTTPURL declares a URL field whose scheme must be exactly "http".
func HTTPURL() Type { return Type{kind: KindURL, scheme: schemeHTTP} }

// HTTPSURL declares a URL field whose scheme must be exactly "https".
func HTTPSURL() Type { return Type{kind: KindURL, scheme: schemeHTTPS} }

// AnyHTTPURL declares a URL field accepting either "http" or "https".
func AnyHTTPURL() Type { return Type{kind: KindURL, scheme: schemeAnyHTTP} }

// Enum declares a string field restricted to the given member names.
// Matching is case-sensitive.
func Enum(members ...string) Type {
	return Type{kind: KindEnum, members: members}
}

// Date declares a calendar date field in "2006-01-02" form.
func Date() Type { return Type{kind: KindDate} }

// DateTime declares an RFC 3339 timestamp field.
func DateTime() Type { return Type{kind: KindDateTime} }

// Dict declares a field parsed from a JSON object literal.
func Dict() Type { return Type{kind: KindDict} }

// ListOf declares an ordered sequence field with the given scalar element
// type. Order and duplicates are preserved.
func ListOf(elem Type) Type { return Type{kind: KindList, elem: &elem} }

// SetOf declares a deduplicated sequence field with the given scalar
// element type.
func SetOf(elem Type) Type { return Type{kind: KindSet, elem: &elem} }

// TupleOf declares an ordered fixed-arity sequence field with the given
// scalar element type. The arity is whatever the delimiter split yields.
func TupleOf(elem Type) Type { return Type{kind: KindTuple, elem: &elem} }

// Optional marks a type as nullable. Absence handling is unchanged (a
// required field stays required); Optional exists so a field may declare
// [NoValue] as its default and be left unset when the variable is absent.
func Optional(inner Type) Type {
	inner.optional = true
	return inner
}
