// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// defaultDelimiter separates sequence tokens unless a Field overrides it.
const defaultDelimiter = ","

// Layouts for date and datetime coercion. dateTimeNaiveLayout accepts
// ISO-8601 timestamps without a UTC offset.
const (
	dateLayout          = "2006-01-02"
	dateTimeNaiveLayout = "2006-01-02T15:04:05"
)

// Accepted boolean tokens, matched case-insensitively. Every other token
// is invalid.
var (
	trueTokens  = map[string]struct{}{"true": {}, "yes": {}, "on": {}, "y": {}, "1": {}}
	falseTokens = map[string]struct{}{"false": {}, "no": {}, "off": {}, "n": {}, "0": {}}
)

// coerceValue converts one raw string into the declared type. Failures are
// returned, never panicked, so the walker can aggregate them across the
// whole schema.
func coerceValue(t Type, raw, delim string) (any, error) {
	switch t.kind {
	case KindInt, KindFloat, KindBool, KindString:
		return coerceScalar(t.kind, raw)
	case KindSecret:
		return NewSecret(raw), nil
	case KindURL:
		return coerceURL(t.scheme, raw)
	case KindEnum:
		return coerceEnum(t.members, raw)
	case KindDate:
		v, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("not a valid date (want %s): %q", dateLayout, raw)
		}
		return v, nil
	case KindDateTime:
		return coerceDateTime(raw)
	case KindDict:
		return coerceDict(raw)
	case KindList, KindSet, KindTuple:
		return coerceSequence(t, raw, delim)
	default:
		return nil, fmt.Errorf("no coercer for type %s", t)
	}
}

// coerceScalar handles the four scalar kinds that may also appear as
// sequence elements.
func coerceScalar(k Kind, raw string) (any, error) {
	switch k {
	case KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("not a valid integer: %q", raw)
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("not a valid float: %q", raw)
		}
		return v, nil
	case KindBool:
		return coerceBool(raw)
	default:
		return raw, nil
	}
}

func coerceBool(raw string) (any, error) {
	token := strings.ToLower(raw)
	if _, ok := trueTokens[token]; ok {
		return true, nil
	}
	if _, ok := falseTokens[token]; ok {
		return false, nil
	}
	return nil, fmt.Errorf("not a valid boolean: %q", raw)
}

func coerceEnum(members []string, raw string) (any, error) {
	for _, m := range members {
		if raw == m {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("must be one of [%s], got %q", strings.Join(members, ", "), raw)
}

func coerceDateTime(raw string) (any, error) {
	if v, err := time.Parse(time.RFC3339, raw); err == nil {
		return v, nil
	}
	if v, err := time.Parse(dateTimeNaiveLayout, raw); err == nil {
		return v, nil
	}
	return nil, fmt.Errorf("not a valid datetime (want RFC 3339): %q", raw)
}

func coerceDict(raw string) (any, error) {
	var v map[string]any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("not a valid JSON object: %v", err)
	}
	return v, nil
}

// coerceURL validates syntax first, then the scheme constraint, so the
// reason names which of the two was violated.
func coerceURL(scheme urlScheme, raw string) (any, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("not a valid URL: %v", err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("URL %q is missing a scheme", raw)
	}
	switch scheme {
	case schemeHTTP:
		if u.Scheme != "http" {
			return nil, fmt.Errorf("URL scheme must be http, got %q", u.Scheme)
		}
	case schemeHTTPS:
		if u.Scheme != "https" {
			return nil, fmt.Errorf("URL scheme must be https, got %q", u.Scheme)
		}
	case schemeAnyHTTP:
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
		}
	}
	if scheme != schemeAny && u.Host == "" {
		return nil, fmt.Errorf("URL %q has an empty host", raw)
	}
	return u, nil
}

// coerceSequence splits the raw value, trims each token, and coerces every
// element with the scalar coercer. An empty raw string yields an empty
// sequence, not an error.
func coerceSequence(t Type, raw, delim string) (any, error) {
	var tokens []string
	if raw != "" {
		tokens = strings.Split(raw, delim)
		for i, tok := range tokens {
			tokens[i] = strings.TrimSpace(tok)
		}
	}

	if t.kind == KindSet {
		switch t.elem.kind {
		case KindInt:
			return collectSet(tokens, parseInt)
		case KindFloat:
			return collectSet(tokens, parseFloat)
		case KindBool:
			return collectSet(tokens, parseBool)
		default:
			return collectSet(tokens, parseString)
		}
	}

	switch t.elem.kind {
	case KindInt:
		return collectList(tokens, parseInt)
	case KindFloat:
		return collectList(tokens, parseFloat)
	case KindBool:
		return collectList(tokens, parseBool)
	default:
		return collectList(tokens, parseString)
	}
}

func parseInt(raw string) (int, error) {
	v, err := coerceScalar(KindInt, raw)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func parseFloat(raw string) (float64, error) {
	v, err := coerceScalar(KindFloat, raw)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func parseBool(raw string) (bool, error) {
	v, err := coerceBool(raw)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func parseString(raw string) (string, error) { return raw, nil }

func collectList[T any](tokens []string, parse func(string) (T, error)) (any, error) {
	out := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, fmt.Errorf("element %v", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func collectSet[T comparable](tokens []string, parse func(string) (T, error)) (any, error) {
	out := make(map[T]struct{}, len(tokens))
	for _, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, fmt.Errorf("element %v", err)
		}
		out[v] = struct{}{}
	}
	return out, nil
}

// conform checks that an already-typed value matches the declared type.
// It is the shared rule table behind declared defaults and the direct
// construction paths. Strings supplied for secret, URL, date, and datetime
// fields are coerced once here; everything else must already have the
// target representation.
func conform(t Type, v any) (any, error) {
	switch t.kind {
	case KindInt:
		if i, ok := v.(int); ok {
			return i, nil
		}
	case KindFloat:
		switch f := v.(type) {
		case float64:
			return f, nil
		case int:
			return float64(f), nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindSecret:
		switch s := v.(type) {
		case Secret:
			return s, nil
		case string:
			return NewSecret(s), nil
		}
	case KindURL:
		switch u := v.(type) {
		case *url.URL:
			return u, nil
		case string:
			return coerceURL(t.scheme, u)
		}
	case KindEnum:
		if s, ok := v.(string); ok {
			return coerceEnum(t.members, s)
		}
	case KindDate:
		switch d := v.(type) {
		case time.Time:
			return d, nil
		case string:
			return coerceValue(t, d, "")
		}
	case KindDateTime:
		switch d := v.(type) {
		case time.Time:
			return d, nil
		case string:
			return coerceDateTime(d)
		}
	case KindDict:
		if m, ok := v.(map[string]any); ok {
			return m, nil
		}
	case KindList, KindTuple:
		if ok := conformsToSlice(t.elem.kind, v); ok {
			return v, nil
		}
	case KindSet:
		if ok := conformsToSet(t.elem.kind, v); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("value %v does not conform to type %s", v, t)
}

func conformsToSlice(elem Kind, v any) bool {
	switch elem {
	case KindInt:
		_, ok := v.([]int)
		return ok
	case KindFloat:
		_, ok := v.([]float64)
		return ok
	case KindBool:
		_, ok := v.([]bool)
		return ok
	default:
		_, ok := v.([]string)
		return ok
	}
}

func conformsToSet(elem Kind, v any) bool {
	switch elem {
	case KindInt:
		_, ok := v.(map[int]struct{})
		return ok
	case KindFloat:
		_, ok := v.(map[float64]struct{})
		return ok
	case KindBool:
		_, ok := v.(map[bool]struct{})
		return ok
	default:
		_, ok := v.(map[string]struct{})
		return ok
	}
}
