// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import "github.com/rs/zerolog"

// WithLogger returns a copy of the schema whose builds emit per-field
// resolution traces (resolved from environment, default applied, missing,
// coercion failed) at debug level. The original schema is unchanged.
//
// Resolved values are never logged, and secret coercion cannot fail, so
// secret payloads cannot leak through the trace. Failure reasons may quote
// the offending raw value of non-secret fields. Schemas log nothing by
// default.
func (s *Schema) WithLogger(log zerolog.Logger) *Schema {
	c := *s
	c.log = log
	return &c
}
