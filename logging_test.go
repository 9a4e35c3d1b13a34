// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithLogger_TracesResolution verifies that an attached logger records
// each field's resolution source at debug level.
func TestWithLogger_TracesResolution(t *testing.T) {
	var buf bytes.Buffer
	s := serverSchema(t).WithLogger(zerolog.New(&buf))

	_, err := s.FromEnviron(map[string]string{
		"TIMEOUT_S":   "2.5",
		"API_KEY":     "hush",
		"ALLOWED_IDS": "1,2",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"field":"timeout_s"`)
	assert.Contains(t, out, "resolved from environment")
	assert.Contains(t, out, "using declared default")
	assert.NotContains(t, out, "hush")
}

// TestWithLogger_TracesFailures verifies that missing and invalid outcomes
// are traced with their reasons.
func TestWithLogger_TracesFailures(t *testing.T) {
	var buf bytes.Buffer
	s := serverSchema(t).WithLogger(zerolog.New(&buf))

	_, err := s.FromEnviron(map[string]string{"TIMEOUT_S": "soon"})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "required variable missing")
	assert.Contains(t, out, "coercion failed")
	assert.Contains(t, out, "not a valid float")
}

// TestWithLogger_DoesNotMutateOriginal verifies that WithLogger returns a
// copy and silent schemas stay silent.
func TestWithLogger_DoesNotMutateOriginal(t *testing.T) {
	var buf bytes.Buffer
	s := serverSchema(t)
	logged := s.WithLogger(zerolog.New(&buf))
	assert.NotSame(t, s, logged)

	_, err := s.FromEnviron(map[string]string{
		"TIMEOUT_S":   "2.5",
		"API_KEY":     "k",
		"ALLOWED_IDS": "1",
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
