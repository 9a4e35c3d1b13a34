// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify

import "bytes"

// maskToken replaces a secret's payload in every textual rendering.
const maskToken = "******"

// Secret holds a sensitive string and masks it in all textual forms.
// fmt verbs (%v, %s, %#v), Config rendering, and JSON marshalling all emit
// "******"; only [Secret.Reveal] returns the plaintext.
type Secret struct {
	value []byte
}

// NewSecret wraps the given plaintext in a Secret.
func NewSecret(value string) Secret {
	return Secret{value: []byte(value)}
}

// Reveal returns the plaintext payload. This is the only observation that
// exposes the secret.
func (s Secret) Reveal() string {
	return string(s.value)
}

// Equal reports whether two secrets hold the same payload. Comparison is
// deliberately a separate, explicit operation from the masked string form.
func (s Secret) Equal(other Secret) bool {
	return bytes.Equal(s.value, other.value)
}

// Erase overwrites the payload with zero bytes.
//
// This is best effort only: Reveal returns ordinary strings whose backing
// memory the runtime may copy or retain, and those copies cannot be
// scrubbed. Erase guarantees nothing beyond zeroing the buffer this Secret
// owns.
func (s Secret) Erase() {
	for i := range s.value {
		s.value[i] = 0
	}
}

// String returns the mask token, never the payload.
func (s Secret) String() string { return maskToken }

// GoString returns the mask token so %#v cannot leak the payload.
func (s Secret) GoString() string { return maskToken }

// MarshalText returns the mask token so encoders (encoding/json among
// others) cannot leak the payload.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(maskToken), nil
}
