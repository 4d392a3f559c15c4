// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "argon2id"

var errMalformedDigest = errors.New("malformed argon2id digest")

// Argon2Params are the argon2id tuning parameters.
type Argon2Params struct {
	Memory     uint32 // KiB
	Iterations uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultArgon2Params: 64 MiB, 3 passes, 4 lanes, 16-byte salt, 32-byte key.
var DefaultArgon2Params = Argon2Params{
	Memory:     64 * 1024,
	Iterations: 3,
	Threads:    4,
	SaltLength: 16,
	KeyLength:  32,
}

// argon2Hasher implements [PasswordHasher] with argon2id digests in the PHC
// string format:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
//
// salt and key are unpadded standard base64.
type argon2Hasher struct {
	params Argon2Params
}

// NewPasswordHasher returns an argon2id [PasswordHasher]. Zero fields of
// params are filled from [DefaultArgon2Params].
func NewPasswordHasher(params Argon2Params) PasswordHasher {
	if params.Memory == 0 {
		params.Memory = DefaultArgon2Params.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = DefaultArgon2Params.Iterations
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgon2Params.Threads
	}
	if params.SaltLength == 0 {
		params.SaltLength = DefaultArgon2Params.SaltLength
	}
	if params.KeyLength == 0 {
		params.KeyLength = DefaultArgon2Params.KeyLength
	}

	return &argon2Hasher{params: params}
}

// Hash implements [PasswordHasher].
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.Memory, h.params.Threads, h.params.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The digest's own parameters are used,
// so digests created with older settings keep verifying.
func (h *argon2Hasher) Verify(password, digest string) bool {
	params, salt, key, err := decodeDigest(digest)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func decodeDigest(digest string) (Argon2Params, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2idPrefix {
		return Argon2Params{}, nil, nil, errMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Argon2Params{}, nil, nil, errMalformedDigest
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Threads); err != nil {
		return Argon2Params{}, nil, nil, errMalformedDigest
	}
	if params.Memory == 0 || params.Iterations == 0 || params.Threads == 0 {
		return Argon2Params{}, nil, nil, errMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Argon2Params{}, nil, nil, errMalformedDigest
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Argon2Params{}, nil, nil, errMalformedDigest
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
