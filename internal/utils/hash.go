package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonMemory     = 64 * 1024
	argonIterations = 3
	argonThreads    = 1
	argonSaltLength = 16
	argonKeyLength  = 32
)

var (
	// ErrEmptyPassword is returned by HashPassword for an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrInvalidPasswordHash is returned when a stored hash is not a valid
	// PHC-formatted argon2id string.
	ErrInvalidPasswordHash = errors.New("invalid argon2id hash")
)

// PasswordHash is a parsed argon2id hash in PHC format:
//
//	$argon2id$v=19$m=65536,t=3,p=1$<salt>$<sum>
type PasswordHash struct {
	memory     uint32
	iterations uint32
	threads    uint8
	salt       []byte
	sum        []byte
}

// HashPassword derives an argon2id hash of password with a random salt and
// returns it in PHC format.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	sum := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonThreads, argonKeyLength)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// ParsePasswordHash parses a PHC-formatted argon2id hash.
func ParsePasswordHash(phc string) (*PasswordHash, error) {
	parts := strings.Split(phc, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, fmt.Errorf("%w: bad format", ErrInvalidPasswordHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return nil, fmt.Errorf("%w: unsupported version %s", ErrInvalidPasswordHash, parts[2])
	}

	h := &PasswordHash{}
	params := strings.Split(parts[3], ",")
	if len(params) != 3 {
		return nil, fmt.Errorf("%w: bad params", ErrInvalidPasswordHash)
	}
	for _, param := range params {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			return nil, fmt.Errorf("%w: bad params", ErrInvalidPasswordHash)
		}
		switch key {
		case "m":
			m, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: bad memory", ErrInvalidPasswordHash)
			}
			h.memory = uint32(m)
		case "t":
			t, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: bad iterations", ErrInvalidPasswordHash)
			}
			h.iterations = uint32(t)
		case "p":
			p, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: bad parallelism", ErrInvalidPasswordHash)
			}
			h.threads = uint8(p)
		default:
			return nil, fmt.Errorf("%w: unknown param %q", ErrInvalidPasswordHash, key)
		}
	}

	if h.iterations == 0 || h.threads == 0 || h.memory == 0 {
		return nil, fmt.Errorf("%w: iterations, memory and parallelism must be positive", ErrInvalidPasswordHash)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: bad salt", ErrInvalidPasswordHash)
	}
	if h.sum, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(h.sum) == 0 {
		return nil, fmt.Errorf("%w: bad sum", ErrInvalidPasswordHash)
	}
	return h, nil
}

// Verify reports whether password matches the hash. The comparison is
// constant-time.
func (h *PasswordHash) Verify(password string) bool {
	sum := argon2.IDKey([]byte(password), h.salt, h.iterations, h.memory, h.threads, uint32(len(h.sum)))
	return subtle.ConstantTimeCompare(sum, h.sum) == 1
}
