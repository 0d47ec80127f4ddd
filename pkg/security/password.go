package security

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartcitysecure/smartcity-api/pkg/config"
)

// ErrInvalidHash signals a hash string in a scheme we cannot verify.
var ErrInvalidHash = errors.New("unsupported or malformed password hash")

// Hasher hashes new credentials with bcrypt and verifies stored ones.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher using the configured bcrypt cost.
func NewHasher(cfg config.PasswordConfig) *Hasher {
	return &Hasher{cost: clampInt(cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)}
}

// Hash returns a bcrypt hash embedding version, cost and salt.
func (h *Hasher) Hash(password string) (string, error) {
	return HashPassword(password, h.cost)
}

// Verify reports whether password matches encoded. Unknown schemes never match.
func (h *Hasher) Verify(password, encoded string) bool {
	ok, err := VerifyPassword(password, encoded)
	return err == nil && ok
}

// HashPassword returns a bcrypt hash for the provided password.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), clampInt(cost, bcrypt.MinCost, bcrypt.MaxCost))
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword returns true when the password matches the encoded hash.
// bcrypt ($2a$, $2b$, $2y$) and Argon2id PHC strings are understood.
func VerifyPassword(password, encoded string) (bool, error) {
	switch {
	case isBcrypt(encoded):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if err == nil {
			return true, nil
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, ErrInvalidHash
	case strings.HasPrefix(encoded, "$argon2id$"):
		return verifyArgon2id(password, encoded)
	default:
		return false, ErrInvalidHash
	}
}

func isBcrypt(encoded string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(encoded, prefix) {
			return true
		}
	}
	return false
}

type argonParams struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
}

func verifyArgon2id(password, encoded string) (bool, error) {
	params, salt, hash, err := decodeArgon2id(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}

func decodeArgon2id(encoded string) (argonParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return argonParams{}, nil, nil, ErrInvalidHash
	}

	var params argonParams
	for _, token := range strings.Split(parts[3], ",") {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return argonParams{}, nil, nil, ErrInvalidHash
		}
		bits := 32
		if key == "p" {
			bits = 8
		}
		v, err := strconv.ParseUint(value, 10, bits)
		if err != nil {
			return argonParams{}, nil, nil, ErrInvalidHash
		}
		switch key {
		case "m":
			params.Memory = uint32(v)
		case "t":
			params.Time = uint32(v)
		case "p":
			params.Parallelism = uint8(v)
		}
	}
	if params.Memory == 0 || params.Time == 0 || params.Parallelism == 0 {
		return argonParams{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argonParams{}, nil, nil, ErrInvalidHash
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return argonParams{}, nil, nil, ErrInvalidHash
	}

	return params, salt, hash, nil
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
