package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by Compare when the supplied password does
// not match the stored credential.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordVerifier abstracts how passwords are stored and checked so the
// login contract stays independent of the hashing scheme.
type PasswordVerifier interface {
	Hash(plain string) (string, error)
	Compare(stored, plain string) error
}

// BcryptVerifier stores bcrypt digests. This is the default scheme.
type BcryptVerifier struct{}

// Hash produces a bcrypt digest of the password
func (BcryptVerifier) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks a password against a stored bcrypt digest
func (BcryptVerifier) Compare(stored, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// PlainVerifier stores and compares passwords verbatim. It exists only as a
// compatibility strategy for data migrated from the previous system and must
// be selected explicitly via configuration.
type PlainVerifier struct{}

// Hash returns the password unchanged
func (PlainVerifier) Hash(plain string) (string, error) {
	return plain, nil
}

// Compare checks the password by direct comparison
func (PlainVerifier) Compare(stored, plain string) error {
	if stored != plain {
		return ErrPasswordMismatch
	}
	return nil
}

// VerifierFor selects the password scheme by name, defaulting to bcrypt
func VerifierFor(scheme string) PasswordVerifier {
	if scheme == "plain" {
		return PlainVerifier{}
	}
	return BcryptVerifier{}
}
