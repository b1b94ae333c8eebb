// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth decides whether an admin secret is valid. The server checks
// secrets locally; the admin CLI can delegate the check to the server.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks an admin secret. A wrong secret is (false, nil);
// the error is reserved for failures to perform the check at all.
type Authenticator interface {
	Authenticate(ctx context.Context, secret string) (bool, error)
}

// SharedSecret compares against a plain configured secret in constant time.
type SharedSecret string

// Authenticate implements Authenticator.
func (s SharedSecret) Authenticate(_ context.Context, secret string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(s), []byte(secret)) == 1, nil
}

// BcryptHash compares against a bcrypt hash of the secret.
type BcryptHash []byte

// NewBcryptHash validates hash and returns a BcryptHash.
func NewBcryptHash(hash string) (BcryptHash, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	return BcryptHash(hash), nil
}

// HashSecret returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// Authenticate implements Authenticator.
func (h BcryptHash) Authenticate(_ context.Context, secret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(h, []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("bcrypt compare: %w", err)
	}
	return true, nil
}

// SecretChecker asks a remote party whether a secret is valid.
type SecretChecker interface {
	CheckSecret(ctx context.Context, secret string) (bool, error)
}

// Remote delegates the check to a server, typically the content API.
type Remote struct {
	Checker SecretChecker
}

// Authenticate implements Authenticator.
func (r Remote) Authenticate(ctx context.Context, secret string) (bool, error) {
	if r.Checker == nil {
		return false, errors.New("remote authenticator has no checker")
	}
	ok, err := r.Checker.CheckSecret(ctx, secret)
	if err != nil {
		return false, fmt.Errorf("remote auth: %w", err)
	}
	return ok, nil
}

// FromConfig picks BcryptHash when hash is set and SharedSecret otherwise.
func FromConfig(secret, hash string) (Authenticator, error) {
	if hash != "" {
		h, err := NewBcryptHash(hash)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return SharedSecret(secret), nil
}
