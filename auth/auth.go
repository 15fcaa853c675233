// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"
	"strconv"
	"time"
)

const (
	// SignatureVersion prefixes both the basestring and the signature.
	SignatureVersion = "v0"

	// MaxRequestAge bounds how old a signed request may be (replay window).
	MaxRequestAge = 5 * time.Minute

	HeaderSignature = "X-Slack-Signature"
	HeaderTimestamp = "X-Slack-Request-Timestamp"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrStaleRequest     = errors.New("request timestamp outside replay window")
)

// ComputeSignature returns the Slack request signature for body sent at timestamp.
// Format: "v0=" + hex(HMAC-SHA256(secret, "v0:" + timestamp + ":" + body))
func ComputeSignature(secret, timestamp string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(SignatureVersion + ":" + timestamp + ":"))
	h.Write(body)
	return SignatureVersion + "=" + hex.EncodeToString(h.Sum(nil))
}

// VerifyRequest checks the signature and timestamp headers of a slash-command request
func VerifyRequest(secret, timestamp, signature string, body []byte, now time.Time) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}

	age := now.Unix() - ts
	if math.Abs(float64(age)) > MaxRequestAge.Seconds() {
		return ErrStaleRequest
	}

	expected := ComputeSignature(secret, timestamp, body)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
