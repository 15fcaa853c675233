// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies that slash-command requests were sent by Slack.

# Request Signing

Slack signs every request with the app's signing secret:

	basestring = "v0:" + X-Slack-Request-Timestamp + ":" + raw body
	signature  = "v0=" + hex(HMAC-SHA256(secret, basestring))

VerifyRequest recomputes the signature and compares it in constant time:

	err := auth.VerifyRequest(secret, ts, sig, body, time.Now())

# Replay Window

Requests whose timestamp is more than MaxRequestAge (5 minutes) away from
now are rejected with ErrStaleRequest, even when the signature matches.

# Errors

	ErrInvalidTimestamp // timestamp header missing or not an integer
	ErrStaleRequest     // outside the replay window
	ErrInvalidSignature // signature mismatch

Voters themselves are not authenticated; the Slack user name on a verified
request is trusted as the voter identity.
*/
package auth
