// Package audit captures request-provenance metadata for each submission and
// computes the tamper-evidence digest stored alongside it.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Unknown is the sentinel stored when a metadata source is absent.
const Unknown = "unknown"

// Metadata is the provenance attached to a waiver at write time. It is
// informational only: no scrubbing, no geolocation.
type Metadata struct {
	SubmittedAt time.Time
	IP          string
	UserAgent   string
	Referer     string
}

// Collect builds the metadata for one request. xff is the raw
// X-Forwarded-For header and peer the transport-level remote address.
func Collect(now time.Time, xff, peer, userAgent, referer string) Metadata {
	return Metadata{
		SubmittedAt: now.UTC(),
		IP:          ClientAddress(xff, peer),
		UserAgent:   orUnknown(userAgent),
		Referer:     orUnknown(referer),
	}
}

// ClientAddress resolves the client network address. The first hop of a
// forwarded-for chain wins; proxies are trusted in this deployment. Falls
// back to the peer address, then to the unknown sentinel.
func ClientAddress(xff, peer string) string {
	if xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if peer != "" {
		return peer
	}
	return Unknown
}

// Fingerprint returns the lowercase hex SHA-256 digest of b. Identical bytes
// always produce the identical digest; there is no salt or key. The digest is
// stored as tamper evidence and only ever verified out of band.
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
