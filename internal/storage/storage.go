// Package storage contains the key-value persistence used for site content,
// donation content, recipient lists and the last form submission.
// Values are opaque byte blobs (JSON documents in practice) replaced whole on write.
package storage

import (
	"context"
	"errors"
)

// Well-known keys. They match the names the public site used in browser storage
// so exported documents stay interchangeable.
const (
	KeySiteContent     = "siteContent"
	KeyDonationContent = "donationContent"
	KeyRecipients      = "donationEmailRecipients"
	KeyLastSubmission  = "lastSEECSubmission"
)

// SubmissionSnapshotKey is where the snapshot of one contributor form is kept.
// Snapshots are per submission so only the holder of the id can read one back.
func SubmissionSnapshotKey(id string) string {
	return KeyLastSubmission + ":" + id
}

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed blob store.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
