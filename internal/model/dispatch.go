package model

import "time"

// Attachment is a binary payload delivered alongside the email.
type Attachment struct {
	Content  []byte
	Filename string
	MIMEType string
}

// DispatchMessage is one fully rendered message handed to the gateway.
// Organization and Language carry the caller's raw identifiers; the
// gateway resolves and validates them itself.
type DispatchMessage struct {
	Recipient    string
	Subject      string
	HTML         string
	Organization string
	Language     string
	Attachment   *Attachment
}

// DispatchResult reports the outcome of a single delivery attempt.
// It is returned synchronously and never persisted.
type DispatchResult struct {
	ID         string
	Success    bool
	StatusCode int
	Message    string
	Timestamp  time.Time
}
