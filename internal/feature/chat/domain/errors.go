// Package domain defines domain-level errors for the chat feature.
package domain

import "errors"

// ErrInvalidRole indicates that a conversation history entry carries a role
// other than "user" or "assistant". Rejecting these before any upstream call
// prevents a caller from smuggling an alternate system instruction into the
// conversation.
var ErrInvalidRole = errors.New("invalid role in conversation history")
