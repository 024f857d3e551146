package contract

import "errors"

// Sentinel errors shared by repositories and the use cases that consume them.
var (
	ErrKeyNotFound      = errors.New("key not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrAgentNotFound    = errors.New("agent not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrReactionNotFound = errors.New("reaction not found")
)
