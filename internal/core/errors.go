package core

import "errors"

var (
	// Packet parsing errors
	ErrTruncated = errors.New("strix: packet truncated")

	// Buffer resize errors
	ErrHeadroom      = errors.New("strix: headroom exhausted")
	ErrShrinkPastEnd = errors.New("strix: shrink past buffer end")

	// VLAN rewrite errors
	ErrNoVLANTag  = errors.New("strix: no vlan tag to pop")
	ErrVLANTagged = errors.New("strix: frame already vlan tagged")

	// Configuration errors
	ErrConfigInvalid  = errors.New("strix: invalid configuration")
	ErrUnknownProgram = errors.New("strix: unknown program")

	// Capture errors
	ErrUnknownBackend = errors.New("strix: unknown capture backend")
	ErrHandleClosed   = errors.New("strix: capture handle closed")
)
