package model

import "errors"

var (
	ErrNotFound          = errors.New("ticket not found")
	ErrDuplicateTicket   = errors.New("ticket already exists for channel")
	ErrAlreadyClaimed    = errors.New("ticket already claimed")
	ErrNotClaimed        = errors.New("ticket not claimed")
	ErrClosePending      = errors.New("close confirmation already pending")
	ErrNoClosePending    = errors.New("no close confirmation pending")
	ErrInvalidTransition = errors.New("invalid ticket state transition")
	ErrUnknownType       = errors.New("unknown ticket type")
)
