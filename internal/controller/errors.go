package controller

import "errors"

// Requests that the session ignores. Callers driving a UI usually discard
// them; they are errors so headless callers can report them.
var (
	// ErrBusy indicates a request that is not allowed while a sort is running.
	ErrBusy = errors.New("controller: a sort is already running")

	// ErrEmpty indicates a start request on an empty array.
	ErrEmpty = errors.New("controller: array is empty")
)
