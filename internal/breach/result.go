// Package breach checks generated credentials against a breach corpus using
// a k-anonymity range query: only the first five hex characters of the SHA-1
// digest ever leave the process.
package breach

import "errors"

var (
	ErrUnexpectedStatus  = errors.New("unexpected range query status")
	ErrMalformedResponse = errors.New("malformed range query response")
)

// State is the lifecycle of one credential check.
type State int

const (
	StateIdle State = iota
	StateChecking
	StateSafe
	StateCompromised
	StateError
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateSafe:
		return "safe"
	case StateCompromised:
		return "compromised"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of a check. Count is set only when State is
// StateCompromised and Err only when State is StateError.
type Result struct {
	State State
	Count int
	Err   error
}

func idle() Result     { return Result{State: StateIdle} }
func checking() Result { return Result{State: StateChecking} }
func safe() Result     { return Result{State: StateSafe} }

func compromised(count int) Result {
	return Result{State: StateCompromised, Count: count}
}

func failed(err error) Result {
	return Result{State: StateError, Err: err}
}
