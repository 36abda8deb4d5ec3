package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrRandomSource is returned when the secure random source fails.
// Generation is aborted; there is no fallback to a weaker generator.
var ErrRandomSource = errors.New("secure random source unavailable")

// RandomSource supplies cryptographically strong randomness.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Fill overwrites b with random bytes.
	Fill(b []byte) error
	// IntN returns a uniform integer in [0, bound).
	IntN(bound int) (int, error)
}

// ReaderSource adapts an io.Reader of secure random bytes to RandomSource.
type ReaderSource struct {
	reader io.Reader
}

// NewReaderSource wraps r. Use SecureSource for crypto/rand.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: r}
}

// SecureSource returns a RandomSource backed by crypto/rand.
func SecureSource() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

// Fill reads len(b) bytes; a short read is an error.
func (s *ReaderSource) Fill(b []byte) error {
	if _, err := io.ReadFull(s.reader, b); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return nil
}

// IntN picks a uniform integer using rejection sampling from crypto/rand.
func (s *ReaderSource) IntN(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: non-positive bound %d", ErrRandomSource, bound)
	}
	n, err := rand.Int(s.reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return int(n.Int64()), nil
}
