package crypto

import (
	"errors"
	"math/rand/v2"
)

// scriptedSource replays fixed bytes and integers so outputs are reproducible.
type scriptedSource struct {
	bytes []byte
	ints  []int
}

func (s *scriptedSource) Fill(b []byte) error {
	if len(s.bytes) < len(b) {
		return errors.Join(ErrRandomSource, errors.New("script exhausted"))
	}
	copy(b, s.bytes)
	s.bytes = s.bytes[len(b):]
	return nil
}

func (s *scriptedSource) IntN(bound int) (int, error) {
	if len(s.ints) == 0 {
		return 0, errors.Join(ErrRandomSource, errors.New("script exhausted"))
	}
	n := s.ints[0]
	s.ints = s.ints[1:]
	return n % bound, nil
}

// seededSource is a non-secure source for property tests only.
type seededSource struct {
	rng *rand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Fill(b []byte) error {
	for i := range b {
		b[i] = byte(s.rng.UintN(256))
	}
	return nil
}

func (s *seededSource) IntN(bound int) (int, error) {
	return s.rng.IntN(bound), nil
}

type failingSource struct{}

func (failingSource) Fill([]byte) error { return ErrRandomSource }
func (failingSource) IntN(int) (int, error) { return 0, ErrRandomSource }
