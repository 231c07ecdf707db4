package polygon

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"
	"math/rand/v2"

	"github.com/matzehuels/polyclip/pkg/errors"
)

// Source supplies the random integers behind one generation call.
//
// IntN returns a uniform integer in [0, n) for n > 0. An error aborts the
// call; no partial polygon is produced.
type Source interface {
	IntN(n int) (int, error)
}

// pcgSource adapts a math/rand/v2 generator. It never fails.
type pcgSource struct {
	rng *rand.Rand
}

// NewSource returns a deterministic source: the same seed always yields the
// same sequence and therefore the same polygons.
func NewSource(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (s *pcgSource) IntN(n int) (int, error) {
	return s.rng.IntN(n), nil
}

// newCallSource returns an unpredictable PCG source for a single call.
func newCallSource() Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

type cryptoSource struct {
	r io.Reader
}

// NewCryptoSource returns a source that reads from r, or from crypto/rand
// when r is nil. Read failures surface as RANDOM_SOURCE errors.
func NewCryptoSource(r io.Reader) Source {
	if r == nil {
		r = cryptorand.Reader
	}
	return &cryptoSource{r: r}
}

func (s *cryptoSource) IntN(n int) (int, error) {
	v, err := cryptorand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeRandomSource, err, "failed to read random integer below %d", n)
	}
	return int(v.Int64()), nil
}

// draw asks src for an integer in [0, n) and checks the answer.
func draw(src Source, n int) (int, error) {
	v, err := src.IntN(n)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeRandomSource, err, "random source failed")
		}
		return 0, err
	}
	if v < 0 || v >= n {
		return 0, errors.New(errors.ErrCodeRandomSource, "random source returned %d, want [0, %d)", v, n)
	}
	return v, nil
}

// intRange returns a uniform integer in [lo, hi].
func intRange(src Source, lo, hi int) (int, error) {
	v, err := draw(src, hi-lo+1)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// coin flips a fair coin.
func coin(src Source) (bool, error) {
	v, err := draw(src, 2)
	return v == 1, err
}
