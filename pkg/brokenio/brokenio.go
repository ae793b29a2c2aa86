// brokenio is a wrapper around an io.ReadCloser which fails on demand.
// Typical use: You have a file or a string reader and want to see that
// the sequence reader passes errors back up instead of quietly returning
// half a file. You write
//   reader = brokenio.NewReader(reader)
// and set when it should break. Everything then functions as before,
// but with artificial errors.
// Failures are either after a fixed number of bytes, or random with
// a given probability per Read call. Random failures use their own
// seeded generator, so a test can be repeated exactly.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is wrapped by every error we make up.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdrClsr is modelled on the Readers in the standard library,
// but with settings controlling when it fails.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability of failing on any read
	failAfter    int     // Fail once this many bytes have gone through. -1 means never
	nCalled      int
	nByte        int
	closed       bool
}

// NewReader returns a new Reader wrapping the old one. Without further
// settings it behaves exactly like the original.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(1)),
		failAfter: -1,
	}
}

// SetSeed resets the random number generator.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes the reader fail once n bytes have been delivered.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the number of bytes passed through so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Closed says if Close has been called.
func (r *BrknRdrClsr) Closed() bool { return r.closed }

// Read wraps the original reader. On the first call, we might return
// zero data to simulate a zero length file, which is a rather common
// occurrence.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, fmt.Errorf("call %d: %w", r.nCalled, ErrBroken)
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	r.closed = true
	return r.rdrOrig.Close()
}
