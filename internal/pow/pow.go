// Package pow is a small CPU proof-of-work search over double SHA-256.
package pow

import (
	"context"
	"encoding/binary"
	"errors"
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/minio/sha256-simd"
	fasthex "github.com/tmthrgd/go-hex"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound          = errors.New("pow: nonce space exhausted")
	ErrInvalidDifficulty = errors.New("pow: difficulty must be positive")

	errFound = errors.New("found")
)

// baseTarget is the target at difficulty 1, 65536 << 208.
var baseTarget = new(big.Int).Lsh(big.NewInt(65536), 208)

type Hash [sha256.Size]byte

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

// Big interprets the hash as a big-endian integer.
func (h Hash) Big() *big.Int {
	return new(big.Int).SetBytes(h[:])
}

// Target returns (65536 << 208) / difficulty.
func Target(difficulty uint64) (*big.Int, error) {
	if difficulty == 0 {
		return nil, ErrInvalidDifficulty
	}
	return new(big.Int).Quo(baseTarget, new(big.Int).SetUint64(difficulty)), nil
}

// Sum returns SHA256(SHA256(data)).
func Sum(data []byte) Hash {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Check reports whether hash, read as a big-endian integer, is below target.
func Check(hash Hash, target *big.Int) bool {
	return hash.Big().Cmp(target) < 0
}

type Options struct {
	// Workers is the number of hashing goroutines. Zero means runtime.NumCPU().
	Workers int
	// MaxNonce is the last nonce tried. Zero means 1<<32 - 1.
	MaxNonce uint64
}

type Result struct {
	Nonce uint64
	Hash  Hash
}

// Search looks for a nonce whose double hash of header || le64(nonce) is below
// the target for difficulty.
func Search(ctx context.Context, header []byte, difficulty uint64, opts Options) (Result, error) {
	target, err := Target(difficulty)
	if err != nil {
		return Result{}, err
	}
	return SearchTarget(ctx, header, target, opts)
}

// SearchTarget is Search with an explicit target. Which nonce wins is not
// deterministic when several workers find one.
func SearchTarget(ctx context.Context, header []byte, target *big.Int, opts Options) (Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxNonce := opts.MaxNonce
	if maxNonce == 0 {
		maxNonce = 1<<32 - 1
	}

	var (
		nonces = newNonceRange(0, maxNonce)
		once   sync.Once
		result Result
	)

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			buf := make([]byte, len(header)+8)
			copy(buf, header)

			for i := 0; ; i++ {
				if i&0xff == 0 && egCtx.Err() != nil {
					return nil
				}

				n, ok := nonces.next()
				if !ok {
					return nil
				}

				binary.LittleEndian.PutUint64(buf[len(header):], n)
				h := Sum(buf)
				if Check(h, target) {
					once.Do(func() {
						result = Result{Nonce: n, Hash: h}
					})
					return errFound
				}
			}
		})
	}

	err := eg.Wait()
	switch {
	case errors.Is(err, errFound):
		return result, nil
	case ctx.Err() != nil:
		return Result{}, ctx.Err()
	case err != nil:
		return Result{}, err
	}
	return Result{}, ErrNotFound
}

// nonceRange hands out every nonce in [first, last] once, including last = MaxUint64.
type nonceRange struct {
	cur  atomic.Uint64
	last uint64
	done atomic.Bool
}

func newNonceRange(first, last uint64) *nonceRange {
	r := &nonceRange{last: last}
	r.cur.Store(first)
	if first > last {
		r.done.Store(true)
	}
	return r
}

func (r *nonceRange) next() (uint64, bool) {
	for {
		if r.done.Load() {
			return 0, false
		}
		n := r.cur.Load()
		if n > r.last {
			return 0, false
		}
		if r.cur.CompareAndSwap(n, n+1) {
			if n == r.last {
				r.done.Store(true)
			}
			return n, true
		}
	}
}
