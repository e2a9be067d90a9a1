// Package id issues the ledger's record identifiers.
//
// IDs are ULIDs: 26-character strings, unique and time-sortable. The
// store is the only caller and treats them as opaque — uniqueness is the
// contract, sortability is a convenience for SQLite indexes and logs.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// generator serializes access to one monotonic entropy source, so IDs
// minted within the same millisecond still strictly increase.
type generator struct {
	mu      sync.Mutex
	entropy io.Reader
}

var gen = newGenerator()

func newGenerator() *generator {
	// Seed a PRNG from crypto/rand so the entropy is unpredictable.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &generator{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
	}
}

// New returns a fresh ULID string. Record IDs are assigned here and
// never accepted from callers.
func New() string {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), gen.entropy)
	if err != nil {
		// Only possible if time goes backwards or entropy fails.
		panic(err)
	}
	return id.String()
}
