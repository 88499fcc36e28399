// Package journal persists recent global-shortcut activations.
package journal

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// DefaultTTL is how long activation records are kept when the caller does
// not specify a retention.
const DefaultTTL = 7 * 24 * time.Hour

var keyPrefix = []byte("act:")

// Activation is one recorded shortcut trigger.
type Activation struct {
	ID    string    `json:"id"`
	Chord string    `json:"chord"`
	At    time.Time `json:"at"`
}

// Journal is a badger-backed store of recent activations. Records expire
// after the configured TTL.
type Journal struct {
	db  *badger.DB
	ttl time.Duration
}

// Open opens or creates the journal at path.
func Open(path string, ttl time.Duration) (*Journal, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	return &Journal{db: db, ttl: ttl}, nil
}

// Record stores an activation of the given chord, stamped now.
func (j *Journal) Record(chord string) (Activation, error) {
	act := Activation{
		ID:    uuid.New().String(),
		Chord: chord,
		At:    time.Now(),
	}

	val, err := json.Marshal(act)
	if err != nil {
		return Activation{}, fmt.Errorf("marshal activation: %w", err)
	}

	err = j.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(recordKey(act), val).WithTTL(j.ttl)
		return txn.SetEntry(e)
	})
	if err != nil {
		return Activation{}, fmt.Errorf("store activation: %w", err)
	}
	return act, nil
}

// Recent returns up to n activations, newest first.
func (j *Journal) Recent(n int) ([]Activation, error) {
	if n <= 0 {
		return nil, nil
	}

	var out []Activation
	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = keyPrefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid() && len(out) < n; it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var act Activation
				if err := json.Unmarshal(v, &act); err != nil {
					return fmt.Errorf("unmarshal activation: %w", err)
				}
				out = append(out, act)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read activations: %w", err)
	}
	return out, nil
}

// Close closes the underlying store.
func (j *Journal) Close() error {
	return j.db.Close()
}

// recordKey orders records newest-first under badger's ascending iteration
// by encoding an inverted timestamp.
func recordKey(act Activation) []byte {
	inverted := uint64(math.MaxInt64 - act.At.UnixNano())
	return []byte(fmt.Sprintf("%s%020d:%s", keyPrefix, inverted, act.ID))
}
