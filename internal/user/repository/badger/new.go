package badger

import (
	"fmt"

	badgerdb "github.com/dgraph-io/badger/v4"

	"arogyaai/internal/user/repository"
	"arogyaai/pkg/log"
)

// seqBandwidth is how many ids a sequence lease reserves at once.
const seqBandwidth = 100

// implRepository is the badger-backed implementation of
// repository.Repository. Numeric user ids come from a badger sequence.
type implRepository struct {
	db  *badgerdb.DB
	seq *badgerdb.Sequence
	l   log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a new user repository. Call Close on shutdown to release
// unused sequence ids.
func New(db *badgerdb.DB, l log.Logger) (*implRepository, error) {
	seq, err := db.GetSequence([]byte("seq:user"), seqBandwidth)
	if err != nil {
		return nil, fmt.Errorf("acquire user id sequence: %w", err)
	}
	return &implRepository{db: db, seq: seq, l: l}, nil
}

// Close releases the id sequence lease.
func (r *implRepository) Close() error {
	return r.seq.Release()
}
