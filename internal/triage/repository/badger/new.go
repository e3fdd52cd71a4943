package badger

import (
	badgerdb "github.com/dgraph-io/badger/v4"

	"arogyaai/internal/triage/repository"
	"arogyaai/pkg/log"
)

// implRepository is the badger-backed implementation of
// repository.Repository.
type implRepository struct {
	db *badgerdb.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a new triage message repository.
func New(db *badgerdb.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}
