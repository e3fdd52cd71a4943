package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"

	"arogyaai/internal/user"
	"arogyaai/internal/user/repository"
)

// diskUser is the stored JSON form of a user.User.
type diskUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func userKey(id int64) []byte {
	return []byte(fmt.Sprintf("user:id:%d", id))
}

func emailKey(email string) []byte {
	return []byte("user:email:" + email)
}

// CreateUser allocates a new id and stores the account with its email
// index in one transaction, so duplicate-email checks stay atomic.
func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (user.User, error) {
	n, err := r.seq.Next()
	if err != nil {
		return user.User{}, fmt.Errorf("next user id: %w", err)
	}

	u := user.User{
		ID:           int64(n) + 1, // ids start at 1
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	value, err := json.Marshal(diskUser(u))
	if err != nil {
		return user.User{}, fmt.Errorf("marshal user: %w", err)
	}

	err = r.db.Update(func(txn *badgerdb.Txn) error {
		if _, err := txn.Get(emailKey(u.Email)); err == nil {
			return repository.ErrDuplicateEmail
		} else if !errors.Is(err, badgerdb.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set(userKey(u.ID), value); err != nil {
			return err
		}
		return txn.Set(emailKey(u.Email), []byte(strconv.FormatInt(u.ID, 10)))
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("store user: %w", err)
	}
	return u, nil
}

// GetUserByEmail resolves the email index and loads the account.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User

	err := r.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var id int64
		if err := item.Value(func(value []byte) error {
			id, err = strconv.ParseInt(string(value), 10, 64)
			return err
		}); err != nil {
			return err
		}

		item, err = txn.Get(userKey(id))
		if err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		return item.Value(func(value []byte) error {
			var disk diskUser
			if err := json.Unmarshal(value, &disk); err != nil {
				return fmt.Errorf("unmarshal user: %w", err)
			}
			u = user.User(disk)
			return nil
		})
	})
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}
