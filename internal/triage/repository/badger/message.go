package badger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"arogyaai/internal/triage"
	"arogyaai/internal/triage/repository"
)

// diskMessage is the stored JSON form of a triage.ChatMessage.
type diskMessage struct {
	ID              uuid.UUID `json:"id"`
	UserID          int64     `json:"user_id"`
	UserMessage     string    `json:"user_message"`
	AIResponse      string    `json:"ai_response"`
	ImagePath       string    `json:"image_path,omitempty"`
	ImagePrediction string    `json:"image_prediction,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// messageKey formats keys as "chat:{user_id}:{timestamp_padded}:{uuid}":
//  1. The 19-digit zero-padded nanosecond timestamp makes lexicographical
//     order chronological within a user's prefix.
//  2. The UUID disambiguates two messages landing on the same nanosecond.
func messageKey(userID int64, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("chat:%d:%019d:%s", userID, at.UnixNano(), id))
}

func messagePrefix(userID int64) []byte {
	return []byte(fmt.Sprintf("chat:%d:", userID))
}

// CreateMessage persists one exchange.
func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (triage.ChatMessage, error) {
	msg := triage.ChatMessage{
		ID:              uuid.New(),
		UserID:          opt.UserID,
		UserMessage:     opt.UserMessage,
		AIResponse:      opt.AIResponse,
		ImagePath:       opt.ImagePath,
		ImagePrediction: opt.ImagePrediction,
		CreatedAt:       time.Now().UTC(),
	}

	value, err := json.Marshal(diskMessage(msg))
	if err != nil {
		return triage.ChatMessage{}, fmt.Errorf("marshal chat message: %w", err)
	}

	err = r.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(messageKey(msg.UserID, msg.CreatedAt, msg.ID), value)
	})
	if err != nil {
		return triage.ChatMessage{}, fmt.Errorf("store chat message: %w", err)
	}
	return msg, nil
}

// ListMessages walks a user's prefix in reverse so results come back newest
// first. The returned cursor is the key suffix of the last item; passing it
// back resumes the scan after that item.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]triage.ChatMessage, *string, error) {
	var messages []triage.ChatMessage
	var lastKey string

	err := r.db.View(func(txn *badgerdb.Txn) error {
		prefix := messagePrefix(opt.UserID)
		options := badgerdb.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		if opt.Cursor == nil {
			// Seek past the largest possible timestamp, then walk back.
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		} else {
			seekKey = append(append([]byte{}, prefix...), []byte(*opt.Cursor)...)
		}

		it.Seek(seekKey)
		if opt.Cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if opt.Limit > 0 && len(messages) == opt.Limit {
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])

			err := item.Value(func(value []byte) error {
				var disk diskMessage
				if err := json.Unmarshal(value, &disk); err != nil {
					return fmt.Errorf("unmarshal chat message: %w", err)
				}
				messages = append(messages, triage.ChatMessage(disk))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if opt.Limit > 0 && len(messages) == opt.Limit && lastKey != "" {
		next = lo.ToPtr(lastKey)
	}
	return messages, next, nil
}
