package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"storyfeed/internal/domain"
)

type RemoteKeyStore struct {
	db *sqlx.DB
}

func NewRemoteKeyStore(db *sqlx.DB) *RemoteKeyStore {
	return &RemoteKeyStore{db: db}
}

// Get returns the continuation key for a story, or nil when none exists.
func (s *RemoteKeyStore) Get(ctx context.Context, storyID string) (*domain.RemoteKey, error) {
	query := `
		SELECT story_id, prev_key, next_key
		FROM remote_keys
		WHERE story_id = $1`

	var key domain.RemoteKey
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &key, query, storyID)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// UpsertBatch replaces the continuation keys for every given story.
func (s *RemoteKeyStore) UpsertBatch(ctx context.Context, keys []domain.RemoteKey) error {
	if len(keys) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO remote_keys (story_id, prev_key, next_key) VALUES ")
	valueArgs := make([]interface{}, 0, len(keys)*3)

	for i, key := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(itoa(i*3 + 1))
		sb.WriteString(", $")
		sb.WriteString(itoa(i*3 + 2))
		sb.WriteString(", $")
		sb.WriteString(itoa(i*3 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, key.StoryID, key.PrevKey, key.NextKey)
	}
	sb.WriteString(`
		ON CONFLICT (story_id) DO UPDATE SET
			prev_key = EXCLUDED.prev_key,
			next_key = EXCLUDED.next_key`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// DeleteAll wipes the continuation keys. Used by refresh loads.
func (s *RemoteKeyStore) DeleteAll(ctx context.Context) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM remote_keys")
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
