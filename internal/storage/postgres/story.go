package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"storyfeed/internal/domain"
)

type StoryStore struct {
	db *sqlx.DB
}

func NewStoryStore(db *sqlx.DB) *StoryStore {
	return &StoryStore{db: db}
}

// List returns every cached story in insertion order.
func (s *StoryStore) List(ctx context.Context) ([]domain.Story, error) {
	query := `
		SELECT id, photo_url, name, description, created_at, lat, lon
		FROM stories
		ORDER BY position`

	var stories []domain.Story
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &stories, query)
	return stories, err
}

// Get returns one cached story, or nil when the id is unknown.
func (s *StoryStore) Get(ctx context.Context, id string) (*domain.Story, error) {
	query := `
		SELECT id, photo_url, name, description, created_at, lat, lon
		FROM stories
		WHERE id = $1`

	var story domain.Story
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &story, query, id)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// InsertBatch upserts stories by id, preserving the order they arrive in.
func (s *StoryStore) InsertBatch(ctx context.Context, stories []domain.Story) error {
	if len(stories) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO stories (id, photo_url, name, description, created_at, lat, lon) VALUES ")
	valueArgs := make([]interface{}, 0, len(stories)*7)

	for i, story := range stories {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 7; j++ {
			if j > 0 {
				sb.WriteString(", $")
			} else {
				sb.WriteString("$")
			}
			sb.WriteString(itoa(i*7 + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs,
			story.ID,
			story.PhotoURL,
			story.Name,
			story.Description,
			story.CreatedAt,
			story.Lat,
			story.Lon,
		)
	}
	sb.WriteString(`
		ON CONFLICT (id) DO UPDATE SET
			photo_url = EXCLUDED.photo_url,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			created_at = EXCLUDED.created_at,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// DeleteAll evicts the whole story table. Used by refresh loads.
func (s *StoryStore) DeleteAll(ctx context.Context) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM stories")
	return err
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
