package domain

// Story is one cached feed entry. The id is server-assigned and stable;
// rows are replaced wholesale on refresh, never edited in place.
type Story struct {
	ID          string   `db:"id"`
	PhotoURL    *string  `db:"photo_url"`
	Name        *string  `db:"name"`
	Description *string  `db:"description"`
	CreatedAt   *string  `db:"created_at"`
	Lat         *float64 `db:"lat"`
	Lon         *float64 `db:"lon"`
}

// RemoteKey records which pages border the page that produced a story,
// so prepend/append loads can resume without re-deriving page numbers.
// All rows from one page share the same prev/next values.
type RemoteKey struct {
	StoryID string `db:"story_id"`
	PrevKey *int   `db:"prev_key"`
	NextKey *int   `db:"next_key"`
}

// Session is the persisted login state, kept outside the cache database.
type Session struct {
	Name       string `json:"name"`
	Token      string `json:"token"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// Ack is the payload of write-style operations that only return a message.
type Ack struct {
	Message string
}
