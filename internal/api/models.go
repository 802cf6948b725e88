package api

import "storyfeed/internal/domain"

// Envelope is the common wrapper every backend response carries.
// Error=true marks a logical failure even on HTTP 2xx.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Envelope
	LoginResult *LoginResult `json:"loginResult"`
}

type LoginResult struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

type StoriesResponse struct {
	Envelope
	ListStory []StoryItem `json:"listStory"`
}

type StoryItem struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	PhotoURL    *string  `json:"photoUrl"`
	CreatedAt   *string  `json:"createdAt"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

// MapStories projects wire items onto cache records, field for field.
func MapStories(items []StoryItem) []domain.Story {
	stories := make([]domain.Story, 0, len(items))
	for _, it := range items {
		stories = append(stories, domain.Story{
			ID:          it.ID,
			PhotoURL:    it.PhotoURL,
			Name:        it.Name,
			Description: it.Description,
			CreatedAt:   it.CreatedAt,
			Lat:         it.Lat,
			Lon:         it.Lon,
		})
	}
	return stories
}
