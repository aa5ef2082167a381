package models

import (
	"time"

	"github.com/tidewatch/bluecarbon-backend/errs"
)

// CommunityPost is an update shared on a project's community feed.
type CommunityPost struct {
	ID        string    `json:"id"`
	ProjectID *string   `json:"projectId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertCommunityPost carries the client-suppliable fields of a post.
// Like and comment counters are server-controlled and start at zero.
type InsertCommunityPost struct {
	ProjectID *string `json:"projectId"`
	Author    string  `json:"author"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
}

func (p InsertCommunityPost) Validate() error {
	if p.Author == "" {
		return errs.NewMissingRequiredFieldError("author")
	}
	if p.Content == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	return nil
}

// CommunityMember is a participant on the community leaderboard.
type CommunityMember struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Points        int       `json:"points"`
	ProjectsCount int       `json:"projectsCount"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// InsertCommunityMember carries the client-suppliable fields of a member.
// Points and the participation counter are server-controlled.
type InsertCommunityMember struct {
	Name string `json:"name"`
}

func (m InsertCommunityMember) Validate() error {
	if m.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	return nil
}
