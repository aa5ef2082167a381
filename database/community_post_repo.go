package database

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// CommunityPostRepo holds feed posts keyed by id.
type CommunityPostRepo struct {
	mu      sync.RWMutex
	records map[string]models.CommunityPost
	order   []string
}

func NewCommunityPostRepo() *CommunityPostRepo {
	return &CommunityPostRepo{records: make(map[string]models.CommunityPost)}
}

// FindAll returns all posts ordered newest first
func (r *CommunityPostRepo) FindAll() []*models.CommunityPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*models.CommunityPost, 0, len(r.order))
	for _, id := range r.order {
		p := r.records[id]
		posts = append(posts, &p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// Add stores a new post with zeroed like and comment counters
func (r *CommunityPostRepo) Add(insert models.InsertCommunityPost) *models.CommunityPost {
	post := models.CommunityPost{
		ID:        uuid.NewString(),
		ProjectID: insert.ProjectID,
		Author:    insert.Author,
		Content:   insert.Content,
		ImageURL:  insert.ImageURL,
		Likes:     0,
		Comments:  0,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(post)
	return &post
}

func (r *CommunityPostRepo) put(p models.CommunityPost) {
	if _, exists := r.records[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.records[p.ID] = p
}
