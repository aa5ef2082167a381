package database

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// CommunityMemberRepo holds leaderboard members keyed by id.
type CommunityMemberRepo struct {
	mu      sync.RWMutex
	records map[string]models.CommunityMember
	order   []string
}

func NewCommunityMemberRepo() *CommunityMemberRepo {
	return &CommunityMemberRepo{records: make(map[string]models.CommunityMember)}
}

// FindAll returns all members in leaderboard order, points descending
func (r *CommunityMemberRepo) FindAll() []*models.CommunityMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]*models.CommunityMember, 0, len(r.order))
	for _, id := range r.order {
		m := r.records[id]
		members = append(members, &m)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Points > members[j].Points
	})
	return members
}

// Add stores a new member with zeroed points and participation count
func (r *CommunityMemberRepo) Add(insert models.InsertCommunityMember) *models.CommunityMember {
	member := models.CommunityMember{
		ID:            uuid.NewString(),
		Name:          insert.Name,
		Points:        0,
		ProjectsCount: 0,
		JoinedAt:      time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(member)
	return &member
}

func (r *CommunityMemberRepo) put(m models.CommunityMember) {
	if _, exists := r.records[m.ID]; !exists {
		r.order = append(r.order, m.ID)
	}
	r.records[m.ID] = m
}
