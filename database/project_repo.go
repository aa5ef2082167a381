package database

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// ProjectRepo holds every restoration project keyed by id. The order
// slice preserves insertion order for listings.
type ProjectRepo struct {
	mu      sync.RWMutex
	records map[string]models.Project
	order   []string
}

func NewProjectRepo() *ProjectRepo {
	return &ProjectRepo{records: make(map[string]models.Project)}
}

// FindAll returns all projects in insertion order
func (r *ProjectRepo) FindAll() []*models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*models.Project, 0, len(r.order))
	for _, id := range r.order {
		p := r.records[id]
		projects = append(projects, &p)
	}
	return projects
}

// FindByID returns a project by its ID, or nil when the id is unknown
func (r *ProjectRepo) FindByID(id string) *models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[id]
	if !ok {
		return nil
	}
	return &p
}

// Add stores a new project. The id, carbon credit counter and both
// timestamps are assigned here regardless of the payload.
func (r *ProjectRepo) Add(insert models.InsertProject) *models.Project {
	now := time.Now()
	project := models.Project{
		ID:            uuid.NewString(),
		Name:          insert.Name,
		Description:   insert.Description,
		Location:      insert.Location,
		Type:          insert.Type,
		Status:        insert.Status,
		AreaHectares:  insert.AreaHectares,
		CarbonCredits: 0,
		ImageURL:      insert.ImageURL,
		LastUpdate:    now,
		CreatedAt:     now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(project)
	return &project
}

// Update merges the non-nil fields of the patch onto an existing
// project and refreshes LastUpdate. Returns nil when the id is unknown.
func (r *ProjectRepo) Update(id string, updates models.ProjectUpdate) *models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.records[id]
	if !ok {
		return nil
	}

	if updates.Name != nil {
		project.Name = *updates.Name
	}
	if updates.Description != nil {
		project.Description = *updates.Description
	}
	if updates.Location != nil {
		project.Location = *updates.Location
	}
	if updates.Type != nil {
		project.Type = *updates.Type
	}
	if updates.Status != nil {
		project.Status = *updates.Status
	}
	if updates.AreaHectares != nil {
		project.AreaHectares = *updates.AreaHectares
	}
	if updates.CarbonCredits != nil {
		project.CarbonCredits = *updates.CarbonCredits
	}
	if updates.ImageURL != nil {
		project.ImageURL = updates.ImageURL
	}
	project.LastUpdate = time.Now()

	r.records[id] = project
	return &project
}

// put stores a fully formed record; callers must hold the write lock.
// Used by Add and by the demo seed, which carries preset counters.
func (r *ProjectRepo) put(p models.Project) {
	if _, exists := r.records[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.records[p.ID] = p
}
