package database

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// MrvDataRepo holds monitoring records keyed by id.
type MrvDataRepo struct {
	mu      sync.RWMutex
	records map[string]models.MrvData
	order   []string
}

func NewMrvDataRepo() *MrvDataRepo {
	return &MrvDataRepo{records: make(map[string]models.MrvData)}
}

// FindAll returns MRV records in insertion order. A non-empty
// projectID narrows the result to that project by linear scan.
func (r *MrvDataRepo) FindAll(projectID string) []*models.MrvData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := make([]*models.MrvData, 0, len(r.order))
	for _, id := range r.order {
		d := r.records[id]
		if projectID != "" && d.ProjectID != projectID {
			continue
		}
		data = append(data, &d)
	}
	return data
}

// FindByID returns an MRV record by its ID, or nil when the id is unknown
func (r *MrvDataRepo) FindByID(id string) *models.MrvData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.records[id]
	if !ok {
		return nil
	}
	return &d
}

// Add stores a new MRV record. Verification status defaults to
// "pending" when the payload leaves it unset.
func (r *MrvDataRepo) Add(insert models.InsertMrvData) *models.MrvData {
	status := insert.VerificationStatus
	if status == "" {
		status = models.VerificationPending
	}

	data := models.MrvData{
		ID:                 uuid.NewString(),
		ProjectID:          insert.ProjectID,
		DataType:           insert.DataType,
		Metrics:            insert.Metrics,
		VerificationStatus: status,
		CollectedAt:        time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(data)
	return &data
}

func (r *MrvDataRepo) put(d models.MrvData) {
	if _, exists := r.records[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.records[d.ID] = d
}
