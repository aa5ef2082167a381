package database

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// CarbonCreditRepo holds marketplace listings keyed by id. The
// referenced project id is stored as-is without an existence check.
type CarbonCreditRepo struct {
	mu      sync.RWMutex
	records map[string]models.CarbonCredit
	order   []string
}

func NewCarbonCreditRepo() *CarbonCreditRepo {
	return &CarbonCreditRepo{records: make(map[string]models.CarbonCredit)}
}

// FindAll returns all credit listings in insertion order
func (r *CarbonCreditRepo) FindAll() []*models.CarbonCredit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	credits := make([]*models.CarbonCredit, 0, len(r.order))
	for _, id := range r.order {
		c := r.records[id]
		credits = append(credits, &c)
	}
	return credits
}

// FindByID returns a credit listing by its ID, or nil when the id is unknown
func (r *CarbonCreditRepo) FindByID(id string) *models.CarbonCredit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.records[id]
	if !ok {
		return nil
	}
	return &c
}

// Add stores a new credit listing. Availability defaults to true when
// the payload leaves it unset.
func (r *CarbonCreditRepo) Add(insert models.InsertCarbonCredit) *models.CarbonCredit {
	available := true
	if insert.IsAvailable != nil {
		available = *insert.IsAvailable
	}

	credit := models.CarbonCredit{
		ID:            uuid.NewString(),
		ProjectID:     insert.ProjectID,
		Quantity:      *insert.Quantity,
		PricePerTonne: insert.PricePerTonne,
		IsAvailable:   available,
		SellerAddress: insert.SellerAddress,
		CreatedAt:     time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(credit)
	return &credit
}

func (r *CarbonCreditRepo) put(c models.CarbonCredit) {
	if _, exists := r.records[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.records[c.ID] = c
}
