package database

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// TransactionRepo holds the registry's transaction log keyed by id.
// Hash uniqueness is not enforced here; duplicate hashes are accepted
// to preserve the permissive storage contract.
type TransactionRepo struct {
	mu      sync.RWMutex
	records map[string]models.Transaction
	order   []string
}

func NewTransactionRepo() *TransactionRepo {
	return &TransactionRepo{records: make(map[string]models.Transaction)}
}

// FindAll returns all transactions ordered newest first
func (r *TransactionRepo) FindAll() []*models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txs := make([]*models.Transaction, 0, len(r.order))
	for _, id := range r.order {
		tx := r.records[id]
		txs = append(txs, &tx)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
	return txs
}

// FindByID returns a transaction by its ID, or nil when the id is unknown
func (r *TransactionRepo) FindByID(id string) *models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.records[id]
	if !ok {
		return nil
	}
	return &tx
}

// Add stores a new transaction with a server-assigned id and timestamp
func (r *TransactionRepo) Add(insert models.InsertTransaction) *models.Transaction {
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Hash:        insert.Hash,
		Type:        insert.Type,
		FromAddress: insert.FromAddress,
		ToAddress:   insert.ToAddress,
		Value:       insert.Value,
		BlockNumber: *insert.BlockNumber,
		Timestamp:   time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(tx)
	return &tx
}

func (r *TransactionRepo) put(tx models.Transaction) {
	if _, exists := r.records[tx.ID]; !exists {
		r.order = append(r.order, tx.ID)
	}
	r.records[tx.ID] = tx
}
