package models

import (
	"time"

	"github.com/tidewatch/bluecarbon-backend/errs"
)

// Registry transaction types.
const (
	TxTypeCarbonCredit   = "carbon_credit"
	TxTypeRegistryUpdate = "registry_update"
	TxTypeSmartContract  = "smart_contract"
)

// Transaction is one entry in the registry's blockchain-style log.
// Hash uniqueness is declared by the schema but not enforced at the
// storage level; see the known-gaps notes in DESIGN.md.
type Transaction struct {
	ID          string    `json:"id"`
	Hash        string    `json:"hash"`
	Type        string    `json:"type"`
	FromAddress string    `json:"fromAddress"`
	ToAddress   string    `json:"toAddress"`
	Value       *string   `json:"value"`
	BlockNumber int       `json:"blockNumber"`
	Timestamp   time.Time `json:"timestamp"`
}

// InsertTransaction carries the client-suppliable fields of a
// transaction. The timestamp is assigned by the server.
type InsertTransaction struct {
	Hash        string  `json:"hash"`
	Type        string  `json:"type"`
	FromAddress string  `json:"fromAddress"`
	ToAddress   string  `json:"toAddress"`
	Value       *string `json:"value"`
	BlockNumber *int    `json:"blockNumber"`
}

func validTxType(t string) bool {
	switch t {
	case TxTypeCarbonCredit, TxTypeRegistryUpdate, TxTypeSmartContract:
		return true
	}
	return false
}

func (t InsertTransaction) Validate() error {
	if t.Hash == "" {
		return errs.NewMissingRequiredFieldError("hash")
	}
	if !validTxType(t.Type) {
		return errs.NewInvalidFieldError("type", "must be one of carbon_credit, registry_update, smart_contract")
	}
	if t.FromAddress == "" {
		return errs.NewMissingRequiredFieldError("fromAddress")
	}
	if t.ToAddress == "" {
		return errs.NewMissingRequiredFieldError("toAddress")
	}
	if t.BlockNumber == nil {
		return errs.NewMissingRequiredFieldError("blockNumber")
	}
	return nil
}
