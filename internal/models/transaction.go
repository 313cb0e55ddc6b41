package models

import "time"

// TransactionCreate - what client sends to record a trade
type TransactionCreate struct {
	Symbol   string          `json:"symbol" validate:"required"`
	Type     TransactionType `json:"type" validate:"required,enum"`
	Quantity float64         `json:"quantity" validate:"gt=0,finite"`
	Price    float64         `json:"price" validate:"gt=0,finite"`
}

// Transaction represents an executed buy or sell. Transactions are
// append-only: once built they are never changed.
type Transaction struct {
	ID       string          `json:"id" validate:"required"`
	UserID   string          `json:"user_id" validate:"required"`
	Symbol   string          `json:"symbol" validate:"required"`
	Type     TransactionType `json:"type" validate:"required,enum"`
	Quantity float64         `json:"quantity" validate:"gt=0,finite"`
	Price    float64         `json:"price" validate:"gt=0,finite"`
	Total    float64         `json:"total" validate:"gt=0,finite"`
	Date     time.Time       `json:"date" validate:"required"`
}

// NewTransaction fills in the ID, Date and Total of t when they are unset
// and validates the result. A Total that is set must equal
// Quantity*Price.
func NewTransaction(t Transaction) (Transaction, error) {
	if t.ID == "" {
		t.ID = newID()
	}
	if t.Date.IsZero() {
		t.Date = now()
	}

	total := t.Quantity * t.Price
	var mismatch []ValidationError
	if t.Total == 0 {
		t.Total = total
	} else if t.Total != total {
		mismatch = append(mismatch, ValidationError{
			Field: "total",
			Rule:  "product",
			Param: "quantity*price",
			Value: t.Total,
		})
	}

	if err := merge(Validate(&t), mismatch...); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Transaction builds the ledger entry for a trade made by userID.
func (in TransactionCreate) Transaction(userID string) (Transaction, error) {
	if err := Validate(&in); err != nil {
		return Transaction{}, err
	}
	return NewTransaction(Transaction{
		UserID:   userID,
		Symbol:   in.Symbol,
		Type:     in.Type,
		Quantity: in.Quantity,
		Price:    in.Price,
	})
}
