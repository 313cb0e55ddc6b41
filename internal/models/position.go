package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSymbolMismatch       = errors.New("transaction symbol does not match position")
	ErrOwnerMismatch        = errors.New("transaction user does not own position")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// PositionCreate - what client sends to open or adjust a holding
type PositionCreate struct {
	Symbol   string    `json:"symbol" validate:"required"`
	Name     string    `json:"name,omitempty"`
	Type     AssetType `json:"type" validate:"required,enum"`
	Quantity float64   `json:"quantity" validate:"gt=0,finite"`
	AvgPrice float64   `json:"avg_price" validate:"gt=0,finite"`
}

// Position represents an instrument held by a user
type Position struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	Symbol    string    `json:"symbol" validate:"required"`
	Name      string    `json:"name"`
	Type      AssetType `json:"type" validate:"required,enum"`
	Quantity  float64   `json:"quantity" validate:"gte=0,finite"`
	AvgPrice  float64   `json:"avg_price" validate:"gte=0,finite"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
	UpdatedAt time.Time `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// NewPosition fills in the ID and timestamps of p when they are unset and
// validates the result. A new position's UpdatedAt equals its CreatedAt.
func NewPosition(p Position) (Position, error) {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if err := Validate(&p); err != nil {
		return Position{}, err
	}
	return p, nil
}

// Position builds the holding owned by userID. The display name falls back
// to the symbol.
func (in PositionCreate) Position(userID string) (Position, error) {
	if err := Validate(&in); err != nil {
		return Position{}, err
	}
	name := in.Name
	if name == "" {
		name = in.Symbol
	}
	return NewPosition(Position{
		UserID:   userID,
		Symbol:   in.Symbol,
		Name:     name,
		Type:     in.Type,
		Quantity: in.Quantity,
		AvgPrice: in.AvgPrice,
	})
}

// Update returns a copy of p with the new quantity and average price,
// re-validated and with UpdatedAt set to at (or now when at is zero).
func (p Position) Update(quantity, avgPrice float64, at time.Time) (Position, error) {
	if at.IsZero() {
		at = now()
	}
	p.Quantity = quantity
	p.AvgPrice = avgPrice
	p.UpdatedAt = at.UTC()
	if err := Validate(&p); err != nil {
		return Position{}, err
	}
	return p, nil
}

// Apply returns p after the trade tx. A buy moves the average price to the
// quantity-weighted mean, a sell keeps it.
func (p Position) Apply(tx Transaction, at time.Time) (Position, error) {
	if err := Validate(&tx); err != nil {
		return Position{}, err
	}
	if tx.UserID != p.UserID {
		return Position{}, fmt.Errorf("%w: %s != %s", ErrOwnerMismatch, tx.UserID, p.UserID)
	}
	if tx.Symbol != p.Symbol {
		return Position{}, fmt.Errorf("%w: %s != %s", ErrSymbolMismatch, tx.Symbol, p.Symbol)
	}

	switch tx.Type {
	case TransactionBuy:
		quantity := p.Quantity + tx.Quantity
		avgPrice := (p.AvgPrice*p.Quantity + tx.Price*tx.Quantity) / quantity
		return p.Update(quantity, avgPrice, at)
	case TransactionSell:
		if tx.Quantity > p.Quantity {
			return Position{}, fmt.Errorf("%w: hold %g %s, selling %g",
				ErrInsufficientQuantity, p.Quantity, p.Symbol, tx.Quantity)
		}
		return p.Update(p.Quantity-tx.Quantity, p.AvgPrice, at)
	default:
		return Position{}, ValidationErrors{{Field: "type", Rule: "enum", Value: tx.Type}}
	}
}

// Closed reports whether nothing is held any more. Removing a closed
// position is up to the store.
func (p Position) Closed() bool {
	return p.Quantity == 0
}
