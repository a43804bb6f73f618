package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntryRequest body para registrar una entrada de stock.
// Quantity es puntero para distinguir "ausente" de cero; la fecha viaja como YYYY-MM-DD.
type CreateEntryRequest struct {
	ProductID   string           `json:"product_id"`
	Quantity    *decimal.Decimal `json:"quantity"`
	EntryDate   string           `json:"entry_date"`
	Observation string           `json:"observation"`
}

// UpdateEntryRequest campos opcionales para actualizar una entrada.
type UpdateEntryRequest struct {
	ProductID   *string          `json:"product_id"`
	Quantity    *decimal.Decimal `json:"quantity"`
	EntryDate   *string          `json:"entry_date"`
	Observation *string          `json:"observation"`
}

// EntryResponse salida de una entrada de stock.
type EntryResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	EntryDate   string          `json:"entry_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	Observation string          `json:"observation,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateExitRequest body para registrar una salida de stock.
type CreateExitRequest struct {
	ProductID   string           `json:"product_id"`
	Quantity    *decimal.Decimal `json:"quantity"`
	ExitDate    string           `json:"exit_date"`
	Observation string           `json:"observation"`
}

// UpdateExitRequest campos opcionales para actualizar una salida.
type UpdateExitRequest struct {
	ProductID   *string          `json:"product_id"`
	Quantity    *decimal.Decimal `json:"quantity"`
	ExitDate    *string          `json:"exit_date"`
	Observation *string          `json:"observation"`
}

// ExitResponse salida de una salida de stock.
type ExitResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ExitDate    string          `json:"exit_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	Observation string          `json:"observation,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
