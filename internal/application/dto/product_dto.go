package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	CategoryID  string           `json:"category_id"`
	WarehouseID string           `json:"warehouse_id" validate:"required"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	Observation string           `json:"observation"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID  *string          `json:"category_id"`
	WarehouseID *string          `json:"warehouse_id"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	Observation *string          `json:"observation"`
	Active      *bool            `json:"active"`
}

// ProductResponse vista serializada de un producto: atributos almacenados más
// el stock actual derivado del libro y su clasificación.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id,omitempty"`
	WarehouseID   string          `json:"warehouse_id"`
	MinQuantity   decimal.Decimal `json:"min_quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Observation   string          `json:"observation,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	StockStatus   string          `json:"stock_status"`
	CategoryName  string          `json:"category_name,omitempty"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
}

// ProductListResponse lista de vistas de producto.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
