package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// No tiene columna de stock propia: el stock total se deriva sumando las filas
// de ProductStock de todos sus proveedores.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	ImagePath   string          // ruta relativa de la imagen subida (vacío si no hay)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
