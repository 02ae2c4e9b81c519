package entity

import "time"

// Invoice representa una factura de venta del libro externo (solo lectura para el motor).
type Invoice struct {
	ID    string
	Date  time.Time
	Items []LineItem
}
