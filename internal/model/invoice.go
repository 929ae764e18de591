// File: internal/model/invoice.go
package model

import "time"

// Invoice belongs to exactly one user. InvoiceID is the opaque identity
// assigned at creation; UserID references the owner's opaque identity, not
// the users table storage key. CreatedAt is server-assigned and immutable.
type Invoice struct {
	ID         int       `db:"id" json:"-"`
	InvoiceID  string    `db:"invoice_id" json:"invoiceId"`
	UserID     string    `db:"user_id" json:"-"`
	ClientName string    `db:"client_name" json:"clientName"`
	Amount     float64   `db:"amount" json:"amount"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"date"`
}
