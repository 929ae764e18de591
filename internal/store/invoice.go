package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ravi30T/invoice-management-backend/internal/database"
	"github.com/Ravi30T/invoice-management-backend/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateInvoice persists a new invoice for its owner. The caller supplies
// InvoiceID and UserID; id and created_at come back from the database.
func CreateInvoice(ctx context.Context, db database.DB, inv *model.Invoice) (*model.Invoice, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO invoices (invoice_id, user_id, client_name, amount, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		inv.InvoiceID,
		inv.UserID,
		inv.ClientName,
		inv.Amount,
		inv.Status,
	)
	if err := row.Scan(&inv.ID, &inv.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateInvoice: %w", err)
	}
	return inv, nil
}

// ListInvoicesByUser returns every invoice owned by userID, oldest first.
// An empty result is not an error.
func ListInvoicesByUser(ctx context.Context, db database.DB, userID string) ([]model.Invoice, error) {
	rows, err := db.Query(ctx,
		`SELECT id, invoice_id, user_id, client_name, amount, status, created_at
		 FROM invoices WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListInvoicesByUser: %w", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(
			&inv.ID,
			&inv.InvoiceID,
			&inv.UserID,
			&inv.ClientName,
			&inv.Amount,
			&inv.Status,
			&inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListInvoicesByUser: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListInvoicesByUser: %w", err)
	}
	return invoices, nil
}

// UpdateInvoiceStatus mutates status only; every other field is immutable.
// The owner filter lives in the query, so an invoice owned by someone else
// is indistinguishable from one that does not exist.
func UpdateInvoiceStatus(ctx context.Context, db database.DB, userID, invoiceID, status string) (*model.Invoice, error) {
	row := db.QueryRow(ctx,
		`UPDATE invoices SET status = $1
		 WHERE invoice_id = $2 AND user_id = $3
		 RETURNING id, invoice_id, user_id, client_name, amount, status, created_at`,
		status,
		invoiceID,
		userID,
	)
	inv := &model.Invoice{}
	if err := row.Scan(
		&inv.ID,
		&inv.InvoiceID,
		&inv.UserID,
		&inv.ClientName,
		&inv.Amount,
		&inv.Status,
		&inv.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateInvoiceStatus: %w", err)
	}
	return inv, nil
}

// DeleteInvoice removes an invoice, owner-scoped like UpdateInvoiceStatus.
func DeleteInvoice(ctx context.Context, db database.DB, userID, invoiceID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM invoices WHERE invoice_id = $1 AND user_id = $2`,
		invoiceID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteInvoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
