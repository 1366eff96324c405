package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// -- Invoice repository --

type invoiceRepoPG struct{ pool *pgxpool.Pool }

func NewInvoiceRepoPG(pool *pgxpool.Pool) InvoiceRepository { return &invoiceRepoPG{pool: pool} }

const invoiceCols = `id, patient_id, amount::float8, status, created_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.PatientID, &inv.Amount, &inv.Status, &inv.CreatedAt)
	return &inv, err
}

func (r *invoiceRepoPG) Create(ctx context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO invoice (id, patient_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		inv.ID, inv.PatientID, inv.Amount, inv.Status).
		Scan(&inv.CreatedAt)
}

func (r *invoiceRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, `SELECT `+invoiceCols+` FROM invoice WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	return inv, err
}

func (r *invoiceRepoPG) List(ctx context.Context) ([]*Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceCols+` FROM invoice ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return collectInvoices(rows)
}

func (r *invoiceRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceCols+` FROM invoice WHERE patient_id = $1 ORDER BY created_at`, patientID)
	if err != nil {
		return nil, err
	}
	return collectInvoices(rows)
}

func collectInvoices(rows pgx.Rows) ([]*Invoice, error) {
	defer rows.Close()
	items := []*Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

// -- Claim repository --

type claimRepoPG struct{ pool *pgxpool.Pool }

func NewClaimRepoPG(pool *pgxpool.Pool) ClaimRepository { return &claimRepoPG{pool: pool} }

const claimCols = `id, patient_id, invoice_id, policy_number, status, created_at`

func scanClaim(row pgx.Row) (*InsuranceClaim, error) {
	var cl InsuranceClaim
	err := row.Scan(&cl.ID, &cl.PatientID, &cl.InvoiceID, &cl.PolicyNumber, &cl.Status, &cl.CreatedAt)
	return &cl, err
}

func (r *claimRepoPG) Create(ctx context.Context, cl *InsuranceClaim) error {
	cl.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO insurance_claim (id, patient_id, invoice_id, policy_number, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		cl.ID, cl.PatientID, cl.InvoiceID, cl.PolicyNumber, cl.Status).
		Scan(&cl.CreatedAt)
}

func (r *claimRepoPG) List(ctx context.Context) ([]*InsuranceClaim, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+claimCols+` FROM insurance_claim ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return collectClaims(rows)
}

func (r *claimRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*InsuranceClaim, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+claimCols+` FROM insurance_claim WHERE patient_id = $1 ORDER BY created_at`, patientID)
	if err != nil {
		return nil, err
	}
	return collectClaims(rows)
}

func collectClaims(rows pgx.Rows) ([]*InsuranceClaim, error) {
	defer rows.Close()
	items := []*InsuranceClaim{}
	for rows.Next() {
		cl, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, cl)
	}
	return items, rows.Err()
}
