package demorequest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const demoCols = `id, name, email, hospital_name, message, created_at`

func (r *repoPG) Create(ctx context.Context, dr *DemoRequest) error {
	dr.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO demo_request (id, name, email, hospital_name, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		dr.ID, dr.Name, dr.Email, dr.HospitalName, dr.Message).
		Scan(&dr.CreatedAt)
}

func (r *repoPG) List(ctx context.Context) ([]*DemoRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+demoCols+` FROM demo_request ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*DemoRequest{}
	for rows.Next() {
		var dr DemoRequest
		if err := rows.Scan(&dr.ID, &dr.Name, &dr.Email, &dr.HospitalName, &dr.Message, &dr.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &dr)
	}
	return items, rows.Err()
}
