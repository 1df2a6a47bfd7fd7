package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/mfalcao/payagent/internal/domain/models"
)

// DecisionsRepository defines the contract for the decision audit log.
type DecisionsRepository interface {
	InsertDecision(ctx context.Context, rec models.DecisionRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.DecisionRecord, error)
}

type decisionsRepository struct {
	db *sql.DB
}

func NewDecisionsRepository(db *sql.DB) DecisionsRepository {
	return &decisionsRepository{db: db}
}

// InsertDecision appends one audit row per evaluation. Rows are immutable;
// there is no update path.
func (r *decisionsRepository) InsertDecision(ctx context.Context, rec models.DecisionRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO decisions (
			id, kind, subject, accepted, unit_price, quantity,
			rounds, payment_status, payment_ref, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		rec.ID,
		string(rec.Kind),
		rec.Subject,
		rec.Accepted,
		rec.UnitPrice,
		rec.Quantity,
		rec.Rounds,
		string(rec.PaymentStatus),
		rec.PaymentRef,
		rec.CreatedAt,
	)
	return err
}

// ListRecent returns the newest audit rows, newest first.
func (r *decisionsRepository) ListRecent(ctx context.Context, limit int) ([]models.DecisionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, subject, accepted, unit_price, quantity,
		       rounds, payment_status, payment_ref, created_at
		FROM decisions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []models.DecisionRecord
	for rows.Next() {
		var rec models.DecisionRecord
		var kind, paymentStatus string
		var paymentRef sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&kind,
			&rec.Subject,
			&rec.Accepted,
			&rec.UnitPrice,
			&rec.Quantity,
			&rec.Rounds,
			&paymentStatus,
			&paymentRef,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Kind = models.DecisionKind(kind)
		rec.PaymentStatus = models.PaymentStatus(paymentStatus)
		if paymentRef.Valid {
			rec.PaymentRef = paymentRef.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
