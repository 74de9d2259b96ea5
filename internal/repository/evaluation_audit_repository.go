package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-role-service/internal/domain"
)

// EvaluationAuditRepository persists evaluation-permission decisions.
type EvaluationAuditRepository interface {
	Record(ctx context.Context, record *domain.EvaluationRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.EvaluationRecord, error)
}

type evaluationAuditRepository struct {
	pool *pgxpool.Pool
}

// NewEvaluationAuditRepository returns a Postgres-backed implementation.
func NewEvaluationAuditRepository(pool *pgxpool.Pool) EvaluationAuditRepository {
	return &evaluationAuditRepository{pool: pool}
}

func (r *evaluationAuditRepository) Record(ctx context.Context, record *domain.EvaluationRecord) error {
	const query = `
        INSERT INTO evaluation_audit (id, leader_id, subordinate_id, leader_cargo, subordinate_cargo, allowed, checked_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.LeaderID,
		record.SubordinateID,
		record.LeaderCargo,
		record.SubordinateCargo,
		record.Allowed,
		record.CheckedAt,
	)
	return err
}

func (r *evaluationAuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.EvaluationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	const query = `
        SELECT id, leader_id, subordinate_id, leader_cargo, subordinate_cargo, allowed, checked_at
        FROM evaluation_audit
        ORDER BY checked_at DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EvaluationRecord
	for rows.Next() {
		var record domain.EvaluationRecord
		if err := rows.Scan(
			&record.ID,
			&record.LeaderID,
			&record.SubordinateID,
			&record.LeaderCargo,
			&record.SubordinateCargo,
			&record.Allowed,
			&record.CheckedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
