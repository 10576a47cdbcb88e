package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/successxx/punctual/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Times are read back as text so that 24:00 survives the driver.
const ruleColumns = `id, host_id, day_of_week, start_time::text, end_time::text, active, created_at, updated_at`

type RuleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRuleRepo(db *dbpg.DB) *RuleRepository {
	return &RuleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RuleRepository) Create(ctx context.Context, rule *domain.AvailabilityRule) error {
	query := `INSERT INTO availability_rules (id, host_id, day_of_week, start_time, end_time, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, rule.ID, rule.HostID, int(rule.DayOfWeek),
		rule.StartTime, rule.EndTime, rule.Active, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		switch pqCode(err) {
		case codeForeignKey:
			return domain.ErrHostNotFound
		case codeExclusionViolation:
			return domain.ErrRuleOverlap
		}
		return fmt.Errorf("insert rule: %w", classify(err))
	}

	return nil
}

func (r *RuleRepository) GetByID(ctx context.Context, hostID, id string) (*domain.AvailabilityRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM availability_rules WHERE id = $1 AND host_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, hostID)
	if err != nil {
		return nil, fmt.Errorf("get rule: %w", classify(err))
	}

	rule, err := scanRule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRuleNotFound
		}
		return nil, fmt.Errorf("scan rule: %w", classify(err))
	}
	return rule, nil
}

func (r *RuleRepository) Update(ctx context.Context, rule *domain.AvailabilityRule) error {
	query := `UPDATE availability_rules
			  SET day_of_week = $3, start_time = $4, end_time = $5, updated_at = $6
			  WHERE id = $1 AND host_id = $2 AND active`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, rule.ID, rule.HostID, int(rule.DayOfWeek),
		rule.StartTime, rule.EndTime, rule.UpdatedAt,
	)
	if err != nil {
		if pqCode(err) == codeExclusionViolation {
			return domain.ErrRuleOverlap
		}
		return fmt.Errorf("update rule: %w", classify(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rule rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

// Deactivate soft-deletes a rule. Deactivating an inactive rule is not an error.
func (r *RuleRepository) Deactivate(ctx context.Context, hostID, id string) error {
	query := `UPDATE availability_rules
			  SET active = false, updated_at = now()
			  WHERE id = $1 AND host_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, hostID)
	if err != nil {
		return fmt.Errorf("deactivate rule: %w", classify(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rule rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *RuleRepository) List(ctx context.Context, hostID string, activeOnly bool) ([]*domain.AvailabilityRule, error) {
	query := `SELECT ` + ruleColumns + `
			  FROM availability_rules
			  WHERE host_id = $1 AND (active OR NOT $2)
			  ORDER BY day_of_week, start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hostID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", classify(err))
	}
	defer rows.Close()

	res := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		res = append(res, rule)
	}

	return res, rows.Err()
}

func scanRule(row rowScanner) (*domain.AvailabilityRule, error) {
	var (
		rule domain.AvailabilityRule
		day  int
	)
	if err := row.Scan(
		&rule.ID, &rule.HostID, &day, &rule.StartTime, &rule.EndTime,
		&rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rule.DayOfWeek = time.Weekday(day)
	return &rule, nil
}
