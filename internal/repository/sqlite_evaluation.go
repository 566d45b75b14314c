package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trainsafe/internal/db"
	"github.com/alexanderramin/trainsafe/internal/domain"
)

// SQLiteEvaluationRepo implements EvaluationRepo using a SQLite database.
type SQLiteEvaluationRepo struct {
	db db.DBTX
}

// NewSQLiteEvaluationRepo creates a repo on a *sql.DB or a transaction.
func NewSQLiteEvaluationRepo(conn db.DBTX) *SQLiteEvaluationRepo {
	return &SQLiteEvaluationRepo{db: conn}
}

// createdAtLayout is fixed-width so that text order matches time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const evaluationColumns = `id, player_id, player_name, computed_status, effective_status, flags,
	override_status, override_reason, override_applied, plan_type_in, plan_type_out, valid, created_at`

func (r *SQLiteEvaluationRepo) Create(ctx context.Context, e *domain.Evaluation) error {
	var overrideStatus, overrideReason interface{}
	overrideApplied := false
	if e.Override != nil {
		overrideStatus = string(e.Override.Status)
		overrideReason = nullableString(e.Override.Reason)
		overrideApplied = e.Override.Applied
	}

	query := `INSERT INTO evaluations (` + evaluationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PlayerID,
		e.PlayerName,
		string(e.ComputedStatus),
		string(e.EffectiveStatus),
		joinFlags(e.Flags),
		overrideStatus,
		overrideReason,
		boolToInt(overrideApplied),
		string(e.PlanTypeIn),
		string(e.PlanTypeOut),
		boolToInt(e.Valid),
		e.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting evaluation: %w", err)
	}

	for i, v := range e.Violations {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO evaluation_violations (evaluation_id, seq, rule_id, severity, day, message) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, i, string(v.RuleID), string(v.Severity), v.Day, v.Message)
		if err != nil {
			return fmt.Errorf("inserting violation %d: %w", i, err)
		}
	}
	for i, m := range e.Modifications {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO evaluation_modifications (evaluation_id, seq, rule_id, day, field, before_value, after_value) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, string(m.RuleID), m.Day, m.Field, m.Before, m.After)
		if err != nil {
			return fmt.Errorf("inserting modification %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteEvaluationRepo) GetByID(ctx context.Context, id string) (*domain.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = ?`
	e, err := scanEvaluation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("evaluation %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEvaluationRepo) List(ctx context.Context, playerID string, limit int) ([]*domain.Evaluation, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query := `SELECT ` + evaluationColumns + ` FROM evaluations
		WHERE (? = '' OR player_id = ?)
		ORDER BY created_at DESC, id
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, playerID, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations: %w", err)
	}

	var evals []*domain.Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		evals = append(evals, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating evaluations: %w", err)
	}
	rows.Close()

	// Children load after the cursor is closed; an in-memory database runs
	// on a single connection.
	for _, e := range evals {
		if err := r.loadChildren(ctx, e); err != nil {
			return nil, err
		}
	}
	return evals, nil
}

func (r *SQLiteEvaluationRepo) loadChildren(ctx context.Context, e *domain.Evaluation) error {
	vrows, err := r.db.QueryContext(ctx,
		`SELECT rule_id, severity, day, message FROM evaluation_violations WHERE evaluation_id = ? ORDER BY seq`, e.ID)
	if err != nil {
		return fmt.Errorf("loading violations: %w", err)
	}
	defer vrows.Close()
	for vrows.Next() {
		var v domain.Violation
		var rule, sev string
		if err := vrows.Scan(&rule, &sev, &v.Day, &v.Message); err != nil {
			return fmt.Errorf("scanning violation: %w", err)
		}
		v.RuleID = domain.RuleID(rule)
		v.Severity = domain.Severity(sev)
		e.Violations = append(e.Violations, v)
	}
	if err := vrows.Err(); err != nil {
		return fmt.Errorf("iterating violations: %w", err)
	}
	vrows.Close()

	mrows, err := r.db.QueryContext(ctx,
		`SELECT rule_id, day, field, before_value, after_value FROM evaluation_modifications WHERE evaluation_id = ? ORDER BY seq`, e.ID)
	if err != nil {
		return fmt.Errorf("loading modifications: %w", err)
	}
	defer mrows.Close()
	for mrows.Next() {
		var m domain.PlanModification
		var rule string
		if err := mrows.Scan(&rule, &m.Day, &m.Field, &m.Before, &m.After); err != nil {
			return fmt.Errorf("scanning modification: %w", err)
		}
		m.RuleID = domain.RuleID(rule)
		e.Modifications = append(e.Modifications, m)
	}
	if err := mrows.Err(); err != nil {
		return fmt.Errorf("iterating modifications: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvaluation scans the evaluation columns from a *sql.Row or *sql.Rows.
func scanEvaluation(row rowScanner) (*domain.Evaluation, error) {
	var e domain.Evaluation
	var computed, effective, flags, planIn, planOut, createdAtStr string
	var overrideStatus, overrideReason sql.NullString
	var overrideApplied, valid int

	err := row.Scan(
		&e.ID, &e.PlayerID, &e.PlayerName, &computed, &effective, &flags,
		&overrideStatus, &overrideReason, &overrideApplied, &planIn, &planOut, &valid, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning evaluation: %w", err)
	}

	e.ComputedStatus = domain.SafetyStatus(computed)
	e.EffectiveStatus = domain.SafetyStatus(effective)
	e.Flags = splitFlags(flags)
	e.Override = overrideFromColumns(overrideStatus, overrideReason, overrideApplied)
	e.PlanTypeIn = domain.PlanType(planIn)
	e.PlanTypeOut = domain.PlanType(planOut)
	e.Valid = intToBool(valid)
	e.CreatedAt, err = time.Parse(createdAtLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}
