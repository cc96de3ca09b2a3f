package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/exertrack/internal/model"
)

// PostgresExerciseRepo はPostgreSQLを使用した運動記録リポジトリ。
type PostgresExerciseRepo struct {
	db *sql.DB
}

// NewPostgresExerciseRepo はPostgresExerciseRepoを生成する。
func NewPostgresExerciseRepo(db *sql.DB) *PostgresExerciseRepo {
	return &PostgresExerciseRepo{db: db}
}

// Create は運動記録を1件追記する。
// seqはBIGSERIALで採番され、保存後にexercise.Seqへ書き戻す。
// 同一ユーザーへの並行追記も独立した行INSERTになるため調整は不要。
func (r *PostgresExerciseRepo) Create(ctx context.Context, exercise *model.Exercise) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO exercises (id, user_id, description, duration, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING seq`,
		exercise.ID, exercise.UserID, exercise.Description,
		exercise.Duration, exercise.Date, exercise.CreatedAt,
	).Scan(&exercise.Seq)
	if err != nil {
		return fmt.Errorf("failed to insert exercise: %w", err)
	}

	return nil
}

// ListByUserID は指定ユーザーの全運動記録を追記順（seq昇順）で返す。
func (r *PostgresExerciseRepo) ListByUserID(ctx context.Context, userID string) ([]*model.Exercise, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, description, duration, date, seq, created_at
		 FROM exercises
		 WHERE user_id = $1
		 ORDER BY seq`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		ex := &model.Exercise{}
		if err := rows.Scan(
			&ex.ID, &ex.UserID, &ex.Description,
			&ex.Duration, &ex.Date, &ex.Seq, &ex.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exercise row: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercise rows: %w", err)
	}

	return exercises, nil
}

// compile-time interface check
var _ ExerciseRepository = (*PostgresExerciseRepo)(nil)
