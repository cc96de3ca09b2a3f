// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/exertrack/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成する。
	// usernameの一意制約違反の場合はmodel.ErrCodeDuplicateUsernameのAPIErrorを返す。
	Create(ctx context.Context, user *model.User) error

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// ListAll は全ユーザーを作成順で返す。
	ListAll(ctx context.Context) ([]*model.User, error)
}

// ExerciseRepository は運動記録の永続化インターフェース。
type ExerciseRepository interface {
	// Create は運動記録を1件追記する。
	// 保存後、採番されたSeqをexercise.Seqに書き戻す。
	Create(ctx context.Context, exercise *model.Exercise) error

	// ListByUserID は指定ユーザーの全運動記録を追記順で返す。
	// ユーザーの存在確認は行わない（呼び出し側の責務）。
	ListByUserID(ctx context.Context, userID string) ([]*model.Exercise, error)
}
