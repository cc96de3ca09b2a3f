// Package user はユーザー管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/hitoshi/exertrack/internal/model"
	"github.com/hitoshi/exertrack/internal/repository"
)

// maxUsernameLength はユーザー名の最大長。
const maxUsernameLength = 100

// UsageRecorder はユーザー作成メトリクスの記録インターフェース。
type UsageRecorder interface {
	RecordUserCreated()
}

// Service はユーザー管理のサービス層。
// 作成・一覧取得のビジネスロジックを提供する。
type Service struct {
	userRepo  repository.UserRepository
	sanitizer *bluemonday.Policy
	recorder  UsageRecorder
	now       func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
// recorderはnilでもよい（メトリクス収集なしで動作する）。
func NewService(userRepo repository.UserRepository, recorder UsageRecorder) *Service {
	return &Service{
		userRepo:  userRepo,
		sanitizer: bluemonday.StrictPolicy(),
		recorder:  recorder,
		now:       time.Now,
	}
}

// Create は新規ユーザーを作成する。
// ユーザー名はマークアップ除去とトリムの後に検証する。
// 重複ユーザー名はリポジトリの一意制約違反として検出される。
func (s *Service) Create(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(s.sanitizer.Sanitize(username))
	if username == "" {
		return nil, model.NewValidationError("ユーザー名は必須です。")
	}
	if len(username) > maxUsernameLength {
		return nil, model.NewValidationError(
			fmt.Sprintf("ユーザー名は%d文字以内で指定してください。", maxUsernameLength))
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: s.now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user created",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	if s.recorder != nil {
		s.recorder.RecordUserCreated()
	}

	return user, nil
}

// List は全ユーザーを作成順で返す。
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	return users, nil
}
