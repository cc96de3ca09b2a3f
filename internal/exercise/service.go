// Package exercise は運動記録の追記とログ照会のドメインロジックを提供する。
package exercise

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

// maxDescriptionLength は運動内容の最大長。
const maxDescriptionLength = 500

// UsageRecorder は運動記録メトリクスの記録インターフェース。
type UsageRecorder interface {
	RecordExerciseAppended()
}

// Service は運動記録のサービス層。
// 追記とログ照会パイプライン（取得→フィルタ→切り詰め→整形）を提供する。
type Service struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	sanitizer    *bluemonday.Policy
	recorder     UsageRecorder
	now          func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
// recorderはnilでもよい（メトリクス収集なしで動作する）。
func NewService(
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	recorder UsageRecorder,
) *Service {
	return &Service{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		sanitizer:    bluemonday.StrictPolicy(),
		recorder:     recorder,
		now:          time.Now,
	}
}

// LogEntry はログ照会結果の1エントリ。
type LogEntry struct {
	Description string
	Duration    int
	Date        time.Time
}

// LogResult はログ照会の結果。
type LogResult struct {
	UserID   string
	Username string
	Count    int
	Entries  []LogEntry
}

// Append は運動記録を1件追記する。
// ユーザーの存在確認を先に行い、存在しない場合はUserNotFoundエラーを返す。
// dateStrが空の場合は呼び出し時点の日付を使用する。
func (s *Service) Append(
	ctx context.Context,
	userID, description string,
	duration int,
	dateStr string,
) (*model.Exercise, *model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, nil, model.NewUserNotFoundError(userID)
	}

	description = strings.TrimSpace(s.sanitizer.Sanitize(description))
	if description == "" {
		return nil, nil, model.NewValidationError("運動内容（description）は必須です。")
	}
	if len(description) > maxDescriptionLength {
		return nil, nil, model.NewValidationError(
			fmt.Sprintf("運動内容は%d文字以内で指定してください。", maxDescriptionLength))
	}
	if duration <= 0 {
		return nil, nil, model.NewValidationError("時間（duration）は正の整数（分）で指定してください。")
	}

	date := truncateToDay(s.now().UTC())
	if dateStr != "" {
		date, err = ParseDay(dateStr)
		if err != nil {
			return nil, nil, model.NewValidationError(
				"日付（date）はYYYY-MM-DD形式で指定してください。")
		}
	}

	ex := &model.Exercise{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.exerciseRepo.Create(ctx, ex); err != nil {
		return nil, nil, fmt.Errorf("運動記録の保存に失敗しました: %w", err)
	}

	slog.Info("exercise appended",
		slog.String("user_id", user.ID),
		slog.String("exercise_id", ex.ID),
		slog.Int("duration", ex.Duration),
	)

	if s.recorder != nil {
		s.recorder.RecordExerciseAppended()
	}

	return ex, user, nil
}

// Log はユーザーのログ照会パイプラインを実行する。
//
// 取得 → 日付範囲フィルタ → 件数切り詰め → 整形 の順で処理する。
// from/toはカレンダー日付の両端を含む比較を行い、パースできない値は
// 「フィルタ未指定」として無視する。limitは0以下で無制限を意味する。
func (s *Service) Log(
	ctx context.Context,
	userID, from, to string,
	limit int,
) (*LogResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError(userID)
	}

	exercises, err := s.exerciseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("運動記録の取得に失敗しました: %w", err)
	}

	// 不正なfrom/toは境界を適用しない（パイプラインを落とさない防御的既定値）
	fromDate, hasFrom := parseBound(from)
	toDate, hasTo := parseBound(to)

	entries := make([]LogEntry, 0, len(exercises))
	for _, ex := range exercises {
		day := truncateToDay(ex.Date)
		if hasFrom && day.Before(fromDate) {
			continue
		}
		if hasTo && day.After(toDate) {
			continue
		}
		entries = append(entries, LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        day,
		})
		if limit > 0 && len(entries) == limit {
			break
		}
	}

	return &LogResult{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Entries:  entries,
	}, nil
}

// parseBound はフィルタ境界の日付文字列をパースする。
// 空文字列またはパース不能な値の場合は境界なしとして扱う。
func parseBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := ParseDay(s)
	if err != nil {
		slog.Warn("ignoring unparsable log filter bound", slog.String("value", s))
		return time.Time{}, false
	}
	return t, true
}
