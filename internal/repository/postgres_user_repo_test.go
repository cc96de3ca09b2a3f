package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"

	"github.com/hitoshi/exertrack/internal/model"
)

// PostgresUserRepoはUserRepositoryインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

// NewPostgresUserRepoが正しく初期化されることを検証
func TestNewPostgresUserRepo_Initializes(t *testing.T) {
	repo := NewPostgresUserRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// ユニットテスト: 一意制約違反コードがDuplicateUsernameエラーに対応すること
// （DB接続なしでマッピングロジックのみ検証）
func TestUniqueViolationMapping(t *testing.T) {
	pqErr := &pq.Error{Code: uniqueViolation}

	var target *pq.Error
	if !errors.As(error(pqErr), &target) {
		t.Fatal("expected errors.As to match *pq.Error")
	}
	if target.Code != uniqueViolation {
		t.Errorf("code = %q, want %q", target.Code, uniqueViolation)
	}

	apiErr := model.NewDuplicateUsernameError("alice")
	if apiErr.Code != model.ErrCodeDuplicateUsername {
		t.Errorf("mapped error code = %q, want %q", apiErr.Code, model.ErrCodeDuplicateUsername)
	}
}
