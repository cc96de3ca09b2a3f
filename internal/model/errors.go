// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// ハンドラー境界でHTTPステータスコードにマッピングされる。
type APIError struct {
	Code    string // エラーコード
	Message string // ユーザー向けメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeDuplicateUsername = "DUPLICATE_USERNAME"
	ErrCodeFileMissing       = "FILE_MISSING"
	ErrCodeStore             = "STORE_ERROR"
)

// NewValidationError は必須フィールドの欠落・不正値エラーを生成する。
func NewValidationError(reason string) *APIError {
	return &APIError{
		Code:    ErrCodeValidation,
		Message: reason,
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError(userID string) *APIError {
	return &APIError{
		Code:    ErrCodeUserNotFound,
		Message: fmt.Sprintf("指定されたユーザーが見つかりません: %s", userID),
	}
}

// NewDuplicateUsernameError はユーザー名が重複している場合のエラーを生成する。
func NewDuplicateUsernameError(username string) *APIError {
	return &APIError{
		Code:    ErrCodeDuplicateUsername,
		Message: fmt.Sprintf("このユーザー名は既に使用されています: %s", username),
	}
}

// NewFileMissingError はアップロードファイルが指定されていない場合のエラーを生成する。
func NewFileMissingError() *APIError {
	return &APIError{
		Code:    ErrCodeFileMissing,
		Message: "アップロードファイルが指定されていません。",
	}
}

// NewStoreError は永続化層の失敗を表すエラーを生成する。
// 内部詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func NewStoreError() *APIError {
	return &APIError{
		Code:    ErrCodeStore,
		Message: "内部エラーが発生しました。しばらく待ってから再度お試しください。",
	}
}
