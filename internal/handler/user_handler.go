package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/exertrack/internal/model"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// Create は新規ユーザーを作成する。
	Create(ctx context.Context, username string) (*model.User, error)
	// List は全ユーザーを作成順で返す。
	List(ctx context.Context) ([]*model.User, error)
}

// UserHandler はユーザー管理のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// userResponse はユーザー情報のAPIレスポンス。
type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// CreateUser はユーザー作成を処理する。
// POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := parseBodyFields(r, "username")
	if err != nil {
		writeAPIError(w, http.StatusBadRequest,
			model.NewValidationError("リクエストボディの解析に失敗しました。"))
		return
	}

	// 空ユーザー名はサービス層に到達する前に拒否する
	if fields["username"] == "" {
		writeAPIError(w, http.StatusBadRequest,
			model.NewValidationError("ユーザー名は必須です。"))
		return
	}

	user, err := h.service.Create(r.Context(), fields["username"])
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ListUsers は全ユーザーの一覧を返す。
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]userResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}

	writeJSON(w, http.StatusOK, res)
}

// toUserResponse はmodel.UserからAPIレスポンスに変換する。
func toUserResponse(user *model.User) userResponse {
	return userResponse{
		Username: user.Username,
		ID:       user.ID,
	}
}
