package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/exertrack/internal/exercise"
	"github.com/hitoshi/exertrack/internal/model"
)

// ExerciseServiceInterface は運動記録ハンドラーが必要とするサービスインターフェース。
type ExerciseServiceInterface interface {
	// Append は運動記録を1件追記し、保存されたエントリと所有ユーザーを返す。
	Append(ctx context.Context, userID, description string, duration int, date string) (*model.Exercise, *model.User, error)
	// Log はログ照会パイプライン（取得→フィルタ→切り詰め→整形）を実行する。
	Log(ctx context.Context, userID, from, to string, limit int) (*exercise.LogResult, error)
}

// ExerciseHandler は運動記録のHTTPハンドラー。
type ExerciseHandler struct {
	service ExerciseServiceInterface
}

// NewExerciseHandler はExerciseHandlerを生成する。
func NewExerciseHandler(service ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// appendExerciseResponse は運動記録追記のAPIレスポンス。
// idには所有ユーザーのIDを返す（ログ照会のキーと揃える）。
type appendExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

// logEntryResponse はログ1エントリのAPIレスポンス。
type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// logResponse はログ照会のAPIレスポンス。
type logResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"id"`
	Log      []logEntryResponse `json:"log"`
}

// AppendExercise は運動記録の追記を処理する。
// POST /api/users/{id}/exercises
func (h *ExerciseHandler) AppendExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	fields, err := parseBodyFields(r, "description", "duration", "date")
	if err != nil {
		writeAPIError(w, http.StatusBadRequest,
			model.NewValidationError("リクエストボディの解析に失敗しました。"))
		return
	}

	if fields["description"] == "" || fields["duration"] == "" {
		writeAPIError(w, http.StatusBadRequest,
			model.NewValidationError("運動内容（description）と時間（duration）は必須です。"))
		return
	}

	duration, err := strconv.Atoi(fields["duration"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest,
			model.NewValidationError("時間（duration）は正の整数（分）で指定してください。"))
		return
	}

	ex, user, err := h.service.Append(r.Context(), userID, fields["description"], duration, fields["date"])
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, appendExerciseResponse{
		Username:    user.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        exercise.FormatDay(ex.Date),
		ID:          user.ID,
	})
}

// GetLogs はユーザーのログ照会を処理する。
// GET /api/users/{id}/logs?from=YYYY-MM-DD&to=YYYY-MM-DD&limit=N
func (h *ExerciseHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	query := r.URL.Query()

	// 不正なfrom/toはサービス層が境界未適用として扱うためここでは検証しない。
	// limitだけは数値として解釈できない値を400で拒否する。
	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			writeAPIError(w, http.StatusBadRequest,
				model.NewValidationError("limitは正の整数で指定してください。"))
			return
		}
		limit = parsed
	}

	result, err := h.service.Log(r.Context(), userID, query.Get("from"), query.Get("to"), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	log := make([]logEntryResponse, 0, len(result.Entries))
	for _, entry := range result.Entries {
		log = append(log, logEntryResponse{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        exercise.FormatDay(entry.Date),
		})
	}

	writeJSON(w, http.StatusOK, logResponse{
		Username: result.Username,
		Count:    result.Count,
		ID:       result.UserID,
		Log:      log,
	})
}
