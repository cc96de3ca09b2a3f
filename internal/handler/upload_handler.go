package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/hitoshi/exertrack/internal/model"
	"github.com/hitoshi/exertrack/internal/upload"
)

// uploadFieldName はファイルアップロードのmultipartフィールド名。
const uploadFieldName = "upfile"

// InspectorInterface はアップロードハンドラーが必要とするサービスインターフェース。
type InspectorInterface interface {
	// Inspect はファイルヘッダからメタデータを抽出する。
	Inspect(header *multipart.FileHeader) (*upload.FileMeta, error)
}

// UploadHandler はファイルメタデータ検査のHTTPハンドラー。
type UploadHandler struct {
	inspector InspectorInterface
	maxSize   int64
}

// NewUploadHandler はUploadHandlerを生成する。
// maxSizeはmultipartフォームのメモリ上限（バイト）。
func NewUploadHandler(inspector InspectorInterface, maxSize int64) *UploadHandler {
	return &UploadHandler{
		inspector: inspector,
		maxSize:   maxSize,
	}
}

// fileMetaResponse はファイルメタデータのAPIレスポンス。
type fileMetaResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// AnalyseFile はアップロードファイルのメタデータ検査を処理する。
// POST /api/fileanalyse
func (h *UploadHandler) AnalyseFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		writeAPIError(w, http.StatusBadRequest, model.NewFileMissingError())
		return
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, model.NewFileMissingError())
		return
	}
	file.Close()

	meta, err := h.inspector.Inspect(header)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, fileMetaResponse{
		Name: meta.Name,
		Type: meta.Type,
		Size: meta.Size,
	})
}
