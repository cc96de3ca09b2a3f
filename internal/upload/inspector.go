// Package upload はアップロードファイルのメタデータ検査を提供する。
package upload

import (
	"fmt"
	"log/slog"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

// UsageRecorder はファイル検査メトリクスの記録インターフェース。
type UsageRecorder interface {
	RecordFileInspected()
}

// FileMeta はアップロードファイルのメタデータ。
type FileMeta struct {
	Name string
	Type string
	Size int64
}

// Inspector はアップロードファイルのメタデータを抽出するサービス。
// ファイル内容は保存せず、メタデータのみを返す。
type Inspector struct {
	recorder UsageRecorder
}

// NewInspector はInspectorを生成する。
// recorderはnilでもよい（メトリクス収集なしで動作する）。
func NewInspector(recorder UsageRecorder) *Inspector {
	return &Inspector{recorder: recorder}
}

// Inspect はmultipartフォームのファイルヘッダからメタデータを抽出する。
// クライアント申告のContent-Typeをそのまま返し、申告がない場合または
// application/octet-streamの場合のみ内容からMIMEタイプを判定する。
func (i *Inspector) Inspect(header *multipart.FileHeader) (*FileMeta, error) {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		detected, err := i.detect(header)
		if err != nil {
			slog.Warn("mime detection failed, falling back to octet-stream",
				slog.String("filename", header.Filename),
				slog.String("error", err.Error()),
			)
			contentType = "application/octet-stream"
		} else {
			contentType = detected
		}
	}

	meta := &FileMeta{
		Name: header.Filename,
		Type: contentType,
		Size: header.Size,
	}

	if i.recorder != nil {
		i.recorder.RecordFileInspected()
	}

	return meta, nil
}

// detect はファイル内容の先頭バイトからMIMEタイプを判定する。
func (i *Inspector) detect(header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to detect mime type: %w", err)
	}

	return mtype.String(), nil
}
