package handler

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
)

// parseBodyFields はリクエストボディから指定フィールドを文字列として抽出する。
// application/jsonとurlencodedフォームの両方を受け付ける
// （ブラウザフォームとAPIクライアントの双方からの利用を想定）。
// JSONの数値フィールドは文字列に変換して返す。
func parseBodyFields(r *http.Request, names ...string) (map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)

	fields := make(map[string]string, len(names))

	if mediaType == "application/json" {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()

		var body map[string]any
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode JSON body: %w", err)
		}

		for _, name := range names {
			switch v := body[name].(type) {
			case nil:
				// フィールドなしは空文字列として扱う
			case string:
				fields[name] = v
			case json.Number:
				fields[name] = v.String()
			default:
				return nil, fmt.Errorf("unsupported value type for field %q", name)
			}
		}
		return fields, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form body: %w", err)
	}
	for _, name := range names {
		fields[name] = r.PostFormValue(name)
	}
	return fields, nil
}
