package exercise

import (
	"fmt"
	"time"
)

// DisplayLayout はAPIレスポンスで使用する日付表示フォーマット。
// 曜日・月・日・年の形式（例: "Mon Jan 02 2006"）。
const DisplayLayout = "Mon Jan 02 2006"

// dateLayouts は入力日付として受け付けるフォーマット。
// 先頭から順に試行する。保存形式はISO-8601の日付に正規化される。
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	DisplayLayout,
}

// ParseDay は日付文字列をカレンダー日付（UTC、時刻0時）にパースする。
// ISO-8601（日付のみ/タイムスタンプ）と表示フォーマットの両方を受け付ける。
func ParseDay(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}

// FormatDay は日付を表示フォーマットの文字列に変換する。
func FormatDay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// truncateToDay は時刻情報を落とし、日付のみのUTC時刻に正規化する。
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
