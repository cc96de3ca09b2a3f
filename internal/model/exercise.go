// Package model はドメインモデルを定義する。
package model

import "time"

// Exercise はユーザーに紐付く運動記録1件を表す。
// 作成後は更新・削除されない追記専用のモデル。
// Dateは日付精度（時刻は意味を持たない）で保持する。
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int // 分
	Date        time.Time
	Seq         int64 // 追記順を保証する単調増加シーケンス
	CreatedAt   time.Time
}
