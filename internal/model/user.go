// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// usernameは一意で、作成後は変更されない。
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
