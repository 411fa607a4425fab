package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrEventNotFound = errors.New("イベントが見つかりません")
	ErrInvalidID     = errors.New("イベントIDは正の整数である必要があります")
)
