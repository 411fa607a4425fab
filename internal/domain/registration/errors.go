package registration

import "errors"

// Registration ドメインのエラー定義
var (
	ErrAlreadyRegistered = errors.New("このメールアドレスは既にイベントに登録されています")
)
