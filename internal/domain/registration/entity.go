package registration

import (
	"strings"
	"time"
)

// Draft は採番前の登録内容を表す
type Draft struct {
	EventID           int
	FullName          string
	Email             string
	Phone             string
	NumberOfAttendees int
	Comments          string
}

// Registration は登録エンティティを表す
// 作成後に変更・削除されることはない
type Registration struct {
	ID                int
	EventID           int
	FullName          string
	Email             string
	Phone             string
	NumberOfAttendees int
	Comments          string
	RegisteredAt      time.Time
}

// NewRegistration は採番済みのIDと登録時刻から登録を作成する
func NewRegistration(id int, d Draft, registeredAt time.Time) Registration {
	return Registration{
		ID:                id,
		EventID:           d.EventID,
		FullName:          d.FullName,
		Email:             d.Email,
		Phone:             d.Phone,
		NumberOfAttendees: d.NumberOfAttendees,
		Comments:          d.Comments,
		RegisteredAt:      registeredAt,
	}
}

// IsBlankEmail はメールアドレスが空または空白のみかを返す
func IsBlankEmail(email string) bool {
	return strings.TrimSpace(email) == ""
}

// MatchesEmail はメールアドレスが大文字小文字を区別せず一致するかを返す
// 空のメールアドレスはどの登録とも一致しない
func (r Registration) MatchesEmail(email string) bool {
	if IsBlankEmail(email) {
		return false
	}
	return strings.EqualFold(r.Email, email)
}

// NewerThan は r が other より新しい登録かを返す（同時刻ならIDの大きい方）
func (r Registration) NewerThan(other Registration) bool {
	if !r.RegisteredAt.Equal(other.RegisteredAt) {
		return r.RegisteredAt.After(other.RegisteredAt)
	}
	return r.ID > other.ID
}
