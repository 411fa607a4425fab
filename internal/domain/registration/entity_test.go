package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistration(t *testing.T) {
	at := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	d := Draft{
		EventID:           3,
		FullName:          "山田 太郎",
		Email:             "taro@example.com",
		Phone:             "090-1234-5678",
		NumberOfAttendees: 2,
		Comments:          "ベジタリアン対応希望",
	}

	r := NewRegistration(7, d, at)

	assert.Equal(t, 7, r.ID)
	assert.Equal(t, d.EventID, r.EventID)
	assert.Equal(t, d.FullName, r.FullName)
	assert.Equal(t, d.Email, r.Email)
	assert.Equal(t, d.Phone, r.Phone)
	assert.Equal(t, d.NumberOfAttendees, r.NumberOfAttendees)
	assert.Equal(t, d.Comments, r.Comments)
	assert.Equal(t, at, r.RegisteredAt)
}

func TestRegistration_MatchesEmail(t *testing.T) {
	r := Registration{Email: "A@B.com"}

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "完全一致", email: "A@B.com", want: true},
		{name: "小文字", email: "a@b.com", want: true},
		{name: "大文字", email: "A@B.COM", want: true},
		{name: "別のアドレス", email: "c@b.com", want: false},
		{name: "空文字", email: "", want: false},
		{name: "空白のみ", email: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.MatchesEmail(tt.email))
		})
	}
}

func TestRegistration_MatchesEmail_BlankStoredEmail(t *testing.T) {
	// 空のメールで登録されたものは空のメールでも一致しない
	r := Registration{Email: ""}
	assert.False(t, r.MatchesEmail(""))
}

func TestRegistration_NewerThan(t *testing.T) {
	base := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

	older := Registration{ID: 1, RegisteredAt: base}
	newer := Registration{ID: 2, RegisteredAt: base.Add(time.Second)}
	sameTime := Registration{ID: 3, RegisteredAt: base}

	assert.True(t, newer.NewerThan(older))
	assert.False(t, older.NewerThan(newer))
	// 同時刻ならIDが大きい方が新しい
	assert.True(t, sameTime.NewerThan(older))
	assert.False(t, older.NewerThan(sameTime))
}
