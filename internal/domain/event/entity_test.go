package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	// Arrange
	date := time.Date(2025, time.March, 15, 18, 30, 0, 0, time.UTC)

	// Act
	e := NewEvent(1, "テストカンファレンス", date, "東京国際フォーラム", "年次カンファレンス")

	// Assert
	assert.Equal(t, 1, e.ID)
	assert.Equal(t, "テストカンファレンス", e.Name)
	assert.Equal(t, "東京国際フォーラム", e.Location)
	assert.Equal(t, "年次カンファレンス", e.Description)
	// 時刻は切り捨てられる
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), e.Date)
	assert.Equal(t, "2025-03-15", e.FormattedDate())
}

func TestEvent_IsUpcoming(t *testing.T) {
	e := NewEvent(1, "テスト", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), "", "")

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "開催前", now: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC), want: true},
		{name: "開催当日", now: time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC), want: true},
		{name: "開催後", now: time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsUpcoming(tt.now))
		})
	}
}

func TestSeed(t *testing.T) {
	events := Seed()

	assert.Len(t, events, 5)

	// IDは一意で、シード順に並んでいる
	seen := make(map[int]bool)
	for i, e := range events {
		assert.Equal(t, i+1, e.ID)
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Location)
		assert.NotEmpty(t, e.Description)
	}

	assert.Equal(t, "Tech Conference 2025", events[0].Name)
	assert.Equal(t, "2025-06-05", events[4].FormattedDate())
}

func TestSeed_ReturnsFreshSlice(t *testing.T) {
	a := Seed()
	a[0].Name = "変更済み"

	b := Seed()
	assert.Equal(t, "Tech Conference 2025", b[0].Name)
}
