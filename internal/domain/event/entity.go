package event

import "time"

// DateLayout はイベント日付の表示形式
const DateLayout = "2006-01-02"

// Event はイベントエンティティを表す
// 起動時にシードされ、以後変更されない
type Event struct {
	ID          int
	Name        string
	Date        time.Time
	Location    string
	Description string
}

// NewEvent は新しいイベントを作成する
// 日付は時刻を切り捨てて日単位で保持する
func NewEvent(id int, name string, date time.Time, location, description string) Event {
	return Event{
		ID:          id,
		Name:        name,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Location:    location,
		Description: description,
	}
}

// FormattedDate は日付を YYYY-MM-DD 形式で返す
func (e Event) FormattedDate() string {
	return e.Date.Format(DateLayout)
}

// IsUpcoming は基準時刻より後（当日を含む）に開催されるかを返す
func (e Event) IsUpcoming(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, e.Date.Location())
	return !e.Date.Before(today)
}
