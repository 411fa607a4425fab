package event

import "time"

// Seed は起動時に読み込まれる固定のイベント一覧を返す
// 呼び出しごとに新しいスライスを返す
func Seed() []Event {
	return []Event{
		NewEvent(1, "Tech Conference 2025",
			time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			"San Francisco Convention Center",
			"Join us for the biggest tech conference of the year featuring keynotes from industry leaders, hands-on workshops, and networking opportunities."),
		NewEvent(2, "Music Festival Downtown",
			time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC),
			"Central Park Amphitheater",
			"Experience three days of incredible live music from local and international artists across multiple stages."),
		NewEvent(3, "Food & Wine Expo",
			time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
			"Metro Convention Hall",
			"Taste cuisines from around the world and sample fine wines from renowned vineyards. Meet celebrity chefs and attend cooking demonstrations."),
		NewEvent(4, "Art Gallery Opening",
			time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			"Modern Art Museum",
			"Celebrate the opening of our new contemporary art exhibition featuring emerging artists. Meet the artists and enjoy complimentary refreshments."),
		NewEvent(5, "Marathon for Charity",
			time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			"City Waterfront",
			"Run for a cause! Join thousands of participants in our annual charity marathon. All proceeds benefit local children's hospitals."),
	}
}
