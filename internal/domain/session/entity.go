package session

import (
	"slices"
	"time"
)

// Session は1ユーザーの訪問状況と登録済みイベントを表す
type Session struct {
	ID          string
	FirstVisit  time.Time
	LastVisit   time.Time
	TotalVisits int
	// 登録済みイベントID（重複なし、追加順）
	RegisteredEventIDs []int
}

// Stats はセッションの訪問統計
type Stats struct {
	FirstVisit  time.Time
	LastVisit   time.Time
	TotalVisits int
}

// NewSession は初回訪問として新しいセッションを作成する
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:                 id,
		FirstVisit:         now,
		LastVisit:          now,
		TotalVisits:        1,
		RegisteredEventIDs: []int{},
	}
}

// RecordVisit は再訪問を記録する
func (s *Session) RecordVisit(now time.Time) {
	s.LastVisit = now
	s.TotalVisits++
}

// AddEvent は登録済みイベントを追加する
// 既に含まれている場合は何もせず false を返す
func (s *Session) AddEvent(eventID int) bool {
	if s.HasEvent(eventID) {
		return false
	}
	s.RegisteredEventIDs = append(s.RegisteredEventIDs, eventID)
	return true
}

// HasEvent はイベントが登録済みかを返す
func (s *Session) HasEvent(eventID int) bool {
	return slices.Contains(s.RegisteredEventIDs, eventID)
}

// EventIDs は登録済みイベントIDのコピーを返す
func (s *Session) EventIDs() []int {
	ids := make([]int, len(s.RegisteredEventIDs))
	copy(ids, s.RegisteredEventIDs)
	return ids
}

// Stats は訪問統計を返す
func (s *Session) Stats() Stats {
	return Stats{
		FirstVisit:  s.FirstVisit,
		LastVisit:   s.LastVisit,
		TotalVisits: s.TotalVisits,
	}
}

// Snapshot は呼び出し側が変更しても影響しないコピーを返す
func (s *Session) Snapshot() Session {
	cp := *s
	cp.RegisteredEventIDs = s.EventIDs()
	return cp
}
