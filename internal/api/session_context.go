package api

// SessionTrackerContextKey はリクエストに紐づく SessionTracker を保持する echo.Context のキー
const SessionTrackerContextKey = "session_tracker"
