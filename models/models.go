package models

import "time"

// User represents a registered account.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Omit from JSON output for security
	CreatedAt    string `json:"createdAt"`
}

// Task is a single to-do item belonging to one day of one user's month.
// A task "added to all days" is stored as independent per-day copies that
// share text but have distinct ids.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// MonthBoard maps day-of-month (1..DaysInMonth) to that day's tasks in
// insertion order. Every day of the month is present; a day without tasks
// holds an empty, non-nil slice.
type MonthBoard map[int][]Task

// DaysInMonth returns the number of days in the given month (28-31).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CredentialsRequest is the body for user login and registration requests.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddTaskRequest is the body for creating tasks. Exactly one of Days or
// AddToAllDays is expected; Year/Month default to the current date when
// omitted, matching the calendar the client renders.
type AddTaskRequest struct {
	Text         string `json:"text"`
	Days         []int  `json:"days,omitempty"`
	AddToAllDays bool   `json:"addToAllDays,omitempty"`
	Year         int    `json:"year,omitempty"`
	Month        int    `json:"month,omitempty"`
}

// TaskCoordinate locates one per-day task copy for toggle and delete.
type TaskCoordinate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// APIResponse is the envelope returned by all mutating endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// MonthStats carries the per-day aggregate series for the charts.
type MonthStats struct {
	Completed   []int     `json:"completed"`
	Percentages []float64 `json:"percentages"`
}
