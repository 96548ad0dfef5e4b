// Package stats derives the per-day chart series from a month board. The
// functions are pure; callers recompute them after every mutation instead
// of patching previous results.
package stats

import "github.com/CherDalov/Accountability-2.0/models"

// CompletedCounts returns, for each day 1..daysInMonth, the number of
// completed tasks. Days with no tasks count zero.
func CompletedCounts(board models.MonthBoard, daysInMonth int) []int {
	counts := make([]int, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		for _, task := range board[day] {
			if task.Completed {
				counts[day-1]++
			}
		}
	}
	return counts
}

// CompletionPercentages returns 100*completed/total per day. A day with no
// tasks yields 0, not NaN.
func CompletionPercentages(board models.MonthBoard, daysInMonth int) []float64 {
	percentages := make([]float64, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		tasks := board[day]
		if len(tasks) == 0 {
			continue
		}
		completed := 0
		for _, task := range tasks {
			if task.Completed {
				completed++
			}
		}
		percentages[day-1] = 100 * float64(completed) / float64(len(tasks))
	}
	return percentages
}
