package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/CherDalov/Accountability-2.0/models"
)

func validMonth(year, month int) error {
	if year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrValidation)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrValidation)
	}
	return nil
}

// ListMonth returns the user's full board for one month. Days without tasks
// are present as empty slices; a month with no data is an empty board, not
// an error.
func (s *Store) ListMonth(ctx context.Context, userID string, year, month int) (models.MonthBoard, error) {
	if err := validMonth(year, month); err != nil {
		return nil, err
	}

	days := models.DaysInMonth(year, month)
	board := make(models.MonthBoard, days)
	for day := 1; day <= days; day++ {
		board[day] = []models.Task{}
	}

	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT day, id, text, completed FROM tasks WHERE user_id = ? AND year = ? AND month = ? ORDER BY day, position"),
		userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day int
		var t models.Task
		if err := rows.Scan(&day, &t.ID, &t.Text, &t.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		board[day] = append(board[day], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return board, nil
}

// AddTasks creates one independent task per target day, each with a fresh
// id and completed=false, appended to that day's sequence. It returns the
// created ids in day order. Duplicate days in the input are collapsed and
// text is trimmed of surrounding whitespace; text that trims to empty is a
// validation error.
func (s *Store) AddTasks(ctx context.Context, userID string, year, month int, text string, days []int) ([]string, error) {
	if err := validMonth(year, month); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: task text must not be empty", ErrValidation)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: at least one day is required", ErrValidation)
	}

	limit := models.DaysInMonth(year, month)
	seen := make(map[int]bool, len(days))
	targets := make([]int, 0, len(days))
	for _, day := range days {
		if day < 1 || day > limit {
			return nil, fmt.Errorf("%w: day %d is outside 1..%d", ErrValidation, day, limit)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		targets = append(targets, day)
	}

	// Serialize per user so concurrent adds cannot interleave position
	// assignment and lose the insertion order.
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int64
	err = tx.QueryRowContext(ctx,
		s.rebind("SELECT COALESCE(MAX(position), 0) FROM tasks WHERE user_id = ?"), userID).Scan(&position)
	if err != nil {
		return nil, fmt.Errorf("failed to read max position: %w", err)
	}

	insert := s.rebind("INSERT INTO tasks (id, user_id, year, month, day, text, completed, position) VALUES (?, ?, ?, ?, ?, ?, FALSE, ?)")
	ids := make([]string, 0, len(targets))
	for _, day := range targets {
		position++
		id := uuid.NewString()
		if _, err := tx.ExecContext(ctx, insert, id, userID, year, month, day, text, position); err != nil {
			return nil, fmt.Errorf("failed to insert task: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tasks: %w", err)
	}

	s.logger.Info("tasks added", "user", userID, "count", len(ids), "year", year, "month", month)
	return ids, nil
}

// ToggleTask flips the completed flag on the task at the given (id, day)
// coordinate. ErrTaskNotFound when no such task exists there for this user.
func (s *Store) ToggleTask(ctx context.Context, userID, taskID string, year, month, day int) error {
	res, err := s.db.ExecContext(ctx,
		s.rebind("UPDATE tasks SET completed = NOT completed WHERE id = ? AND user_id = ? AND year = ? AND month = ? AND day = ?"),
		taskID, userID, year, month, day)
	if err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes the task at the given (id, day) coordinate. Same
// ownership and location rules as ToggleTask.
func (s *Store) DeleteTask(ctx context.Context, userID, taskID string, year, month, day int) error {
	res, err := s.db.ExecContext(ctx,
		s.rebind("DELETE FROM tasks WHERE id = ? AND user_id = ? AND year = ? AND month = ? AND day = ?"),
		taskID, userID, year, month, day)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
