package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/CherDalov/Accountability-2.0/database"
	"github.com/CherDalov/Accountability-2.0/middleware"
	"github.com/CherDalov/Accountability-2.0/models"
	"github.com/CherDalov/Accountability-2.0/stats"
)

// monthFromPath parses and validates the {year}/{month} path variables.
func monthFromPath(r *http.Request) (year, month int, err error) {
	vars := mux.Vars(r)
	year, err = strconv.Atoi(vars["year"])
	if err != nil || year < 1 {
		return 0, 0, errors.New("invalid year")
	}
	month, err = strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("invalid month")
	}
	return year, month, nil
}

// GetMonthTasks returns the authenticated user's full day->tasks mapping
// for one month. Days without tasks are empty arrays, not missing keys.
func (h *Handlers) GetMonthTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	year, month, err := monthFromPath(r)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	board, err := h.Store.ListMonth(r.Context(), userID, year, month)
	if err != nil {
		h.Logger.Error("failed to list month", "error", err)
		respondFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, board)
}

// CreateTasks adds a task to the requested days, or to every day of the
// month when addToAllDays is set. Year and month default to the current
// date, matching the calendar the client renders.
func (h *Handlers) CreateTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.AddTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	year, month := req.Year, req.Month
	if year == 0 && month == 0 {
		now := time.Now()
		year, month = now.Year(), int(now.Month())
	}

	days := req.Days
	if req.AddToAllDays {
		days = make([]int, 0, 31)
		for day := 1; day <= models.DaysInMonth(year, month); day++ {
			days = append(days, day)
		}
	}

	if _, err := h.Store.AddTasks(r.Context(), userID, year, month, req.Text, days); err != nil {
		if errors.Is(err, database.ErrValidation) {
			respondFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to add tasks", "error", err)
		respondFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondSuccess(w, "Task added successfully")
}

// ToggleTask flips completion on one per-day task copy.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	h.mutateTask(w, r, h.Store.ToggleTask)
}

// DeleteTask removes one per-day task copy.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	h.mutateTask(w, r, h.Store.DeleteTask)
}

// mutateTask shares the decode/validate/not-found plumbing of toggle and
// delete, which differ only in the store call.
func (h *Handlers) mutateTask(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, userID, taskID string, year, month, day int) error) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID := mux.Vars(r)["id"]

	var coord models.TaskCoordinate
	if err := json.NewDecoder(r.Body).Decode(&coord); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if coord.Month < 1 || coord.Month > 12 || coord.Year < 1 ||
		coord.Day < 1 || coord.Day > models.DaysInMonth(coord.Year, coord.Month) {
		respondFailure(w, http.StatusBadRequest, "Invalid task location")
		return
	}

	err := op(r.Context(), userID, taskID, coord.Year, coord.Month, coord.Day)
	if errors.Is(err, database.ErrTaskNotFound) {
		respondFailure(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.Logger.Error("task mutation failed", "error", err)
		respondFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondSuccess(w, "")
}

// GetMonthStats returns the per-day completed counts and completion
// percentages used by the charts.
func (h *Handlers) GetMonthStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	year, month, err := monthFromPath(r)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	board, err := h.Store.ListMonth(r.Context(), userID, year, month)
	if err != nil {
		h.Logger.Error("failed to list month", "error", err)
		respondFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	days := models.DaysInMonth(year, month)
	respondWithJSON(w, http.StatusOK, models.MonthStats{
		Completed:   stats.CompletedCounts(board, days),
		Percentages: stats.CompletionPercentages(board, days),
	})
}
