package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CherDalov/Accountability-2.0/models"
)

func sampleBoard() models.MonthBoard {
	return models.MonthBoard{
		1: {
			{ID: "a", Text: "run", Completed: true},
			{ID: "b", Text: "read", Completed: false},
		},
		2: {
			{ID: "c", Text: "run", Completed: true},
			{ID: "d", Text: "read", Completed: true},
		},
		3: {},
	}
}

func TestCompletedCounts(t *testing.T) {
	counts := CompletedCounts(sampleBoard(), 4)
	assert.Equal(t, []int{1, 2, 0, 0}, counts)
}

func TestCompletionPercentages(t *testing.T) {
	percentages := CompletionPercentages(sampleBoard(), 4)
	assert.Equal(t, []float64{50, 100, 0, 0}, percentages)
}

func TestEmptyDayIsZeroNotNaN(t *testing.T) {
	percentages := CompletionPercentages(models.MonthBoard{}, 2)
	assert.Equal(t, []float64{0, 0}, percentages)
	for _, p := range percentages {
		assert.False(t, p != p, "percentage must never be NaN")
	}
}

func TestAggregationIsPure(t *testing.T) {
	board := sampleBoard()

	first := CompletedCounts(board, 4)
	second := CompletedCounts(board, 4)
	assert.Equal(t, first, second)

	p1 := CompletionPercentages(board, 4)
	p2 := CompletionPercentages(board, 4)
	assert.Equal(t, p1, p2)

	// The board itself is untouched.
	assert.Equal(t, sampleBoard(), board)
}
