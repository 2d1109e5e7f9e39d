package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The Monday guards run before any database access, so a nil handle proves
// rejection happens up front.

func TestAddTaskRowRejectsNonMonday(t *testing.T) {
	key := NewGroupKey(1, "Design", []int32{3})

	_, err := AddTaskRow(nil, key, "2024-03-06", "")
	assert.ErrorIs(t, err, ErrNotMonday)
}

func TestAddTaskRowRejectsEmptyAssignees(t *testing.T) {
	key := NewGroupKey(1, "Design", nil)

	_, err := AddTaskRow(nil, key, "2024-03-04", "")
	assert.ErrorIs(t, err, ErrNoAssignees)
}

func TestDeleteTaskRowRejectsNonMonday(t *testing.T) {
	key := NewGroupKey(1, "Design", []int32{3})

	// a Wednesday-rooted window would reach into the following week
	_, err := DeleteTaskRow(nil, key, "2024-03-06")
	assert.ErrorIs(t, err, ErrNotMonday)

	_, err = DeleteTaskRow(nil, key, "bogus")
	assert.Error(t, err)
}

func TestSubmitWeekRejectsNonMonday(t *testing.T) {
	_, err := SubmitWeek(nil, 7, "2024-03-06", time.Now())
	assert.ErrorIs(t, err, ErrNotMonday)
}
