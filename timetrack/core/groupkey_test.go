package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timewise.app/timewise/timetrack/model"
)

func TestGroupKeyOrderInsensitive(t *testing.T) {
	a := NewGroupKey(1, "Design", []int32{5, 3})
	b := NewGroupKey(1, "Design", []int32{3, 5})

	assert.Equal(t, a, b)
	assert.Equal(t, "3,5", a.Assignees)
	assert.Equal(t, []int32{3, 5}, a.AssigneeList())
}

func TestGroupKeyDistinctions(t *testing.T) {
	base := NewGroupKey(1, "Design", []int32{3, 5})

	tests := []struct {
		name  string
		other GroupKey
	}{
		{"Different project", NewGroupKey(2, "Design", []int32{3, 5})},
		{"Different task name", NewGroupKey(1, "Review", []int32{3, 5})},
		{"Different assignee set", NewGroupKey(1, "Design", []int32{3})},
		{"Superset of assignees", NewGroupKey(1, "Design", []int32{3, 5, 9})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.other)
		})
	}
}

func TestKeyOfMatchesNewGroupKey(t *testing.T) {
	entry := model.TimeEntry{
		ProjectID:   4,
		TaskName:    "Wireframes",
		AssigneeIDs: []int32{9, 2, 7},
	}

	assert.Equal(t, NewGroupKey(4, "Wireframes", []int32{2, 7, 9}), KeyOf(entry))
}

func TestGroupKeyLess(t *testing.T) {
	assert.True(t, NewGroupKey(1, "A", []int32{1}).Less(NewGroupKey(2, "A", []int32{1})))
	assert.True(t, NewGroupKey(1, "A", []int32{1}).Less(NewGroupKey(1, "B", []int32{1})))
	assert.True(t, NewGroupKey(1, "A", []int32{1}).Less(NewGroupKey(1, "A", []int32{2})))
	assert.False(t, NewGroupKey(1, "A", []int32{1}).Less(NewGroupKey(1, "A", []int32{1})))
}

func TestSortedAssigneesDoesNotMutate(t *testing.T) {
	in := []int32{5, 1, 3}
	out := SortedAssignees(in)

	assert.Equal(t, []int32{1, 3, 5}, out)
	assert.Equal(t, []int32{5, 1, 3}, in)
}
