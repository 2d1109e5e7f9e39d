package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timewise.app/timewise/timetrack/model"
)

func TestPlanCellUpsert(t *testing.T) {
	rep := entry(1, "Design", []int32{3, 5}, "2024-03-04", 4)
	existing := entry(1, "Design", []int32{3, 5}, "2024-03-06", 2)
	existing.ID = "e1"

	tests := []struct {
		name     string
		rep      *model.TimeEntry
		matching []model.TimeEntry
		hours    float64
		desc     string
		want     CellAction
		wantErr  error
	}{
		{
			name:     "Empty cell set to zero is a no-op",
			rep:      &rep,
			matching: nil,
			hours:    0,
			want:     CellNoop,
		},
		{
			name:     "Empty cell with positive hours creates",
			rep:      &rep,
			matching: nil,
			hours:    3,
			desc:     "wireframes",
			want:     CellCreate,
		},
		{
			name:     "Existing cell zeroed deletes",
			rep:      &rep,
			matching: []model.TimeEntry{existing},
			hours:    0,
			want:     CellDelete,
		},
		{
			name:     "Existing cell updated in place",
			rep:      &rep,
			matching: []model.TimeEntry{existing},
			hours:    5,
			desc:     "revised",
			want:     CellUpdate,
		},
		{
			name:    "Negative hours rejected",
			rep:     &rep,
			hours:   -1,
			wantErr: ErrNegativeHours,
		},
		{
			name:    "Create without a representative fails",
			rep:     nil,
			hours:   2,
			wantErr: ErrUnknownGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, err := PlanCellUpsert(tt.rep, tt.matching, "2024-03-06", tt.hours, tt.desc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, change.Action)
		})
	}
}

func TestPlanCellUpsertCreateClonesGroup(t *testing.T) {
	rep := entry(1, "Design", []int32{3, 5}, "2024-03-04", 4)
	rep.BillingType = model.NonBillable

	change, err := PlanCellUpsert(&rep, nil, "2024-03-06", 3, "wireframes")
	require.NoError(t, err)
	require.Equal(t, CellCreate, change.Action)
	require.NotNil(t, change.Entry)

	assert.Equal(t, rep.ProjectID, change.Entry.ProjectID)
	assert.Equal(t, rep.TaskName, change.Entry.TaskName)
	assert.Equal(t, rep.AssigneeIDs, change.Entry.AssigneeIDs)
	assert.Equal(t, model.NonBillable, change.Entry.BillingType)
	assert.Equal(t, "2024-03-06", change.Entry.WorkDate)
	assert.Equal(t, 3.0, change.Entry.Hours)
	assert.Equal(t, "wireframes", change.Entry.Description)
	assert.False(t, change.Entry.Holder)
}

func TestPlanCellUpsertIdempotent(t *testing.T) {
	existing := entry(1, "Design", []int32{3, 5}, "2024-03-06", 2)
	existing.ID = "e1"

	first, err := PlanCellUpsert(nil, []model.TimeEntry{existing}, "2024-03-06", 5, "x")
	require.NoError(t, err)
	require.Equal(t, CellUpdate, first.Action)

	// re-apply against the stored result of the first application
	second, err := PlanCellUpsert(nil, []model.TimeEntry{*first.Entry}, "2024-03-06", 5, "x")
	require.NoError(t, err)
	assert.Equal(t, CellUpdate, second.Action)
	assert.Equal(t, first.Entry, second.Entry)
}

func TestPlanCellUpsertUpdateClearsHolder(t *testing.T) {
	holder := entry(1, "Design", []int32{3}, "2024-03-04", 0)
	holder.ID = "h1"
	holder.Holder = true

	change, err := PlanCellUpsert(nil, []model.TimeEntry{holder}, "2024-03-04", 2, "")
	require.NoError(t, err)
	require.Equal(t, CellUpdate, change.Action)
	assert.False(t, change.Entry.Holder, "logging hours promotes the holder to a real row")
}

func TestPlanCellUpsertDeletesFirstMatch(t *testing.T) {
	a := entry(1, "Design", []int32{3}, "2024-03-04", 2)
	a.ID = "a"
	b := entry(1, "Design", []int32{3}, "2024-03-04", 3)
	b.ID = "b"

	change, err := PlanCellUpsert(nil, []model.TimeEntry{a, b}, "2024-03-04", 0, "")
	require.NoError(t, err)
	require.Equal(t, CellDelete, change.Action)
	assert.Equal(t, "a", change.Entry.ID)
}
