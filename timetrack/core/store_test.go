package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timewise.app/timewise/timetrack/model"
)

func TestValidateEntry(t *testing.T) {
	valid := entry(1, "Design", []int32{3}, "2024-03-04", 2)

	tests := []struct {
		name    string
		mutate  func(*model.TimeEntry)
		wantErr error
	}{
		{"Valid entry", func(e *model.TimeEntry) {}, nil},
		{"Zero hours is allowed", func(e *model.TimeEntry) { e.Hours = 0 }, nil},
		{"Negative hours", func(e *model.TimeEntry) { e.Hours = -0.5 }, ErrNegativeHours},
		{"Empty assignee set", func(e *model.TimeEntry) { e.AssigneeIDs = nil }, ErrNoAssignees},
		{"Missing project reference", func(e *model.TimeEntry) { e.ProjectID = 0 }, ErrNoProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := ValidateEntry(&e)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("Malformed date", func(t *testing.T) {
		e := valid
		e.WorkDate = "04/03/2024"
		assert.Error(t, ValidateEntry(&e))
	})
}
