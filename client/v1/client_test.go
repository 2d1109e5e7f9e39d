package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/timetrack/v1/clock/in", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var dto ClockActionDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Equal(t, int32(7), dto.EmployeeID)

		json.NewEncoder(w).Encode(map[string]any{
			"data": AttendanceDTO{
				ID:         1,
				EmployeeID: dto.EmployeeID,
				WorkDay:    "2025-03-10",
				Status:     "clocked_in",
			},
		})
	}))
	defer server.Close()

	client := NewTimewiseClient(server.URL, "test-token")
	rec, err := client.Clock.In(ClockActionDTO{EmployeeID: 7, Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Equal(t, "clocked_in", rec.Status)
	assert.Equal(t, int32(7), rec.EmployeeID)
}

func TestDailyQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("employeeId"))
		assert.Equal(t, "2025-03-10", r.URL.Query().Get("date"))

		json.NewEncoder(w).Encode(map[string]any{
			"data": DailyTimeDTO{Status: "paused", CommittedSeconds: 7200, DisplaySeconds: 7200},
		})
	}))
	defer server.Close()

	client := NewTimewiseClient(server.URL, "")
	daily, err := client.Clock.Daily(7, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(7200), daily.DisplaySeconds)
}

func TestMatrix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/timetrack/v1/timesheets/matrix", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"data": WeeklyMatrixDTO{
				WeekStart: "2025-03-10",
				Rows: []MatrixRowDTO{
					{ProjectID: 3, TaskName: "Design", Total: 12.5},
				},
				GrandTotal: 12.5,
			},
		})
	}))
	defer server.Close()

	client := NewTimewiseClient(server.URL, "test-token")
	matrix, err := client.Timesheets.Matrix(MatrixParams{WeekStart: "2025-03-10"})
	require.NoError(t, err)
	require.Len(t, matrix.Rows, 1)
	assert.Equal(t, "Design", matrix.Rows[0].TaskName)
	assert.Equal(t, 12.5, matrix.GrandTotal)
}

func TestErrorStatusSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusLocked)
		json.NewEncoder(w).Encode(map[string]any{"error": "week is locked"})
	}))
	defer server.Close()

	client := NewTimewiseClient(server.URL, "test-token")
	_, err := client.Timesheets.UpsertCell(CellDTO{ProjectID: 1, TaskName: "Design", AssigneeIDs: []int32{7}, Date: "2025-03-10", Hours: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "423")
}

func TestLocked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/timetrack/v1/timesheets/locked", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"locked": true}})
	}))
	defer server.Close()

	client := NewTimewiseClient(server.URL, "")
	locked, err := client.Timesheets.Locked(7, "2025-03-10")
	require.NoError(t, err)
	assert.True(t, locked)
}
