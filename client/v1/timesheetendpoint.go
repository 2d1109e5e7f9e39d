package v1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type TimeEntryDTO struct {
	ID          string  `json:"id"`
	ProjectID   int32   `json:"projectId"`
	TaskName    string  `json:"taskName"`
	AssigneeIDs []int32 `json:"assigneeIds"`
	WorkDate    string  `json:"workDate"` // yyyy-MM-dd
	Hours       float64 `json:"hours"`
	Status      string  `json:"status"`
	BillingType string  `json:"billingType"`
	Description string  `json:"description"`
	Holder      bool    `json:"holder"`
}

type MatrixRowDTO struct {
	ProjectID   int32              `json:"projectId"`
	TaskName    string             `json:"taskName"`
	AssigneeIDs []int32            `json:"assigneeIds"`
	Status      string             `json:"status"`
	BillingType string             `json:"billingType"`
	Holder      bool               `json:"holder"`
	HoursByDate map[string]float64 `json:"hoursByDate"`
	Total       float64            `json:"total"`
}

type WeeklyMatrixDTO struct {
	WeekStart  string             `json:"weekStart"`
	Dates      []string           `json:"dates"`
	Rows       []MatrixRowDTO     `json:"rows"`
	DayTotals  map[string]float64 `json:"dayTotals"`
	GrandTotal float64            `json:"grandTotal"`
}

type MatrixParams struct {
	WeekStart  string  `json:"weekStart"`
	EmployeeID *int32  `json:"employeeId,omitempty"`
	Projects   []int32 `json:"projects,omitempty"`
}

type CellDTO struct {
	ProjectID   int32   `json:"projectId"`
	TaskName    string  `json:"taskName"`
	AssigneeIDs []int32 `json:"assigneeIds"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description,omitempty"`
}

type CellChangeDTO struct {
	Action string        `json:"action"`
	Entry  *TimeEntryDTO `json:"entry,omitempty"`
}

type RowDTO struct {
	ProjectID   int32   `json:"projectId"`
	TaskName    string  `json:"taskName"`
	AssigneeIDs []int32 `json:"assigneeIds"`
	WeekStart   string  `json:"weekStart"`
	BillingType string  `json:"billingType,omitempty"`
}

type SubmitDTO struct {
	EmployeeID int32  `json:"employeeId"`
	WeekStart  string `json:"weekStart"`
}

type WeeklyTimesheetDTO struct {
	ID          int32      `json:"id"`
	EmployeeID  int32      `json:"employeeId"`
	WeekStart   string     `json:"weekStart"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

type TimesheetEndpoint struct {
	transport *Transport
}

func (e *TimesheetEndpoint) Matrix(params MatrixParams) (*WeeklyMatrixDTO, error) {
	resp, err := e.transport.Post("/api/timetrack/v1/timesheets/matrix", params, nil)
	if err != nil {
		return nil, err
	}

	var result dataEnvelope[WeeklyMatrixDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (e *TimesheetEndpoint) UpsertCell(dto CellDTO) (*CellChangeDTO, error) {
	resp, err := e.transport.Put("/api/timetrack/v1/timesheets/cell", dto, nil)
	if err != nil {
		return nil, err
	}

	var result dataEnvelope[CellChangeDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (e *TimesheetEndpoint) AddRow(dto RowDTO) (*TimeEntryDTO, error) {
	resp, err := e.transport.Post("/api/timetrack/v1/timesheets/rows", dto, nil)
	if err != nil {
		return nil, err
	}

	var result dataEnvelope[TimeEntryDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (e *TimesheetEndpoint) DeleteRow(dto RowDTO) (int64, error) {
	resp, err := e.transport.Delete("/api/timetrack/v1/timesheets/rows", dto, nil)
	if err != nil {
		return 0, err
	}

	var result dataEnvelope[struct {
		Deleted int64 `json:"deleted"`
	}]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return 0, err
	}
	return result.Data.Deleted, nil
}

func (e *TimesheetEndpoint) UpdateEntry(id string, hours float64, description string) (*CellChangeDTO, error) {
	payload := map[string]any{"hours": hours, "description": description}
	resp, err := e.transport.Put(fmt.Sprintf("/api/timetrack/v1/timesheets/entries/%s", id), payload, nil)
	if err != nil {
		return nil, err
	}

	var result dataEnvelope[CellChangeDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (e *TimesheetEndpoint) Submit(dto SubmitDTO) (*WeeklyTimesheetDTO, error) {
	resp, err := e.transport.Post("/api/timetrack/v1/timesheets/submit", dto, nil)
	if err != nil {
		return nil, err
	}

	var result dataEnvelope[WeeklyTimesheetDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (e *TimesheetEndpoint) Locked(employeeID int32, weekStart string) (bool, error) {
	query := map[string]string{
		"employeeId": strconv.Itoa(int(employeeID)),
		"weekStart":  weekStart,
	}
	resp, err := e.transport.Get("/api/timetrack/v1/timesheets/locked", query)
	if err != nil {
		return false, err
	}

	var result dataEnvelope[struct {
		Locked bool `json:"locked"`
	}]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return false, err
	}
	return result.Data.Locked, nil
}
