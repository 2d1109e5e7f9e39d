package v1

import (
	"encoding/json"
	"strconv"
	"time"
)

type ClockActionDTO struct {
	EmployeeID int32  `json:"employeeId"`
	Date       string `json:"date,omitempty"` // yyyy-MM-dd
}

type AttendanceDTO struct {
	ID               int32      `json:"id"`
	EmployeeID       int32      `json:"employeeId"`
	WorkDay          string     `json:"workDay"`
	Status           string     `json:"status"`
	CommittedSeconds int64      `json:"committedSeconds"`
	OpenedAt         *time.Time `json:"openedAt,omitempty"`
}

type DailyTimeDTO struct {
	Status           string     `json:"status"`
	CommittedSeconds int64      `json:"committedSeconds"`
	OpenedAt         *time.Time `json:"openedAt,omitempty"`
	DisplaySeconds   int64      `json:"displaySeconds"`
}

type ClockEndpoint struct {
	transport *Transport
}

func (e *ClockEndpoint) action(path string, dto ClockActionDTO) (*AttendanceDTO, error) {
	resp, err := e.transport.Post(path, dto, nil)
	if err != nil {
		return nil, err
	}

	var result dataEnvelope[AttendanceDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (e *ClockEndpoint) In(dto ClockActionDTO) (*AttendanceDTO, error) {
	return e.action("/api/timetrack/v1/clock/in", dto)
}

func (e *ClockEndpoint) Pause(dto ClockActionDTO) (*AttendanceDTO, error) {
	return e.action("/api/timetrack/v1/clock/pause", dto)
}

func (e *ClockEndpoint) Out(dto ClockActionDTO) (*AttendanceDTO, error) {
	return e.action("/api/timetrack/v1/clock/out", dto)
}

func (e *ClockEndpoint) Daily(employeeID int32, date string) (*DailyTimeDTO, error) {
	query := map[string]string{"employeeId": strconv.Itoa(int(employeeID))}
	if date != "" {
		query["date"] = date
	}

	resp, err := e.transport.Get("/api/timetrack/v1/clock/daily", query)
	if err != nil {
		return nil, err
	}

	var result dataEnvelope[DailyTimeDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}
