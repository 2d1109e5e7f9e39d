package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EntryStatus string

const (
	EntryOpen   EntryStatus = "open"
	EntryClosed EntryStatus = "closed"
)

type BillingType string

const (
	Billable    BillingType = "billable"
	NonBillable BillingType = "non_billable"
)

// TimeEntry is one dated work-log row. Rows sharing the same project,
// task name and assignee set form one logical task row across dates.
// A Holder entry is the zero-hour placeholder that makes a task row
// visible before any hours are logged.
type TimeEntry struct {
	ID          string                     `gorm:"primaryKey;type:char(36);column:id" json:"id"`
	ProjectID   int32                      `gorm:"column:project_id;not null;index" json:"projectId"`
	TaskName    string                     `gorm:"column:task_name;type:varchar(255);not null" json:"taskName"`
	AssigneeIDs datatypes.JSONSlice[int32] `gorm:"column:assignee_ids" json:"assigneeIds"`
	WorkDate    string                     `gorm:"column:work_date;type:date;not null;index" json:"workDate"`
	Hours       float64                    `gorm:"column:hours;type:decimal(10,2);not null" json:"hours"`
	Status      EntryStatus                `gorm:"column:status;type:varchar(20)" json:"status"`
	BillingType BillingType                `gorm:"column:billing_type;type:varchar(20)" json:"billingType"`
	Description string                     `gorm:"column:description;type:text" json:"description"`
	Holder      bool                       `gorm:"column:holder;not null;default:false" json:"holder"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
