package core

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Employee struct {
	EmployeeID    uint   `gorm:"primaryKey;autoIncrement"`
	Code          string `gorm:"uniqueIndex"`
	PreferredName string
	FirstName     string
	Surname       string
	Email         *string `gorm:"index"`
	StartDate     *time.Time
	EndDate       *time.Time
	Status        string
	Picture       *string
	ReportsToID   *int
	DepartmentID  *int
	PositionID    *int
	Attributes    datatypes.JSON
}

func (e Employee) DisplayName() string {
	if e.PreferredName != "" {
		return e.PreferredName + " " + e.Surname
	}
	return e.FirstName + " " + e.Surname
}

func FindEmployeeByID(db *gorm.DB, id int) (*Employee, error) {
	var emp Employee
	result := db.First(&emp, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}
