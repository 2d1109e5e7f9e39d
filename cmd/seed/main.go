package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"timewise.app/timewise/core"
	"timewise.app/timewise/timetrack/model"
)

func main() {
	dsn := os.Getenv("DSN")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal(err)
	}

	models := []interface{}{
		&core.Employee{},
		&core.Project{},
		&model.AttendanceRecord{},
		&model.TimeEntry{},
		&model.WeeklyTimesheet{},
	}

	for _, m := range models {
		if !db.Migrator().HasTable(m) {
			if err := db.Migrator().CreateTable(m); err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}

	employees := []core.Employee{
		{EmployeeID: 1, Code: "E001", FirstName: "Alice", Surname: "Nguyen", Status: "active"},
		{EmployeeID: 2, Code: "E002", FirstName: "Ben", Surname: "Okafor", Status: "active"},
		{EmployeeID: 3, Code: "E003", FirstName: "Carla", Surname: "Reyes", Status: "active"},
	}
	projects := []core.Project{
		{ProjectID: 1, Code: "WEB", Name: "Website Redesign", Active: true},
		{ProjectID: 2, Code: "APP", Name: "Mobile App", Active: true},
	}

	for _, e := range employees {
		var existing core.Employee
		if err := db.Where("code = ?", e.Code).Attrs(e).FirstOrCreate(&existing).Error; err != nil {
			log.Fatal(err)
		}
	}
	for _, p := range projects {
		var existing core.Project
		if err := db.Where("code = ?", p.Code).Attrs(p).FirstOrCreate(&existing).Error; err != nil {
			log.Fatal(err)
		}
	}
}
