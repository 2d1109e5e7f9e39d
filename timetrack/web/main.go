package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timewise.app/timewise/core"
	"timewise.app/timewise/infrastructure/communication"
	"timewise.app/timewise/infrastructure/devops"
	"timewise.app/timewise/timetrack/model"
	"timewise.app/timewise/timetrack/web/handlers/clock"
	"timewise.app/timewise/timetrack/web/handlers/timesheet"
	web "timewise.app/timewise/web/common"
	"timewise.app/timewise/web/middlewares"
)

func main() {
	config, err := devops.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(config.Database.DSN, config.Database.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	if err := migrate(dm); err != nil {
		log.Fatal(err)
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(config.Auth.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	var notifier *communication.Slack
	if config.Slack.Token != "" {
		notifier = communication.NewSlack(config.Slack.Token, communication.SlackOption{
			InfoChannelID:  config.Slack.InfoChannelID,
			ErrorChannelID: config.Slack.ErrorChannelID,
		})
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/timetrack/v1")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		clock.Register(protected, dm)
		timesheet.Register(protected, dm, notifier)

		protected.GET("/data", func(c *gin.Context) {
			ctx := c.Request.Context()
			var employees []EmployeeInfo
			var projects []ProjectInfo

			if err := dm.Exec(ctx, func(db *gorm.DB) error {
				err := db.Table("employees").
					Select(`
		employees.employee_id as id,
		employees.code as code,
		employees.picture as avatar,
		employees.first_name as first_name,
		employees.surname as last_name
	`).
					Scan(&employees).Error
				if err != nil {
					return err
				}
				return db.Table("projects").
					Select(`
		projects.project_id as id,
		projects.code as code,
		projects.name as name,
		projects.active as active
	`).
					Scan(&projects).Error
			}); err != nil {
				c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
				return
			}

			c.JSON(http.StatusOK, web.NewSuccessResponse(Data{Employees: employees, Projects: projects}))
		})
	}

	fmt.Printf("listening on %s\n", config.Server.Addr)
	r.Run(config.Server.Addr)
}

type Data struct {
	Employees []EmployeeInfo `json:"employees"`
	Projects  []ProjectInfo  `json:"projects"`
}

type EmployeeInfo struct {
	ID        int32   `json:"id"`
	Code      string  `json:"code"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Avatar    *string `json:"avatar"`
}

type ProjectInfo struct {
	ID     int32  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func migrate(dm *core.DatabaseManager) error {
	return dm.Exec(context.Background(), func(db *gorm.DB) error {
		return db.AutoMigrate(
			&core.Employee{},
			&core.Project{},
			&model.AttendanceRecord{},
			&model.TimeEntry{},
			&model.WeeklyTimesheet{},
		)
	})
}
