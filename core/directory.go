package core

import (
	"fmt"

	"gorm.io/gorm"
)

// Directory resolves employee and project ids to display names.
// The timetrack engine never mutates directory data.
type Directory interface {
	ResolveEmployee(id int32) (string, bool)
	ResolveProject(id int32) (string, bool)
}

type dbDirectory struct {
	employees map[int32]string
	projects  map[int32]string
}

// LoadDirectory snapshots employee and project names for one request.
func LoadDirectory(db *gorm.DB) (Directory, error) {
	var employees []Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	var projects []Project
	if err := db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	dir := &dbDirectory{
		employees: make(map[int32]string, len(employees)),
		projects:  make(map[int32]string, len(projects)),
	}
	for _, e := range employees {
		dir.employees[int32(e.EmployeeID)] = e.DisplayName()
	}
	for _, p := range projects {
		dir.projects[int32(p.ProjectID)] = p.Name
	}
	return dir, nil
}

func (d *dbDirectory) ResolveEmployee(id int32) (string, bool) {
	name, ok := d.employees[id]
	return name, ok
}

func (d *dbDirectory) ResolveProject(id int32) (string, bool) {
	name, ok := d.projects[id]
	return name, ok
}
