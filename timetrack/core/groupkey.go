package core

import (
	"sort"
	"strconv"
	"strings"

	"timewise.app/timewise/timetrack/model"
)

// GroupKey identifies one logical task row: the same task name logged by a
// different assignee combination is a different row. The assignee component
// is canonicalized by numeric sort, so key equality is insensitive to the
// order assignees were supplied in.
type GroupKey struct {
	ProjectID int32
	TaskName  string
	Assignees string
}

func NewGroupKey(projectID int32, taskName string, assigneeIDs []int32) GroupKey {
	return GroupKey{
		ProjectID: projectID,
		TaskName:  taskName,
		Assignees: canonicalAssignees(assigneeIDs),
	}
}

func KeyOf(e model.TimeEntry) GroupKey {
	return NewGroupKey(e.ProjectID, e.TaskName, e.AssigneeIDs)
}

// AssigneeList recovers the sorted assignee ids from the key.
func (k GroupKey) AssigneeList() []int32 {
	if k.Assignees == "" {
		return nil
	}
	parts := strings.Split(k.Assignees, ",")
	ids := make([]int32, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, int32(n))
	}
	return ids
}

// Less gives a stable ordering for matrix and summary rows.
func (k GroupKey) Less(other GroupKey) bool {
	if k.ProjectID != other.ProjectID {
		return k.ProjectID < other.ProjectID
	}
	if k.TaskName != other.TaskName {
		return k.TaskName < other.TaskName
	}
	return k.Assignees < other.Assignees
}

func SortedAssignees(ids []int32) []int32 {
	sorted := make([]int32, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// ids are integers, so the joined form cannot collide on the separator.
func canonicalAssignees(ids []int32) string {
	sorted := SortedAssignees(ids)
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	return strings.Join(parts, ",")
}
