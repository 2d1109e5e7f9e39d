package core

type Project struct {
	ProjectID   uint   `gorm:"primaryKey;autoIncrement"`
	Code        string `gorm:"uniqueIndex"`
	Name        string
	Description string
	ClientID    *int
	Active      bool `gorm:"default:true"`
}
