package models

import (
	"time"
)

// Permission levels stored in TaskPermission.PermissionType.
const (
	PermissionRead  = 0
	PermissionWrite = 1
	PermissionAdmin = 2
)

type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null"     json:"name"`
}

type Company struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"not null"                 json:"name"`
	IsHeadquarter bool   `gorm:"default:false"            json:"is_headquarter"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

type Department struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"uniqueIndex;not null"     json:"name"`
	CompanyID uint   `gorm:"index;not null"           json:"company_id"`
}

type Team struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"uniqueIndex;not null"     json:"name"`
	DepartmentID uint   `gorm:"index;not null"           json:"department_id"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	RoleID       uint      `gorm:"index;not null"           json:"role_id"`
	CompanyID    *uint     `gorm:"index"                    json:"company_id,omitempty"`
	DepartmentID *uint     `gorm:"index"                    json:"department_id,omitempty"`
	TeamID       *uint     `gorm:"index"                    json:"team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Project struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"not null"                 json:"name"`
	Description  string     `json:"description,omitempty"`
	CreatedBy    uint       `gorm:"index;not null"           json:"created_by"`
	CompanyID    *uint      `gorm:"index"                    json:"company_id,omitempty"`
	DepartmentID *uint      `gorm:"index"                    json:"department_id,omitempty"`
	TeamID       *uint      `gorm:"index"                    json:"team_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type TaskStatus struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null"     json:"name"`
}

type TaskApprovalStatus struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null"     json:"name"`
}

type TaskStage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID uint      `gorm:"index;not null"           json:"project_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string     `gorm:"not null"                 json:"title"`
	Description      string     `json:"description,omitempty"`
	CreatedBy        uint       `gorm:"index;not null"           json:"created_by"`
	AssignedTo       *uint      `gorm:"index"                    json:"assigned_to,omitempty"`
	StatusID         *uint      `gorm:"index"                    json:"status_id,omitempty"`
	ApprovalStatusID *uint      `gorm:"index"                    json:"approval_status_id,omitempty"`
	StageID          *uint      `gorm:"index"                    json:"stage_id,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TaskPermission is unique per (task, user); Grant upserts, so duplicates
// collapse into one row holding the highest level.
type TaskPermission struct {
	ID             uint `gorm:"primaryKey;autoIncrement"           json:"id"`
	TaskID         uint `gorm:"uniqueIndex:idx_task_user;not null" json:"task_id"`
	UserID         uint `gorm:"uniqueIndex:idx_task_user;not null" json:"user_id"`
	PermissionType int  `gorm:"not null"                           json:"permission_type"`
}

type TaskMessage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID     uint      `gorm:"index;not null"           json:"task_id"`
	SenderID   uint      `gorm:"index;not null"           json:"sender_id"`
	ReceiverID uint      `gorm:"index;not null"           json:"receiver_id"`
	Content    string    `gorm:"not null"                 json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
