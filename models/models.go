package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"userId"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type Department struct {
	DepartmentCode string              `gorm:"primaryKey;size:20" json:"departmentCode"`
	DepartmentName string              `gorm:"size:100;not null" json:"departmentName"`
	Budget         decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"budget"`
	Employees      []Employee          `gorm:"foreignKey:DepartmentCode;references:DepartmentCode;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type Employee struct {
	EmployeeNumber string    `gorm:"primaryKey;size:20" json:"employeeNumber"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100;not null" json:"lastName"`
	Position       string    `gorm:"size:100" json:"position"`
	Address        string    `gorm:"size:255" json:"address"`
	Telephone      string    `gorm:"size:30" json:"telephone"`
	Gender         string    `gorm:"size:10" json:"gender"`
	HiredDate      string    `gorm:"size:10" json:"hiredDate"` // YYYY-MM-DD
	DepartmentCode string    `gorm:"size:20;not null;index" json:"departmentCode"`
	Salaries       []Salary  `gorm:"foreignKey:EmployeeNumber;references:EmployeeNumber;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Salary is one payroll line for an employee in a month. NetSalary is always
// GrossSalary - TotalDeduction; it is stored so reports can be read as-is.
type Salary struct {
	ID             string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	EmployeeNumber string          `gorm:"size:20;not null;uniqueIndex:idx_salary_employee_month" json:"employeeNumber"`
	Month          string          `gorm:"size:7;not null;index;uniqueIndex:idx_salary_employee_month" json:"month"` // YYYY-MM
	GrossSalary    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"grossSalary"`
	TotalDeduction decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"totalDeduction"`
	NetSalary      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"netSalary"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (s *Salary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// For tracking who changed what
type AuditLog struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username  string    `gorm:"size:50;index" json:"username"`
	Entity    string    `gorm:"size:30;not null" json:"entity"` // department, employee, salary
	EntityKey string    `gorm:"size:36;not null" json:"entityKey"`
	Action    string    `gorm:"size:20;not null" json:"action"` // create, update, delete
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Department{}, &Employee{}, &Salary{}, &AuditLog{}}
}
