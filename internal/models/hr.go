package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a staff record in a tenant database
type Employee struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	Name     string     `json:"name" bson:"name"`
	Role     string     `json:"role" bson:"role"`
	Phone    string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Email    string     `json:"email,omitempty" bson:"email,omitempty"`
	Salary   float64    `json:"salary" bson:"salary"`
	JoinedAt *time.Time `json:"joinedAt,omitempty" bson:"joinedAt,omitempty"`
	IsActive bool       `json:"isActive" bson:"isActive"`
}

// LeaveStatus tracks the approval state of a leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Leave is an employee leave request
type Leave struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId"`
	From       time.Time          `json:"from" bson:"from"`
	To         time.Time          `json:"to" bson:"to"`
	Reason     string             `json:"reason,omitempty" bson:"reason,omitempty"`
	Status     LeaveStatus        `json:"status" bson:"status"`
}

// Expense is a recorded business expense
type Expense struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`

	Category string    `json:"category" bson:"category"`
	Amount   float64   `json:"amount" bson:"amount"`
	Note     string    `json:"note,omitempty" bson:"note,omitempty"`
	Date     time.Time `json:"date" bson:"date"`
}
