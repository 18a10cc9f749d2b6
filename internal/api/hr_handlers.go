package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/internal/tenant"
)

// ========== Employee handlers ==========

// HandleListEmployees lists the tenant's employees
func (s *RESTServer) HandleListEmployees(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColEmployees)
	if !ok {
		return
	}

	s.listDocuments(w, r, col, "employees", &[]*models.Employee{})
}

// HandleCreateEmployee creates an employee
func (s *RESTServer) HandleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColEmployees)
	if !ok {
		return
	}

	var req struct {
		Name     string     `json:"name" validate:"required,min=2,max=100"`
		Role     string     `json:"role" validate:"required"`
		Phone    string     `json:"phone"`
		Email    string     `json:"email"`
		Salary   float64    `json:"salary" validate:"min=0"`
		JoinedAt *time.Time `json:"joinedAt"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	employee := &models.Employee{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      req.Name,
		Role:      req.Role,
		Phone:     req.Phone,
		Email:     req.Email,
		Salary:    req.Salary,
		JoinedAt:  req.JoinedAt,
		IsActive:  true,
	}

	result, err := col.InsertOne(r.Context(), employee)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	employee.ID = result.InsertedID.(primitive.ObjectID)

	s.respondJSON(w, http.StatusCreated, employee)
}

// HandleGetEmployee gets an employee
func (s *RESTServer) HandleGetEmployee(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColEmployees)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	employee := &models.Employee{}
	if err := col.FindOne(r.Context(), bson.M{"_id": id}).Decode(employee); err != nil {
		if err == mongo.ErrNoDocuments {
			s.respondError(w, http.StatusNotFound, "employee not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, employee)
}

// HandleUpdateEmployee updates an employee
func (s *RESTServer) HandleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColEmployees)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req struct {
		Name     string  `json:"name" validate:"required,min=2,max=100"`
		Role     string  `json:"role" validate:"required"`
		Phone    string  `json:"phone"`
		Email    string  `json:"email"`
		Salary   float64 `json:"salary" validate:"min=0"`
		IsActive bool    `json:"isActive"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{"$set": bson.M{
		"name":      req.Name,
		"role":      req.Role,
		"phone":     req.Phone,
		"email":     req.Email,
		"salary":    req.Salary,
		"isActive":  req.IsActive,
		"updatedAt": time.Now(),
	}}

	result, err := col.UpdateOne(r.Context(), bson.M{"_id": id}, update)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.MatchedCount == 0 {
		s.respondError(w, http.StatusNotFound, "employee not found")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// HandleDeleteEmployee deletes an employee
func (s *RESTServer) HandleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColEmployees)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	result, err := col.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		s.respondError(w, http.StatusNotFound, "employee not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ========== Leave handlers ==========

// HandleListLeaves lists leave requests
func (s *RESTServer) HandleListLeaves(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColLeaves)
	if !ok {
		return
	}

	s.listDocuments(w, r, col, "leaves", &[]*models.Leave{})
}

// HandleCreateLeave records a leave request
func (s *RESTServer) HandleCreateLeave(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColLeaves)
	if !ok {
		return
	}

	var req struct {
		EmployeeID string    `json:"employeeId" validate:"required"`
		From       time.Time `json:"from" validate:"required"`
		To         time.Time `json:"to" validate:"required"`
		Reason     string    `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	employeeID, err := primitive.ObjectIDFromHex(req.EmployeeID)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if req.To.Before(req.From) {
		s.respondError(w, http.StatusBadRequest, "leave end precedes start")
		return
	}

	now := time.Now()
	leave := &models.Leave{
		CreatedAt:  now,
		UpdatedAt:  now,
		EmployeeID: employeeID,
		From:       req.From,
		To:         req.To,
		Reason:     req.Reason,
		Status:     models.LeavePending,
	}

	result, err := col.InsertOne(r.Context(), leave)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	leave.ID = result.InsertedID.(primitive.ObjectID)

	s.respondJSON(w, http.StatusCreated, leave)
}

// HandleUpdateLeaveStatus approves or rejects a leave request
func (s *RESTServer) HandleUpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColLeaves)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid leave id")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := col.UpdateOne(r.Context(), bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.MatchedCount == 0 {
		s.respondError(w, http.StatusNotFound, "leave not found")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// ========== Expense handlers ==========

// HandleListExpenses lists expenses
func (s *RESTServer) HandleListExpenses(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColExpenses)
	if !ok {
		return
	}

	s.listDocuments(w, r, col, "expenses", &[]*models.Expense{})
}

// HandleCreateExpense records an expense
func (s *RESTServer) HandleCreateExpense(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColExpenses)
	if !ok {
		return
	}

	var req struct {
		Category string    `json:"category" validate:"required"`
		Amount   float64   `json:"amount" validate:"required,min=0"`
		Note     string    `json:"note"`
		Date     time.Time `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	expense := &models.Expense{
		CreatedAt: time.Now(),
		Category:  req.Category,
		Amount:    req.Amount,
		Note:      req.Note,
		Date:      req.Date,
	}

	result, err := col.InsertOne(r.Context(), expense)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	expense.ID = result.InsertedID.(primitive.ObjectID)

	s.respondJSON(w, http.StatusCreated, expense)
}

// HandleDeleteExpense deletes an expense
func (s *RESTServer) HandleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColExpenses)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid expense id")
		return
	}

	result, err := col.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		s.respondError(w, http.StatusNotFound, "expense not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
