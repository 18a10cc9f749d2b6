package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erp-suite/erp-server/internal/fields"
	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/internal/tenant"
)

// ========== Customer handlers ==========

// HandleListCustomers lists the tenant's customers
func (s *RESTServer) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColCustomers)
	if !ok {
		return
	}

	limit, offset := pagination(r)

	filter := bson.M{}
	if q := r.URL.Query().Get("q"); q != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"phone": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	total, err := col.CountDocuments(r.Context(), filter)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	cursor, err := col.Find(r.Context(), filter, options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	customers := []*models.Customer{}
	if err := cursor.All(r.Context(), &customers); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
		"total":     total,
	})
}

// HandleCreateCustomer creates a customer. The contact fields are
// fixed; business-type customer fields go through the resolver into
// the attributes map.
func (s *RESTServer) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	col, claims, ok := s.tenantCollection(w, r, tenant.ColCustomers)
	if !ok {
		return
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer := s.customerFromRequest(r, claims.TenantID, raw)
	if customer.Name == "" {
		s.respondError(w, http.StatusBadRequest, "customer name is required")
		return
	}

	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	result, err := col.InsertOne(r.Context(), customer)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	customer.ID = result.InsertedID.(primitive.ObjectID)

	s.respondJSON(w, http.StatusCreated, customer)
}

// HandleGetCustomer gets a customer
func (s *RESTServer) HandleGetCustomer(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColCustomers)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer := &models.Customer{}
	if err := col.FindOne(r.Context(), bson.M{"_id": id}).Decode(customer); err != nil {
		if err == mongo.ErrNoDocuments {
			s.respondError(w, http.StatusNotFound, "customer not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, customer)
}

// HandleUpdateCustomer updates a customer
func (s *RESTServer) HandleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	col, claims, ok := s.tenantCollection(w, r, tenant.ColCustomers)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer := s.customerFromRequest(r, claims.TenantID, raw)
	if customer.Name == "" {
		s.respondError(w, http.StatusBadRequest, "customer name is required")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":       customer.Name,
		"phone":      customer.Phone,
		"email":      customer.Email,
		"address":    customer.Address,
		"attributes": customer.Attributes,
		"updatedAt":  time.Now(),
	}}

	result, err := col.UpdateOne(r.Context(), bson.M{"_id": id}, update)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.MatchedCount == 0 {
		s.respondError(w, http.StatusNotFound, "customer not found")
		return
	}

	customer.ID = id
	s.respondJSON(w, http.StatusOK, customer)
}

// HandleDeleteCustomer deletes a customer
func (s *RESTServer) HandleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColCustomers)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	result, err := col.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		s.respondError(w, http.StatusNotFound, "customer not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// customerFromRequest shapes a raw payload into a customer record
func (s *RESTServer) customerFromRequest(r *http.Request, tenantID string, raw map[string]interface{}) *models.Customer {
	customer := &models.Customer{
		Name:    asString(lookupAny(raw, "name", "Name")),
		Phone:   asString(lookupAny(raw, "phone", "Phone")),
		Email:   asString(lookupAny(raw, "email", "Email")),
		Address: asString(lookupAny(raw, "address", "Address")),
	}

	bt := s.tenantBusinessType(r, tenantID)
	resolved := fields.CustomerFields(bt)
	if len(resolved) > 0 {
		values := fields.ApplyValues(resolved, raw)
		customer.Attributes = make(models.Variables, len(resolved))
		for _, f := range resolved {
			customer.Attributes[f.Name] = values[f.Name]
		}
	}

	return customer
}

// lookupAny returns the first present key
func lookupAny(raw map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return v
		}
	}
	return nil
}
