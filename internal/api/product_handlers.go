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

// ========== Product handlers ==========

// HandleListProducts lists the tenant's inventory
func (s *RESTServer) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColInventory)
	if !ok {
		return
	}

	limit, offset := pagination(r)

	filter := bson.M{}
	if q := r.URL.Query().Get("q"); q != "" {
		filter["name"] = bson.M{"$regex": q, "$options": "i"}
	}
	if r.URL.Query().Get("low_stock") == "true" {
		filter["$expr"] = bson.M{"$lte": bson.A{"$stock", "$minStock"}}
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

	products := []*models.Product{}
	if err := cursor.All(r.Context(), &products); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    total,
	})
}

// HandleCreateProduct creates a product. The accepted keys are the
// tenant's resolved product fields; statics land on the typed record,
// dynamics in the attributes map, unknown keys are dropped.
func (s *RESTServer) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	col, claims, ok := s.tenantCollection(w, r, tenant.ColInventory)
	if !ok {
		return
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product := s.productFromRequest(r, claims.TenantID, raw)
	if product.Name == "" {
		s.respondError(w, http.StatusBadRequest, "product name is required")
		return
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := col.InsertOne(r.Context(), product)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	product.ID = result.InsertedID.(primitive.ObjectID)

	s.respondJSON(w, http.StatusCreated, product)
}

// HandleGetProduct gets a product
func (s *RESTServer) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColInventory)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product := &models.Product{}
	if err := col.FindOne(r.Context(), bson.M{"_id": id}).Decode(product); err != nil {
		if err == mongo.ErrNoDocuments {
			s.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, product)
}

// HandleUpdateProduct updates a product
func (s *RESTServer) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	col, claims, ok := s.tenantCollection(w, r, tenant.ColInventory)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product := s.productFromRequest(r, claims.TenantID, raw)
	if product.Name == "" {
		s.respondError(w, http.StatusBadRequest, "product name is required")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":       product.Name,
		"price":      product.Price,
		"costPrice":  product.CostPrice,
		"stock":      product.Stock,
		"minStock":   product.MinStock,
		"attributes": product.Attributes,
		"updatedAt":  time.Now(),
	}}

	result, err := col.UpdateOne(r.Context(), bson.M{"_id": id}, update)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.MatchedCount == 0 {
		s.respondError(w, http.StatusNotFound, "product not found")
		return
	}

	product.ID = id
	s.respondJSON(w, http.StatusOK, product)
}

// HandleDeleteProduct deletes a product
func (s *RESTServer) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColInventory)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	result, err := col.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		s.respondError(w, http.StatusNotFound, "product not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// productFromRequest shapes a raw payload into a product using the
// tenant's resolved field list
func (s *RESTServer) productFromRequest(r *http.Request, tenantID string, raw map[string]interface{}) *models.Product {
	bt := s.tenantBusinessType(r, tenantID)
	resolved := fields.ProductFields(bt)
	values := fields.ApplyValues(resolved, raw)

	product := &models.Product{
		Name:      asString(values[fields.FieldName]),
		Price:     asFloat(values[fields.FieldPrice]),
		CostPrice: asFloat(values[fields.FieldCostPrice]),
		Stock:     asFloat(values[fields.FieldStock]),
		MinStock:  asFloat(values[fields.FieldMinStock]),
	}

	statics := len(fields.StaticProductFields())
	if len(resolved) > statics {
		product.Attributes = make(models.Variables, len(resolved)-statics)
		for _, f := range resolved[statics:] {
			product.Attributes[f.Name] = values[f.Name]
		}
	}

	return product
}
