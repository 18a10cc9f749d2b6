package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/internal/tenant"
	"github.com/erp-suite/erp-server/pkg/crypto"
)

// saleItemRequest is one line item in a sale or purchase payload
type saleItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,min=0"`
	Price     float64 `json:"price" validate:"min=0"`
}

// parseItems converts request line items, validating product ids
func parseItems(items []saleItemRequest) ([]models.SaleItem, error) {
	out := make([]models.SaleItem, 0, len(items))
	for _, item := range items {
		id, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", item.ProductID)
		}
		out = append(out, models.SaleItem{
			ProductID: id,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return out, nil
}

// ========== Sale handlers ==========

// HandleListSales lists the tenant's sales
func (s *RESTServer) HandleListSales(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColSales)
	if !ok {
		return
	}

	s.listDocuments(w, r, col, "sales", &[]*models.Sale{})
}

// HandleCreateSale records a sale, decrements the stock of each line
// item and publishes the sale event. Stock updates are independent
// single-document operations; concurrent sales race last-write-wins,
// which the system accepts.
func (s *RESTServer) HandleCreateSale(w http.ResponseWriter, r *http.Request) {
	col, claims, ok := s.tenantCollection(w, r, tenant.ColSales)
	if !ok {
		return
	}

	var req struct {
		InvoiceNo     string            `json:"invoiceNo"`
		CustomerName  string            `json:"customerName"`
		CustomerPhone string            `json:"customerPhone"`
		Items         []saleItemRequest `json:"items" validate:"required,min=1"`
		Discount      float64           `json:"discount" validate:"min=0"`
		PaymentMethod string            `json:"paymentMethod" validate:"oneof=cash card upi credit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := parseItems(req.Items)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.InvoiceNo == "" {
		suffix, err := crypto.GenerateRandomString(4)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, "failed to generate invoice number")
			return
		}
		req.InvoiceNo = "INV-" + strings.ToUpper(strings.TrimRight(suffix, "="))
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}

	total := -req.Discount
	for _, item := range items {
		total += item.Quantity * item.Price
	}

	sale := &models.Sale{
		CreatedAt:     time.Now(),
		InvoiceNo:     req.InvoiceNo,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		Total:         total,
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
	}

	result, err := col.InsertOne(r.Context(), sale)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sale.ID = result.InsertedID.(primitive.ObjectID)

	// Decrement stock per line item
	inventory, err := s.tenants.Collection(r.Context(), claims.TenantID, tenant.ColInventory)
	if err == nil {
		for _, item := range sale.Items {
			_, err := inventory.UpdateOne(r.Context(),
				bson.M{"_id": item.ProductID},
				bson.M{"$inc": bson.M{"stock": -item.Quantity}})
			if err != nil {
				log.Warn().Err(err).
					Str("tenant_id", claims.TenantID).
					Str("product_id", item.ProductID.Hex()).
					Msg("Failed to decrement stock")
			}
		}
	}

	s.events.SaleRecorded(claims.TenantID, sale)

	s.respondJSON(w, http.StatusCreated, sale)
}

// HandleGetSale gets a sale
func (s *RESTServer) HandleGetSale(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColSales)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	sale := &models.Sale{}
	if err := col.FindOne(r.Context(), bson.M{"_id": id}).Decode(sale); err != nil {
		if err == mongo.ErrNoDocuments {
			s.respondError(w, http.StatusNotFound, "sale not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, sale)
}

// HandleDeleteSale deletes a sale record. Stock is not restored; a
// correcting purchase entry is the documented procedure.
func (s *RESTServer) HandleDeleteSale(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColSales)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	result, err := col.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		s.respondError(w, http.StatusNotFound, "sale not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ========== Purchase handlers ==========

// HandleListPurchases lists the tenant's purchases
func (s *RESTServer) HandleListPurchases(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColPurchases)
	if !ok {
		return
	}

	s.listDocuments(w, r, col, "purchases", &[]*models.Purchase{})
}

// HandleCreatePurchase records a stock purchase and increments stock
func (s *RESTServer) HandleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	col, claims, ok := s.tenantCollection(w, r, tenant.ColPurchases)
	if !ok {
		return
	}

	var req struct {
		Supplier string            `json:"supplier" validate:"required"`
		Items    []saleItemRequest `json:"items" validate:"required,min=1"`
		Paid     bool              `json:"paid"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := parseItems(req.Items)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	total := 0.0
	for _, item := range items {
		total += item.Quantity * item.Price
	}

	purchase := &models.Purchase{
		CreatedAt: time.Now(),
		Supplier:  req.Supplier,
		Items:     items,
		Total:     total,
		Paid:      req.Paid,
	}

	result, err := col.InsertOne(r.Context(), purchase)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	purchase.ID = result.InsertedID.(primitive.ObjectID)

	inventory, err := s.tenants.Collection(r.Context(), claims.TenantID, tenant.ColInventory)
	if err == nil {
		for _, item := range purchase.Items {
			_, err := inventory.UpdateOne(r.Context(),
				bson.M{"_id": item.ProductID},
				bson.M{"$inc": bson.M{"stock": item.Quantity}})
			if err != nil {
				log.Warn().Err(err).
					Str("tenant_id", claims.TenantID).
					Str("product_id", item.ProductID.Hex()).
					Msg("Failed to increment stock")
			}
		}
	}

	s.respondJSON(w, http.StatusCreated, purchase)
}

// HandleGetPurchase gets a purchase
func (s *RESTServer) HandleGetPurchase(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColPurchases)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}

	purchase := &models.Purchase{}
	if err := col.FindOne(r.Context(), bson.M{"_id": id}).Decode(purchase); err != nil {
		if err == mongo.ErrNoDocuments {
			s.respondError(w, http.StatusNotFound, "purchase not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, purchase)
}

// HandleDeletePurchase deletes a purchase record
func (s *RESTServer) HandleDeletePurchase(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColPurchases)
	if !ok {
		return
	}

	id, err := parseObjectID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}

	result, err := col.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		s.respondError(w, http.StatusNotFound, "purchase not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listDocuments runs the shared paged-list shape for tenant
// collections
func (s *RESTServer) listDocuments(w http.ResponseWriter, r *http.Request, col *mongo.Collection, key string, out interface{}) {
	limit, offset := pagination(r)

	total, err := col.CountDocuments(r.Context(), bson.M{})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	cursor, err := col.Find(r.Context(), bson.M{}, options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	if err := cursor.All(r.Context(), out); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		key:     out,
		"total": total,
	})
}
