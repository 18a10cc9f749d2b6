package api

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erp-suite/erp-server/internal/fields"
	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/internal/storage"
	"github.com/erp-suite/erp-server/internal/tenant"
	"github.com/erp-suite/erp-server/pkg/crypto"
)

// settingsDocID is the _id of the single settings document per tenant
const settingsDocID = "settings"

// ========== Settings handlers ==========

// HandleGetSettings returns the tenant's store settings
func (s *RESTServer) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColSettings)
	if !ok {
		return
	}

	settings := &models.StoreSettings{}
	err := col.FindOne(r.Context(), bson.M{"_id": settingsDocID}).Decode(settings)
	if err != nil && err != mongo.ErrNoDocuments {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, settings)
}

// HandleUpdateSettings upserts the tenant's store settings.
// Integration secrets are encrypted at rest.
func (s *RESTServer) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColSettings)
	if !ok {
		return
	}

	var req struct {
		StoreName     string            `json:"storeName" validate:"required,max=100"`
		Currency      string            `json:"currency"`
		TaxPercent    float64           `json:"taxPercent" validate:"min=0,max=100"`
		Address       string            `json:"address"`
		Phone         string            `json:"phone"`
		ReceiptFooter string            `json:"receiptFooter"`
		Secrets       map[string]string `json:"secrets"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	settings := &models.StoreSettings{
		ID:            settingsDocID,
		UpdatedAt:     time.Now(),
		StoreName:     req.StoreName,
		Currency:      req.Currency,
		TaxPercent:    req.TaxPercent,
		Address:       req.Address,
		Phone:         req.Phone,
		ReceiptFooter: req.ReceiptFooter,
	}

	if len(req.Secrets) > 0 {
		key := sha256.Sum256([]byte(s.config.JWT.Secret))
		settings.Secrets = make(models.Variables, len(req.Secrets))
		for name, value := range req.Secrets {
			sealed, err := crypto.Encrypt(key[:], []byte(value))
			if err != nil {
				s.respondError(w, http.StatusInternalServerError, "failed to seal secret")
				return
			}
			settings.Secrets[name] = base64.StdEncoding.EncodeToString(sealed)
		}
	}

	_, err := col.ReplaceOne(r.Context(), bson.M{"_id": settingsDocID}, settings,
		options.Replace().SetUpsert(true))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, settings)
}

// ========== Field configuration handlers ==========

// HandleGetFields returns the tenant's effective product and customer
// field lists
func (s *RESTServer) HandleGetFields(w http.ResponseWriter, r *http.Request) {
	claims := s.claimsFromContext(r.Context())
	if claims == nil || claims.TenantID == "" {
		s.respondError(w, http.StatusUnauthorized, "no tenant session")
		return
	}

	bt := s.tenantBusinessType(r, claims.TenantID)

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"product":  fields.ProductFields(bt),
		"customer": fields.CustomerFields(bt),
	})
}

// HandleCreateFieldRequest submits a field request for administrative
// approval. A copy is kept in the tenant's fields collection so the
// tenant UI can show pending requests without registry access.
func (s *RESTServer) HandleCreateFieldRequest(w http.ResponseWriter, r *http.Request) {
	col, claims, ok := s.tenantCollection(w, r, tenant.ColFields)
	if !ok {
		return
	}

	var req struct {
		Entity string                 `json:"entity" validate:"required,oneof=product customer"`
		Field  models.FieldDefinition `json:"field"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Field.Name == "" {
		s.respondError(w, http.StatusBadRequest, "field name is required")
		return
	}
	if req.Field.Type == "" {
		req.Field.Type = models.FieldTypeText
	}

	t, err := s.store.GetTenant(r.Context(), claims.TenantID)
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusUnauthorized, "unknown tenant")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if t.BusinessType == "" {
		s.respondError(w, http.StatusBadRequest, "tenant has no business type")
		return
	}

	fieldReq := &models.FieldRequest{
		TenantID:       claims.TenantID,
		BusinessTypeID: t.BusinessType,
		Entity:         req.Entity,
		Field:          req.Field,
	}

	if err := s.store.CreateFieldRequest(r.Context(), fieldReq); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Registry copy is authoritative; the tenant copy is a convenience.
	if _, err := col.InsertOne(r.Context(), fieldReq); err != nil {
		log.Warn().Err(err).Str("tenant_id", claims.TenantID).Msg("Failed to mirror field request")
	}

	s.respondJSON(w, http.StatusCreated, fieldReq)
}

// ========== Dropdown handlers ==========

// HandleListDropdowns lists the tenant's dropdown option sets
func (s *RESTServer) HandleListDropdowns(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColDropdowns)
	if !ok {
		return
	}

	cursor, err := col.Find(r.Context(), bson.M{})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	dropdowns := []*models.Dropdown{}
	if err := cursor.All(r.Context(), &dropdowns); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"dropdowns": dropdowns,
	})
}

// HandleUpdateDropdown upserts one named dropdown option list
func (s *RESTServer) HandleUpdateDropdown(w http.ResponseWriter, r *http.Request) {
	col, _, ok := s.tenantCollection(w, r, tenant.ColDropdowns)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	if name == "" {
		s.respondError(w, http.StatusBadRequest, "dropdown name is required")
		return
	}

	var req struct {
		Options []string `json:"options" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	dropdown := &models.Dropdown{Name: name, Options: req.Options}

	_, err := col.ReplaceOne(r.Context(), bson.M{"_id": name}, dropdown,
		options.Replace().SetUpsert(true))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, dropdown)
}
