package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erp-suite/erp-server/internal/auth"
	"github.com/erp-suite/erp-server/internal/fields"
	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/internal/storage"
)

// ========== Auth handlers ==========

// HandleLogin handles user login
func (s *RESTServer) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Get user
	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Verify password
	if !s.auth.VerifyPassword(req.Password, user.PasswordHash) {
		s.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Check user status
	if !user.IsActive {
		s.respondError(w, http.StatusForbidden, "account is disabled")
		return
	}

	accessToken, refreshToken, err := s.issueTokens(r, user)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to generate tokens")
		return
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.store.UpdateUser(r.Context(), user); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to record login time")
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    int(s.config.JWT.AccessTokenTTL.Seconds()),
		"token_type":    "Bearer",
	})
}

// HandleRefresh handles token refresh
func (s *RESTServer) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := s.auth.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		s.respondError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil || !user.IsActive {
		s.respondError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	accessToken, refreshToken, err := s.issueTokens(r, user)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to generate tokens")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    int(s.config.JWT.AccessTokenTTL.Seconds()),
		"token_type":    "Bearer",
	})
}

// issueTokens resolves the user's tenant name and generates a token
// pair carrying it, so tenant-scoped handlers never need a second
// registry lookup.
func (s *RESTServer) issueTokens(r *http.Request, user *models.User) (string, string, error) {
	tenantName := ""
	if user.TenantID != "" {
		if t, err := s.store.GetTenant(r.Context(), user.TenantID); err == nil {
			tenantName = t.Name
		}
	}
	return s.auth.GenerateTokenPair(user, tenantName)
}

// ========== Tenant handlers (admin) ==========

// HandleListTenants lists tenants
func (s *RESTServer) HandleListTenants(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	tenants, total, err := s.store.ListTenants(r.Context(), limit, offset)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"tenants": tenants,
		"total":   total,
	})
}

// HandleCreateTenant creates a tenant and, when owner credentials are
// supplied, its first user
func (s *RESTServer) HandleCreateTenant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name" validate:"required,min=3,max=100"`
		Plan          string `json:"plan"`
		BusinessType  string `json:"businessType"`
		OwnerEmail    string `json:"ownerEmail"`
		OwnerPassword string `json:"ownerPassword"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant := &models.Tenant{
		Name:         req.Name,
		Plan:         req.Plan,
		BusinessType: req.BusinessType,
		OwnerEmail:   req.OwnerEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       models.TenantStatusActive,
	}

	if err := s.store.CreateTenant(r.Context(), tenant); err != nil {
		if err == storage.ErrDuplicateKey {
			s.respondError(w, http.StatusConflict, "tenant already exists")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.OwnerEmail != "" && req.OwnerPassword != "" {
		owner := &models.User{
			Email:    req.OwnerEmail,
			Username: req.OwnerEmail,
			TenantID: tenant.ID,
			IsActive: true,
			Settings: models.Variables{"password": req.OwnerPassword},
		}
		if err := s.store.CreateUser(r.Context(), owner); err != nil {
			log.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to create tenant owner")
		}
	}

	s.events.TenantCreated(tenant)

	s.respondJSON(w, http.StatusCreated, tenant)
}

// HandleGetTenant gets a tenant
func (s *RESTServer) HandleGetTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := s.store.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "tenant not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, tenant)
}

// HandleUpdateTenant updates a tenant
func (s *RESTServer) HandleUpdateTenant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name" validate:"required,min=3,max=100"`
		Plan         string `json:"plan"`
		BusinessType string `json:"businessType"`
		Status       string `json:"status" validate:"oneof=active suspended"`
		Phone        string `json:"phone"`
		Address      string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := s.store.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "tenant not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	tenant.Name = req.Name
	tenant.Plan = req.Plan
	tenant.BusinessType = req.BusinessType
	tenant.Phone = req.Phone
	tenant.Address = req.Address
	if req.Status != "" {
		tenant.Status = models.TenantStatus(req.Status)
	}

	if err := s.store.UpdateTenant(r.Context(), tenant); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, tenant)
}

// HandleDeleteTenant deletes a tenant along with its isolated
// database. There is no soft delete; the admin UI confirms first.
func (s *RESTServer) HandleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	tenant, err := s.store.GetTenant(ctx, id)
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "tenant not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Drop the tenant database before removing the registry row, so a
	// failed drop leaves the tenant resolvable and retryable.
	if err := s.tenants.Drop(ctx, tenant.ID, tenant.Name); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.store.DeleteTenant(ctx, id); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.events.TenantDeleted(tenant)

	w.WriteHeader(http.StatusNoContent)
}

// ========== User handlers (admin) ==========

// HandleListUsers lists users
func (s *RESTServer) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	var tenantID *string
	if tid := r.URL.Query().Get("tenant_id"); tid != "" {
		tenantID = &tid
	}

	limit, offset := pagination(r)

	users, total, err := s.store.ListUsers(r.Context(), tenantID, limit, offset)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": total,
	})
}

// HandleCreateUser creates a user
func (s *RESTServer) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Username string `json:"username,omitempty"`
		TenantID string `json:"tenant_id"`
		IsAdmin  bool   `json:"is_admin"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == "" {
		req.Username = req.Email
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		TenantID: req.TenantID,
		IsAdmin:  req.IsAdmin,
		IsActive: true,
		Settings: models.Variables{"password": req.Password},
	}

	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if err == storage.ErrDuplicateKey {
			s.respondError(w, http.StatusConflict, "user with this email already exists")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusCreated, user)
}

// HandleGetUser gets a user
func (s *RESTServer) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "user not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, user)
}

// HandleDeleteUser deletes a user
func (s *RESTServer) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "user not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ========== Plan handlers (admin) ==========

// HandleListPlans lists subscription plans
func (s *RESTServer) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.store.ListPlans(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"plans": plans,
	})
}

// HandleCreatePlan creates a subscription plan
func (s *RESTServer) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string   `json:"name" validate:"required,min=2,max=100"`
		AllowedFeatures []string `json:"allowedFeatures"`
		Price           float64  `json:"price" validate:"min=0"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan := &models.Plan{
		Name:            req.Name,
		AllowedFeatures: req.AllowedFeatures,
		Price:           req.Price,
	}

	if err := s.store.CreatePlan(r.Context(), plan); err != nil {
		if err == storage.ErrDuplicateKey {
			s.respondError(w, http.StatusConflict, "plan already exists")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusCreated, plan)
}

// HandleGetPlan gets a subscription plan
func (s *RESTServer) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.store.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "plan not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, plan)
}

// ========== Business type handlers (admin) ==========

// HandleListBusinessTypes lists business type templates
func (s *RESTServer) HandleListBusinessTypes(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	types, total, err := s.store.ListBusinessTypes(r.Context(), limit, offset)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"businessTypes": types,
		"total":         total,
	})
}

// HandleCreateBusinessType creates a business type template
func (s *RESTServer) HandleCreateBusinessType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string                   `json:"name" validate:"required,min=3,max=100"`
		Fields         []models.FieldDefinition `json:"fields"`
		CustomerFields []models.FieldDefinition `json:"customerFields"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	bt := &models.BusinessType{
		Name:           req.Name,
		Fields:         req.Fields,
		CustomerFields: req.CustomerFields,
	}

	if err := s.store.CreateBusinessType(r.Context(), bt); err != nil {
		if err == storage.ErrDuplicateKey {
			s.respondError(w, http.StatusConflict, "business type already exists")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusCreated, bt)
}

// HandleGetBusinessType gets a business type template
func (s *RESTServer) HandleGetBusinessType(w http.ResponseWriter, r *http.Request) {
	bt, err := s.store.GetBusinessType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "business type not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, bt)
}

// HandleUpdateBusinessType updates a business type template
func (s *RESTServer) HandleUpdateBusinessType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string                   `json:"name" validate:"required,min=3,max=100"`
		Fields         []models.FieldDefinition `json:"fields"`
		CustomerFields []models.FieldDefinition `json:"customerFields"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	bt, err := s.store.GetBusinessType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "business type not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	bt.Name = req.Name
	bt.Fields = req.Fields
	bt.CustomerFields = req.CustomerFields

	if err := s.store.UpdateBusinessType(r.Context(), bt); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, bt)
}

// HandleDeleteBusinessType deletes a business type template
func (s *RESTServer) HandleDeleteBusinessType(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteBusinessType(r.Context(), chi.URLParam(r, "id")); err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "business type not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ========== Field request handlers (admin) ==========

// HandleListFieldRequests lists pending field requests
func (s *RESTServer) HandleListFieldRequests(w http.ResponseWriter, r *http.Request) {
	var status *models.FieldRequestStatus
	if q := r.URL.Query().Get("status"); q != "" {
		st := models.FieldRequestStatus(q)
		status = &st
	}

	limit, offset := pagination(r)

	requests, total, err := s.store.ListFieldRequests(r.Context(), status, limit, offset)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"total":    total,
	})
}

// HandleApproveFieldRequest approves a field request, appending the
// field to the business-type template unless its normalized name
// collides with an existing field.
func (s *RESTServer) HandleApproveFieldRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := s.store.GetFieldRequest(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "field request not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Status != models.FieldRequestPending {
		s.respondError(w, http.StatusConflict, "field request already resolved")
		return
	}

	bt, err := s.store.GetBusinessType(ctx, req.BusinessTypeID)
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "business type not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	target := &bt.Fields
	existing := fields.ProductFields(bt)
	if req.Entity == "customer" {
		target = &bt.CustomerFields
		existing = fields.CustomerFields(bt)
	}

	key := fields.Normalize(req.Field.Name)
	for _, f := range existing {
		if fields.Normalize(f.Name) == key {
			s.respondError(w, http.StatusConflict, "field name already in use")
			return
		}
	}

	req.Field.Enabled = true
	*target = append(*target, req.Field)

	if err := s.store.UpdateBusinessType(ctx, bt); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	req.Status = models.FieldRequestApproved
	if err := s.store.UpdateFieldRequest(ctx, req); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, req)
}

// HandleRejectFieldRequest rejects a field request
func (s *RESTServer) HandleRejectFieldRequest(w http.ResponseWriter, r *http.Request) {
	req, err := s.store.GetFieldRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == storage.ErrNotFound {
			s.respondError(w, http.StatusNotFound, "field request not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Status != models.FieldRequestPending {
		s.respondError(w, http.StatusConflict, "field request already resolved")
		return
	}

	req.Status = models.FieldRequestRejected
	if err := s.store.UpdateFieldRequest(r.Context(), req); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, req)
}

// ========== Helper methods ==========

// HandleHealth health check
func (s *RESTServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// HandleRoot root handler
func (s *RESTServer) HandleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": s.config.Server.Name,
		"version": s.config.Server.Version,
		"health":  "/api/v1/health",
	})
}

// respondJSON responds with JSON
func (s *RESTServer) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// respondError responds with error
func (s *RESTServer) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// tenantCollection resolves the caller's tenant collection from the
// session claims. An unknown tenant maps to 401: a token for a tenant
// that no longer exists is as good as no token.
func (s *RESTServer) tenantCollection(w http.ResponseWriter, r *http.Request, collection string) (*mongo.Collection, *auth.Claims, bool) {
	claims := s.claimsFromContext(r.Context())
	if claims == nil || claims.TenantID == "" {
		s.respondError(w, http.StatusUnauthorized, "no tenant session")
		return nil, nil, false
	}

	col, err := s.tenants.Collection(r.Context(), claims.TenantID, collection)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			s.respondError(w, http.StatusUnauthorized, "unknown tenant")
		case errors.Is(err, storage.ErrInvalidData):
			s.respondError(w, http.StatusBadRequest, "invalid tenant id")
		default:
			s.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, nil, false
	}

	return col, claims, true
}

// tenantBusinessType loads the business-type template assigned to a
// tenant. Missing configuration is not an error: the resolver treats
// a nil template as "no dynamic fields".
func (s *RESTServer) tenantBusinessType(r *http.Request, tenantID string) *models.BusinessType {
	tenant, err := s.store.GetTenant(r.Context(), tenantID)
	if err != nil || tenant.BusinessType == "" {
		return nil
	}

	bt, err := s.store.GetBusinessType(r.Context(), tenant.BusinessType)
	if err != nil {
		return nil
	}
	return bt
}

// ========== Helper functions ==========

// pagination reads limit/offset query params with the default page
// size
func pagination(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit == 0 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}

// parseObjectID parses a document id from the URL
func parseObjectID(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
}

// asString extracts a string from an ApplyValues result
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asFloat extracts a number from an ApplyValues result
func asFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
