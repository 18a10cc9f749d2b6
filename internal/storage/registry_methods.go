package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/pkg/crypto"
)

// ========== User Methods ==========

// CreateUser creates a new user
func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	// Hash password if provided in settings
	if pwd, ok := user.Settings["password"].(string); ok && pwd != "" {
		hash, err := crypto.HashPassword(pwd)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		delete(user.Settings, "password")
	}

	if existing, err := s.GetUserByEmail(ctx, user.Email); err == nil && existing != nil {
		return ErrDuplicateKey
	}

	_, err := s.db.Collection(colUsers).InsertOne(ctx, user)
	return mapError(err)
}

// GetUser gets a user by ID
func (s *MongoStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

// GetUserByEmail gets a user by email
func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

// UpdateUser updates a user
func (s *MongoStore) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	res, err := s.db.Collection(colUsers).ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser deletes a user
func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	res, err := s.db.Collection(colUsers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUsers lists users, optionally scoped to a tenant
func (s *MongoStore) ListUsers(ctx context.Context, tenantID *string, limit, offset int) ([]*models.User, int64, error) {
	filter := bson.M{}
	if tenantID != nil {
		filter["tenantId"] = *tenantID
	}
	return findPage[models.User](ctx, s, colUsers, filter, limit, offset)
}

// ========== Tenant Methods ==========

// CreateTenant creates a new tenant in the registry
func (s *MongoStore) CreateTenant(ctx context.Context, tenant *models.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}

	now := time.Now()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now
	if tenant.Status == "" {
		tenant.Status = models.TenantStatusActive
	}

	_, err := s.db.Collection(colTenants).InsertOne(ctx, tenant)
	return mapError(err)
}

// GetTenant gets a tenant by ID
func (s *MongoStore) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	err := s.db.Collection(colTenants).FindOne(ctx, bson.M{"_id": id}).Decode(tenant)
	if err != nil {
		return nil, mapError(err)
	}
	return tenant, nil
}

// UpdateTenant updates a tenant
func (s *MongoStore) UpdateTenant(ctx context.Context, tenant *models.Tenant) error {
	tenant.UpdatedAt = time.Now()

	res, err := s.db.Collection(colTenants).ReplaceOne(ctx, bson.M{"_id": tenant.ID}, tenant)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTenant removes a tenant from the registry. Dropping the
// tenant's isolated database is the tenant router's job and happens
// before this call.
func (s *MongoStore) DeleteTenant(ctx context.Context, id string) error {
	res, err := s.db.Collection(colTenants).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	// Cascade: tenant users go with the tenant
	_, err = s.db.Collection(colUsers).DeleteMany(ctx, bson.M{"tenantId": id})
	return mapError(err)
}

// ListTenants lists tenants
func (s *MongoStore) ListTenants(ctx context.Context, limit, offset int) ([]*models.Tenant, int64, error) {
	return findPage[models.Tenant](ctx, s, colTenants, bson.M{}, limit, offset)
}

// ========== Plan Methods ==========

// CreatePlan creates a plan
func (s *MongoStore) CreatePlan(ctx context.Context, plan *models.Plan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	_, err := s.db.Collection(colPlans).InsertOne(ctx, plan)
	return mapError(err)
}

// GetPlan gets a plan by ID
func (s *MongoStore) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	plan := &models.Plan{}
	err := s.db.Collection(colPlans).FindOne(ctx, bson.M{"_id": id}).Decode(plan)
	if err != nil {
		return nil, mapError(err)
	}
	return plan, nil
}

// ListPlans lists all plans
func (s *MongoStore) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	cursor, err := s.db.Collection(colPlans).Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"price": 1}))
	if err != nil {
		return nil, mapError(err)
	}
	defer cursor.Close(ctx)

	var plans []*models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, mapError(err)
	}
	return plans, nil
}

// ========== Business Type Methods ==========

// CreateBusinessType creates a business type template
func (s *MongoStore) CreateBusinessType(ctx context.Context, bt *models.BusinessType) error {
	if bt.ID == "" {
		bt.ID = uuid.New().String()
	}

	now := time.Now()
	bt.CreatedAt = now
	bt.UpdatedAt = now

	_, err := s.db.Collection(colBusinessTypes).InsertOne(ctx, bt)
	return mapError(err)
}

// GetBusinessType gets a business type by ID
func (s *MongoStore) GetBusinessType(ctx context.Context, id string) (*models.BusinessType, error) {
	bt := &models.BusinessType{}
	err := s.db.Collection(colBusinessTypes).FindOne(ctx, bson.M{"_id": id}).Decode(bt)
	if err != nil {
		return nil, mapError(err)
	}
	return bt, nil
}

// UpdateBusinessType updates a business type template
func (s *MongoStore) UpdateBusinessType(ctx context.Context, bt *models.BusinessType) error {
	bt.UpdatedAt = time.Now()

	res, err := s.db.Collection(colBusinessTypes).ReplaceOne(ctx, bson.M{"_id": bt.ID}, bt)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBusinessType deletes a business type template
func (s *MongoStore) DeleteBusinessType(ctx context.Context, id string) error {
	res, err := s.db.Collection(colBusinessTypes).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListBusinessTypes lists business types
func (s *MongoStore) ListBusinessTypes(ctx context.Context, limit, offset int) ([]*models.BusinessType, int64, error) {
	return findPage[models.BusinessType](ctx, s, colBusinessTypes, bson.M{}, limit, offset)
}

// ========== Field Request Methods ==========

// CreateFieldRequest records a pending field request
func (s *MongoStore) CreateFieldRequest(ctx context.Context, req *models.FieldRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = models.FieldRequestPending
	}

	_, err := s.db.Collection(colFieldRequests).InsertOne(ctx, req)
	return mapError(err)
}

// GetFieldRequest gets a field request by ID
func (s *MongoStore) GetFieldRequest(ctx context.Context, id string) (*models.FieldRequest, error) {
	req := &models.FieldRequest{}
	err := s.db.Collection(colFieldRequests).FindOne(ctx, bson.M{"_id": id}).Decode(req)
	if err != nil {
		return nil, mapError(err)
	}
	return req, nil
}

// UpdateFieldRequest updates a field request
func (s *MongoStore) UpdateFieldRequest(ctx context.Context, req *models.FieldRequest) error {
	req.UpdatedAt = time.Now()

	res, err := s.db.Collection(colFieldRequests).ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFieldRequests lists field requests, optionally by status
func (s *MongoStore) ListFieldRequests(ctx context.Context, status *models.FieldRequestStatus, limit, offset int) ([]*models.FieldRequest, int64, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	return findPage[models.FieldRequest](ctx, s, colFieldRequests, filter, limit, offset)
}

// ========== Helpers ==========

// findPage runs a paged find plus a count over one collection
func findPage[T any](ctx context.Context, s *MongoStore, collection string, filter bson.M, limit, offset int) ([]*T, int64, error) {
	col := s.db.Collection(collection)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, mapError(err)
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer cursor.Close(ctx)

	var items []*T
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, mapError(err)
	}
	return items, total, nil
}
