package storage

import (
	"context"
	"errors"

	"github.com/erp-suite/erp-server/internal/models"
)

// Common errors
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidData  = errors.New("invalid data")
)

// Store defines the shared-registry storage interface. The registry
// holds the tenant directory, plans, business types and user accounts;
// per-tenant business data is reached through the tenant router, not
// through this interface.
type Store interface {
	// User methods
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, tenantID *string, limit, offset int) ([]*models.User, int64, error)

	// Tenant methods
	CreateTenant(ctx context.Context, tenant *models.Tenant) error
	GetTenant(ctx context.Context, id string) (*models.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *models.Tenant) error
	DeleteTenant(ctx context.Context, id string) error
	ListTenants(ctx context.Context, limit, offset int) ([]*models.Tenant, int64, error)

	// Plan methods
	CreatePlan(ctx context.Context, plan *models.Plan) error
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	ListPlans(ctx context.Context) ([]*models.Plan, error)

	// Business type methods
	CreateBusinessType(ctx context.Context, bt *models.BusinessType) error
	GetBusinessType(ctx context.Context, id string) (*models.BusinessType, error)
	UpdateBusinessType(ctx context.Context, bt *models.BusinessType) error
	DeleteBusinessType(ctx context.Context, id string) error
	ListBusinessTypes(ctx context.Context, limit, offset int) ([]*models.BusinessType, int64, error)

	// Field request methods
	CreateFieldRequest(ctx context.Context, req *models.FieldRequest) error
	GetFieldRequest(ctx context.Context, id string) (*models.FieldRequest, error)
	UpdateFieldRequest(ctx context.Context, req *models.FieldRequest) error
	ListFieldRequests(ctx context.Context, status *models.FieldRequestStatus, limit, offset int) ([]*models.FieldRequest, int64, error)

	// Close the store
	Close(ctx context.Context) error
}
