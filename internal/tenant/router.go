package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/internal/storage"
)

// Conventional collections inside every tenant database. Collections
// are created by MongoDB on first write; nothing is provisioned up
// front.
const (
	ColCustomers = "customers"
	ColInventory = "inventory"
	ColSales     = "sales"
	ColPurchases = "purchases"
	ColEmployees = "employees"
	ColLeaves    = "leaves"
	ColExpenses  = "expenses"
	ColSettings  = "settings"
	ColFields    = "fields"
	ColDropdowns = "dropdown-data"
)

// Directory looks a tenant up in the shared registry. Satisfied by
// storage.Store.
type Directory interface {
	GetTenant(ctx context.Context, id string) (*models.Tenant, error)
}

// Router resolves a tenant identifier to its isolated logical
// database. Handles are cached for the process lifetime: once
// computed, a handle is immutable, so the benign race of two requests
// resolving the same tenant concurrently is acceptable.
type Router struct {
	client    *mongo.Client
	directory Directory
	prefix    string
	fallback  string
	handles   *cache.Cache
}

// NewRouter creates a tenant router. The handle cache is owned here
// rather than package-level so tests can build isolated routers.
func NewRouter(client *mongo.Client, directory Directory, prefix, fallback string) *Router {
	if prefix == "" {
		prefix = "erp"
	}
	if fallback == "" {
		fallback = "tenant"
	}
	return &Router{
		client:    client,
		directory: directory,
		prefix:    prefix,
		fallback:  fallback,
		handles:   cache.New(cache.NoExpiration, 0),
	}
}

// SanitizeName normalizes a tenant display name for use in a database
// name: lowercase, whitespace runs collapsed to single underscores,
// everything outside [a-z0-9_] stripped. An empty result falls back
// to the configured placeholder so the composed name never collapses
// to prefix+id alone.
func (r *Router) SanitizeName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	joined := strings.Join(fields, "_")

	var b strings.Builder
	for _, c := range joined {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			b.WriteRune(c)
		}
	}

	out := b.String()
	if out == "" {
		return r.fallback
	}
	return out
}

// DatabaseName composes the logical database name for a tenant. The
// tenant ID is embedded verbatim, so two tenants whose display names
// sanitize identically still get distinct databases.
func (r *Router) DatabaseName(tenantID, tenantName string) string {
	return fmt.Sprintf("%s_%s_%s", r.prefix, r.SanitizeName(tenantName), tenantID)
}

// Resolve returns the tenant's database handle, looking the display
// name up in the registry when the caller does not supply one. A
// tenant absent from the registry yields storage.ErrNotFound, which
// the API boundary treats as unauthorized.
func (r *Router) Resolve(ctx context.Context, tenantID, tenantName string) (*mongo.Database, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, storage.ErrInvalidData
	}

	if v, ok := r.handles.Get(tenantID); ok {
		return v.(*mongo.Database), nil
	}

	if tenantName == "" {
		t, err := r.directory.GetTenant(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		tenantName = t.Name
	}

	name := r.DatabaseName(tenantID, tenantName)
	db := r.client.Database(name)
	r.handles.Set(tenantID, db, cache.NoExpiration)

	log.Debug().
		Str("tenant_id", tenantID).
		Str("database", name).
		Msg("Resolved tenant database")

	return db, nil
}

// Collection resolves the tenant database and returns the named
// collection inside it.
func (r *Router) Collection(ctx context.Context, tenantID, collection string) (*mongo.Collection, error) {
	db, err := r.Resolve(ctx, tenantID, "")
	if err != nil {
		return nil, err
	}
	return db.Collection(collection), nil
}

// Drop irreversibly deletes all data for a tenant and forgets the
// cached handle, so a later Resolve consults the registry again.
// Callers gate this behind tenant deletion.
func (r *Router) Drop(ctx context.Context, tenantID, tenantName string) error {
	db, err := r.Resolve(ctx, tenantID, tenantName)
	if err != nil {
		return err
	}

	if err := db.Drop(ctx); err != nil {
		return err
	}

	r.handles.Delete(tenantID)

	log.Info().
		Str("tenant_id", tenantID).
		Str("database", db.Name()).
		Msg("Dropped tenant database")

	return nil
}
