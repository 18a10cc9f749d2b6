package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erp-suite/erp-server/internal/models"
	"github.com/erp-suite/erp-server/internal/storage"
)

// stubDirectory serves tenants from a map and counts lookups
type stubDirectory struct {
	tenants map[string]*models.Tenant
	lookups int
}

func (d *stubDirectory) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	d.lookups++
	if t, ok := d.tenants[id]; ok {
		return t, nil
	}
	return nil, storage.ErrNotFound
}

// testClient builds a client without connecting; the driver dials
// lazily on first operation, which these tests never perform.
func testClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	return client
}

func newTestRouter(t *testing.T, dir Directory) *Router {
	t.Helper()
	return NewRouter(testClient(t), dir, "erp", "tenant")
}

func TestSanitizeName(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{})

	cases := []struct {
		in   string
		want string
	}{
		{"Acme Stores", "acme_stores"},
		{"Joe's Café!!", "joes_caf"},
		{"  Crazy   Spaces \t here ", "crazy_spaces_here"},
		{"UPPER_case_99", "upper_case_99"},
		{"!!!", "tenant"},
		{"", "tenant"},
		{"店舗", "tenant"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, r.SanitizeName(tc.in), "input=%q", tc.in)
	}
}

func TestSanitizeNameCustomFallback(t *testing.T) {
	r := NewRouter(testClient(t), &stubDirectory{}, "erp", "store")
	assert.Equal(t, "store", r.SanitizeName("!!!"))
}

func TestDatabaseName(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{})

	assert.Equal(t, "erp_acme_stores_t1", r.DatabaseName("t1", "Acme Stores"))

	// Same display name, different tenants: names stay distinct
	a := r.DatabaseName("t1", "Acme")
	b := r.DatabaseName("t2", "Acme")
	assert.NotEqual(t, a, b)
}

func TestDatabaseNameConfiguredPrefix(t *testing.T) {
	r := NewRouter(testClient(t), &stubDirectory{}, "shop", "tenant")
	assert.Equal(t, "shop_acme_t1", r.DatabaseName("t1", "Acme"))
}

func TestResolveEmptyTenantID(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{})

	_, err := r.Resolve(context.Background(), "", "Acme")
	assert.ErrorIs(t, err, storage.ErrInvalidData)

	_, err = r.Resolve(context.Background(), "   ", "Acme")
	assert.ErrorIs(t, err, storage.ErrInvalidData)
}

func TestResolveUnknownTenant(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{tenants: map[string]*models.Tenant{}})

	_, err := r.Resolve(context.Background(), "missing", "")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestResolveCachesHandle(t *testing.T) {
	dir := &stubDirectory{tenants: map[string]*models.Tenant{
		"t1": {ID: "t1", Name: "Acme Stores"},
	}}
	r := newTestRouter(t, dir)

	db1, err := r.Resolve(context.Background(), "t1", "")
	require.NoError(t, err)
	assert.Equal(t, "erp_acme_stores_t1", db1.Name())
	assert.Equal(t, 1, dir.lookups)

	// Second resolution hits the cache, not the directory
	db2, err := r.Resolve(context.Background(), "t1", "")
	require.NoError(t, err)
	assert.Same(t, db1, db2)
	assert.Equal(t, 1, dir.lookups)
}

func TestResolveWithProvidedName(t *testing.T) {
	dir := &stubDirectory{}
	r := newTestRouter(t, dir)

	db, err := r.Resolve(context.Background(), "t1", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "erp_acme_t1", db.Name())
	assert.Zero(t, dir.lookups)
}

func TestCollection(t *testing.T) {
	dir := &stubDirectory{tenants: map[string]*models.Tenant{
		"t1": {ID: "t1", Name: "Acme"},
	}}
	r := newTestRouter(t, dir)

	col, err := r.Collection(context.Background(), "t1", ColInventory)
	require.NoError(t, err)
	assert.Equal(t, ColInventory, col.Name())
	assert.Equal(t, "erp_acme_t1", col.Database().Name())
}

func TestDropUnknownTenant(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{tenants: map[string]*models.Tenant{}})

	err := r.Drop(context.Background(), "missing", "")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
