package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/erp-suite/erp-server/internal/models"
)

// NATS subjects consumed by the billing/messaging companions
const (
	SubjectTenantCreated = "erp.tenant.created"
	SubjectTenantDeleted = "erp.tenant.deleted"
	SubjectSaleRecorded  = "erp.sale.recorded"
)

// Publisher emits lifecycle and sale events to NATS. A nil Publisher
// (or one built without a connection) is a no-op, so the server runs
// standalone when NATS is not configured.
type Publisher struct {
	nc *nats.Conn
}

// NewPublisher creates an event publisher
func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

// TenantEvent is the payload for tenant lifecycle subjects
type TenantEvent struct {
	TenantID   string    `json:"tenantId"`
	TenantName string    `json:"tenantName"`
	Plan       string    `json:"plan,omitempty"`
	Time       time.Time `json:"time"`
}

// SaleEvent is the payload for erp.sale.recorded
type SaleEvent struct {
	TenantID  string    `json:"tenantId"`
	SaleID    string    `json:"saleId"`
	InvoiceNo string    `json:"invoiceNo"`
	Total     float64   `json:"total"`
	Time      time.Time `json:"time"`
}

// TenantCreated publishes a tenant creation event
func (p *Publisher) TenantCreated(t *models.Tenant) {
	p.publish(SubjectTenantCreated, TenantEvent{
		TenantID:   t.ID,
		TenantName: t.Name,
		Plan:       t.Plan,
		Time:       time.Now(),
	})
}

// TenantDeleted publishes a tenant deletion event
func (p *Publisher) TenantDeleted(t *models.Tenant) {
	p.publish(SubjectTenantDeleted, TenantEvent{
		TenantID:   t.ID,
		TenantName: t.Name,
		Time:       time.Now(),
	})
}

// SaleRecorded publishes a sale event
func (p *Publisher) SaleRecorded(tenantID string, sale *models.Sale) {
	p.publish(SubjectSaleRecorded, SaleEvent{
		TenantID:  tenantID,
		SaleID:    sale.ID.Hex(),
		InvoiceNo: sale.InvoiceNo,
		Total:     sale.Total,
		Time:      time.Now(),
	})
}

// publish marshals and sends one event, best effort
func (p *Publisher) publish(subject string, payload interface{}) {
	if p == nil || p.nc == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to marshal event")
		return
	}

	if err := p.nc.Publish(subject, data); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("Failed to publish event")
	}
}
