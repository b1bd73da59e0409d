package usecase

import (
	"context"
	"sort"
	"sync"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
)

// memPayments is an in-memory IPaymentRepository honoring the natural-key
// and stale-write contracts of the real adapters.
type memPayments struct {
	mu        sync.Mutex
	rows      map[string]entities.Payment
	createErr error
	updateErr error
	updates   int
}

func newMemPayments() *memPayments {
	return &memPayments{rows: map[string]entities.Payment{}}
}

func (m *memPayments) GetByMercadoPagoID(_ context.Context, id string) (entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id], nil
}

func (m *memPayments) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return entities.Payment{}, m.createErr
	}
	if _, ok := m.rows[p.MercadoPagoPaymentID]; ok {
		return entities.Payment{}, interfaces.ErrAlreadyExists
	}
	m.rows[p.MercadoPagoPaymentID] = p
	return p, nil
}

func (m *memPayments) UpdateIfNotStale(_ context.Context, p entities.Payment) (entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return entities.Payment{}, m.updateErr
	}
	cur, ok := m.rows[p.MercadoPagoPaymentID]
	if !ok {
		return entities.Payment{}, interfaces.ErrStaleWrite
	}
	if cur.IsNewerThan(p.GatewayUpdatedAt) {
		return entities.Payment{}, interfaces.ErrStaleWrite
	}
	m.updates++
	m.rows[p.MercadoPagoPaymentID] = p
	return p, nil
}

func (m *memPayments) List(_ context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Payment, 0, len(m.rows))
	for _, p := range m.rows {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memPayments) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memNotifications struct {
	mu        sync.Mutex
	rows      []entities.Notification
	createErr error
}

func (m *memNotifications) Create(_ context.Context, n entities.Notification) (entities.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return entities.Notification{}, m.createErr
	}
	m.rows = append(m.rows, n)
	return n, nil
}

func (m *memNotifications) List(_ context.Context, filter interfaces.NotificationFilter) ([]entities.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entities.Notification{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if filter.UnreadOnly && m.rows[i].IsRead {
			continue
		}
		out = append(out, m.rows[i])
	}
	return out, nil
}

func (m *memNotifications) MarkRead(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memNotifications) MarkAllRead(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for i := range m.rows {
		if !m.rows[i].IsRead {
			m.rows[i].IsRead = true
			n++
		}
	}
	return n, nil
}

func (m *memNotifications) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.rows))
	m.rows = nil
	return n, nil
}

func (m *memNotifications) all() []entities.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.Notification(nil), m.rows...)
}

type memLinks struct {
	byID map[string]entities.CheckoutLink
	err  error
}

func newMemLinks(links ...entities.CheckoutLink) *memLinks {
	m := &memLinks{byID: map[string]entities.CheckoutLink{}}
	for _, l := range links {
		m.byID[l.ID] = l
	}
	return m
}

func (m *memLinks) Create(_ context.Context, l entities.CheckoutLink) (entities.CheckoutLink, error) {
	m.byID[l.ID] = l
	return l, nil
}

func (m *memLinks) GetByID(_ context.Context, id string) (entities.CheckoutLink, error) {
	return m.byID[id], m.err
}

func (m *memLinks) GetByReferenceID(_ context.Context, ref string) (entities.CheckoutLink, error) {
	if m.err != nil {
		return entities.CheckoutLink{}, m.err
	}
	for _, l := range m.byID {
		if l.ReferenceID == ref {
			return l, nil
		}
	}
	return entities.CheckoutLink{}, nil
}

func (m *memLinks) List(_ context.Context) ([]entities.CheckoutLink, error) {
	out := make([]entities.CheckoutLink, 0, len(m.byID))
	for _, l := range m.byID {
		out = append(out, l)
	}
	return out, nil
}

func (m *memLinks) SetActive(_ context.Context, id string, active bool) (entities.CheckoutLink, error) {
	l, ok := m.byID[id]
	if !ok {
		return entities.CheckoutLink{}, nil
	}
	l.IsActive = active
	m.byID[id] = l
	return l, nil
}

func (m *memLinks) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

// staticConfigs is an IConfigService returning a fixed result.
type staticConfigs struct {
	cfg entities.GatewayConfig
	err error
}

func (s staticConfigs) Current(context.Context) (entities.GatewayConfig, error) {
	return s.cfg, s.err
}

func (s staticConfigs) Save(context.Context, SaveConfigInput) (entities.GatewayConfig, error) {
	return s.cfg, s.err
}

type recordingBroker struct {
	mu        sync.Mutex
	published []entities.Notification
	err       error
}

func (b *recordingBroker) Publish(_ context.Context, n entities.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, n)
	return b.err
}

func (b *recordingBroker) Subscribe(ctx context.Context) (<-chan entities.Notification, func(), error) {
	ch := make(chan entities.Notification)
	return ch, func() {}, nil
}

type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{counts: map[string]int{}}
}

func (c *countingMetrics) inc(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
}

func (c *countingMetrics) ObserveReconciliation(result string) { c.inc("reconcile:" + result) }
func (c *countingMetrics) ObserveNotification(result string)   { c.inc("notification:" + result) }
func (c *countingMetrics) ObserveInitiation(method, result string) {
	c.inc("initiate:" + method + ":" + result)
}

func (c *countingMetrics) get(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[key]
}
