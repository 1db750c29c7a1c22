// Package events publishes case lifecycle events on NATS.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
)

const (
	SubjectCaseCreated       = "cases.created"
	SubjectCaseStatusChanged = "cases.status_changed"
)

// CaseCreatedEvent omits the embedding vector and opaque provider cargo.
type CaseCreatedEvent struct {
	CaseID       string    `json:"case_id"`
	Category     string    `json:"category,omitempty"`
	CaseStatus   string    `json:"case_status"`
	Estimation   *float64  `json:"estimation,omitempty"`
	ImageCount   int       `json:"image_count"`
	SimilarCases []string  `json:"similar_cases,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CaseStatusChangedEvent struct {
	CaseID     string    `json:"case_id"`
	CaseStatus string    `json:"case_status"`
	ChangedAt  time.Time `json:"changed_at"`
}

// MsgPublisher is the part of *nats.Conn the publisher needs.
type MsgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

type NATSPublisher struct {
	conn MsgPublisher
	now  func() time.Time
}

var _ interfaces.ICaseEventPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(conn MsgPublisher) *NATSPublisher {
	return &NATSPublisher{conn: conn, now: time.Now}
}

// Connect dials NATS with reconnects enabled for the lifetime of the process.
func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("damage-triage"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("[events][nats] disconnected err=%v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("[events][nats] reconnected url=%s", nc.ConnectedUrl())
		}),
	)
}

func (p *NATSPublisher) CaseCreated(ctx context.Context, c entities.Case) error {
	evt := CaseCreatedEvent{
		CaseID:     c.ID,
		Category:   c.Category,
		CaseStatus: string(c.CaseStatus),
		Estimation: c.Estimation,
		ImageCount: len(c.CaseImages),
		CreatedAt:  c.CreatedAt,
	}
	for _, m := range c.SimilarCases {
		evt.SimilarCases = append(evt.SimilarCases, m.SimilarCaseID)
	}
	return p.publish(ctx, SubjectCaseCreated, evt)
}

func (p *NATSPublisher) CaseStatusChanged(ctx context.Context, caseID string, status entities.CaseStatus) error {
	return p.publish(ctx, SubjectCaseStatusChanged, CaseStatusChangedEvent{
		CaseID:     caseID,
		CaseStatus: string(status),
		ChangedAt:  p.now().UTC(),
	})
}

func (p *NATSPublisher) publish(ctx context.Context, subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &nats.Msg{Subject: subject, Data: data}
	otel.GetTextMapPropagator().Inject(ctx, (*headerCarrier)(msg))
	return p.conn.PublishMsg(msg)
}

// headerCarrier lets the OTel propagator read and write NATS headers.
type headerCarrier nats.Msg

func (c *headerCarrier) Get(key string) string {
	if c.Header == nil {
		return ""
	}
	return c.Header.Get(key)
}

func (c *headerCarrier) Set(key, val string) {
	if c.Header == nil {
		c.Header = make(nats.Header)
	}
	c.Header.Set(key, val)
}

func (c *headerCarrier) Keys() []string {
	if c.Header == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Header))
	for k := range c.Header {
		keys = append(keys, k)
	}
	return keys
}

// NoopPublisher is used when no NATS server is configured.
type NoopPublisher struct{}

var _ interfaces.ICaseEventPublisher = NoopPublisher{}

func (NoopPublisher) CaseCreated(context.Context, entities.Case) error { return nil }

func (NoopPublisher) CaseStatusChanged(context.Context, string, entities.CaseStatus) error {
	return nil
}
