package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"damage_triage/internal/domain/entities"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type recordingConn struct {
	msgs []*nats.Msg
	err  error
}

func (r *recordingConn) PublishMsg(m *nats.Msg) error {
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, m)
	return nil
}

func TestHeaderCarrier(t *testing.T) {
	msg := &nats.Msg{}
	carrier := (*headerCarrier)(msg)

	if got := carrier.Get("missing"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if keys := carrier.Keys(); keys != nil {
		t.Fatalf("expected nil keys, got %v", keys)
	}

	carrier.Set("traceparent", "00-abc-def-01")
	if got := carrier.Get("traceparent"); got != "00-abc-def-01" {
		t.Fatalf("expected traceparent, got %q", got)
	}
	if keys := carrier.Keys(); len(keys) != 1 {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestNATSPublisher_CaseCreated(t *testing.T) {
	conn := &recordingConn{}
	p := NewNATSPublisher(conn)
	est := 1340.0
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	err := p.CaseCreated(context.Background(), entities.Case{
		ID:           "case-1",
		Category:     "motor",
		CaseStatus:   entities.CaseStatusCreated,
		Estimation:   &est,
		CaseImages:   []entities.CaseImage{{ImageID: "a"}, {ImageID: "b"}},
		SimilarCases: []entities.SimilarCase{{SimilarCaseID: "old-1", Similarity: 0.9}},
		Vector:       []float32{1, 2, 3},
		CreatedAt:    created,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.msgs) != 1 || conn.msgs[0].Subject != SubjectCaseCreated {
		t.Fatalf("unexpected messages: %+v", conn.msgs)
	}

	var evt CaseCreatedEvent
	if err := json.Unmarshal(conn.msgs[0].Data, &evt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evt.CaseID != "case-1" || evt.ImageCount != 2 || *evt.Estimation != 1340 || evt.SimilarCases[0] != "old-1" || !evt.CreatedAt.Equal(created) {
		t.Fatalf("unexpected event: %+v", evt)
	}
	var raw map[string]any
	_ = json.Unmarshal(conn.msgs[0].Data, &raw)
	if _, ok := raw["vector"]; ok {
		t.Fatalf("vector must not be published")
	}
}

func TestNATSPublisher_CaseStatusChanged(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(prev)

	conn := &recordingConn{}
	p := NewNATSPublisher(conn)
	p.now = func() time.Time { return time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC) }

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	if err := p.CaseStatusChanged(ctx, "case-1", entities.CaseStatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := conn.msgs[0]
	if msg.Subject != SubjectCaseStatusChanged {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if got := msg.Header.Get("traceparent"); got != "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01" {
		t.Fatalf("expected trace context header, got %q", got)
	}
	var evt CaseStatusChangedEvent
	if err := json.Unmarshal(msg.Data, &evt); err != nil || evt.CaseStatus != "approved" || evt.ChangedAt.Day() != 2 {
		t.Fatalf("unexpected event: %+v, %v", evt, err)
	}
}

func TestNATSPublisher_PublishError(t *testing.T) {
	p := NewNATSPublisher(&recordingConn{err: nats.ErrConnectionClosed})
	if err := p.CaseStatusChanged(context.Background(), "x", entities.CaseStatusDeclined); !errors.Is(err, nats.ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed, got %v", err)
	}
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	if err := p.CaseCreated(context.Background(), entities.Case{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.CaseStatusChanged(context.Background(), "x", entities.CaseStatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
