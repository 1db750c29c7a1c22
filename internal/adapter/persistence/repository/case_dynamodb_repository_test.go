package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"damage_triage/internal/domain/entities"
	mock_interfaces "damage_triage/internal/usecase/interfaces/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/mock/gomock"
)

// fakeDynamo keeps items in memory and understands just enough of the
// expressions the case repository sends.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	writeErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	return str(item["case_id"]) + "|" + str(item["sk"])
}

func str(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	if len(in.TransactItems) > 100 {
		return nil, fmt.Errorf("too many transact items: %d", len(in.TransactItems))
	}
	for _, w := range in.TransactItems {
		if w.Put != nil && w.Put.ConditionExpression != nil {
			if _, exists := f.items[keyOf(w.Put.Item)]; exists {
				return nil, &types.TransactionCanceledException{Message: aws.String("ConditionalCheckFailed")}
			}
		}
	}
	for _, w := range in.TransactItems {
		switch {
		case w.Put != nil:
			f.items[keyOf(w.Put.Item)] = w.Put.Item
		case w.Delete != nil:
			delete(f.items, keyOf(w.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := str(in.ExpressionAttributeValues[":case_id"])
	var out []map[string]types.AttributeValue
	for _, it := range f.items {
		if str(it["case_id"]) == id {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	expected := str(in.ExpressionAttributeValues[":expected"])
	if str(it["case_status"]) != expected {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("status changed")}
	}
	updated := make(map[string]types.AttributeValue, len(it)+1)
	for k, v := range it {
		updated[k] = v
	}
	updated["case_status"] = in.ExpressionAttributeValues[":status"]
	updated["updated_at"] = in.ExpressionAttributeValues[":updated_at"]
	f.items[keyOf(in.Key)] = updated
	return &dynamodb.UpdateItemOutput{}, nil
}

func sampleCase() entities.Case {
	est := 1480.0
	return entities.Case{
		Description:        "Hail damage on roof and bonnet",
		Category:           "motor",
		AIImageDescription: "Roof and bonnet show multiple small dents, severity 3.",
		Vector:             []float32{0.25, -0.5, 0.125},
		Estimation:         &est,
		CaseStatus:         entities.CaseStatusCreated,
		Sources:            json.RawMessage(`[{"title":"bonnet","price":"CHF 420"}]`),
		ProviderMetadata:   json.RawMessage(`{"model":"gpt"}`),
		CaseImages: []entities.CaseImage{
			{ImageID: "a.jpg", PublicURL: "https://cdn/a.jpg"},
			{ImageID: "b.jpg", PublicURL: "https://cdn/b.jpg"},
			{ImageID: "c.jpg", PublicURL: "https://cdn/c.jpg"},
		},
		SimilarCases: []entities.SimilarCase{{SimilarCaseID: "old-1", Similarity: 0.83}},
		SaveToDB:     true,
	}
}

func TestCaseDynamoRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCaseDynamoRepository(newFakeDynamo(), WithTableName("cases_test"))

	stored, err := repo.Create(ctx, sampleCase())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID == "" || stored.CreatedAt.IsZero() {
		t.Fatalf("expected store-assigned identity, got %+v", stored)
	}

	got, err := repo.GetByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != stored.ID || !got.CreatedAt.Equal(stored.CreatedAt) {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if len(got.CaseImages) != 3 || got.CaseImages[0].ImageID != "a.jpg" || got.CaseImages[2].ImageID != "c.jpg" {
		t.Fatalf("expected image order to survive the round trip, got %+v", got.CaseImages)
	}
	if got.Estimation == nil || *got.Estimation != 1480 {
		t.Fatalf("unexpected estimation: %v", got.Estimation)
	}
	if len(got.Vector) != 3 || got.Vector[1] != -0.5 {
		t.Fatalf("unexpected vector: %v", got.Vector)
	}
	if len(got.SimilarCases) != 1 || got.SimilarCases[0].SimilarCaseID != "old-1" || got.SimilarCases[0].Similarity != 0.83 {
		t.Fatalf("unexpected similar cases: %+v", got.SimilarCases)
	}
	if string(got.Sources) != `[{"title":"bonnet","price":"CHF 420"}]` || string(got.ProviderMetadata) != `{"model":"gpt"}` {
		t.Fatalf("expected opaque cargo to be preserved, got %s / %s", got.Sources, got.ProviderMetadata)
	}
	if got.SaveToDB {
		t.Fatalf("save flag must never be persisted")
	}
}

func TestCaseDynamoRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCaseDynamoRepository(newFakeDynamo())
	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero case, got %+v, %v", got, err)
	}
}

func TestCaseDynamoRepository_Create_Errors(t *testing.T) {
	t.Run("too many items", func(t *testing.T) {
		repo := NewCaseDynamoRepository(newFakeDynamo())
		c := sampleCase()
		c.CaseImages = make([]entities.CaseImage, 100)
		_, err := repo.Create(context.Background(), c)
		if !errors.Is(err, ErrCaseTooLarge) {
			t.Fatalf("expected ErrCaseTooLarge, got %v", err)
		}
	})

	t.Run("write error leaves nothing behind", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.writeErr = errors.New("throttled")
		repo := NewCaseDynamoRepository(ddb)
		if _, err := repo.Create(context.Background(), sampleCase()); err == nil {
			t.Fatalf("expected error")
		}
		if len(ddb.items) != 0 {
			t.Fatalf("expected no items, got %d", len(ddb.items))
		}
	})

	t.Run("index failure rolls back the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		idx := mock_interfaces.NewMockICaseIndex(ctrl)
		idx.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("qdrant down"))

		ddb := newFakeDynamo()
		repo := NewCaseDynamoRepository(ddb, WithCaseIndex(idx))
		if _, err := repo.Create(context.Background(), sampleCase()); err == nil {
			t.Fatalf("expected error")
		}
		if len(ddb.items) != 0 {
			t.Fatalf("expected rollback, %d items left", len(ddb.items))
		}
	})

	t.Run("index receives the stored projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		idx := mock_interfaces.NewMockICaseIndex(ctrl)
		idx.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ic entities.IndexedCase) error {
			if ic.CaseID == "" || len(ic.Vector) != 3 || ic.Estimation == nil {
				t.Fatalf("unexpected projection: %+v", ic)
			}
			return nil
		})
		repo := NewCaseDynamoRepository(newFakeDynamo(), WithCaseIndex(idx))
		if _, err := repo.Create(context.Background(), sampleCase()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCaseDynamoRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewCaseDynamoRepository(newFakeDynamo())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		c := sampleCase()
		c.ID = fmt.Sprintf("case-%d", i)
		c.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if _, err := repo.Create(ctx, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	cases, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(cases))
	}
	if cases[0].ID != "case-2" || cases[2].ID != "case-0" {
		t.Fatalf("expected newest first, got %s, %s, %s", cases[0].ID, cases[1].ID, cases[2].ID)
	}
	for _, c := range cases {
		if len(c.CaseImages) != 3 || c.CaseImages[0].ImageID != "a.jpg" {
			t.Fatalf("images not assembled for %s: %+v", c.ID, c.CaseImages)
		}
	}
}

func TestCaseDynamoRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("guarded transition", func(t *testing.T) {
		repo := NewCaseDynamoRepository(newFakeDynamo())
		stored, err := repo.Create(ctx, sampleCase())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := repo.UpdateStatus(ctx, stored.ID, entities.CaseStatusCreated, entities.CaseStatusApproved)
		if err != nil || updated.CaseStatus != entities.CaseStatusApproved {
			t.Fatalf("unexpected result: %+v, %v", updated, err)
		}
		if len(updated.CaseImages) != 3 {
			t.Fatalf("expected full case back")
		}

		stale, err := repo.UpdateStatus(ctx, stored.ID, entities.CaseStatusCreated, entities.CaseStatusDeclined)
		if err != nil || stale.ID != "" {
			t.Fatalf("expected zero case on stale expectation, got %+v, %v", stale, err)
		}
	})

	t.Run("missing case", func(t *testing.T) {
		repo := NewCaseDynamoRepository(newFakeDynamo())
		got, err := repo.UpdateStatus(ctx, "missing", entities.CaseStatusCreated, entities.CaseStatusApproved)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero case, got %+v, %v", got, err)
		}
	})

	t.Run("refreshes index payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		idx := mock_interfaces.NewMockICaseIndex(ctrl)
		gomock.InOrder(
			idx.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
			idx.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ic entities.IndexedCase) error {
				if ic.CaseStatus != entities.CaseStatusDeclined {
					t.Fatalf("expected declined in index, got %s", ic.CaseStatus)
				}
				return nil
			}),
		)
		repo := NewCaseDynamoRepository(newFakeDynamo(), WithCaseIndex(idx))
		stored, err := repo.Create(ctx, sampleCase())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.UpdateStatus(ctx, stored.ID, entities.CaseStatusCreated, entities.CaseStatusDeclined); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
