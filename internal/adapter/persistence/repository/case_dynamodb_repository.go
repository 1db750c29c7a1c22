package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultCasesTableName = "cases"

	caseSortKey       = "CASE"
	imageSortPrefix   = "IMAGE#"
	similarSortPrefix = "SIMILAR#"

	// DynamoDB rejects transactions with more than 100 actions.
	maxTransactItems = 100
)

var ErrCaseTooLarge = errors.New("case has too many images or similar cases for one transaction")

// DynamoAPI is the subset of the DynamoDB client the case repository uses.
type DynamoAPI interface {
	dynamodb.QueryAPIClient
	dynamodb.ScanAPIClient
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// caseItem is the single-table row shape. Kind tells which optional fields apply.
type caseItem struct {
	CaseID string `dynamodbav:"case_id"`
	SK     string `dynamodbav:"sk"`
	Kind   string `dynamodbav:"kind"`

	CreatedAt          string    `dynamodbav:"created_at,omitempty"`
	UpdatedAt          string    `dynamodbav:"updated_at,omitempty"`
	Description        string    `dynamodbav:"description,omitempty"`
	Category           string    `dynamodbav:"category,omitempty"`
	AIImageDescription string    `dynamodbav:"ai_image_description,omitempty"`
	Vector             []float32 `dynamodbav:"vector,omitempty"`
	Estimation         string    `dynamodbav:"estimation,omitempty"`
	Sources            string    `dynamodbav:"sources,omitempty"`
	ProviderMetadata   string    `dynamodbav:"provider_metadata,omitempty"`
	CaseStatus         string    `dynamodbav:"case_status,omitempty"`

	ImageID   string `dynamodbav:"image_id,omitempty"`
	PublicURL string `dynamodbav:"image_public_url,omitempty"`

	SimilarCaseID string `dynamodbav:"similar_case_id,omitempty"`
	Similarity    string `dynamodbav:"similarity,omitempty"`
}

const (
	kindCase    = "case"
	kindImage   = "image"
	kindSimilar = "similar"
)

// CaseDynamoRepository persists cases in a single DynamoDB table.
//
// Table requirements:
//   - PK: case_id (string)
//   - SK: sk (string) -> "CASE", "IMAGE#0000".., "SIMILAR#0000"..
//
// A case row, its images and its similarity edges are written in one
// TransactWriteItems call, so readers never see a partial case. Zero-padded
// sort keys keep images in submission order.
type CaseDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	index     interfaces.ICaseIndex
	now       func() time.Time
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

type CaseRepositoryOption func(*CaseDynamoRepository)

// WithCaseIndex keeps a vector index in step with the table.
func WithCaseIndex(idx interfaces.ICaseIndex) CaseRepositoryOption {
	return func(r *CaseDynamoRepository) { r.index = idx }
}

func WithTableName(name string) CaseRepositoryOption {
	return func(r *CaseDynamoRepository) {
		if strings.TrimSpace(name) != "" {
			r.tableName = name
		}
	}
}

func NewCaseDynamoRepository(ddb DynamoAPI, opts ...CaseRepositoryOption) *CaseDynamoRepository {
	r := &CaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASES_TABLE", defaultCasesTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CaseDynamoRepository) Create(ctx context.Context, c entities.Case) (entities.Case, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}
	if c.CaseStatus == "" {
		c.CaseStatus = entities.CaseStatusCreated
	}

	items := toCaseItems(c)
	if len(items) > maxTransactItems {
		return entities.Case{}, fmt.Errorf("%w: %d items", ErrCaseTooLarge, len(items))
	}

	writes := make([]types.TransactWriteItem, 0, len(items))
	for i, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return entities.Case{}, err
		}
		put := &types.Put{TableName: aws.String(r.tableName), Item: av}
		if i == 0 {
			put.ConditionExpression = aws.String("attribute_not_exists(#case_id)")
			put.ExpressionAttributeNames = map[string]string{"#case_id": "case_id"}
		}
		writes = append(writes, types.TransactWriteItem{Put: put})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		log.Printf("[case][repository] transact write failed case_id=%s items=%d err=%v", c.ID, len(writes), err)
		return entities.Case{}, err
	}

	if r.index != nil {
		if err := r.index.Upsert(ctx, entities.NewIndexedCase(c)); err != nil {
			// A case must not exist in the table without being searchable.
			log.Printf("[case][repository] index upsert failed, rolling back case_id=%s err=%v", c.ID, err)
			if derr := r.deleteItems(ctx, items); derr != nil {
				log.Printf("[case][repository] rollback failed case_id=%s err=%v", c.ID, derr)
			}
			return entities.Case{}, fmt.Errorf("index case: %w", err)
		}
	}

	c.SaveToDB = false
	return c, nil
}

func (r *CaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Case, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#case_id = :case_id"),
		ExpressionAttributeNames:  map[string]string{"#case_id": "case_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":case_id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead:            aws.Bool(true),
	})

	var items []caseItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return entities.Case{}, err
		}
		var batch []caseItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return entities.Case{}, err
		}
		items = append(items, batch...)
	}

	cases := fromCaseItems(items)
	if len(cases) == 0 {
		return entities.Case{}, nil
	}
	return cases[0], nil
}

// List returns every stored case, newest first.
func (r *CaseDynamoRepository) List(ctx context.Context) ([]entities.Case, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var items []caseItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []caseItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return fromCaseItems(items), nil
}

// UpdateStatus moves a case to status only if it is still in expected.
// A missing case or a lost race both yield a zero Case and no error.
func (r *CaseDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, status entities.CaseStatus) (entities.Case, error) {
	cond := "attribute_exists(#case_id) AND #status = :expected"
	if expected == "" {
		cond = "attribute_exists(#case_id) AND (attribute_not_exists(#status) OR #status = :expected)"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"case_id": &types.AttributeValueMemberS{Value: id},
			"sk":      &types.AttributeValueMemberS{Value: caseSortKey},
		},
		ConditionExpression: aws.String(cond),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#case_id":    "case_id",
			"#status":     "case_status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueNone,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if r.index != nil && updated.ID != "" && len(updated.Vector) > 0 {
		if err := r.index.Upsert(ctx, entities.NewIndexedCase(updated)); err != nil {
			log.Printf("[case][repository] index status refresh failed case_id=%s err=%v", id, err)
		}
	}
	return updated, nil
}

func (r *CaseDynamoRepository) deleteItems(ctx context.Context, items []caseItem) error {
	deletes := make([]types.TransactWriteItem, 0, len(items))
	for _, it := range items {
		deletes = append(deletes, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"case_id": &types.AttributeValueMemberS{Value: it.CaseID},
				"sk":      &types.AttributeValueMemberS{Value: it.SK},
			},
		}})
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: deletes})
	return err
}

func toCaseItems(c entities.Case) []caseItem {
	row := caseItem{
		CaseID:             c.ID,
		SK:                 caseSortKey,
		Kind:               kindCase,
		CreatedAt:          formatTime(c.CreatedAt),
		Description:        c.Description,
		Category:           c.Category,
		AIImageDescription: c.AIImageDescription,
		Vector:             c.Vector,
		Sources:            string(c.Sources),
		ProviderMetadata:   string(c.ProviderMetadata),
		CaseStatus:         string(c.CaseStatus),
	}
	if c.Estimation != nil {
		row.Estimation = floatToString(*c.Estimation)
	}

	items := make([]caseItem, 0, 1+len(c.CaseImages)+len(c.SimilarCases))
	items = append(items, row)
	for i, img := range c.CaseImages {
		items = append(items, caseItem{
			CaseID:    c.ID,
			SK:        fmt.Sprintf("%s%04d", imageSortPrefix, i),
			Kind:      kindImage,
			ImageID:   img.ImageID,
			PublicURL: img.PublicURL,
		})
	}
	for i, s := range c.SimilarCases {
		items = append(items, caseItem{
			CaseID:        c.ID,
			SK:            fmt.Sprintf("%s%04d", similarSortPrefix, i),
			Kind:          kindSimilar,
			SimilarCaseID: s.SimilarCaseID,
			Similarity:    floatToString(s.Similarity),
		})
	}
	return items
}

// fromCaseItems assembles rows of any number of cases. Rows without a case
// row (orphans of an interrupted rollback) are skipped.
func fromCaseItems(items []caseItem) []entities.Case {
	grouped := map[string][]caseItem{}
	for _, it := range items {
		grouped[it.CaseID] = append(grouped[it.CaseID], it)
	}

	out := make([]entities.Case, 0, len(grouped))
	for _, rows := range grouped {
		sort.Slice(rows, func(i, j int) bool { return rows[i].SK < rows[j].SK })

		var (
			c     entities.Case
			found bool
		)
		for _, it := range rows {
			if it.SK == caseSortKey {
				c = fromCaseRow(it)
				found = true
			}
		}
		if !found {
			continue
		}
		for _, it := range rows {
			switch {
			case strings.HasPrefix(it.SK, imageSortPrefix):
				c.CaseImages = append(c.CaseImages, entities.CaseImage{ImageID: it.ImageID, PublicURL: it.PublicURL})
			case strings.HasPrefix(it.SK, similarSortPrefix):
				sim, _ := stringToFloat(it.Similarity)
				c.SimilarCases = append(c.SimilarCases, entities.SimilarCase{SimilarCaseID: it.SimilarCaseID, Similarity: sim})
			}
		}
		if c.CaseImages == nil {
			c.CaseImages = []entities.CaseImage{}
		}
		if c.SimilarCases == nil {
			c.SimilarCases = []entities.SimilarCase{}
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func fromCaseRow(it caseItem) entities.Case {
	c := entities.Case{
		ID:                 it.CaseID,
		CreatedAt:          parseTime(it.CreatedAt),
		Description:        it.Description,
		Category:           it.Category,
		AIImageDescription: it.AIImageDescription,
		Vector:             it.Vector,
		CaseStatus:         entities.CaseStatus(it.CaseStatus),
	}
	if v, ok := stringToFloat(it.Estimation); ok {
		c.Estimation = &v
	}
	if it.Sources != "" && json.Valid([]byte(it.Sources)) {
		c.Sources = json.RawMessage(it.Sources)
	}
	if it.ProviderMetadata != "" && json.Valid([]byte(it.ProviderMetadata)) {
		c.ProviderMetadata = json.RawMessage(it.ProviderMetadata)
	}
	return c
}
