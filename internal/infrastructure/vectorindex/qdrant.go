package vectorindex

import (
	"context"
	"fmt"
	"log"
	"sort"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// PointsAPI is the part of the qdrant points service the index uses.
type PointsAPI interface {
	Upsert(ctx context.Context, in *pb.UpsertPoints, opts ...grpc.CallOption) (*pb.PointsOperationResponse, error)
	Delete(ctx context.Context, in *pb.DeletePoints, opts ...grpc.CallOption) (*pb.PointsOperationResponse, error)
	Search(ctx context.Context, in *pb.SearchPoints, opts ...grpc.CallOption) (*pb.SearchResponse, error)
}

// CollectionsAPI is the part of the qdrant collections service the index uses.
type CollectionsAPI interface {
	List(ctx context.Context, in *pb.ListCollectionsRequest, opts ...grpc.CallOption) (*pb.ListCollectionsResponse, error)
	Create(ctx context.Context, in *pb.CreateCollection, opts ...grpc.CallOption) (*pb.CollectionOperationResponse, error)
}

const (
	payloadCaseID      = "case_id"
	payloadEstimation  = "estimation"
	payloadAIDesc      = "ai_image_description"
	payloadDescription = "description"
	payloadStatus      = "case_status"
)

// caseNamespace derives stable point ids for case ids that are not UUIDs.
var caseNamespace = uuid.MustParse("6f1c2b0e-7d4a-4c8e-9a51-3f2d8e0b7c11")

// QdrantIndex stores one point per case, payload carrying what the estimation
// agent needs to anchor on a neighbour.
type QdrantIndex struct {
	conn        *grpc.ClientConn
	points      PointsAPI
	collections CollectionsAPI
	collection  string
}

var _ interfaces.ICaseIndex = (*QdrantIndex)(nil)

func NewQdrantIndex(addr, collection string) (*QdrantIndex, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("vectorindex: dial qdrant %s: %w", addr, err)
	}
	return &QdrantIndex{
		conn:        conn,
		points:      pb.NewPointsClient(conn),
		collections: pb.NewCollectionsClient(conn),
		collection:  collection,
	}, nil
}

// NewQdrantIndexWithClients builds an index over already connected clients.
func NewQdrantIndexWithClients(points PointsAPI, collections CollectionsAPI, collection string) *QdrantIndex {
	return &QdrantIndex{points: points, collections: collections, collection: collection}
}

func (q *QdrantIndex) Close() error {
	if q.conn == nil {
		return nil
	}
	return q.conn.Close()
}

// EnsureCollection creates the cosine collection when it does not exist yet.
func (q *QdrantIndex) EnsureCollection(ctx context.Context, dims int) error {
	list, err := q.collections.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return fmt.Errorf("vectorindex: list collections: %w", err)
	}
	for _, c := range list.GetCollections() {
		if c.GetName() == q.collection {
			return nil
		}
	}

	_, err = q.collections.Create(ctx, &pb.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{Size: uint64(dims), Distance: pb.Distance_Cosine},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("vectorindex: create collection %s: %w", q.collection, err)
	}
	log.Printf("[index][qdrant] collection created name=%s dims=%d", q.collection, dims)
	return nil
}

func (q *QdrantIndex) Upsert(ctx context.Context, c entities.IndexedCase) error {
	if c.CaseID == "" || len(c.Vector) == 0 {
		return fmt.Errorf("vectorindex: case id and vector are required")
	}

	payload := map[string]*pb.Value{
		payloadCaseID:      stringValue(c.CaseID),
		payloadAIDesc:      stringValue(c.AIImageDescription),
		payloadDescription: stringValue(c.Description),
		payloadStatus:      stringValue(string(c.CaseStatus)),
	}
	if c.Estimation != nil {
		payload[payloadEstimation] = &pb.Value{Kind: &pb.Value_DoubleValue{DoubleValue: *c.Estimation}}
	}

	wait := true
	_, err := q.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: q.collection,
		Wait:           &wait,
		Points: []*pb.PointStruct{{
			Id:      pointID(c.CaseID),
			Vectors: &pb.Vectors{VectorsOptions: &pb.Vectors_Vector{Vector: &pb.Vector{Data: c.Vector}}},
			Payload: payload,
		}},
	})
	if err != nil {
		return fmt.Errorf("vectorindex: upsert case %s: %w", c.CaseID, err)
	}
	return nil
}

func (q *QdrantIndex) Delete(ctx context.Context, caseID string) error {
	wait := true
	_, err := q.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: q.collection,
		Wait:           &wait,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{Ids: []*pb.PointId{pointID(caseID)}},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("vectorindex: delete case %s: %w", caseID, err)
	}
	return nil
}

// Search asks qdrant for neighbours above the threshold. The server applies
// threshold, limit and exclusion; results are re-checked and re-sorted here so
// ties come back in a stable order.
func (q *QdrantIndex) Search(ctx context.Context, vector []float32, sq entities.SimilarityQuery) ([]entities.SimilarCaseMatch, error) {
	if sq.Limit <= 0 {
		return []entities.SimilarCaseMatch{}, nil
	}
	threshold := float32(sq.Threshold)
	req := &pb.SearchPoints{
		CollectionName: q.collection,
		Vector:         vector,
		Limit:          uint64(sq.Limit),
		ScoreThreshold: &threshold,
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	}
	if sq.ExcludeID != "" {
		req.Filter = &pb.Filter{MustNot: []*pb.Condition{hasID(sq.ExcludeID)}}
	}

	resp, err := q.points.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vectorindex: search: %w", err)
	}

	out := make([]entities.SimilarCaseMatch, 0, len(resp.GetResult()))
	for _, r := range resp.GetResult() {
		p := r.GetPayload()
		m := entities.SimilarCaseMatch{
			CaseID:             p[payloadCaseID].GetStringValue(),
			Similarity:         float64(r.GetScore()),
			AIImageDescription: p[payloadAIDesc].GetStringValue(),
			Description:        p[payloadDescription].GetStringValue(),
			CaseStatus:         p[payloadStatus].GetStringValue(),
		}
		if m.CaseID == "" {
			m.CaseID = r.GetId().GetUuid()
		}
		if v, ok := p[payloadEstimation]; ok {
			est := v.GetDoubleValue()
			m.Estimation = &est
		}
		if m.CaseID == sq.ExcludeID || !sq.Admits(m.Similarity) {
			continue
		}
		out = append(out, m)
	}
	return rank(out, sq.Limit), nil
}

func rank(matches []entities.SimilarCaseMatch, limit int) []entities.SimilarCaseMatch {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].CaseID < matches[j].CaseID
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func pointID(caseID string) *pb.PointId {
	id, err := uuid.Parse(caseID)
	if err != nil {
		id = uuid.NewSHA1(caseNamespace, []byte(caseID))
	}
	return &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id.String()}}
}

func hasID(caseID string) *pb.Condition {
	return &pb.Condition{
		ConditionOneOf: &pb.Condition_HasId{
			HasId: &pb.HasIdCondition{HasId: []*pb.PointId{pointID(caseID)}},
		},
	}
}

func stringValue(s string) *pb.Value {
	return &pb.Value{Kind: &pb.Value_StringValue{StringValue: s}}
}
