package qdrantdb

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"lexchunk/pipeline"
)

const (
	ChunkCollectionName = "document_chunks"
)

var idNamespace = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

func (c *ChunkClient) CreateChunkCollection(ctx context.Context) error {
	exists, err := c.Client.CollectionExists(ctx, ChunkCollectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = c.Client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: ChunkCollectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     c.VectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("err create chunk collection: %w", err)
	}

	_, err = c.Client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: ChunkCollectionName,
		FieldName:      "document_id",
		FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
	})
	if err != nil {
		return fmt.Errorf("err create document_id index: %w", err)
	}
	return nil
}

// UpsertChunks writes every embedded chunk of a result. Point ids derive from
// the chunk id, so re-indexing a document overwrites its previous points.
func (c *ChunkClient) UpsertChunks(ctx context.Context, chunks []pipeline.Chunk) error {
	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			continue
		}

		hash := sha256.Sum256([]byte(chunk.ChunkID))
		id := uuid.NewSHA1(idNamespace, hash[:16]).String()

		md := map[string]any{
			"chunk_id":         chunk.ChunkID,
			"document_id":      chunk.DocumentID,
			"chunk_index":      int64(chunk.ChunkIndex),
			"content":          chunk.Content,
			"keywords":         toAnySlice(chunk.Keywords),
			"importance_score": chunk.ImportanceScore,
			"merged_from":      toAnySlice(chunk.MergedFrom),
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(id),
			Vectors: qdrant.NewVectorsDense(chunk.Embedding),
			Payload: qdrant.NewValueMap(md),
		})
	}

	if len(points) == 0 {
		return nil
	}

	_, err := c.Client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: ChunkCollectionName,
		Points:         points,
	})
	return err
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
