// Package qdrantdb indexes consolidated chunks into a qdrant collection for
// downstream retrieval.
package qdrantdb

import (
	"github.com/qdrant/go-client/qdrant"
)

type ChunkClient struct {
	Client     *qdrant.Client
	VectorSize uint64
}

func NewClient(host string, port int, vectorSize uint64) (*ChunkClient, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port, // gRPC port
	})
	if err != nil {
		return nil, err
	}
	return &ChunkClient{Client: client, VectorSize: vectorSize}, nil
}
