package api

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"lexchunk/extract"
	"lexchunk/pipeline"
	"lexchunk/pkg/qdrantdb"
	"lexchunk/store"
)

// Server exposes the processing pipeline and the query matcher over HTTP.
type Server struct {
	processor *pipeline.Processor
	matcher   *pipeline.Matcher
	store     *store.BoltStore
	index     *qdrantdb.ChunkClient // nil disables vector indexing
	registry  *extract.Registry
	port      int
	logger    *zap.Logger
}

func NewServer(
	processor *pipeline.Processor,
	matcher *pipeline.Matcher,
	st *store.BoltStore,
	index *qdrantdb.ChunkClient,
	registry *extract.Registry,
	port int,
	logger *zap.Logger,
) *Server {
	return &Server{
		processor: processor,
		matcher:   matcher,
		store:     st,
		index:     index,
		registry:  registry,
		port:      port,
		logger:    logger,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/documents", s.ProcessDocumentHandler)
	mux.HandleFunc("/documents/file", s.ProcessFileHandler)
	mux.HandleFunc("/search", s.SearchHandler)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	s.logger.Info("starting API server", zap.Int("port", s.port))
	return http.ListenAndServe(":"+strconv.Itoa(s.port), mux)
}
