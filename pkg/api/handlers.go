package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ssargent/recfactory/pkg/alloc"
	"github.com/ssargent/recfactory/pkg/record"
)

const (
	maxBodyBytes = 1 << 20
	maxBatchSize = 1000
)

// Server holds the API server state
type Server struct {
	factory RecordFactory
	config  ServerConfig
	metrics *Metrics
	logger  *zap.Logger
}

// NewServer creates a new API server. A nil logger discards logs.
func NewServer(factory RecordFactory, config ServerConfig, metrics *Metrics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		factory: factory,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleCreateRecord godoc
//
//	@Summary		Create a record
//	@Description	Build a Person record. Names longer than 99 bytes are truncated silently.
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRecordRequest	true	"Record fields"
//	@Success		200		{object}	RecordResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		503		{object}	APIResponse
//	@Router			/records [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var req CreateRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(w, fmt.Sprintf("Invalid JSON request: %v", err), http.StatusBadRequest)
		return
	}
	if req.Name == nil {
		sendError(w, "name is required", http.StatusBadRequest)
		return
	}

	defer s.updateAllocatorStats()

	p, err := s.factory.Create(*req.Name, req.Age)
	if err != nil {
		s.metrics.RecordCreate(false, 1)
		s.sendCreateError(w, r, err)
		return
	}
	defer p.Release()

	s.metrics.RecordCreate(true, 1)
	sendSuccess(w, NewRecordResponse(p))
}

// handleCreateBatch godoc
//
//	@Summary		Create records
//	@Description	Build 1 to 1000 records. Either every record is created or none is.
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			request	body		[]CreateRecordRequest	true	"Record fields"
//	@Success		200		{object}	BatchResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		503		{object}	APIResponse
//	@Router			/records/batch [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []CreateRecordRequest
	if err := decodeJSON(w, r, &reqs); err != nil {
		sendError(w, fmt.Sprintf("Invalid JSON request: %v", err), http.StatusBadRequest)
		return
	}
	if len(reqs) == 0 {
		sendError(w, "batch must contain at least one record", http.StatusBadRequest)
		return
	}
	if len(reqs) > maxBatchSize {
		sendError(w, fmt.Sprintf("batch of %d exceeds limit of %d", len(reqs), maxBatchSize), http.StatusBadRequest)
		return
	}

	inputs := make([]record.Input, 0, len(reqs))
	for i, req := range reqs {
		if req.Name == nil {
			sendError(w, fmt.Sprintf("records[%d].name is required", i), http.StatusBadRequest)
			return
		}
		inputs = append(inputs, record.Input{Name: *req.Name, Age: req.Age})
	}

	defer s.updateAllocatorStats()

	people, err := s.factory.CreateAll(inputs)
	if err != nil {
		s.metrics.RecordCreate(false, 1)
		s.sendCreateError(w, r, err)
		return
	}
	defer record.ReleaseAll(people)

	s.metrics.RecordCreate(true, len(people))

	resp := BatchResponse{Count: len(people), Records: make([]RecordResponse, 0, len(people))}
	for _, p := range people {
		resp.Records = append(resp.Records, NewRecordResponse(p))
	}
	sendSuccess(w, resp)
}

// handleLayout godoc
//
//	@Summary		Record layout
//	@Description	Report the record layout and allocator usage
//	@Tags			records
//	@Produce		json
//	@Success		200	{object}	LayoutResponse
//	@Router			/layout [get]
//	@Security		ApiKeyAuth
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	a := s.factory.Allocator()
	resp := LayoutResponse{
		Capacity:   record.Capacity,
		MaxNameLen: record.MaxNameLen,
		RecordSize: record.RecordSize,
		Allocator:  alloc.Kind(a),
	}
	if br, ok := a.(budgetReporter); ok {
		resp.BudgetBytes = br.Limit()
		resp.InUseBytes = br.InUse()
	}
	sendSuccess(w, resp)
}

func (s *Server) sendCreateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, record.ErrAllocation) {
		s.logger.Warn("record allocation failed",
			zap.String("request_id", r.Header.Get(requestIDHeader)),
			zap.Error(err),
		)
		sendError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	s.logger.Error("record creation failed", zap.Error(err))
	sendError(w, fmt.Sprintf("Failed to create record: %v", err), http.StatusInternalServerError)
}

func (s *Server) updateAllocatorStats() {
	if br, ok := s.factory.Allocator().(budgetReporter); ok {
		s.metrics.UpdateAllocatorStats(br.InUse(), br.Limit())
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
