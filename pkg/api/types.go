package api

import (
	"github.com/ssargent/recfactory/pkg/alloc"
	"github.com/ssargent/recfactory/pkg/record"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateRecordRequest is the body of POST /records. Name is a pointer so a
// missing field can be told apart from an empty name.
type CreateRecordRequest struct {
	Name *string `json:"name"`
	Age  int     `json:"age"`
}

// RecordResponse is the JSON view of a created record
type RecordResponse struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Score    float64 `json:"score"`
	Greeting string  `json:"greeting"`
}

// BatchResponse is the body returned by POST /records/batch
type BatchResponse struct {
	Count   int              `json:"count"`
	Records []RecordResponse `json:"records"`
}

// LayoutResponse describes the record layout and allocator usage
type LayoutResponse struct {
	Capacity    int    `json:"capacity"`
	MaxNameLen  int    `json:"max_name_len"`
	RecordSize  int    `json:"record_size"`
	BudgetBytes int64  `json:"budget_bytes"`
	InUseBytes  int64  `json:"in_use_bytes"`
	Allocator   string `json:"allocator"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // empty disables X-API-Key checks
}

// RecordFactory defines the record operations the handlers need
type RecordFactory interface {
	Create(name string, age int) (*record.Person, error)
	CreateAll(inputs []record.Input) ([]*record.Person, error)
	Allocator() alloc.Allocator
}

// budgetReporter is implemented by allocators that track a byte budget
type budgetReporter interface {
	InUse() int64
	Limit() int64
}

// NewRecordResponse builds the JSON view of p
func NewRecordResponse(p *record.Person) RecordResponse {
	return RecordResponse{
		Name:     p.Name.String(),
		Age:      p.Age,
		Score:    p.Score,
		Greeting: p.Greeting(),
	}
}
