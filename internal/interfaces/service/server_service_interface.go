// Package service
package service

type ServerServiceInterface interface {
	GetHealth(req *RequestHealthCheck) *ApiResponse[ResponseHealthCheck]
}

type RequestHealthCheck struct{}

type ResponseHealthCheck struct {
	Status    string                 `json:"status"`
	PoolStats map[string]interface{} `json:"pool_stats"`
	Timestamp string                 `json:"timestamp"`
}
