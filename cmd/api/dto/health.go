package dto

import "time"

type LMStudioStatusDTO struct {
	IsConnected bool      `json:"isConnected"`
	LatencyMs   *int64    `json:"latency,omitempty"`
	LastChecked time.Time `json:"lastChecked"`
	Error       string    `json:"error,omitempty"`
}

type HealthResponseDTO struct {
	LMStudio        LMStudioStatusDTO `json:"lmStudio"`
	Recommendations []string          `json:"recommendations"`
	Timestamp       time.Time         `json:"timestamp"`
}
