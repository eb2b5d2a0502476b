// Package models defines data models shared by the service surfaces.
package models

import (
	"time"

	"github.com/glossa-dev/glossa/pkg/detector"
	"github.com/glossa-dev/glossa/pkg/language"
)

// DetectionRequest represents a request for language detection
type DetectionRequest struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text" validate:"required"`
}

// DetectionResponse represents the result of a detection
type DetectionResponse struct {
	ID          string                     `json:"id,omitempty"`
	Language    language.Language          `json:"language"`
	IsoCode     string                     `json:"iso_code,omitempty"`
	Confidences []detector.ConfidenceValue `json:"confidences,omitempty"`
	Duration    time.Duration              `json:"duration_ns,omitempty"`
}

// LanguageInfo describes one catalog entry for callers
type LanguageInfo struct {
	Name             string   `json:"name"`
	IsoCode          string   `json:"iso_code"`
	Alphabets        []string `json:"alphabets"`
	UniqueCharacters string   `json:"unique_characters,omitempty"`
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError represents an API error payload
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents system health status
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// WSMessage represents a WebSocket frame exchanged on the streaming
// detection endpoint.
type WSMessage struct {
	Type      string             `json:"type"`
	Request   *DetectionRequest  `json:"request,omitempty"`
	Response  *DetectionResponse `json:"response,omitempty"`
	Error     *APIError          `json:"error,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}
