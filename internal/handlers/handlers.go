// Package handlers implements the HTTP and WebSocket surface of the
// detection service.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	apperrors "github.com/glossa-dev/glossa/internal/errors"
	"github.com/glossa-dev/glossa/internal/models"
	"github.com/glossa-dev/glossa/internal/storage"
	"github.com/glossa-dev/glossa/internal/validation"
	"github.com/glossa-dev/glossa/pkg/detector"
	"github.com/glossa-dev/glossa/pkg/language"
	"github.com/glossa-dev/glossa/pkg/metrics"
)

// Version is the reported service version.
const Version = "1.0.0"

// Handlers wires the detection engine to the HTTP surface.
type Handlers struct {
	detector     *detector.Detector
	cache        storage.ResultCache
	validator    *validation.Validator
	metrics      *metrics.Metrics
	logger       *zap.Logger
	maxTextBytes int
	upgrader     websocket.Upgrader
}

// New creates a new handlers instance.
func New(det *detector.Detector, cache storage.ResultCache, m *metrics.Metrics, maxTextBytes int, logger *zap.Logger) *Handlers {
	return &Handlers{
		detector:     det,
		cache:        cache,
		validator:    validation.New(),
		metrics:      m,
		logger:       logger,
		maxTextBytes: maxTextBytes,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// SetupRoutes registers the v1 routes on group.
func (h *Handlers) SetupRoutes(group *gin.RouterGroup) {
	group.POST("/detect", h.Detect)
	group.POST("/confidence", h.Confidence)
	group.GET("/languages", h.Languages)
	group.GET("/ws", h.HandleWebSocket)
}

// HealthCheck handles health check requests.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Version:   Version,
		Timestamp: time.Now(),
		Services: map[string]string{
			"detector": "ready",
		},
	})
}

// Detect handles POST /v1/detect.
func (h *Handlers) Detect(c *gin.Context) {
	h.handleDetection(c, false)
}

// Confidence handles POST /v1/confidence.
func (h *Handlers) Confidence(c *gin.Context) {
	h.handleDetection(c, true)
}

func (h *Handlers) handleDetection(c *gin.Context, withConfidences bool) {
	start := time.Now()
	h.metrics.RecordRequest()
	h.metrics.IncRequestsInFlight()
	defer func() {
		h.metrics.DecRequestsInFlight()
		h.metrics.RecordRequestDuration(time.Since(start))
	}()

	var request models.DetectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.respondError(c, apperrors.NewBadRequestError("Invalid JSON payload"))
		return
	}
	if apiErr := h.validator.ValidateStruct(&request); apiErr != nil {
		h.respondError(c, apiErr)
		return
	}
	if len(request.Text) > h.maxTextBytes {
		h.respondError(c, apperrors.NewTextTooLargeError(h.maxTextBytes))
		return
	}

	response, apiErr := h.runDetection(c, &request, withConfidences)
	if apiErr != nil {
		h.respondError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: response})
}

// runDetection executes the engine, serving repeated inputs from the result
// cache. Model panics are packaging bugs surfaced as MODEL_CORRUPTED.
func (h *Handlers) runDetection(c *gin.Context, request *models.DetectionRequest, withConfidences bool) (response *models.DetectionResponse, apiErr *apperrors.APIError) {
	if cached, ok := h.cache.Get(c.Request.Context(), request.Text); ok {
		h.metrics.RecordCacheHit()
		cached.ID = request.ID
		if !withConfidences {
			cached.Confidences = nil
		}
		return cached, nil
	}
	h.metrics.RecordCacheMiss()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("detection panicked", zap.Any("panic", r))
			response = nil
			apiErr = apperrors.NewModelCorruptedError(fmt.Sprint(r))
		}
	}()

	start := time.Now()
	confidences := h.detector.ConfidenceValues(request.Text)
	detected := language.Unknown
	if len(confidences) > 0 {
		detected = h.detector.Detect(request.Text)
		h.metrics.RecordTopConfidence(confidences[0].Value)
	}
	elapsed := time.Since(start)
	h.metrics.RecordDetection(detected.String(), "ok", elapsed)

	response = &models.DetectionResponse{
		ID:          request.ID,
		Language:    detected,
		IsoCode:     detected.IsoCode639_1(),
		Confidences: confidences,
		Duration:    elapsed,
	}
	h.cache.Set(c.Request.Context(), request.Text, response)
	if !withConfidences {
		trimmed := *response
		trimmed.Confidences = nil
		return &trimmed, nil
	}
	return response, nil
}

// Languages handles GET /v1/languages.
func (h *Handlers) Languages(c *gin.Context) {
	languages := h.detector.Languages()
	infos := make([]models.LanguageInfo, 0, len(languages))
	for _, lang := range languages {
		alphabets := make([]string, 0, len(lang.Alphabets()))
		for _, a := range lang.Alphabets() {
			alphabets = append(alphabets, a.String())
		}
		infos = append(infos, models.LanguageInfo{
			Name:             lang.String(),
			IsoCode:          lang.IsoCode639_1(),
			Alphabets:        alphabets,
			UniqueCharacters: lang.UniqueCharacters(),
		})
	}
	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: infos})
}

// HandleWebSocket streams detection over a WebSocket connection: the client
// sends request frames and receives one response frame per request.
func (h *Handlers) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var message models.WSMessage
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if message.Request == nil {
			h.writeWS(conn, models.WSMessage{
				Type:      "error",
				Error:     &models.APIError{Code: string(apperrors.BadRequest), Message: "missing request"},
				Timestamp: time.Now(),
			})
			continue
		}
		response, apiErr := h.runDetection(c, message.Request, true)
		if apiErr != nil {
			h.writeWS(conn, models.WSMessage{
				Type:      "error",
				Error:     &models.APIError{Code: string(apiErr.Code), Message: apiErr.Message, Details: apiErr.Details},
				Timestamp: time.Now(),
			})
			continue
		}
		h.writeWS(conn, models.WSMessage{Type: "result", Response: response, Timestamp: time.Now()})
	}
}

func (h *Handlers) writeWS(conn *websocket.Conn, message models.WSMessage) {
	if err := conn.WriteJSON(message); err != nil {
		h.logger.Warn("websocket write failed", zap.Error(err))
	}
}

func (h *Handlers) respondError(c *gin.Context, apiErr *apperrors.APIError) {
	if id := c.GetString("request_id"); id != "" {
		apiErr.WithRequestID(id)
	}
	c.JSON(apiErr.HTTPStatus(), models.APIResponse{
		Success: false,
		Error: &models.APIError{
			Code:    string(apiErr.Code),
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}
