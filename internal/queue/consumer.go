// Package queue consumes detection requests from NATS and replies with
// results, backing the standalone worker binary.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/glossa-dev/glossa/internal/models"
	"github.com/glossa-dev/glossa/pkg/detector"
	"github.com/glossa-dev/glossa/pkg/language"
)

// Consumer handles detection requests arriving on a NATS subject.
type Consumer struct {
	conn     *nats.Conn
	detector *detector.Detector
	subject  string
	logger   *zap.Logger
}

// NewConsumer connects to NATS and prepares a consumer on subject.
func NewConsumer(url, subject string, det *detector.Detector, logger *zap.Logger) (*Consumer, error) {
	conn, err := nats.Connect(url,
		nats.Name("glossa-worker"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second))
	if err != nil {
		return nil, fmt.Errorf("queue: connect %s: %w", url, err)
	}
	return &Consumer{conn: conn, detector: det, subject: subject, logger: logger}, nil
}

// Start subscribes and processes messages until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("starting queue consumer", zap.String("subject", c.subject))

	subscription, err := c.conn.QueueSubscribe(c.subject, "glossa-workers", c.processMessage)
	if err != nil {
		return fmt.Errorf("queue: subscribe %s: %w", c.subject, err)
	}

	<-ctx.Done()
	c.logger.Info("queue consumer stopping")
	if err := subscription.Drain(); err != nil {
		c.logger.Warn("subscription drain failed", zap.Error(err))
	}
	return nil
}

// Close drains and closes the connection.
func (c *Consumer) Close() {
	if err := c.conn.Drain(); err != nil {
		c.logger.Warn("connection drain failed", zap.Error(err))
	}
	c.conn.Close()
}

// processMessage handles a single detection request message.
func (c *Consumer) processMessage(msg *nats.Msg) {
	var request models.DetectionRequest
	if err := json.Unmarshal(msg.Data, &request); err != nil {
		c.logger.Error("failed to unmarshal message", zap.Error(err))
		c.reply(msg, &models.APIResponse{
			Success: false,
			Error:   &models.APIError{Code: "BAD_REQUEST", Message: "invalid request payload"},
		})
		return
	}

	start := time.Now()
	response, err := c.detect(&request)
	if err != nil {
		c.logger.Error("detection failed", zap.String("id", request.ID), zap.Error(err))
		c.reply(msg, &models.APIResponse{
			Success: false,
			Error:   &models.APIError{Code: "MODEL_CORRUPTED", Message: err.Error()},
		})
		return
	}

	c.logger.Info("detection completed",
		zap.String("id", request.ID),
		zap.String("language", response.Language.String()),
		zap.Duration("elapsed", time.Since(start)))
	c.reply(msg, &models.APIResponse{Success: true, Data: response})
}

// detect runs the engine, converting model panics into errors so one
// corrupt model cannot take the worker down.
func (c *Consumer) detect(request *models.DetectionRequest) (response *models.DetectionResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			response = nil
			err = fmt.Errorf("queue: %v", r)
		}
	}()

	start := time.Now()
	confidences := c.detector.ConfidenceValues(request.Text)
	detected := language.Unknown
	if len(confidences) > 0 {
		detected = c.detector.Detect(request.Text)
	}
	return &models.DetectionResponse{
		ID:          request.ID,
		Language:    detected,
		IsoCode:     detected.IsoCode639_1(),
		Confidences: confidences,
		Duration:    time.Since(start),
	}, nil
}

func (c *Consumer) reply(msg *nats.Msg, response *models.APIResponse) {
	if msg.Reply == "" {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		c.logger.Error("failed to marshal reply", zap.Error(err))
		return
	}
	if err := msg.Respond(data); err != nil {
		c.logger.Warn("failed to respond", zap.Error(err))
	}
}
