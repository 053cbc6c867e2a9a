package plog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/infra/request"
)

// Basic transport redirecting the event stream to the Go logger

// GoTransportName is the name of the go logger transport
const GoTransportName = "goTransport"

type logRecord struct {
	Time      time.Time `json:"time"`
	Level     string    `json:"level"`
	Label     string    `json:"label"`
	RequestID string    `json:"request_id,omitempty"`
	Message   string    `json:"message"`
}

// GoTransport writes events via the standard library logger, either as
// plain prefixed lines or as JSON records.
type GoTransport struct {
	logger *log.Logger
}

// NewGoTransport creates a transport on the default Go logger
func NewGoTransport() *GoTransport {
	return &GoTransport{logger: log.Default()}
}

// Init implements Transport
func (t *GoTransport) Init() error {
	return nil
}

// Write implements Transport
func (t *GoTransport) Write(ctx context.Context, event LogEvent) {
	cfg := currentConfig()

	requestID := request.GetRequestID(ctx)
	if cfg.JSON {
		r := logRecord{
			Time:    time.Now().UTC(),
			Level:   event.Level.String(),
			Label:   cfg.Label,
			Message: event.Message,
		}
		if requestID != uuid.Nil {
			r.RequestID = requestID.String()
		}
		if bs, err := json.Marshal(r); err == nil {
			t.logger.Print(string(bs))
		}
		return
	}

	if requestID != uuid.Nil {
		t.logger.Printf("%s | %v: %s", cfg.Label, requestID, event.Message)
	} else {
		t.logger.Printf("%s: %s", cfg.Label, event.Message)
	}
}

// GetName implements Transport
func (t *GoTransport) GetName() string {
	return GoTransportName
}

// Close implements Transport
func (t *GoTransport) Close() {
}
