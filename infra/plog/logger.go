package plog

import (
	"context"
	"sync"
)

// Config controls the behavior of the SDK logger
type Config struct {
	Level LogLevel `yaml:"level" json:"level"`
	Label string   `yaml:"label" json:"label"` // prefixed to every record
	JSON  bool     `yaml:"json" json:"json"`   // emit records as JSON objects
}

// Data for the logging layer
type loggerData struct {
	mutex      sync.RWMutex
	transports []Transport
	config     Config
}

// Global instance of the logger shared for the process
var loggerInst = loggerData{config: Config{Level: LogLevelInfo, Label: "permit"}}

// Init configures the logger with the given config and transports. Transports
// that fail to initialize are dropped rather than failing the whole SDK.
func Init(config Config, transports ...Transport) {
	loggerInst.mutex.Lock()
	defer loggerInst.mutex.Unlock()

	loggerInst.config = config
	loggerInst.transports = nil
	for _, t := range transports {
		if err := t.Init(); err == nil {
			loggerInst.transports = append(loggerInst.transports, t)
		}
	}
}

// Log sends an event to all registered transports
func Log(ctx context.Context, event LogEvent) {
	loggerInst.mutex.RLock()
	defer loggerInst.mutex.RUnlock()

	if event.Level > loggerInst.config.Level {
		return
	}
	for _, t := range loggerInst.transports {
		t.Write(ctx, event)
	}
}

// Close closes all transports; the last messages end up in the log
func Close() {
	loggerInst.mutex.Lock()
	defer loggerInst.mutex.Unlock()
	for _, t := range loggerInst.transports {
		t.Close()
	}
	loggerInst.transports = nil
}

func currentConfig() Config {
	loggerInst.mutex.RLock()
	defer loggerInst.mutex.RUnlock()
	return loggerInst.config
}
