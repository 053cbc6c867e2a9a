// Package testlogtransport routes SDK logs into the Go test log so failures
// show what the SDK was doing, and lets tests assert on logged messages.
package testlogtransport

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/permitio/permit-golang/infra/plog"
)

// InitForTests configures the SDK logger to write into t's log at full verbosity
func InitForTests(t *testing.T) *TransportTest {
	tt := &TransportTest{t: t}
	plog.Init(plog.Config{Level: plog.LogLevelVerbose, Label: "test"}, tt)
	t.Cleanup(plog.Close)
	return tt
}

// TransportTest is a log transport capturing messages per level
type TransportTest struct {
	t        *testing.T
	mutex    sync.Mutex
	messages map[plog.LogLevel][]string
}

// Init implements plog.Transport
func (tt *TransportTest) Init() error {
	tt.messages = make(map[plog.LogLevel][]string)
	return nil
}

// Write implements plog.Transport
func (tt *TransportTest) Write(ctx context.Context, event plog.LogEvent) {
	tt.t.Helper()
	tt.t.Log(event.Message)

	tt.mutex.Lock()
	tt.messages[event.Level] = append(tt.messages[event.Level], event.Message)
	tt.mutex.Unlock()
}

// GetMessagesByLevel returns the messages logged at the given level
func (tt *TransportTest) GetMessagesByLevel(level plog.LogLevel) []string {
	tt.mutex.Lock()
	defer tt.mutex.Unlock()
	return tt.messages[level]
}

// LogsContainString returns whether any logged message contains s
func (tt *TransportTest) LogsContainString(s string) bool {
	tt.mutex.Lock()
	defer tt.mutex.Unlock()
	for level := range tt.messages {
		for _, m := range tt.messages[level] {
			if strings.Contains(m, s) {
				return true
			}
		}
	}
	return false
}

// ClearMessages drops everything captured so far
func (tt *TransportTest) ClearMessages() {
	tt.mutex.Lock()
	defer tt.mutex.Unlock()
	tt.messages = make(map[plog.LogLevel][]string)
}

// GetName implements plog.Transport
func (tt *TransportTest) GetName() string {
	return "TestTransport"
}

// Close implements plog.Transport
func (tt *TransportTest) Close() {}
