package plog

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/permitio/permit-golang/infra/perr"
)

// FileTransportName is the name of the file transport
const FileTransportName = "fileTransport"

// FileTransport appends events to a log file, one line per event.
type FileTransport struct {
	filename string

	mutex sync.Mutex
	file  *os.File
}

// NewFileTransport creates a transport writing to the given file
func NewFileTransport(filename string) *FileTransport {
	return &FileTransport{filename: filename}
}

// Init implements Transport
func (t *FileTransport) Init() error {
	f, err := os.OpenFile(t.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return perr.Wrap(err)
	}
	t.file = f
	return nil
}

// Write implements Transport
func (t *FileTransport) Write(ctx context.Context, event LogEvent) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.file == nil {
		return
	}
	fmt.Fprintf(t.file, "%s %s %s\n", time.Now().UTC().Format(time.RFC3339), event.Level, event.Message)
}

// GetName implements Transport
func (t *FileTransport) GetName() string {
	return FileTransportName
}

// Close implements Transport
func (t *FileTransport) Close() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.file != nil {
		t.file.Close()
		t.file = nil
	}
}
