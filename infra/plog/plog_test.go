package plog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/permitio/permit-golang/infra/assert"
	"github.com/permitio/permit-golang/infra/plog"
	"github.com/permitio/permit-golang/test/testlogtransport"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]plog.LogLevel{
		"error":   plog.LogLevelError,
		"warning": plog.LogLevelWarning,
		"warn":    plog.LogLevelWarning,
		"info":    plog.LogLevelInfo,
		"":        plog.LogLevelInfo,
		"DEBUG":   plog.LogLevelDebug,
		"verbose": plog.LogLevelVerbose,
	}
	for in, want := range cases {
		got, err := plog.ParseLevel(in)
		assert.NoErr(t, err)
		assert.Equal(t, got, want)
	}

	_, err := plog.ParseLevel("loud")
	assert.NotNil(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, plog.LogLevelDebug.String(), "debug")
	assert.Equal(t, plog.LogLevelNone.String(), "none")
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()
	tt := testlogtransport.InitForTests(t)
	plog.Init(plog.Config{Level: plog.LogLevelInfo, Label: "test"}, tt)

	plog.Infof(ctx, "visible %d", 1)
	plog.Debugf(ctx, "invisible")

	assert.Equal(t, len(tt.GetMessagesByLevel(plog.LogLevelInfo)), 1)
	assert.Equal(t, len(tt.GetMessagesByLevel(plog.LogLevelDebug)), 0)
	assert.True(t, tt.LogsContainString("visible 1"))
	assert.False(t, tt.LogsContainString("invisible"))
}

func TestLevelPrefixes(t *testing.T) {
	ctx := context.Background()
	tt := testlogtransport.InitForTests(t)

	plog.Warningf(ctx, "watch out")
	msgs := tt.GetMessagesByLevel(plog.LogLevelWarning)
	assert.Equal(t, len(msgs), 1)
	assert.Equal(t, msgs[0], "[W] watch out")
}

func TestFileTransport(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "permit.log")

	ft := plog.NewFileTransport(path)
	assert.NoErr(t, ft.Init())
	assert.Equal(t, ft.GetName(), plog.FileTransportName)

	ft.Write(ctx, plog.LogEvent{Level: plog.LogLevelInfo, Message: "decision allowed"})
	ft.Write(ctx, plog.LogEvent{Level: plog.LogLevelWarning, Message: "pdp slow"})
	ft.Close()

	// writes after Close are dropped, not a panic
	ft.Write(ctx, plog.LogEvent{Level: plog.LogLevelInfo, Message: "late"})

	contents, err := os.ReadFile(path)
	assert.NoErr(t, err)
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	assert.Equal(t, len(lines), 2)
	assert.True(t, strings.HasSuffix(lines[0], "info decision allowed"))
	assert.True(t, strings.HasSuffix(lines[1], "warning pdp slow"))
}

func TestFileTransportBadPath(t *testing.T) {
	ft := plog.NewFileTransport(filepath.Join(t.TempDir(), "missing", "permit.log"))
	assert.NotNil(t, ft.Init())
}
