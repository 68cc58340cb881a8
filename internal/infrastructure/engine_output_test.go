package infrastructure

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedRouter(raw *bytes.Buffer) (*EngineOutputRouter, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	var w io.Writer
	if raw != nil {
		w = raw
	}
	return NewEngineOutputRouter(zap.New(core), w), logs
}

func TestEngineOutputRouter_LevelDispatch(t *testing.T) {
	router, logs := observedRouter(nil)

	router.Write([]byte("[debug] Loaded extractor\n"))
	router.Write([]byte("[download] Destination: file.mkv\n"))
	router.Write([]byte("WARNING: subtitle track missing\n"))
	router.Write([]byte("ERROR: fragment 3 not found\n"))

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "engine_debug", entries[0].Message)
	assert.Equal(t, "Loaded extractor", entries[0].ContextMap()["detail"])

	assert.Equal(t, zap.InfoLevel, entries[1].Level)
	assert.Equal(t, "engine_info", entries[1].Message)

	assert.Equal(t, zap.WarnLevel, entries[2].Level)
	assert.Equal(t, "subtitle track missing", entries[2].ContextMap()["detail"])

	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
	assert.Equal(t, "fragment 3 not found", entries[3].ContextMap()["detail"])
}

func TestEngineOutputRouter_BuffersPartialLines(t *testing.T) {
	router, logs := observedRouter(nil)

	router.Write([]byte("[download] 42% of "))
	assert.Equal(t, 0, logs.Len(), "incomplete line must not be dispatched")

	router.Write([]byte("10MiB\n"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "[download] 42% of 10MiB", logs.All()[0].ContextMap()["detail"])
}

func TestEngineOutputRouter_FlushDispatchesTrailingLine(t *testing.T) {
	router, logs := observedRouter(nil)

	router.Write([]byte("no trailing newline"))
	assert.Equal(t, 0, logs.Len())

	router.Flush()
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "no trailing newline", logs.All()[0].ContextMap()["detail"])
}

func TestEngineOutputRouter_SkipsBlankLines(t *testing.T) {
	router, logs := observedRouter(nil)

	router.Write([]byte("\n   \n"))

	assert.Equal(t, 0, logs.Len())
}

func TestEngineOutputRouter_CopiesRawOutput(t *testing.T) {
	var raw bytes.Buffer
	router, _ := observedRouter(&raw)

	router.Write([]byte("WARNING: kept verbatim\n"))

	assert.Equal(t, "WARNING: kept verbatim\n", raw.String())
}
