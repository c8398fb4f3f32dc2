package mcp

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStdio_RepliesInOrder(t *testing.T) {
	e := newTestEngine(t)
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"create_contact","arguments":{"email":"a@b.co"}}}`,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"delete_contact_permanently"}}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, e.ServeStdio(t.Context(), strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = string(decodeReply(t, []byte(line)).ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)

	last := decodeReply(t, []byte(lines[3]))
	require.NotNil(t, last.Error)
	assert.Equal(t, "Unknown tool: delete_contact_permanently", last.Error.Message)
}

func TestServeStdio_ParseErrorContinues(t *testing.T) {
	e := newTestEngine(t)
	in := "garbage\n" + `{"jsonrpc":"2.0","id":7,"method":"ping"}` + "\n"

	var out bytes.Buffer
	require.NoError(t, e.ServeStdio(t.Context(), strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.NotNil(t, decodeReply(t, []byte(lines[0])).Error)
	assert.Nil(t, decodeReply(t, []byte(lines[1])).Error)
}

func TestServeStdio_StopsOnCancel(t *testing.T) {
	e := newTestEngine(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(t.Context())
	var out safeBuffer
	done := make(chan error, 1)
	go func() { done <- e.ServeStdio(ctx, pr, &out) }()

	_, err := io.WriteString(pw, `{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return strings.Contains(out.String(), `"id":1`) }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ServeStdio did not return after cancel")
	}
}

func TestServeStdio_LargeMessage(t *testing.T) {
	e := newTestEngine(t)
	big := strings.Repeat("x", 200*1024)
	in := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"create_contact","arguments":{"email":"` + big + `"}}}` + "\n"

	var out bytes.Buffer
	require.NoError(t, e.ServeStdio(t.Context(), strings.NewReader(in), &out))

	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 1024), maxLineSize)
	require.True(t, scanner.Scan())
	assert.Contains(t, callText(t, decodeReply(t, scanner.Bytes())), big)
}
