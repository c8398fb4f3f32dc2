package mcp

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// safeBuffer is a bytes.Buffer guarded for concurrent writer and reader.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type sseEvent struct {
	name string
	data string
}

// sseReader parses "event:"/"data:" frames from a stream.
type sseReader struct {
	scanner *bufio.Scanner
}

func newSSEReader(resp *http.Response) *sseReader {
	s := bufio.NewScanner(resp.Body)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &sseReader{scanner: s}
}

func (r *sseReader) next(t *testing.T) sseEvent {
	t.Helper()
	var ev sseEvent
	for r.scanner.Scan() {
		line := r.scanner.Text()
		switch {
		case line == "":
			if ev.name != "" || ev.data != "" {
				return ev
			}
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event: "):
			ev.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			ev.data = strings.TrimPrefix(line, "data: ")
		}
	}
	t.Fatalf("stream ended: %v", r.scanner.Err())
	return ev
}

func newSSETestServer(t *testing.T, opts ...SSEOption) (*httptest.Server, *SSEServer) {
	t.Helper()
	sse := NewSSEServer(newTestEngine(t), testLogger(), opts...)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sse", sse.HandleStream)
	mux.HandleFunc("POST /messages", sse.HandleMessage)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, sse
}

func openStream(t *testing.T, srv *httptest.Server) (*http.Response, *sseReader, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/sse", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := newSSEReader(resp)
	ev := reader.next(t)
	require.Equal(t, "endpoint", ev.name)
	require.True(t, strings.HasPrefix(ev.data, "/messages?sessionId="), ev.data)
	return resp, reader, ev.data
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestSSE_RoundTrip(t *testing.T) {
	srv, _ := newSSETestServer(t)
	resp, reader, endpoint := openStream(t, srv)
	defer resp.Body.Close()

	r := post(t, srv.URL+endpoint, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"create_contact","arguments":{"email":"a@b.co"}}}`)
	assert.Equal(t, http.StatusAccepted, r.StatusCode)

	ev := reader.next(t)
	assert.Equal(t, "message", ev.name)
	reply := decodeReply(t, []byte(ev.data))
	assert.Equal(t, "1", string(reply.ID))
	assert.Contains(t, callText(t, reply), `"email": "a@b.co"`)
}

func TestSSE_PushesInAcceptOrder(t *testing.T) {
	srv, _ := newSSETestServer(t)
	resp, reader, endpoint := openStream(t, srv)
	defer resp.Body.Close()

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		r := post(t, srv.URL+endpoint, `{"jsonrpc":"2.0","id":`+id+`,"method":"ping"}`)
		require.Equal(t, http.StatusAccepted, r.StatusCode)
	}

	for _, want := range []string{"1", "2", "3", "4", "5"} {
		ev := reader.next(t)
		assert.Equal(t, want, string(decodeReply(t, []byte(ev.data)).ID))
	}
}

func TestSSE_NotificationNotPushed(t *testing.T) {
	srv, _ := newSSETestServer(t)
	resp, reader, endpoint := openStream(t, srv)
	defer resp.Body.Close()

	post(t, srv.URL+endpoint, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	post(t, srv.URL+endpoint, `{"jsonrpc":"2.0","id":9,"method":"ping"}`)

	ev := reader.next(t)
	assert.Equal(t, "9", string(decodeReply(t, []byte(ev.data)).ID))
}

func TestSSE_SessionsAreIndependent(t *testing.T) {
	srv, sse := newSSETestServer(t)
	respA, readerA, endpointA := openStream(t, srv)
	defer respA.Body.Close()
	respB, readerB, endpointB := openStream(t, srv)
	defer respB.Body.Close()

	assert.NotEqual(t, endpointA, endpointB)
	assert.Equal(t, 2, sse.SessionCount())

	post(t, srv.URL+endpointB, `{"jsonrpc":"2.0","id":"b","method":"ping"}`)
	post(t, srv.URL+endpointA, `{"jsonrpc":"2.0","id":"a","method":"ping"}`)

	assert.Equal(t, `"a"`, string(decodeReply(t, []byte(readerA.next(t).data)).ID))
	assert.Equal(t, `"b"`, string(decodeReply(t, []byte(readerB.next(t).data)).ID))
}

func TestSSE_UnknownSession(t *testing.T) {
	srv, _ := newSSETestServer(t)

	r := post(t, srv.URL+"/messages?sessionId=does-not-exist", `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	assert.Equal(t, http.StatusNotFound, r.StatusCode)

	r = post(t, srv.URL+"/messages", `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	assert.Equal(t, http.StatusBadRequest, r.StatusCode)
}

func TestSSE_EmptyBody(t *testing.T) {
	srv, _ := newSSETestServer(t)
	resp, _, endpoint := openStream(t, srv)
	defer resp.Body.Close()

	r := post(t, srv.URL+endpoint, "")
	assert.Equal(t, http.StatusBadRequest, r.StatusCode)
}

func TestSSE_SessionRemovedOnDisconnect(t *testing.T) {
	srv, sse := newSSETestServer(t)
	resp, _, endpoint := openStream(t, srv)
	require.Equal(t, 1, sse.SessionCount())

	resp.Body.Close()

	assert.Eventually(t, func() bool { return sse.SessionCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	r := post(t, srv.URL+endpoint, `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	assert.Equal(t, http.StatusNotFound, r.StatusCode)
}

func TestSSE_KeepAlive(t *testing.T) {
	srv, _ := newSSETestServer(t, WithKeepAlive(20*time.Millisecond))
	resp, reader, _ := openStream(t, srv)
	defer resp.Body.Close()

	require.True(t, reader.scanner.Scan())
	assert.Equal(t, ": ping", reader.scanner.Text())
}

func TestSSE_CloseEndsStreams(t *testing.T) {
	srv, sse := newSSETestServer(t)
	resp, reader, _ := openStream(t, srv)
	defer resp.Body.Close()
	require.Equal(t, 1, sse.SessionCount())

	sse.Close()

	assert.False(t, reader.scanner.Scan(), "expected stream to end")
	assert.Eventually(t, func() bool { return sse.SessionCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/sse", nil)
	require.NoError(t, err)
	late, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	late.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, late.StatusCode)
}
