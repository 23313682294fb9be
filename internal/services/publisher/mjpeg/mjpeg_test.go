package mjpeg

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// streamRecorder is a goroutine-safe ResponseWriter that supports flushing.
type streamRecorder struct {
	mu     sync.Mutex
	header http.Header
	body   bytes.Buffer
}

func newStreamRecorder() *streamRecorder { return &streamRecorder{header: make(http.Header)} }

func (s *streamRecorder) Header() http.Header { return s.header }
func (s *streamRecorder) WriteHeader(int)      {}
func (s *streamRecorder) Flush()               {}
func (s *streamRecorder) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.body.Write(p)
}
func (s *streamRecorder) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.body.String()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStreamPushesEveryFrame(t *testing.T) {
	t.Parallel()

	p := NewPublisher()
	p.PublishJPEG("detection", []byte("frame-one"))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/stream", nil).WithContext(ctx)
	w := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		p.StreamMJPEGHTTP(w, req, "detection")
		close(done)
	}()

	waitFor(t, func() bool { return strings.Contains(w.String(), "frame-one") })
	waitFor(t, func() bool { return p.Viewers("detection") == 1 })

	p.PublishJPEG("detection", []byte("frame-two"))
	waitFor(t, func() bool { return strings.Contains(w.String(), "frame-two") })

	cancel()
	<-done

	if p.Viewers("detection") != 0 {
		t.Errorf("expected viewer to be removed, got %d", p.Viewers("detection"))
	}
	if ct := w.Header().Get("Content-Type"); ct != "multipart/x-mixed-replace; boundary=frame" {
		t.Errorf("unexpected content type %q", ct)
	}
	out := w.String()
	if !strings.Contains(out, "--frame\r\nContent-Type: image/jpeg\r\nContent-Length: 9\r\n\r\nframe-one\r\n") {
		t.Errorf("unexpected part framing: %q", out)
	}
}

func TestStreamPlaceholderBeforeFirstFrame(t *testing.T) {
	t.Parallel()

	p := NewPublisher()
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/stream", nil).WithContext(ctx)
	w := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		p.StreamMJPEGHTTP(w, req, "classification")
		close(done)
	}()

	// JPEG start-of-image marker of the placeholder frame.
	waitFor(t, func() bool { return strings.Contains(w.String(), "\xFF\xD8") })
	cancel()
	<-done
}

func TestLatestCopiesFrame(t *testing.T) {
	t.Parallel()

	p := NewPublisher()
	if _, ok := p.Latest("detection"); ok {
		t.Fatal("expected no frame before publishing")
	}

	frame := []byte("abc")
	p.PublishJPEG("detection", frame)
	frame[0] = 'x'

	got, ok := p.Latest("detection")
	if !ok || string(got) != "abc" {
		t.Errorf("expected stored copy abc, got %q", got)
	}
}

func TestShutdownReleasesViewers(t *testing.T) {
	t.Parallel()

	p := NewPublisher()
	p.PublishJPEG("detection", []byte("frame-one"))

	returned := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(returned)
		p.StreamMJPEGHTTP(w, r, "detection")
	}))
	defer srv.Close()
	srv.Config.RegisterOnShutdown(p.Shutdown)

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	waitFor(t, func() bool { return p.Viewers("detection") == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Config.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected clean shutdown with a connected viewer, got %v", err)
	}

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("expected stream handler to return after shutdown")
	}
	if p.Viewers("detection") != 0 {
		t.Errorf("expected no viewers after shutdown, got %d", p.Viewers("detection"))
	}

	// A second call is a no-op.
	p.Shutdown()
}

func TestShutdownEndsDirectStream(t *testing.T) {
	t.Parallel()

	p := NewPublisher()
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	w := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		p.StreamMJPEGHTTP(w, req, "detection")
		close(done)
	}()
	waitFor(t, func() bool { return p.Viewers("detection") == 1 })

	p.Shutdown()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected stream to end on shutdown")
	}
}
