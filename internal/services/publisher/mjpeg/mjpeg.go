// Package mjpeg serves the latest annotated preview of a dashboard page as a
// multipart/x-mixed-replace stream, pushing a new part on every redraw.
package mjpeg

import (
	"fmt"
	"image/color"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/overlay"
	"ai-deploy-dashboard/internal/preview"
)

const (
	boundary          = "frame"
	keepaliveInterval = 2 * time.Second
)

type Publisher struct {
	jpegMutex  sync.RWMutex
	latestJPEG map[string][]byte

	notifyMutex sync.Mutex
	frameNotify map[string]map[chan struct{}]struct{}

	done     chan struct{}
	stopOnce sync.Once
}

func NewPublisher() *Publisher {
	return &Publisher{
		latestJPEG:  make(map[string][]byte),
		frameNotify: make(map[string]map[chan struct{}]struct{}),
		done:        make(chan struct{}),
	}
}

// PublishJPEG replaces the latest frame of stream and wakes its viewers.
func (p *Publisher) PublishJPEG(stream string, jpeg []byte) {
	frame := make([]byte, len(jpeg))
	copy(frame, jpeg)

	p.jpegMutex.Lock()
	p.latestJPEG[stream] = frame
	p.jpegMutex.Unlock()

	p.notifyStreamers(stream)
}

// Latest returns the most recent frame of stream, if any.
func (p *Publisher) Latest(stream string) ([]byte, bool) {
	p.jpegMutex.RLock()
	defer p.jpegMutex.RUnlock()
	b, ok := p.latestJPEG[stream]
	return b, ok && len(b) > 0
}

// Viewers returns the number of connected clients on stream.
func (p *Publisher) Viewers(stream string) int {
	p.notifyMutex.Lock()
	defer p.notifyMutex.Unlock()
	return len(p.frameNotify[stream])
}

func (p *Publisher) notifyStreamers(stream string) {
	p.notifyMutex.Lock()
	defer p.notifyMutex.Unlock()

	for notify := range p.frameNotify[stream] {
		select {
		case notify <- struct{}{}:
		default:
		}
	}
}

func (p *Publisher) subscribe(stream string) chan struct{} {
	p.notifyMutex.Lock()
	defer p.notifyMutex.Unlock()

	subs, ok := p.frameNotify[stream]
	if !ok {
		subs = make(map[chan struct{}]struct{})
		p.frameNotify[stream] = subs
	}
	notify := make(chan struct{}, 1)
	subs[notify] = struct{}{}
	return notify
}

func (p *Publisher) unsubscribe(stream string, notify chan struct{}) {
	p.notifyMutex.Lock()
	defer p.notifyMutex.Unlock()

	if subs, ok := p.frameNotify[stream]; ok {
		delete(subs, notify)
		if len(subs) == 0 {
			delete(p.frameNotify, stream)
		}
	}
}

func (p *Publisher) StreamMJPEGHTTP(w http.ResponseWriter, r *http.Request, stream string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary="+boundary)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	notify := p.subscribe(stream)
	defer p.unsubscribe(stream, notify)

	writePart := func(jpeg []byte) bool {
		if _, err := io.WriteString(w, "--"+boundary+"\r\n"); err != nil {
			return false
		}
		if _, err := io.WriteString(w, "Content-Type: image/jpeg\r\n"); err != nil {
			return false
		}
		if _, err := io.WriteString(w, fmt.Sprintf("Content-Length: %d\r\n\r\n", len(jpeg))); err != nil {
			return false
		}
		if _, err := w.Write(jpeg); err != nil {
			return false
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	first, ok := p.Latest(stream)
	if !ok {
		first = placeholder(stream)
	}
	if len(first) > 0 && !writePart(first) {
		return
	}

	keepaliveTicker := time.NewTicker(keepaliveInterval)
	defer keepaliveTicker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.done:
			return
		case <-notify:
		case <-keepaliveTicker.C:
		}
		if buf, ok := p.Latest(stream); ok {
			if !writePart(buf) {
				return
			}
		}
	}
}

// placeholder renders a grey frame naming the stream until a first image is published.
func placeholder(stream string) []byte {
	surface := overlay.NewRaster(640, 360)
	surface.FillRect(overlay.Rect{W: 640, H: 360}, color.RGBA{R: 64, G: 64, B: 64, A: 255})
	surface.FillText(fmt.Sprintf("Stream: %s", stream), 20, 180, overlay.LabelText)
	surface.FillText("Waiting for image...", 20, 210, overlay.LabelText)

	buf, err := preview.EncodeJPEG(surface.Image(), 90)
	if err != nil {
		log.Warn().Err(err).Str("stream", stream).Msg("Failed to encode placeholder frame")
		return nil
	}
	return buf
}

// Shutdown ends every open stream. http.Server.Shutdown does not cancel
// in-flight requests, so viewers must be released before the server stops.
// Safe to call more than once.
func (p *Publisher) Shutdown() {
	p.stopOnce.Do(func() {
		log.Info().Int("viewers", p.totalViewers()).Msg("MJPEG Publisher shutting down")
		close(p.done)
	})
}

func (p *Publisher) totalViewers() int {
	p.notifyMutex.Lock()
	defer p.notifyMutex.Unlock()
	n := 0
	for _, subs := range p.frameNotify {
		n += len(subs)
	}
	return n
}
