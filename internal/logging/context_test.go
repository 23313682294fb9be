package logging

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ai-deploy-dashboard/internal/config"
)

func TestAnnotate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	SetRequestID(c, "req-42")
	c.Set(KeyStartTime, time.Now().Add(-time.Second))
	SetPage(c, "detection")

	annotate(c, logger.Info()).Msg("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("expected request_id req-42, got %v", entry["request_id"])
	}
	if entry["page"] != "detection" {
		t.Errorf("expected page detection, got %v", entry["page"])
	}
	if _, ok := entry["duration"]; !ok {
		t.Error("expected duration field")
	}
}

func TestAnnotateWithoutContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	annotate(nil, logger.Info()).Msg("plain")

	if !bytes.Contains(buf.Bytes(), []byte(`"message":"plain"`)) {
		t.Errorf("unexpected output %s", buf.String())
	}
}

func TestAnnotateSkipsMissingValues(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	MarkStart(c)
	annotate(c, logger.Info()).Msg("bare")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{KeyRequestID, KeyPage} {
		if _, ok := entry[key]; ok {
			t.Errorf("expected no %s field, got %v", key, entry[key])
		}
	}
	if _, ok := entry["duration"]; !ok {
		t.Error("expected duration field")
	}
}

func TestNewServiceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewServiceLogger(&config.Config{InstanceID: "dash-7"}, "inference").Output(&buf)
	fileLogger := WithFile(logger, "cat.jpg")
	fileLogger.Info().Msg("ok")

	out := buf.String()
	for _, want := range []string{`"instance_id":"dash-7"`, `"service":"inference"`, `"file_name":"cat.jpg"`} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}
