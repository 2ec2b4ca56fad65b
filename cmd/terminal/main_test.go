package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/zappabad/tapetrader/internal/audit"
	"github.com/zappabad/tapetrader/internal/config"
)

func TestFatalLineIncludesCause(t *testing.T) {
	err := errors.New("no such file")
	got := fatalLine("load price series for AAPL", err)
	if got != "load price series for AAPL: no such file" {
		t.Errorf("unexpected diagnostic %q", got)
	}
}

func TestBuildLoggerRejectsBadLevel(t *testing.T) {
	if _, err := buildLogger(filepath.Join(t.TempDir(), "x.log"), "verbose"); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestBuildAuditSinkComposition(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}

	s, err := buildAuditSink(cfg)
	if err != nil {
		t.Fatalf("no paths: %v", err)
	}
	if _, ok := s.(*audit.NoopSink); !ok {
		t.Errorf("expected noop sink with no paths, got %T", s)
	}

	cfg.Audit.LogPath = filepath.Join(dir, "trades.jsonl")
	s, err = buildAuditSink(cfg)
	if err != nil {
		t.Fatalf("jsonl only: %v", err)
	}
	if _, ok := s.(*audit.JSONLSink); !ok {
		t.Errorf("expected jsonl sink, got %T", s)
	}
	s.Close()

	cfg.Audit.SQLitePath = filepath.Join(dir, "trades.db")
	s, err = buildAuditSink(cfg)
	if err != nil {
		t.Fatalf("both paths: %v", err)
	}
	if _, ok := s.(*audit.MultiSink); !ok {
		t.Errorf("expected fan-out sink, got %T", s)
	}
	s.Close()
}
