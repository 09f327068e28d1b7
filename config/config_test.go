package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PDF_SAVE_PATH", "")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "")

	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.PDFSavePath != "./pdfs" {
		t.Errorf("PDFSavePath = %q, want %q", cfg.PDFSavePath, "./pdfs")
	}
	if cfg.MongoTimeout != 10*time.Second {
		t.Errorf("MongoTimeout = %v, want %v", cfg.MongoTimeout, 10*time.Second)
	}
}

func TestLoadConfigMongoTimeout(t *testing.T) {
	t.Setenv("MONGO_CONNECT_TIMEOUT", "30s")

	cfg := LoadConfig()
	if cfg.MongoTimeout != 30*time.Second {
		t.Errorf("MongoTimeout = %v, want %v", cfg.MongoTimeout, 30*time.Second)
	}
}

func TestLoadConfigBadMongoTimeout(t *testing.T) {
	t.Setenv("MONGO_CONNECT_TIMEOUT", "soon")

	cfg := LoadConfig()
	if cfg.MongoTimeout != 10*time.Second {
		t.Errorf("MongoTimeout = %v, want default %v", cfg.MongoTimeout, 10*time.Second)
	}
}
