package mongo

import (
	"testing"
	"time"
)

func TestNewMongoDBTimeout(t *testing.T) {
	m := NewMongoDB("mongodb://localhost:27017", 2*time.Second)
	defer m.Cancel()

	deadline, ok := m.Ctx.Deadline()
	if !ok {
		t.Fatal("context has no deadline")
	}
	if remaining := time.Until(deadline); remaining > 2*time.Second || remaining < time.Second {
		t.Errorf("deadline %v away, want about 2s", remaining)
	}
}
