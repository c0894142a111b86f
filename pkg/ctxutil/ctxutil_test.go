package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("RequestIDFromCtx = %q, want req-123", got)
	}
}

func TestRequestID_Absent(t *testing.T) {
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("RequestIDFromCtx on empty ctx = %q, want empty", got)
	}
}
