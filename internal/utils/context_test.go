// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-42")

	traceID, ok := GetTraceIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if traceID != "trace-42" {
		t.Errorf("expected traceID=trace-42, got %s", traceID)
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	traceID, ok := GetTraceIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if traceID != "" {
		t.Errorf("expected empty traceID, got %s", traceID)
	}
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	if _, ok := GetTraceIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}
