package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSessionID(t *testing.T) {
	ctx := WithSessionID(context.Background(), "test-session-123")
	assert.Equal(t, "test-session-123", GetSessionID(ctx))
}

func TestWithField(t *testing.T) {
	ctx := WithField(context.Background(), "banner.body")
	assert.Equal(t, "banner.body", GetField(ctx))
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetSessionID(ctx))
	assert.Empty(t, GetField(ctx))
}

func TestBothValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithSessionID(ctx, "session-1")
	ctx = WithField(ctx, "council.page")

	assert.Equal(t, "session-1", GetSessionID(ctx))
	assert.Equal(t, "council.page", GetField(ctx))
}
