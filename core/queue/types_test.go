package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectPriority_EnforceTakesMax(t *testing.T) {
	ctx := WithContextPriority(context.Background(), PriorityLow)
	requested := PriorityMedium
	got := selectPriority(ctx, &requested, PriorityMin, Flags{Enforce: true})
	assert.Equal(t, PriorityMedium, got)
}

func TestSelectPriority_RequestedWinsWithoutEnforce(t *testing.T) {
	ctx := WithContextPriority(context.Background(), PriorityMax)
	requested := PriorityLow
	got := selectPriority(ctx, &requested, PriorityMedium, Flags{})
	assert.Equal(t, PriorityLow, got)
}

func TestSelectPriority_FallsBackToQueueDefault(t *testing.T) {
	got := selectPriority(context.Background(), nil, PriorityHigh, Flags{})
	assert.Equal(t, PriorityHigh, got)
}

func TestSelectPriority_DetachedExcludesContext(t *testing.T) {
	ctx := WithContextPriority(context.Background(), PriorityMax)
	got := selectPriority(ctx, nil, PriorityLow, Flags{Enforce: true, Detached: true})
	assert.Equal(t, PriorityLow, got)
}

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityMin.Valid())
	assert.True(t, PriorityMax.Valid())
	assert.False(t, Priority(-1).Valid())
	assert.False(t, Priority(101).Valid())
}
