//go:build !integration

package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Cache[[]string] = Noop[[]string]{}

	c.Set(ctx, "truck_classes:active", []string{"2-Axle Truck"})
	got, found := c.Get(ctx, "truck_classes:active")

	assert.False(t, found)
	assert.Nil(t, got)
	assert.NotPanics(t, func() {
		c.Invalidate(ctx, "truck_classes:active")
		c.Clear(ctx)
		c.Stop()
	})
}
