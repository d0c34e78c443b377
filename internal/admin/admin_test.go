package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func controllersUnderTest(t *testing.T, run func(t *testing.T, c *Controller)) {
	t.Helper()
	t.Run("memory", func(t *testing.T) {
		run(t, NewController(NewMemoryStore(), nil))
	})
	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		run(t, NewController(NewRedisStore(rdb), nil))
	})
}

func TestSeed(t *testing.T) {
	controllersUnderTest(t, func(t *testing.T, c *Controller) {
		ctx := context.Background()

		if err := c.Seed(ctx, "peach"); err != nil {
			t.Fatalf("Seed: %v", err)
		}
		got, err := c.Admin(ctx)
		if err != nil || got != "peach" {
			t.Fatalf("Admin = %q, %v", got, err)
		}

		// A second seed never displaces an existing record.
		if err := c.Seed(ctx, "bowser"); err != nil {
			t.Fatalf("second Seed: %v", err)
		}
		got, err = c.Admin(ctx)
		if err != nil || got != "peach" {
			t.Fatalf("Admin after reseed = %q, %v", got, err)
		}
	})
}

func TestSeedEmptyIsNoop(t *testing.T) {
	controllersUnderTest(t, func(t *testing.T, c *Controller) {
		ctx := context.Background()
		if err := c.Seed(ctx, "   "); err != nil {
			t.Fatalf("Seed: %v", err)
		}
		got, err := c.Admin(ctx)
		if err != nil || got != "" {
			t.Fatalf("Admin = %q, %v", got, err)
		}
	})
}

func TestUpdateByCurrentAdmin(t *testing.T) {
	controllersUnderTest(t, func(t *testing.T, c *Controller) {
		ctx := context.Background()
		if err := c.Seed(ctx, "peach"); err != nil {
			t.Fatalf("Seed: %v", err)
		}

		if err := c.Update(ctx, "peach", "daisy"); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got, err := c.Admin(ctx)
		if err != nil || got != "daisy" {
			t.Fatalf("Admin = %q, %v", got, err)
		}

		// The former admin lost the right to update.
		if err := c.Update(ctx, "peach", "peach"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	})
}

func TestUpdateByStrangerRejected(t *testing.T) {
	controllersUnderTest(t, func(t *testing.T, c *Controller) {
		ctx := context.Background()
		if err := c.Seed(ctx, "peach"); err != nil {
			t.Fatalf("Seed: %v", err)
		}
		if err := c.Update(ctx, "bowser", "bowser"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
		got, err := c.Admin(ctx)
		if err != nil || got != "peach" {
			t.Fatalf("Admin after rejected update = %q, %v", got, err)
		}
	})
}

func TestClearLocksOutEveryone(t *testing.T) {
	controllersUnderTest(t, func(t *testing.T, c *Controller) {
		ctx := context.Background()
		if err := c.Seed(ctx, "peach"); err != nil {
			t.Fatalf("Seed: %v", err)
		}
		if err := c.Update(ctx, "peach", ""); err != nil {
			t.Fatalf("clear: %v", err)
		}
		got, err := c.Admin(ctx)
		if err != nil || got != "" {
			t.Fatalf("Admin after clear = %q, %v", got, err)
		}
		// With no admin set, every update is unauthorized.
		if err := c.Update(ctx, "peach", "peach"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	})
}

func TestUpdateWithoutAdminRejected(t *testing.T) {
	controllersUnderTest(t, func(t *testing.T, c *Controller) {
		if err := c.Update(context.Background(), "peach", "peach"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	})
}
