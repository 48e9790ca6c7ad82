package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant_menu/internal/cart"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Cart persistence. Carts are keyed per browsing session and kept without
// expiry; last write wins across sessions sharing a key.

func (c *Client) SaveCart(sessionID string, state cart.State) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cart state: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+sessionID, jsonData, 0).Err()
}

func (c *Client) LoadCart(sessionID string) (cart.State, bool, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return cart.State{}, false, nil
		}
		return cart.State{}, false, fmt.Errorf("failed to get cart: %w", err)
	}

	var state cart.State
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		// A stored shape from an older build is dropped rather than
		// poisoning the session.
		return cart.State{}, false, nil
	}

	return state, true, nil
}

func (c *Client) DeleteCart(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+sessionID).Err()
}

// CartPersister binds the client to one session key so it satisfies
// cart.Persister.
func (c *Client) CartPersister(sessionID string) cart.Persister {
	return &cartPersister{client: c, sessionID: sessionID}
}

type cartPersister struct {
	client    *Client
	sessionID string
}

func (p *cartPersister) Save(state cart.State) error {
	return p.client.SaveCart(p.sessionID, state)
}

func (p *cartPersister) Load() (cart.State, bool, error) {
	return p.client.LoadCart(p.sessionID)
}

// Menu read cache

func (c *Client) CacheMenu(slug string, payload interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}

	return c.rdb.Set(ctx, "menu:"+slug, jsonData, ttl).Err()
}

func (c *Client) GetCachedMenu(slug string, dest interface{}) (bool, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "menu:"+slug).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cached menu: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached menu: %w", err)
	}
	return true, nil
}

func (c *Client) InvalidateMenu(slug string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "menu:"+slug).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
