// Package client holds the HTTP clients SAFE-Rescue services use to read and write
// entities owned by their siblings.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"safe-rescue/safe-common/cache"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/httpx"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// envelope mirrors httpx.Result on the wire
type envelope[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

type baseClient struct {
	service  string
	reads    *resty.Client
	writes   *resty.Client
	kv       cache.KV
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Options shared by every client
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	KV       cache.KV // optional lookup cache
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func newBaseClient(service string, opts Options) baseClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	logger := opts.Logger.With(zap.String("remote_service", service))
	// lookups are idempotent; writes are sent once
	reads := newRestyClient(opts, logger).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second)
	return baseClient{
		service:  service,
		reads:    reads,
		writes:   newRestyClient(opts, logger),
		kv:       opts.KV,
		cacheTTL: opts.CacheTTL,
		logger:   logger,
	}
}

// newRestyClient resty warnings (retries, body errors) go to logger
func newRestyClient(opts Options, logger *zap.Logger) *resty.Client {
	return resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetLogger(logger.Sugar()).
		SetHeader("Accept", "application/json")
}

// read builds a retried GET request
func (c *baseClient) read(ctx context.Context) *resty.Request {
	return c.withRequestID(ctx, c.reads.R())
}

// write builds a request that is sent exactly once
func (c *baseClient) write(ctx context.Context) *resty.Request {
	return c.withRequestID(ctx, c.writes.R())
}

func (c *baseClient) withRequestID(ctx context.Context, req *resty.Request) *resty.Request {
	req.SetContext(ctx)
	if id := httpx.RequestIDFrom(ctx); id != "" {
		req.SetHeader(httpx.HeaderRequestID, id)
	}
	return req
}

// check converts a transport error or a non-2xx answer into an errs kind
func (c *baseClient) check(resp *resty.Response, err error, entity string, id int64) error {
	if err != nil {
		c.logger.Error("remote call failed", zap.String("entity", entity), zap.Error(err))
		return errs.Upstream(c.service, err)
	}
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusNotFound:
		return errs.RemoteNotFound(entity, id)
	case resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusConflict:
		return errs.Invalid("%s rejected %s: %s", c.service, entity, remoteMessage(resp.Body()))
	default:
		c.logger.Error("remote call returned error status",
			zap.String("entity", entity),
			zap.Int("status_code", resp.StatusCode()),
		)
		return errs.Upstream(c.service, fmt.Errorf("status %d", resp.StatusCode()))
	}
}

func remoteMessage(body []byte) string {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return string(body)
}

// getByID fetches path/{id}, consulting the cache first
func getByID[T any](ctx context.Context, c *baseClient, path, entity string, id int64) (*T, error) {
	if id <= 0 {
		return nil, errs.Invalid("id_%s is required", entity)
	}
	key := fmt.Sprintf("safe:client:%s:%s:%d", c.service, entity, id)
	if c.kv != nil {
		var cached T
		if err := cache.GetJSON(ctx, c.kv, key, &cached); err == nil {
			return &cached, nil
		}
	}

	var env envelope[T]
	resp, err := c.read(ctx).
		SetResult(&env).
		Get(fmt.Sprintf("%s/%d", path, id))
	if err := c.check(resp, err, entity, id); err != nil {
		return nil, err
	}

	if c.kv != nil {
		if err := cache.SetJSON(ctx, c.kv, key, env.Result, c.cacheTTL); err != nil {
			c.logger.Warn("failed to cache remote lookup", zap.String("key", key), zap.Error(err))
		}
	}
	return &env.Result, nil
}

// post sends body to path and decodes the created entity
func post[T any](ctx context.Context, c *baseClient, path, entity string, body any) (*T, error) {
	var env envelope[T]
	resp, err := c.write(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&env).
		Post(path)
	if err := c.check(resp, err, entity, 0); err != nil {
		return nil, err
	}
	return &env.Result, nil
}
