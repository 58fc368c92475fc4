package smsactivate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
	"github.com/Behyna/sms-services/smsactivate/pkg/metrics"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	SuccessCodeAccess = "ACCESS_"
	SuccessCodeNumber = "ACCESS_NUMBER"
	SuccessCodeSMS    = "STATUS_OK"
	NoSMSCode         = "STATUS_WAIT_CODE"
)

// ActivationStatus is the value sent with setStatus.
type ActivationStatus string

const (
	StatusReady    ActivationStatus = "1"
	StatusRetry    ActivationStatus = "3"
	StatusComplete ActivationStatus = "6"
	StatusCancel   ActivationStatus = "8"
)

type Activator interface {
	GetNumber(ctx context.Context, req NumberRequest) (Number, error)
	SetStatus(ctx context.Context, status ActivationStatus, id string) (string, error)
	GetStatus(ctx context.Context, id string) (string, error)
	GetSMS(ctx context.Context, id string) (string, error)
	CheckSMS(ctx context.Context, id string) (SMSResult, error)
	WaitForSMS(ctx context.Context, id string, interval time.Duration) (string, error)
	GetBalance(ctx context.Context) (Balance, error)
	GetPrices(ctx context.Context, service, country string) (json.RawMessage, error)
	GetOperators(ctx context.Context, country string) (json.RawMessage, error)
}

var _ Activator = (*Client)(nil)

type NumberRequest struct {
	Service string
	Country string
	// MaxPrice is sent only when it parses as a positive decimal.
	MaxPrice       string
	Operator       string
	PhoneException string
}

type Number struct {
	ID    string
	Phone string
}

type Balance struct {
	Amount string
}

func (b Balance) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(b.Amount)
}

// SMSResult is the outcome of a single SMS check. Pending is set while the
// provider is still waiting for the code.
type SMSResult struct {
	Code    string
	Pending bool
}

type Client struct {
	cfg     Config
	client  httpclient.HTTPClient
	logger  *zap.Logger
	metrics *metrics.Metrics
	limiter *rate.Limiter
}

type Option func(*Client)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds a client for cfg. When client is nil a transport is
// created from the configured timeout and proxy.
func NewClient(cfg Config, client httpclient.HTTPClient, opts ...Option) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if client == nil {
		proxy, err := cfg.Proxy()
		if err != nil {
			return nil, err
		}
		client = httpclient.NewHTTPClient(cfg.Timeout, proxy)
	}

	c := &Client{cfg: cfg, client: client, logger: zap.NewNop()}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SendListRequest issues q and returns the colon separated response fields
// after checking them with CheckResponse.
func (c *Client) SendListRequest(ctx context.Context, q *Query, successCode, noSMSCode string) (fields []string, err error) {
	start := time.Now()
	defer func() { c.observe(q.Action(), start, err) }()

	body, err := c.send(ctx, q)
	if err != nil {
		return nil, err
	}

	return CheckResponse(splitFields(body), successCode, noSMSCode)
}

// SendJSONRequest issues q and returns the undecoded JSON document.
func (c *Client) SendJSONRequest(ctx context.Context, q *Query) (doc json.RawMessage, err error) {
	start := time.Now()
	defer func() { c.observe(q.Action(), start, err) }()

	body, err := c.send(ctx, q)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, &RequestError{StatusCode: http.StatusOK, Body: body, Err: fmt.Errorf("decoding error: %w", err)}
	}

	return doc, nil
}

func (c *Client) send(ctx context.Context, q *Query) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &RequestError{Err: err}
		}
	}

	q = q.clone().Set(ParamAPIKey, c.cfg.APIKey)
	target := c.cfg.BaseURL + "?" + q.Encode()

	var statusCode int
	var body string
	operation := func() error {
		resp, err := c.client.Get(ctx, target, nil)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}

		statusCode, body = resp.StatusCode, string(raw)
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.metrics.RecordRetry(string(q.Action()))
		c.logger.Warn("Provider request failed, retrying",
			zap.String("action", string(q.Action())),
			zap.Duration("wait", wait),
			zap.Error(c.redact(q, err)))
	}

	if err := backoff.RetryNotify(operation, c.retryPolicy(ctx), notify); err != nil {
		return "", &RequestError{Err: c.redact(q, err)}
	}

	if c.logger.Core().Enabled(zap.DebugLevel) {
		c.logger.Debug(formatTrace(q, statusCode, body))
	}

	if statusCode != http.StatusOK {
		return "", &RequestError{StatusCode: statusCode, Body: body}
	}

	return body, nil
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.RetryWait
	b.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.cfg.MaxRetries)), ctx)
}

// redact strips the API key from the URL carried by transport errors.
func (c *Client) redact(q *Query, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = c.cfg.BaseURL + "?" + q.values(redactedAPIKey).Encode()
	}
	return err
}

func (c *Client) observe(action Action, start time.Time, err error) {
	code := errorCode(err)
	c.metrics.ObserveRequest(string(action), code, time.Since(start))

	var pe *ProviderError
	if errors.As(err, &pe) && pe.Code != "" && pe.Kind != ErrNoSMS {
		c.metrics.RecordProviderError(pe.Code)
	}
}

func (c *Client) GetNumber(ctx context.Context, req NumberRequest) (Number, error) {
	q := NewQuery(ActionGetNumber).
		Set(ParamService, req.Service).
		Set(ParamCountry, req.Country).
		SetIf(ParamMaxPrice, normalizePrice(req.MaxPrice)).
		SetIf(ParamOperator, req.Operator).
		SetIf(ParamPhoneException, req.PhoneException).
		SetIf(ParamReferral, c.cfg.Referral)

	fields, err := c.SendListRequest(ctx, q, SuccessCodeNumber, "")
	if err != nil {
		return Number{}, err
	}

	if err := requireFields(fields, 3); err != nil {
		return Number{}, err
	}

	return Number{ID: fields[1], Phone: fields[2]}, nil
}

func (c *Client) SetStatus(ctx context.Context, status ActivationStatus, id string) (string, error) {
	q := NewQuery(ActionSetStatus).
		Set(ParamStatus, string(status)).
		Set(ParamID, id)

	fields, err := c.SendListRequest(ctx, q, "", "")
	if err != nil {
		return "", err
	}

	return strings.Join(fields, fieldSeparator), nil
}

func (c *Client) GetStatus(ctx context.Context, id string) (string, error) {
	q := NewQuery(ActionGetStatus).Set(ParamID, id)

	fields, err := c.SendListRequest(ctx, q, "", "")
	if err != nil {
		return "", err
	}

	return strings.Join(fields, fieldSeparator), nil
}

// GetSMS returns the received code, or ErrNoSMS while the provider is still
// waiting for it.
func (c *Client) GetSMS(ctx context.Context, id string) (string, error) {
	q := NewQuery(ActionGetStatus).Set(ParamID, id)

	fields, err := c.SendListRequest(ctx, q, SuccessCodeSMS, NoSMSCode)
	if err != nil {
		return "", err
	}

	if err := requireFields(fields, 2); err != nil {
		return "", err
	}

	return fields[1], nil
}

func (c *Client) CheckSMS(ctx context.Context, id string) (SMSResult, error) {
	code, err := c.GetSMS(ctx, id)
	if errors.Is(err, ErrNoSMS) {
		return SMSResult{Pending: true}, nil
	}
	if err != nil {
		return SMSResult{}, err
	}

	return SMSResult{Code: code}, nil
}

func (c *Client) GetBalance(ctx context.Context) (Balance, error) {
	q := NewQuery(ActionGetBalance)

	fields, err := c.SendListRequest(ctx, q, SuccessCodeAccess, "")
	if err != nil {
		return Balance{}, err
	}

	if err := requireFields(fields, 2); err != nil {
		return Balance{}, err
	}

	return Balance{Amount: fields[1]}, nil
}

func (c *Client) GetPrices(ctx context.Context, service, country string) (json.RawMessage, error) {
	q := NewQuery(ActionGetPrices).
		Set(ParamService, service).
		Set(ParamCountry, country)

	return c.SendJSONRequest(ctx, q)
}

func (c *Client) GetOperators(ctx context.Context, country string) (json.RawMessage, error) {
	q := NewQuery(ActionGetOperators).SetIf(ParamCountry, country)

	return c.SendJSONRequest(ctx, q)
}

func (c *Client) CountryCode(iso string) (string, error) {
	return CountryCode(iso)
}

func (c *Client) CountryISO(code, def string) string {
	return CountryISO(code, def)
}

func requireFields(fields []string, n int) error {
	if len(fields) >= n {
		return nil
	}

	return &RequestError{
		StatusCode: http.StatusOK,
		Body:       strings.Join(fields, fieldSeparator),
		Err:        fmt.Errorf("%w: want %d fields, got %d", errMalformedResponse, n, len(fields)),
	}
}

// normalizePrice returns price in canonical form, or "" unless it is a
// positive decimal.
func normalizePrice(price string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || !d.IsPositive() {
		return ""
	}

	return d.String()
}
