package smsactivate

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ErrCodeRequestFailed     = "REQUEST_FAILED"
	ErrCodeEmptyResponse     = "EMPTY_RESPONSE"
	ErrCodeNoSMS             = "NO_SMS"
	ErrCodeEarlyCancelDenied = "EARLY_CANCEL_DENIED"
	ErrCodeNoNumbers         = "NO_NUMBERS"
	ErrCodeWrongMaxPrice     = "WRONG_MAX_PRICE"
	ErrCodeBanned            = "BANNED"
	ErrCodeChannelsLimit     = "CHANNELS_LIMIT"
	ErrCodeUnknownCountry    = "UNKNOWN_COUNTRY"
	ErrCodeUnclassified      = "PROVIDER_ERROR"
	ErrCodeMissingAPIKey     = "MISSING_API_KEY"
	ErrCodeInvalidProxy      = "INVALID_PROXY"
)

// ErrClient is matched by every error kind returned from this package.
var ErrClient = errors.New("SMS_ACTIVATE_ERROR")

var (
	ErrRequestFailed     error = clientError(ErrCodeRequestFailed)
	ErrEmptyResponse     error = clientError(ErrCodeEmptyResponse)
	ErrNoSMS             error = clientError(ErrCodeNoSMS)
	ErrEarlyCancelDenied error = clientError(ErrCodeEarlyCancelDenied)
	ErrNoNumbers         error = clientError(ErrCodeNoNumbers)
	ErrWrongMaxPrice     error = clientError(ErrCodeWrongMaxPrice)
	ErrBanned            error = clientError(ErrCodeBanned)
	ErrChannelsLimit     error = clientError(ErrCodeChannelsLimit)
	ErrUnknownCountry    error = clientError(ErrCodeUnknownCountry)
	ErrUnclassified      error = clientError(ErrCodeUnclassified)
	ErrMissingAPIKey     error = clientError(ErrCodeMissingAPIKey)
	ErrInvalidProxy      error = clientError(ErrCodeInvalidProxy)
)

// errMalformedResponse marks a 200 response that lacks the fields an operation reads.
var errMalformedResponse = errors.New("malformed response")

type clientError string

func (e clientError) Error() string {
	return string(e)
}

func (e clientError) Is(target error) bool {
	return target == ErrClient
}

// providerErrors is evaluated in order; the first matching token wins.
var providerErrors = []struct {
	token string
	err   error
}{
	{ErrCodeEarlyCancelDenied, ErrEarlyCancelDenied},
	{ErrCodeNoNumbers, ErrNoNumbers},
	{ErrCodeWrongMaxPrice, ErrWrongMaxPrice},
	{ErrCodeBanned, ErrBanned},
	{ErrCodeChannelsLimit, ErrChannelsLimit},
}

// MapCodeToError returns the error kind for a provider status token.
func MapCodeToError(code string) error {
	for _, pe := range providerErrors {
		if code == pe.token {
			return pe.err
		}
	}

	return ErrUnclassified
}

// RequestError is a transport level failure: a non-200 status, a network
// error, or a body that could not be decoded.
type RequestError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("request failed: status code %d: %v: %s", e.StatusCode, e.Err, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("request failed: status code %d: %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("request failed: %v", e.Err)
	}
}

func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}

	return []error{ErrRequestFailed, e.Err}
}

// ProviderError is a 200 response whose status code is not the expected
// success marker.
type ProviderError struct {
	Kind   error
	Code   string
	Fields []string
}

func (e *ProviderError) Error() string {
	if len(e.Fields) == 0 {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Fields, ":"))
}

func (e *ProviderError) Unwrap() error {
	return e.Kind
}

// Detail returns the fields following the status code, e.g. the ban reason
// of a BANNED response.
func (e *ProviderError) Detail() string {
	if len(e.Fields) < 2 {
		return ""
	}

	return strings.Join(e.Fields[1:], ":")
}

// errorCode maps err onto a stable label for metrics and logs.
func errorCode(err error) string {
	if err == nil {
		return "success"
	}

	var ce clientError
	var pe *ProviderError
	switch {
	case errors.As(err, &pe):
		if k, ok := pe.Kind.(clientError); ok {
			return string(k)
		}
	case errors.Is(err, ErrRequestFailed):
		return ErrCodeRequestFailed
	case errors.As(err, &ce):
		return string(ce)
	}

	return "unknown"
}
