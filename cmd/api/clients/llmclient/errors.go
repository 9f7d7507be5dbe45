package llmclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ErrorKind is the closed classification set for provider-call failures.
// Kinds are produced at the transport call site rather than inferred later
// from error text; ClassifyMessage exists only as a fallback for errors that
// reach the retry loop unwrapped.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindTimeout    ErrorKind = "timeout"
	KindServer     ErrorKind = "server"
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindUnknown    ErrorKind = "unknown"
)

// Retryable reports whether a kind is worth retrying with backoff.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindNetwork, KindTimeout, KindServer:
		return true
	}
	return false
}

// CallError wraps a provider-call failure with its kind and, when the failure
// came from an HTTP status, the status code and a body snippet.
type CallError struct {
	Kind   ErrorKind
	Status int
	Body   string
	Err    error
}

func (e *CallError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider request failed: kind=%s status=%d body=%s", e.Kind, e.Status, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("provider request failed: kind=%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("provider request failed: kind=%s", e.Kind)
}

func (e *CallError) Unwrap() error { return e.Err }

// statusError builds a CallError from a non-2xx response status.
func statusError(status int, body string) *CallError {
	kind := KindUnknown
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status >= 500:
		kind = KindServer
	case status == http.StatusTooManyRequests:
		// 429 behaves like a transient server-side condition
		kind = KindServer
	case status >= 400:
		kind = KindValidation
	}
	return &CallError{Kind: kind, Status: status, Body: body}
}

// transportError builds a CallError from a transport-level failure.
func transportError(err error) *CallError {
	kind := KindNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	} else if errors.As(err, &netErr) && netErr.Timeout() {
		kind = KindTimeout
	}
	return &CallError{Kind: kind, Err: err}
}

// Classify resolves the kind of any error coming out of a provider call.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return ClassifyMessage(err.Error())
}

// ClassifyMessage 는 에러 메시지 문자열만으로 분류하는 fallback 이다.
// 원본 구현의 substring 매칭을 유지하되, 태깅된 에러가 항상 우선한다.
func ClassifyMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline"):
		return KindTimeout
	case strings.Contains(lower, "unauthorized") || strings.Contains(lower, "forbidden") ||
		strings.Contains(lower, "401") || strings.Contains(lower, "403"):
		return KindAuth
	case strings.Contains(lower, "network") || strings.Contains(lower, "connection refused") ||
		strings.Contains(lower, "no such host") || strings.Contains(lower, "connection reset"):
		return KindNetwork
	case strings.Contains(lower, "500") || strings.Contains(lower, "502") ||
		strings.Contains(lower, "503") || strings.Contains(lower, "server"):
		return KindServer
	case strings.Contains(lower, "400") || strings.Contains(lower, "invalid") ||
		strings.Contains(lower, "validation"):
		return KindValidation
	default:
		return KindUnknown
	}
}
