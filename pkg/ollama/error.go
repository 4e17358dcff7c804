package ollama

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// classify converts an error from the HTTP client into ErrUnexpectedStatus
// (with the status code and response body), ErrUnreachable, or returns it
// unchanged
func classify(err error) error {
	if err == nil {
		return nil
	}

	var status httpresponse.Err
	var response httpresponse.ErrResponse
	switch {
	case errors.As(err, &status):
		return llmcheck.ErrUnexpectedStatus.Withf("%d - %s", int(status), statusBody(err, status))
	case errors.As(err, &response):
		return llmcheck.ErrUnexpectedStatus.Withf("%d - %s", response.Code, responseBody(response))
	case unreachable(err):
		return llmcheck.ErrUnreachable.With(err)
	default:
		return err
	}
}

// statusBody returns the response body carried by a status error. The
// client formats these as "<text>: <code> <text>: <body>", or without the
// body when the response was empty.
func statusBody(err error, status httpresponse.Err) string {
	body := err.Error()
	text := status.Error()
	for _, prefix := range []string{text, strconv.Itoa(int(status)) + " " + text} {
		if strings.TrimSpace(prefix) != "" && strings.HasPrefix(body, prefix) {
			body = strings.TrimLeft(strings.TrimPrefix(body, prefix), ": ")
		}
	}
	if body = strings.TrimSpace(body); body == "" {
		return http.StatusText(int(status))
	}
	return body
}

// responseBody returns the reason and detail of a structured error response
func responseBody(response httpresponse.ErrResponse) string {
	parts := make([]string, 0, 2)
	if response.Reason != "" {
		parts = append(parts, response.Reason)
	}
	if response.Detail != nil {
		parts = append(parts, fmt.Sprint(response.Detail))
	}
	if len(parts) == 0 {
		return http.StatusText(response.Code)
	}
	return strings.Join(parts, ": ")
}

// unreachable returns true if the endpoint could not be connected to
func unreachable(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return strings.Contains(err.Error(), "connection refused")
}
