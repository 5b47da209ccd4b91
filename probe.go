package main

import (
	"context"
	"net/http"
	"time"
)

// probeFunc reports whether a URL answers a HEAD request with 200.
// Injected into the diagram tool so tests can substitute a fake.
type probeFunc func(ctx context.Context, url string) bool

// newHTTPProbe returns a probe backed by an http.Client with the given timeout.
// Any transport error or non-200 status maps to false, never to an error.
func newHTTPProbe(timeout time.Duration) probeFunc {
	client := &http.Client{Timeout: timeout}
	return func(ctx context.Context, url string) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}
}
