// Package resilience provides reliability patterns for calls that leave the
// process: the showcase listing fetch and notification webhook delivery.
//
// Subpackages:
//   - circuitbreaker: gobreaker-based circuit breakers for external APIs
//   - retry: retry logic with exponential backoff and jitter
package resilience
