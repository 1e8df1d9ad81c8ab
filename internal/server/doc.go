// Package server exposes User-Agent classification over HTTP.
//
// NewRouter builds a chi router with request IDs, real-IP resolution,
// Prometheus RED metrics, per-request browser detection, access logging and
// panic recovery. The router is served by pkg/httpserver.
package server
