// Package http contains the transport handlers: the report upload
// endpoint and the health/status endpoints. Handlers validate input,
// delegate to services and render responses; no pipeline logic lives
// here.
package http
