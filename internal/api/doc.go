// Package api hosts the HTTP server and REST handlers in front of the scrape
// service. Notable routes:
//   - GET /healthz and /readyz for Kubernetes probes.
//   - GET /metrics for Prometheus scraping.
//   - GET /v1/fighters/{name} to scrape a single athlete profile.
//   - GET /v1/champions and /v1/champions/{division} for titleholders.
//   - GET /v1/divisions and /v1/fields to list the known divisions and
//     extractable profile fields.
package api
