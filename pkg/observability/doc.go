/*
Package observability provides tools for monitoring the medcalc dispatcher.

It turns dispatch hooks into Prometheus metrics (runs by outcome, run latency,
resolution cache hits) and structured log lines, and exposes the registry
behind a /metrics handler.
*/
package observability
