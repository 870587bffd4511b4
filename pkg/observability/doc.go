/*
Package observability provides monitoring for the turing engine.

It turns engine lifecycle events into Prometheus metrics and structured log
records. Both are exposed as domain.LifecycleHooks so they can be combined
and passed to turing.WithLifecycleHooks.
*/
package observability
