// Package mongo provides MongoDB connection management with environment-driven
// configuration, retry logic for transient startup failures, and a health check
// helper for orchestration probes.
package mongo
