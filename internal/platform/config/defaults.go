package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultDBMaxOpenConns = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"db.max_open_conns":    defaultDBMaxOpenConns,
		"db.conn_max_lifetime": "30m",

		"auth.token_ttl": "24h",

		"ai.model": "gemini-2.0-flash-exp",
		"ai.client.base_url":                        "https://generativelanguage.googleapis.com",
		"ai.client.timeout":                         "60s",
		"ai.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"ai.client.retry.initial_interval":          "100ms",
		"ai.client.retry.max_interval":              "10s",
		"ai.client.retry.multiplier":                defaultRetryMultiplier,
		"ai.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"ai.client.circuit_breaker.timeout":         "30s",
		"ai.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"ai.client.rate_limit.requests_per_second":  0,
		"ai.client.rate_limit.burst_size":           1,

		"mail.client.base_url":                        "https://api.resend.com",
		"mail.client.timeout":                         "30s",
		"mail.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"mail.client.retry.initial_interval":          "100ms",
		"mail.client.retry.max_interval":              "10s",
		"mail.client.retry.multiplier":                defaultRetryMultiplier,
		"mail.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"mail.client.circuit_breaker.timeout":         "30s",
		"mail.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"mail.client.rate_limit.requests_per_second":  0,
		"mail.client.rate_limit.burst_size":           1,
		"mail.from": "AI 할 일 관리 <onboarding@resend.dev>",

		"sweep.overdue_after": "24h",

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
