// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package metrics provides Prometheus instrumentation for Plotwright.

All collectors are registered on the default registry through promauto and
exposed by the admin router at /metrics.

# Metric Families

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}
  - api_auth_failures_total{reason}

Charts:
  - chart_rejections_total{source, reason}: translator and decoder rejections
  - chart_render_duration_seconds{chart_type}
  - chart_render_bytes{chart_type}: size of produced PNGs
  - chart_render_errors_total{chart_type, kind}

Render cache:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}
  - cache_entries{cache_type}, cache_evictions_total{cache_type}

Process:
  - app_info{version, go_version}, app_uptime_seconds

Endpoint labels always use the chi route pattern, never the raw path, so
unmatched paths collapse into a single "unmatched" series.
*/
package metrics
