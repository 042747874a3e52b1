// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package cache stores rendered PNG images keyed by a digest of the chart
configuration and output size.

Two backends implement Store:

  - LRUCache: in-process, bounded by entry count, with per-entry TTL
  - BadgerStore: on-disk BadgerDB, entries expire via Badger's native TTL

New selects the backend from config.CacheConfig. The "none" backend returns
a nil Store, and callers render every request.

# Thread Safety

Both backends are safe for concurrent use. LRUCache guards its list with a
single mutex since Get reorders entries.

# Metrics

Lookups are counted in cache_hits_total and cache_misses_total with the
cache_type label set to "render_memory" or "render_badger".
*/
package cache
