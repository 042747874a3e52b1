// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package chart defines the chart configuration consumed by the renderer and
the two translators that build it from request bodies.

# Configuration

Configuration follows the Chart.js document shape so that JSON callers can
post the same document they would hand to Chart.js:

	{
	  "type": "bar",
	  "data": {
	    "labels": ["2018", "2019"],
	    "datasets": [{"label": "A", "data": [1, 2], "backgroundColor": "red"}]
	  },
	  "options": {
	    "plugins": {"title": {"display": true, "text": "Revenue"}},
	    "scales": {"y": {"type": "logarithmic"}}
	  }
	}

# CSV Translation

TranslateCSV builds the same structure from header values and a
newline-delimited body:

	2018,2019      <- labels
	A              <- dataset 0 name
	1,2            <- dataset 0 values
	B              <- dataset 1 name
	3,4            <- dataset 1 values

Checks run in a fixed order and the first failure wins: chart type,
dataset count presence, dataset count value, scale types, body line count,
then each dataset in order. No partial configuration is ever returned.

# JSON Decoding

DecodeJSON parses a Chart.js document and runs Validate, so both ingestion
paths reject the same structural problems before anything is rendered.

# Errors

Every rejection is a *ValidationError whose Reason is one of the Err*
sentinels, so callers can branch with errors.Is and still show the
specific message to the client.

# Thread Safety

Everything in this package is a pure function of its inputs. A
Configuration is built per request and never shared.
*/
package chart
