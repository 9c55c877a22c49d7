// Package instrumentation wires OpenTelemetry metrics into the pipeline.
//
// The provider owns the meter provider and the Metrics recorder. The
// exporter is chosen through the environment; the default is "none" so a
// stdio MCP server stays silent on stdout. All Record methods are safe on a
// zero Metrics value, which keeps call sites free of nil checks when
// instrumentation is disabled.
package instrumentation
