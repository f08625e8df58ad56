// Package metrics owns the process-wide Prometheus registry for the bot.
//
// The metric set is fixed at construction: interaction, provider-error,
// command-error and general-exception counters, a response latency summary
// and an uptime gauge. Command handlers update it through the
// domain.Recorder methods, the Uptime task refreshes the gauge, and the HTTP
// layer serialises it with Render.
package metrics
