// Package preview implements the component gallery development server.
//
// The server renders one sample per supported element variant plus the
// packaged components, serves the configured theme stylesheets, and
// pushes live-reload messages over WebSocket when a stylesheet changes
// on disk. Request metrics are exported at /metrics.
package preview
