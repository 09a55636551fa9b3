// Package errors provides the structured, coded error system used across
// acss. Each error carries a stable code (E001, E100, ...) registered in a
// closed template registry, plus optional detail, suggestion, and
// documentation link for terminal display.
//
// Renderer errors (E001-E099) correspond to programmer mistakes at the
// render call site and are surfaced to the caller, never recovered.
package errors
