// Package editor provides the host editor surface that extensions
// consume: buffers with liveness queries, windows with view state,
// and pre-operation hooks on display changes and window destruction.
//
// The object model is deliberately small. A Buffer is an open document
// independent of display; a Window shows exactly one buffer at a time
// together with a scroll offset and cursor position; the Registry owns
// buffers and answers the "is this id still open" question for ids
// held elsewhere. Identity is by uuid, never reused, so stale handles
// fail validity checks instead of aliasing.
//
// Everything runs synchronously on the caller's goroutine. Hooks for
// an operation complete before the operation mutates any state, which
// is the ordering extensions such as backbuffer rely on to capture
// outgoing view state.
package editor
