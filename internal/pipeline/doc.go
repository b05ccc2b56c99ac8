// Package pipeline drives a search through to rendered thumbnails.
//
// An Orchestrator turns a query into result items and hands them to a
// Renderer, which processes one item per scheduled step: validate, fetch,
// render into the next free grid cell. Every run carries a generation token.
// Starting a new run bumps the generation, and any step still scheduled for
// an older generation does nothing when it fires.
//
// Renderer and Orchestrator are not safe for concurrent use. They are meant
// to be driven from a single goroutine such as the one run by Loop.
package pipeline
