package model

// Package model defines domain data structures used across the app: raw search
// result items, validated entries, renderable images and the per-run state of
// the incremental renderer. Structures are designed for explicit state
// transitions driven by the pipeline package.
