// Package model defines domain data structures used across the app: publish
// requests, tracks and release statuses, artifact kinds, and the publish task
// with its state enum. Structures are designed for direct use in the UI and
// explicit state transitions.
package model
