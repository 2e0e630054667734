// Package cache provides the bounded LRU cache the compositor keeps
// generated pattern tiles in.
//
// Tiles are pure functions of their pattern name, colours and canvas
// height, so a tile can be reused by every render that asks for the same
// combination. Cached values must be treated as read-only.
package cache
