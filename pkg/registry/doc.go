// Package registry provides a generic, type-safe, append-only registry for
// named items. Writers are serialized and readers never block each other;
// once registered an item is never replaced or removed, so values read by a
// caller stay valid for the life of the registry. A registry can be frozen
// after its initialization phase, after which every write fails.
package registry
