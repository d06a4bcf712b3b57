// Package streamtag holds the single marker used to seal the stream
// variant set. Every Go type that represents one of the eight closed
// stream shapes embeds Marker; the dispatcher then type-switches over
// concrete types instead of growing a subclass hierarchy (see DESIGN.md).
package streamtag

// Marker is embedded by each of the eight stream-variant types.
type Marker struct{}

func (Marker) isStreamVariant() {}

// Variant is satisfied only by types in this module that embed Marker.
// It is not meant to be implemented outside this module. The dispatcher
// does not refer to it; it type-switches on the concrete type for the
// actual behavior.
type Variant interface {
	isStreamVariant()
}
