// Package editor provides a Bubble Tea bubble input component backed by the
// bubble package.
//
// The package is responsible for key and mouse handling, soft-wrapped
// rendering of text and token chips, frame-coalesced change notifications,
// clipboard integration and drag and drop between editors sharing a
// drag.Coordinator.
package editor
