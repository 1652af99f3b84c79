// Package bubble turns free text in a sequence.Container into tokens and
// manages token selection, editing and the keyboard-level behaviour of a
// bubble input.
//
// A Set is the model of one input. Its methods are total: invalid targets
// and missing selections are reported through bool/zero results, never
// errors or panics. Notifications (input changed, token set changed, edit
// requested) are coalesced per Set; see Config.Request.
package bubble
