// Package session resolves which development container the user ends up
// attached to.
//
// The resolver picks the best-matching local image for a partial selector;
// the controller owns the reuse-or-create decision and the bounded retry
// around starting a stopped container. All container state lives in the
// external engine; nothing here is persisted.
package session
