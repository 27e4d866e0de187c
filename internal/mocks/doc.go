// Package mocks provides hand-written test doubles for the interfaces the
// services and handlers depend on. Each mock exposes function fields so a
// test can override exactly the calls it cares about; unset fields fall
// back to simple in-memory defaults.
package mocks
