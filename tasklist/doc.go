// Package tasklist owns an ordered collection of tasks and mediates every
// change to it. Each successful mutation is followed by exactly one snapshot
// emission to the registered views, so a view never has to ask whether it is
// stale.
//
// Indexes handed out in a snapshot are positional. They stay valid until the
// next mutation; after a delete every later task shifts down by one.
//
// A List is not safe for concurrent use. Callers with concurrent producers
// must serialize access themselves.
package tasklist
