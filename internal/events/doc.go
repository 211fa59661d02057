// Package events carries notifications about completed reviews from the
// review service to any number of handlers.
//
// The review service emits a ReviewEvent after a review has been committed.
// Handlers such as LoggingHandler react to it without the service knowing
// who is listening.
package events
