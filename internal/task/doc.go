// Package task runs background jobs on a schedule. Its only job today is the
// daily review digest, which summarises the card collection and logs it.
package task
