// Package service groups the application use cases. Each subpackage
// coordinates domain logic with the store interfaces for one area:
//
//   - review: due cards, review scheduling and statistics
//   - vocab: the vocabulary collection and promotion into review
//
// Services depend on store interfaces only, never on a concrete backend.
package service
