// Package service contains the application services that orchestrate the
// domain logic: board ranking, the selection event pipeline, and user
// registration/guardian binding.
package service
