// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. Each route declares a binding.Schema for its
// inputs; the registry wraps the route's pure handler so that it only runs
// against a fully-validated, fully-typed input set.
package api
