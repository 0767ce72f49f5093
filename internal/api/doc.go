// Package api contains the HTTP handlers, request/response models, and error
// mapping for the REST surface. Handlers translate between HTTP and the
// service layer; all authorization decisions live in the services.
package api
