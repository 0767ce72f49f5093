// Package service contains the application services orchestrating domain
// entities, stores, and business rules on behalf of the HTTP layer.
package service
