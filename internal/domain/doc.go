// Package domain defines the core business entities of the fantasy-football
// game: users, roles, teams, and players, together with the validation rules
// that keep them consistent.
package domain
