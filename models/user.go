// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that can bookmark characters and planets.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"id" yaml:"-"`

	// Email is the unique user email.
	Email string `json:"email" yaml:"email"`

	// Password stores the password representation (bcrypt hash once persisted).
	// It is never serialized to JSON.
	Password string `json:"-" yaml:"password"`

	// IsActive reports whether the account is enabled.
	// Not part of the transport representation.
	IsActive bool `json:"-" yaml:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
