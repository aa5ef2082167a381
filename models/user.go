package models

import "github.com/tidewatch/bluecarbon-backend/errs"

// User is an account record. There is no authentication surface over
// it yet; the schema exists for the storage contract only. Password
// holds a bcrypt hash, never the plaintext.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser carries the fields needed to create a user. Password is
// the plaintext credential and is hashed before storage.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u InsertUser) Validate() error {
	if u.Username == "" {
		return errs.NewMissingRequiredFieldError("username")
	}
	if u.Password == "" {
		return errs.NewMissingRequiredFieldError("password")
	}
	return nil
}
