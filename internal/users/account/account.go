// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account exposes the registered users of the platform.

Usernames are the public identity: articles and comments reference their
author by username, and comment submission is rejected when the username is
unknown. The package serves the public user directory.
*/
package account

import "context"

// User is a registered member identified by a unique username.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Repository defines the persistence contract for users.
type Repository interface {
	// List returns every registered user.
	List(context context.Context) ([]*User, error)
}
