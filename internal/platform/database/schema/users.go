// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserTable represents the 'users' table
type UserTable struct {
	Table     string
	Username  string
	Name      string
	AvatarURL string
}

// User is the schema definition for users
var User = UserTable{
	Table:     "users",
	Username:  "username",
	Name:      "name",
	AvatarURL: "avatar_url",
}
