package models

import "time"

// User is a registered account. PasswordDigest holds the one-way digest of
// the password and is never serialized in API responses.
type User struct {
	ID             string    `dynamodbav:"id" db:"id" json:"id"`
	Username       string    `dynamodbav:"username" db:"username" json:"username"`
	PasswordDigest string    `dynamodbav:"passwordDigest" db:"password_digest" json:"-"`
	CreatedAt      time.Time `dynamodbav:"createdAt" db:"created_at" json:"createdAt"`
}
