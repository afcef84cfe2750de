package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The json tags are omitted on purpose: these structs are used by
// the repository layer, and handlers define separate response types so the
// password hash can never leak into an API response.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – salted SHA-256 hex digest of the password.
//  FullName     – optional display name (nil when never set).
//  CreatedAt    – timestamp of creation.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    FullName     *string   // users.full_name (nullable)
    CreatedAt    time.Time // users.created_at
}
