package model

import "time"

// Recipe represents a row in the `recipes` table.  Every recipe belongs to
// exactly one user via OwnerID; the owner reference never changes through
// the public API and the database cascades deletion when the owner row is
// removed.
//
// Fields:
//  ID           – primary key identifier of the recipe.
//  OwnerID      – foreign key into users.id.
//  Title        – required display title.
//  Description  – optional free text (nil when absent).
//  Ingredients  – optional free text (nil when absent).
//  Instructions – optional free text (nil when absent).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – refreshed on every mutation.
type Recipe struct {
    ID           uint64    // recipes.id
    OwnerID      uint64    // recipes.owner_id
    Title        string    // recipes.title
    Description  *string   // recipes.description (nullable)
    Ingredients  *string   // recipes.ingredients (nullable)
    Instructions *string   // recipes.instructions (nullable)
    CreatedAt    time.Time // recipes.created_at
    UpdatedAt    time.Time // recipes.updated_at
}
