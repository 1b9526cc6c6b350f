package models

import "time"

// Favorite kinds. Any other value is rejected before persistence.
const (
	KindCity    = "city"
	KindCountry = "country"
)

// Favorite is a saved city or country belonging to a single user.
// OwnerUsername is set at creation and never changes; only the owner may
// delete the record.
type Favorite struct {
	ID            string    `dynamodbav:"id" db:"id" json:"id"`
	OwnerUsername string    `dynamodbav:"ownerUsername" db:"owner_username" json:"ownerUsername"`
	Kind          string    `dynamodbav:"kind" db:"kind" json:"kind"`
	Label         string    `dynamodbav:"label" db:"label" json:"label"`
	CreatedAt     time.Time `dynamodbav:"createdAt" db:"created_at" json:"createdAt"`
}
