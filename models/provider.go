package models

import "time"

// Review is a single customer review embedded in a provider document.
// A provider holds at most one review per distinct user.
type Review struct {
	UserID  string    `bson:"userId" json:"userId"`
	Rating  float64   `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Date    time.Time `bson:"date" json:"date"`
}

// PriceRange is a provider's advertised price band.
type PriceRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// Provider represents an entity offering one or more services.
// Rating is derived: it always equals the arithmetic mean of the embedded
// reviews (0 when there are none) and is only written by the rating service.
type Provider struct {
	ID             string     `bson:"id" json:"id"`
	Name           string     `bson:"name" json:"name"`
	Email          string     `bson:"email" json:"email,omitempty"`
	Phone          string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string     `bson:"address,omitempty" json:"address,omitempty"`
	Services       []string   `bson:"services" json:"services"`
	Location       string     `bson:"location,omitempty" json:"location,omitempty"`
	Experience     int        `bson:"experience" json:"experience"`
	PriceRange     PriceRange `bson:"priceRange" json:"priceRange"`
	Rating         float64    `bson:"rating" json:"rating"`
	Reviews        []Review   `bson:"reviews" json:"reviews"`
	ReportedBy     []string   `bson:"reportedBy" json:"reportedBy"`
	IsVerified     bool       `bson:"isVerified" json:"isVerified"`
	ProfilePicture string     `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}
