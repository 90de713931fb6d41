package domain

// Package is a tour package as browsed by customers.
type Package struct {
	PackageID   string
	Name        string
	Description string
	Image       string
	Location    string
	Continent   string
	Airline     string
	Airport     string
	Period      string
	Price       string
	Quota       int
	Gallery     []string
	Itinerary   []ItineraryDay
}

type ItineraryDay struct {
	Day         int
	Title       string
	Description string
}

type Destination struct {
	DestinationID string
	Name          string
	Country       string
	Continent     string
	Image         string
	Description   string
	Rating        float64
}

type Article struct {
	ArticleID   string
	Title       string
	Author      string
	Image       string
	PublishedAt string
	Blocks      []string
}

type User struct {
	UserID   string
	FullName string
	Email    string
	Phone    string
	Avatar   string
	Role     string
}

type CommunityPost struct {
	PostID    string
	UserID    string
	Author    string
	Title     string
	Body      string
	CreatedAt string
	Likes     int
}

// ReviewDraft is a locally cached, unsubmitted review for a destination.
type ReviewDraft struct {
	DestinationID string `json:"destination_id"`
	Rating        int    `json:"rating"`
	Body          string `json:"body"`
}
