// internal/models/content.go
package models

import "time"

type BlogAuthor struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Bio    string            `json:"bio"`
	Avatar string            `json:"avatar"`
	Social map[string]string `json:"social,omitempty"`
}

type BlogCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	CategoryID  string    `json:"category_id"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Featured    bool      `json:"featured"`
}

type EventType string

const (
	EventTypeWorkshop    EventType = "workshop"
	EventTypeCompetition EventType = "competition"
	EventTypeMeetup      EventType = "meetup"
	EventTypeSale        EventType = "sale"
	EventTypeLaunch      EventType = "launch"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Type        EventType `json:"type"`
	Image       string    `json:"image"`
	Price       float64   `json:"price,omitempty"`
	Capacity    int       `json:"capacity,omitempty"`
	Registered  int       `json:"registered,omitempty"`
	Featured    bool      `json:"featured"`
}

type PromotionType string

const (
	PromotionTypePercentage   PromotionType = "percentage"
	PromotionTypeFixed        PromotionType = "fixed"
	PromotionTypeBOGO         PromotionType = "bogo"
	PromotionTypeFreeShipping PromotionType = "free_shipping"
)

type Promotion struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Discount    string        `json:"discount"`
	Code        string        `json:"code,omitempty"`
	ValidUntil  time.Time     `json:"valid_until"`
	Image       string        `json:"image"`
	Type        PromotionType `json:"type"`
	Featured    bool          `json:"featured"`
	Category    string        `json:"category,omitempty"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Product  string `json:"product,omitempty"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

type FAQEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}
