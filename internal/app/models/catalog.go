package models

import "time"

type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	BookCount int    `json:"bookCount,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type School struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Book is a seller's listing of a physical used book.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"originalPrice,omitempty"`
	Condition     string    `json:"condition,omitempty"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Authors       []Author  `json:"authors,omitempty"`
	Category      *Category `json:"category,omitempty"`
	SellerID      string    `json:"sellerId,omitempty"`
	SellerName    string    `json:"sellerName,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

type Review struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"bookId"`
	Reviewer  string    `json:"reviewer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Slide is a homepage carousel entry managed from the admin console.
type Slide struct {
	ID       int64  `json:"id"`
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Ordinal  int    `json:"ordinal,omitempty"`
	Active   bool   `json:"active"`
}

// Page is the backend's pagination envelope for list endpoints.
// Page numbers are zero-based on the wire.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// DisplayPage is the one-based page number for rendering. An empty
// result set still reads as "page 1 of 1".
func (p Page[T]) DisplayPage() int {
	return p.Page + 1
}

func (p Page[T]) DisplayTotalPages() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// HasPrev and HasNext gate pager navigation so that out-of-range pages
// are never issued as navigable actions.
func (p Page[T]) HasPrev() bool {
	return p.Page > 0
}

func (p Page[T]) HasNext() bool {
	return p.Page+1 < p.TotalPages
}

// ClampPage normalizes a requested zero-based page index against a
// known page count. Negative requests land on the first page; requests
// past the end land on the last.
func ClampPage(requested, totalPages int) int {
	if requested < 0 {
		return 0
	}
	if totalPages > 0 && requested >= totalPages {
		return totalPages - 1
	}
	return requested
}
