package models

import "time"

type ListingStatus string

const (
	ListingDraft    ListingStatus = "DRAFT"
	ListingPending  ListingStatus = "PENDING"
	ListingApproved ListingStatus = "APPROVED"
	ListingRejected ListingStatus = "REJECTED"
)

// Listing is a seller's submission awaiting (or past) admin review.
type Listing struct {
	ID          int64         `json:"id"`
	Book        Book          `json:"book"`
	SellerID    string        `json:"sellerId"`
	Status      ListingStatus `json:"status"`
	Note        string        `json:"note,omitempty"`
	SubmittedAt time.Time     `json:"submittedAt,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewedAt,omitempty"`
}
