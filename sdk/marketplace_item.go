package sdk

import "time"

// Seller identifies who listed a marketplace item.
type Seller struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// MarketplaceItem represents a secondhand item listed for sale.
type MarketplaceItem struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Condition   string     `json:"condition"`
	Location    string     `json:"location"`
	Seller      Seller     `json:"seller"`
	Images      []string   `json:"images,omitempty"`
	Created     *time.Time `json:"created_at,omitempty"`
}

// MarketplaceItemSpec is the payload for creating or updating a listing.
type MarketplaceItemSpec struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    string   `json:"category,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Location    string   `json:"location,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// MarketplaceSelector filters marketplace listings.
type MarketplaceSelector struct {
	Category  string
	Condition string
	MinPrice  *float64
	MaxPrice  *float64
	Location  string
}

// MarketplaceItemList is a paged collection of marketplace listings.
type MarketplaceItemList struct {
	Items      []MarketplaceItem `json:"data"`
	Pagination PaginationMeta    `json:"pagination"`
}
