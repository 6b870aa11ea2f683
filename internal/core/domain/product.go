package domain

import (
	"net/url"
	"strings"
	"time"
)

// Product defaults applied at construction.
const (
	DefaultCurrency      = "CNY"
	DefaultProductRating = 3

	// ProductStatusPending is the fixed status of a freshly extracted
	// product. Review and approval happen downstream.
	ProductStatusPending = "pending"

	// SourceAI marks records recovered from AI conversation text.
	SourceAI = "ai"
)

// PlatformOther is the platform label for purchase URLs that match no
// known marketplace.
const PlatformOther = "其他"

// platformHosts maps marketplace host substrings to display labels.
// Matched against the URL host in declaration order.
var platformHosts = []struct {
	host  string
	label string
}{
	{"taobao", "淘宝"},
	{"tmall", "天猫"},
	{"jd", "京东"},
	{"pinduoduo", "拼多多"},
	{"yangkeduo", "拼多多"},
}

// ExtractedProduct represents a wishlist product recovered from AI
// conversation text. Like suppliers, products are ephemeral at
// extraction: ID is empty and the record is never mutated after
// construction.
type ExtractedProduct struct {
	ID        string `json:"id,omitempty"`
	OwnerID   string `json:"ownerId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`

	// Name is the product name. Required.
	Name string `json:"name"`

	// Price is the unit price. A product is only accepted when Price is
	// positive or PurchaseURL is non-empty.
	Price float64 `json:"price"`

	// PurchaseURL is the product page, if one was found.
	PurchaseURL string `json:"purchaseUrl,omitempty"`

	// Currency defaults to CNY.
	Currency string `json:"currency"`

	// Platform is derived from the PurchaseURL host. Empty without a URL.
	Platform string `json:"platform,omitempty"`

	Description    string            `json:"description,omitempty"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	Category       string            `json:"category,omitempty"`
	Brand          string            `json:"brand,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Notes          string            `json:"notes,omitempty"`

	Rating float64 `json:"rating"`
	Status string  `json:"status"`
	Source string  `json:"source"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProduct constructs an extracted product with defaults applied:
// currency CNY, rating 3, status pending, source ai, platform derived
// from the purchase URL, and equal creation/update timestamps.
func NewProduct(name string, price float64, purchaseURL string) ExtractedProduct {
	now := time.Now()
	return ExtractedProduct{
		Name:        strings.TrimSpace(name),
		Price:       price,
		PurchaseURL: purchaseURL,
		Currency:    DefaultCurrency,
		Platform:    PlatformFromURL(purchaseURL),
		Rating:      DefaultProductRating,
		Status:      ProductStatusPending,
		Source:      SourceAI,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Acceptable reports whether the product passes the required-field check:
// a non-empty name plus either a positive price or a purchase URL.
// Candidates failing this are discarded silently.
func (p ExtractedProduct) Acceptable() bool {
	if strings.TrimSpace(p.Name) == "" {
		return false
	}
	return p.Price > 0 || p.PurchaseURL != ""
}

// PlatformFromURL derives the marketplace label from a purchase URL.
// Unknown hosts map to PlatformOther; an empty URL yields an empty label.
func PlatformFromURL(purchaseURL string) string {
	if purchaseURL == "" {
		return ""
	}
	host := purchaseURL
	if u, err := url.Parse(purchaseURL); err == nil && u.Host != "" {
		host = u.Host
	}
	host = strings.ToLower(host)
	for _, p := range platformHosts {
		if strings.Contains(host, p.host) {
			return p.label
		}
	}
	return PlatformOther
}
