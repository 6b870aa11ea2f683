package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinSupplierNameLen is the minimum length, in runes, of a supplier name
// after trimming. Shorter names are treated as extraction noise and the
// candidate is dropped without an error.
const MinSupplierNameLen = 2

// ContactInfo holds the optional contact fields of a supplier.
// All fields may be empty.
type ContactInfo struct {
	Person  string `json:"person,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Wechat  string `json:"wechat,omitempty"`
	Address string `json:"address,omitempty"`
}

// Empty reports whether no contact field is set.
func (c ContactInfo) Empty() bool {
	return c == ContactInfo{}
}

// CustomerCase is one reference project or customer story of a supplier.
type CustomerCase struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ExtractedSupplier represents a supplier recovered from AI conversation
// text. Extraction produces ephemeral records: ID is left empty and the
// caller is responsible for assigning identity and persisting. The record
// is never mutated after construction.
type ExtractedSupplier struct {
	// ID is assigned by the caller on persistence, empty at extraction.
	ID string `json:"id,omitempty"`

	// OwnerID identifies the user who owns the conversation.
	OwnerID string `json:"ownerId,omitempty"`

	// SessionID identifies the conversation session, if any.
	SessionID string `json:"sessionId,omitempty"`

	// Name is the supplier's name. Required, at least two runes after
	// trimming.
	Name string `json:"name"`

	// FoundedDate is the founding date as written in the source text.
	FoundedDate string `json:"foundedDate,omitempty"`

	// BusinessDirection lists the supplier's lines of business, split
	// from a delimiter-separated source field.
	BusinessDirection []string `json:"businessDirection,omitempty"`

	// ContactInfo holds optional contact fields, nil when none were found.
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`

	// CustomerCases lists reference cases in source-text order.
	CustomerCases []CustomerCase `json:"customerCases,omitempty"`

	// Website is the supplier's site, when a tabular source carries one.
	Website string `json:"website,omitempty"`

	// SourceNote records provenance text from the source table, e.g.
	// which directory or search result the row came from.
	SourceNote string `json:"sourceNote,omitempty"`

	// Source records where the record came from. Always "ai" for
	// extracted suppliers.
	Source string `json:"source"`

	// CreatedAt is when the record was constructed.
	CreatedAt time.Time `json:"createdAt"`
}

// Valid reports whether the supplier passes the required-field check.
// Candidates failing this are discarded silently, not reported as errors.
func (s ExtractedSupplier) Valid() bool {
	return utf8.RuneCountInString(strings.TrimSpace(s.Name)) >= MinSupplierNameLen
}
