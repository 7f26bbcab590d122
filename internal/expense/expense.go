// Package expense defines the domain types for recorded expenses and the
// filter criteria used to narrow them.
package expense

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source tags how a record entered the system.
type Source string

const (
	SourceManual Source = "manual"
	SourcePhoto  Source = "photo"
	SourceVoice  Source = "voice"
)

// Placeholder labels for records missing a vendor or category.
const (
	NoVendorLabel      = "No vendor"
	UncategorizedLabel = "Uncategorized"
	UnknownDayLabel    = "unknown"
)

// Amount is a monetary value. Malformed or missing payload values decode
// to zero so a single bad record cannot poison a derived dataset.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func AmountFromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if err := a.Decimal.UnmarshalJSON(data); err != nil {
		a.Decimal = decimal.Decimal{}
	}

	return nil
}

// Date is a civil calendar date. It decodes both plain dates and RFC 3339
// timestamps, keeping only the date portion.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}

	return json.Marshal(d.Time.Format(time.DateOnly))
}

// Record represents a single recorded expense as delivered by the upstream
// API. It is a read-only view; derived structures are rebuilt from scratch
// on every request.
type Record struct {
	ID              string    `json:"id"`
	OwnerUserID     string    `json:"owner_user_id,omitempty"`
	Source          Source    `json:"source,omitempty"`
	Amount          Amount    `json:"amount"`
	Currency        string    `json:"currency,omitempty"`
	Vendor          string    `json:"vendor,omitempty"`
	DecryptedVendor string    `json:"decrypted_vendor,omitempty"`
	PurchaseDate    *Date     `json:"purchase_date,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	AIConfidence    float64   `json:"ai_confidence,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// DisplayVendor resolves the vendor label, preferring the plain vendor,
// then the decrypted one, then the placeholder.
func (r Record) DisplayVendor() string {
	if r.Vendor != "" {
		return r.Vendor
	}

	if r.DecryptedVendor != "" {
		return r.DecryptedVendor
	}

	return NoVendorLabel
}

// DisplayCategory resolves the category label for grouping.
func (r Record) DisplayCategory() string {
	if r.CategoryName != "" {
		return r.CategoryName
	}

	return UncategorizedLabel
}

// EffectiveDate is the purchase date when present, else the calendar date
// of creation. The boolean is false when neither is known.
func (r Record) EffectiveDate() (time.Time, bool) {
	if r.PurchaseDate != nil && !r.PurchaseDate.IsZero() {
		return r.PurchaseDate.Time, true
	}

	if !r.CreatedAt.IsZero() {
		created := r.CreatedAt.UTC()
		return time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// Day is the grouping key for daily aggregations.
func (r Record) Day() string {
	if t, ok := r.EffectiveDate(); ok {
		return t.Format(time.DateOnly)
	}

	return UnknownDayLabel
}

// Category represents an expense category.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Icon      string `json:"icon,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}
