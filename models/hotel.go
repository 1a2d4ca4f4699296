package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Currency is the closed set of currencies a hotel price can be listed in.
type Currency string

const (
	CurrencyXOF    Currency = "F XOF"
	CurrencyEuro   Currency = "Euro"
	CurrencyDollar Currency = "Dollar"
)

// Valid reports whether the currency belongs to the closed set.
func (c Currency) Valid() bool {
	return c == CurrencyXOF || c == CurrencyEuro || c == CurrencyDollar
}

// HotelStatus is the closed set of operational states of a hotel.
type HotelStatus string

const (
	HotelStatusActive     HotelStatus = "Active"
	HotelStatusClosed     HotelStatus = "Closed"
	HotelStatusRenovating HotelStatus = "Renovating"
)

// Valid reports whether the status belongs to the closed set.
func (s HotelStatus) Valid() bool {
	return s == HotelStatusActive || s == HotelStatusClosed || s == HotelStatusRenovating
}

// ImageList is a list of relative image paths stored as a single JSONB column.
// database/sql with the pgx stdlib driver has no native []string scanning,
// so the list round-trips through JSON.
type ImageList []string

// Value implements driver.Valuer by serializing the list to JSON.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner by deserializing a JSONB column value.
func (l *ImageList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ImageList", src)
	}
}

// Hotel represents a managed hotel record.
type Hotel struct {
	// HotelID is the internal unique identifier of the hotel.
	HotelID int64 `json:"id"`

	// Name is the unique display name of the hotel.
	Name string `json:"name"`

	// Address is the street address of the hotel.
	Address string `json:"address"`

	// Currency the price is listed in. Defaults to F XOF.
	Currency Currency `json:"devise"`

	// Price is the nightly price; never negative.
	Price float64 `json:"price"`

	// Images holds relative paths of uploaded hotel images,
	// served under the /uploads/ static prefix.
	Images ImageList `json:"images"`

	// ContactInfo is a free-form phone/email contact string.
	ContactInfo string `json:"contactInfo"`

	// Status is the operational state of the hotel. Defaults to Active.
	Status HotelStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Hotel model.
func (h Hotel) TableName() string {
	return "hotels"
}
