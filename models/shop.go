package models

import "time"

// ShopRecord is the persisted unit, one document per unique shop in the
// "shops" collection. Records are inserted once and never mutated;
// createdAt and updatedAt carry the same value.
type ShopRecord struct {
	OwnerName     string  `bson:"ownerName" json:"ownerName"`
	ShopName      string  `bson:"shopName" json:"shopName"`
	ContactNumber string  `bson:"contactNumber" json:"contactNumber"`
	Email         string  `bson:"email" json:"email"`
	Category      string  `bson:"category" json:"category"`
	Address       string  `bson:"address" json:"address"`
	Latitude      float64 `bson:"latitude" json:"latitude"`
	Longitude     float64 `bson:"longitude" json:"longitude"`
	ShopImage     string  `bson:"shopImage" json:"shopImage"`
	CreatedAt     string  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     string  `bson:"updatedAt" json:"updatedAt"`
}

// Field is the result of one best-effort extraction: a value that may be
// absent. Absent fields fall back to their documented defaults when the
// record is built, so a single failed selector never drops a whole listing.
type Field struct {
	Value   string
	Present bool
}

// Some returns a present Field.
func Some(value string) Field {
	return Field{Value: value, Present: true}
}

// None returns an absent Field.
func None() Field {
	return Field{}
}

// Or returns the field value, or fallback when the field is absent.
func (f Field) Or(fallback string) string {
	if f.Present {
		return f.Value
	}
	return fallback
}

// ShopDetails holds the per-field extraction results from a detail page.
// Every field is optional; the zero value means nothing was extracted.
type ShopDetails struct {
	Category Field
	Phone    Field
	Address  Field
	Image    Field
}

// ShopIdentity is the part of a listing extracted from the results view:
// the display label plus the coordinate pair parsed from its detail URL.
// A listing without a parseable coordinate pair never becomes an identity.
type ShopIdentity struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// NewShopRecord combines an identity with partial detail extraction results
// into a complete record. Absent detail fields get their defaults: category
// "Others", phone/address/image empty. Owner name and email are reserved and
// always "NA". The timestamp is rendered as ISO-8601 UTC with a trailing "Z"
// and shared by createdAt and updatedAt.
func NewShopRecord(id ShopIdentity, details ShopDetails, now time.Time) *ShopRecord {
	ts := now.UTC().Format(time.RFC3339)

	return &ShopRecord{
		OwnerName:     "NA",
		ShopName:      id.Name,
		ContactNumber: details.Phone.Or(""),
		Email:         "NA",
		Category:      details.Category.Or("Others"),
		Address:       details.Address.Or(""),
		Latitude:      id.Latitude,
		Longitude:     id.Longitude,
		ShopImage:     details.Image.Or(""),
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}
