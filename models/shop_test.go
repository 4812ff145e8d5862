package models

import (
	"testing"
	"time"
)

func TestNewShopRecordDefaults(t *testing.T) {
	id := ShopIdentity{Name: "ABC Store", Latitude: 26.2183, Longitude: 78.1828}
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	// All optional fields absent.
	r := NewShopRecord(id, ShopDetails{}, now)

	if r.OwnerName != "NA" || r.Email != "NA" {
		t.Errorf("reserved fields: ownerName=%q email=%q; want NA/NA", r.OwnerName, r.Email)
	}
	if r.Category != "Others" {
		t.Errorf("category default = %q; want Others", r.Category)
	}
	if r.ContactNumber != "" || r.Address != "" || r.ShopImage != "" {
		t.Errorf("optional defaults not empty: %q %q %q", r.ContactNumber, r.Address, r.ShopImage)
	}
	if r.ShopName != "ABC Store" || r.Latitude != 26.2183 || r.Longitude != 78.1828 {
		t.Errorf("identity not carried: %q %v %v", r.ShopName, r.Latitude, r.Longitude)
	}
}

func TestNewShopRecordTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	r := NewShopRecord(ShopIdentity{Name: "X"}, ShopDetails{}, now)

	want := "2025-03-14T04:00:00Z"
	if r.CreatedAt != want {
		t.Errorf("createdAt = %q; want %q (UTC with trailing Z)", r.CreatedAt, want)
	}
	if r.UpdatedAt != r.CreatedAt {
		t.Errorf("updatedAt = %q; want same as createdAt %q", r.UpdatedAt, r.CreatedAt)
	}
}

func TestNewShopRecordPresentFields(t *testing.T) {
	details := ShopDetails{
		Category: Some("Cafe"),
		Phone:    Some("9812345678"),
		Address:  Some("12 Main Road"),
		Image:    Some("https://lh5.googleusercontent.com/p/photo.jpg"),
	}
	r := NewShopRecord(ShopIdentity{Name: "Brew Stop"}, details, time.Now())

	if r.Category != "Cafe" || r.ContactNumber != "9812345678" {
		t.Errorf("present fields dropped: %q %q", r.Category, r.ContactNumber)
	}
	if r.Address != "12 Main Road" || r.ShopImage != "https://lh5.googleusercontent.com/p/photo.jpg" {
		t.Errorf("present fields dropped: %q %q", r.Address, r.ShopImage)
	}
}

func TestFieldOr(t *testing.T) {
	if got := None().Or("fallback"); got != "fallback" {
		t.Errorf("None().Or = %q; want fallback", got)
	}
	if got := Some("value").Or("fallback"); got != "value" {
		t.Errorf("Some().Or = %q; want value", got)
	}
	// A present empty value is still a value, not an absence.
	if got := Some("").Or("fallback"); got != "" {
		t.Errorf("Some(\"\").Or = %q; want empty", got)
	}
}
