package model

import "time"

// Package is a fixed add-on tier with a flat surcharge on top of the
// venue base price. The surcharges are the backend's own price table
// and must match it exactly.
type Package string

const (
	PackageStandard Package = "Standard"
	PackageDeluxe   Package = "Deluxe"
	PackagePremium  Package = "Premium"
)

func Packages() []Package {
	return []Package{PackageStandard, PackageDeluxe, PackagePremium}
}

// Surcharge returns the flat add-on price of the package in PHP.
func (p Package) Surcharge() int {
	switch p {
	case PackageDeluxe:
		return 6500
	case PackagePremium:
		return 10000
	default:
		return 2000 // Standard
	}
}

func ParsePackage(s string) (Package, bool) {
	for _, p := range Packages() {
		if s == string(p) {
			return p, true
		}
	}
	return "", false
}

// TimeFormat is the booking duration category.
type TimeFormat string

const (
	TimeFormatDay       TimeFormat = "Day"
	TimeFormatNight     TimeFormat = "Night"
	TimeFormatWholeDay  TimeFormat = "Whole Day"
	TimeFormatOvernight TimeFormat = "Overnight"
)

func TimeFormats() []TimeFormat {
	return []TimeFormat{TimeFormatDay, TimeFormatNight, TimeFormatWholeDay, TimeFormatOvernight}
}

func ParseTimeFormat(s string) (TimeFormat, bool) {
	for _, f := range TimeFormats() {
		if s == string(f) {
			return f, true
		}
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentStatusNotPaid PaymentStatus = "Not Paid"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Booking is a confirmed submission carried into the payment screen.
// The ID is assigned by the backend at creation; payment status stays
// NotPaid until the backend reports a successful capture.
type Booking struct {
	ID            string
	VenueID       string
	VenueName     string
	VenuePrice    int
	EventType     Category
	UserID        int64
	UserName      string
	Date          time.Time
	TimeFormat    TimeFormat
	Package       Package
	TotalPrice    int
	PaymentStatus PaymentStatus
}
