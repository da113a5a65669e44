package domain

// Currency is an ISO 4217 currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// Availability describes the stock state of a listing
type Availability string

const (
	AvailabilityInStock      Availability = "in_stock"
	AvailabilityLimitedStock Availability = "limited_stock"
	AvailabilityOutOfStock   Availability = "out_of_stock"
)

// PlaceholderLink is used for listings without a real vendor page
const PlaceholderLink = "#"

// Listing is a single vendor's offer for a product in a specific country/currency
type Listing struct {
	Link         string       `json:"link"`
	Price        string       `json:"price"` // decimal string, e.g. "899.00"
	Currency     Currency     `json:"currency"`
	ProductName  string       `json:"productName"`
	Vendor       string       `json:"vendor"`
	Availability Availability `json:"availability"`
	Note         string       `json:"note,omitempty"`
}

// Family is the product family a query is classified into.
// It is only used as a key fragment into the static listings table.
type Family string

const (
	FamilyUnknown  Family = ""
	FamilyBoAt     Family = "boAt"
	FamilyIPhone   Family = "iPhone"
	FamilySamsung  Family = "Samsung"
	FamilyNintendo Family = "Nintendo"
)

// ListingKey builds the static table key for a country and family, e.g. "IN_boAt"
func ListingKey(countryCode string, family Family) string {
	return countryCode + "_" + string(family)
}
