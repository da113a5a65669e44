package catalog

import "github.com/pricelens/backend/internal/domain"

// countries is the fixed set of supported markets
var countries = []domain.Country{
	{Code: "US", Name: "United States", Currency: domain.CurrencyUSD, Flag: "🇺🇸"},
	{Code: "IN", Name: "India", Currency: domain.CurrencyINR, Flag: "🇮🇳"},
	{Code: "UK", Name: "United Kingdom", Currency: domain.CurrencyGBP, Flag: "🇬🇧"},
	{Code: "JP", Name: "Japan", Currency: domain.CurrencyJPY, Flag: "🇯🇵"},
}

// vendors lists the stores per country, in the order used for mock listings
var vendors = map[string][]domain.Vendor{
	"US": {
		{Name: "Amazon", BaseURL: "https://www.amazon.com"},
		{Name: "Best Buy", BaseURL: "https://www.bestbuy.com"},
		{Name: "Walmart", BaseURL: "https://www.walmart.com"},
		{Name: "Target", BaseURL: "https://www.target.com"},
	},
	"IN": {
		{Name: "Amazon India", BaseURL: "https://www.amazon.in"},
		{Name: "Flipkart", BaseURL: "https://www.flipkart.com"},
		{Name: "Snapdeal", BaseURL: "https://www.snapdeal.com"},
		{Name: "Myntra", BaseURL: "https://www.myntra.com"},
	},
	"UK": {
		{Name: "Amazon UK", BaseURL: "https://www.amazon.co.uk"},
		{Name: "Currys", BaseURL: "https://www.currys.co.uk"},
		{Name: "Argos", BaseURL: "https://www.argos.co.uk"},
		{Name: "John Lewis", BaseURL: "https://www.johnlewis.com"},
	},
	"JP": {
		{Name: "Amazon Japan", BaseURL: "https://www.amazon.co.jp"},
		{Name: "Rakuten", BaseURL: "https://www.rakuten.co.jp"},
		{Name: "Yodobashi", BaseURL: "https://www.yodobashi.com"},
		{Name: "Bic Camera", BaseURL: "https://www.biccamera.com"},
	},
}

// examples are the preset searches shown next to the search form
var examples = []domain.ExampleSearch{
	{Label: "boAt Airdopes in India", Country: "IN", Query: "boAt Airdopes 161"},
	{Label: "iPhone 16 Pro in the US", Country: "US", Query: "iPhone 16 Pro"},
	{Label: "Galaxy S24 in the UK", Country: "UK", Query: "Samsung Galaxy S24"},
	{Label: "Nintendo Switch in Japan", Country: "JP", Query: "Nintendo Switch"},
}

const (
	inStock = domain.AvailabilityInStock
	limited = domain.AvailabilityLimitedStock
)

// sampleListings is keyed by "{country}_{family}". Not every pair is covered.
var sampleListings = map[string][]domain.Listing{
	// boAt Airdopes 161
	"US_boAt": {
		{Link: "#", Price: "35.00", Currency: domain.CurrencyUSD, ProductName: "boAt Airdopes 161 (Imported)", Vendor: "Third-party Importer", Availability: limited, Note: "Not officially available in US"},
		{Link: "#", Price: "42.00", Currency: domain.CurrencyUSD, ProductName: "boAt Airdopes 161 TWS (Import)", Vendor: "eBay Seller", Availability: limited, Note: "International shipping required"},
	},
	"IN_boAt": {
		{Link: "https://www.boat-lifestyle.com/products/airdopes-161", Price: "899.00", Currency: domain.CurrencyINR, ProductName: "boAt Airdopes 161 TWS Earbuds with 40H Playback", Vendor: "boAt Official Store", Availability: inStock},
		{Link: "https://www.flipkart.com/boat-airdopes-161", Price: "999.00", Currency: domain.CurrencyINR, ProductName: "boAt Airdopes 161 True Wireless Earbuds", Vendor: "Flipkart", Availability: inStock},
		{Link: "https://www.amazon.in/dp/boAtAirdopes161", Price: "1099.00", Currency: domain.CurrencyINR, ProductName: "boAt Airdopes 161 Wireless Earbuds", Vendor: "Amazon India", Availability: inStock},
	},
	"UK_boAt": {
		{Link: "#", Price: "28.00", Currency: domain.CurrencyGBP, ProductName: "boAt Airdopes 161 (Imported)", Vendor: "Import Specialist", Availability: limited, Note: "Not officially available in UK"},
	},
	"JP_boAt": {
		{Link: "#", Price: "4500.00", Currency: domain.CurrencyJPY, ProductName: "boAt Airdopes 161 (輸入品)", Vendor: "Import Store", Availability: limited, Note: "Not officially available in Japan"},
	},

	// iPhone 16 Pro
	"US_iPhone": {
		{Link: "https://www.apple.com/iphone-16-pro/", Price: "999.00", Currency: domain.CurrencyUSD, ProductName: "Apple iPhone 16 Pro 128GB Natural Titanium", Vendor: "Apple Store", Availability: inStock},
		{Link: "https://www.amazon.com/dp/iPhone16Pro", Price: "999.00", Currency: domain.CurrencyUSD, ProductName: "iPhone 16 Pro (128GB) - Natural Titanium", Vendor: "Amazon", Availability: inStock},
		{Link: "https://www.bestbuy.com/site/iphone-16-pro", Price: "999.00", Currency: domain.CurrencyUSD, ProductName: "Apple iPhone 16 Pro 128GB Unlocked", Vendor: "Best Buy", Availability: inStock},
	},
	"IN_iPhone": {
		{Link: "https://www.apple.com/in/iphone-16-pro/", Price: "119900.00", Currency: domain.CurrencyINR, ProductName: "Apple iPhone 16 Pro 128GB Natural Titanium", Vendor: "Apple Store India", Availability: inStock},
		{Link: "https://www.flipkart.com/apple-iphone-16-pro", Price: "119900.00", Currency: domain.CurrencyINR, ProductName: "Apple iPhone 16 Pro (128GB) Natural Titanium", Vendor: "Flipkart", Availability: inStock},
		{Link: "https://www.amazon.in/dp/iPhone16Pro", Price: "119900.00", Currency: domain.CurrencyINR, ProductName: "iPhone 16 Pro 128GB Natural Titanium", Vendor: "Amazon India", Availability: inStock},
	},
	"UK_iPhone": {
		{Link: "https://www.apple.com/uk/iphone-16-pro/", Price: "999.00", Currency: domain.CurrencyGBP, ProductName: "Apple iPhone 16 Pro 128GB Natural Titanium", Vendor: "Apple Store UK", Availability: inStock},
		{Link: "https://www.amazon.co.uk/dp/iPhone16Pro", Price: "999.00", Currency: domain.CurrencyGBP, ProductName: "iPhone 16 Pro (128GB) Natural Titanium", Vendor: "Amazon UK", Availability: inStock},
		{Link: "https://www.currys.co.uk/iphone-16-pro", Price: "999.00", Currency: domain.CurrencyGBP, ProductName: "Apple iPhone 16 Pro 128GB Unlocked", Vendor: "Currys", Availability: inStock},
	},
	"JP_iPhone": {
		{Link: "https://www.apple.com/jp/iphone-16-pro/", Price: "159800.00", Currency: domain.CurrencyJPY, ProductName: "Apple iPhone 16 Pro 128GB ナチュラルチタニウム", Vendor: "Apple Store Japan", Availability: inStock},
		{Link: "https://www.amazon.co.jp/dp/iPhone16Pro", Price: "159800.00", Currency: domain.CurrencyJPY, ProductName: "iPhone 16 Pro (128GB) ナチュラルチタニウム", Vendor: "Amazon Japan", Availability: inStock},
		{Link: "https://www.yodobashi.com/iphone-16-pro", Price: "159800.00", Currency: domain.CurrencyJPY, ProductName: "Apple iPhone 16 Pro 128GB", Vendor: "Yodobashi Camera", Availability: inStock},
	},

	// Samsung Galaxy S24
	"US_Samsung": {
		{Link: "https://www.samsung.com/us/smartphones/galaxy-s24/", Price: "699.99", Currency: domain.CurrencyUSD, ProductName: "Samsung Galaxy S24 128GB Marble Gray", Vendor: "Samsung US", Availability: inStock},
		{Link: "https://www.amazon.com/samsung-galaxy-s24", Price: "419.00", Currency: domain.CurrencyUSD, ProductName: "Samsung Galaxy S24 128GB (Best Deal)", Vendor: "Amazon US", Availability: inStock},
		{Link: "https://www.bestbuy.com/samsung-galaxy-s24", Price: "549.99", Currency: domain.CurrencyUSD, ProductName: "Samsung Galaxy S24 128GB Unlocked", Vendor: "Best Buy", Availability: inStock},
	},
	"UK_Samsung": {
		{Link: "https://www.samsung.com/uk/smartphones/galaxy-s24/", Price: "450.00", Currency: domain.CurrencyGBP, ProductName: "Samsung Galaxy S24 128GB Onyx Black", Vendor: "Samsung UK", Availability: inStock},
		{Link: "https://www.idealo.co.uk/samsung-galaxy-s24", Price: "398.90", Currency: domain.CurrencyGBP, ProductName: "Samsung Galaxy S24 128GB (Best Deal)", Vendor: "Idealo UK", Availability: inStock},
		{Link: "https://www.amazon.co.uk/dp/SamsungS24", Price: "450.00", Currency: domain.CurrencyGBP, ProductName: "Samsung Galaxy S24 128GB Unlocked", Vendor: "Amazon UK", Availability: inStock},
	},
	"IN_Samsung": {
		{Link: "https://www.samsung.com/in/smartphones/galaxy-s24/", Price: "42900.00", Currency: domain.CurrencyINR, ProductName: "Samsung Galaxy S24 128GB Onyx Black", Vendor: "Samsung India", Availability: inStock},
		{Link: "https://www.flipkart.com/samsung-galaxy-s24", Price: "44999.00", Currency: domain.CurrencyINR, ProductName: "Samsung Galaxy S24 128GB", Vendor: "Flipkart", Availability: inStock},
		{Link: "https://www.amazon.in/samsung-galaxy-s24", Price: "43900.00", Currency: domain.CurrencyINR, ProductName: "Samsung Galaxy S24 128GB Marble Gray", Vendor: "Amazon India", Availability: inStock},
	},
	"JP_Samsung": {
		{Link: "https://www.samsung.com/jp/smartphones/galaxy-s24/", Price: "89800.00", Currency: domain.CurrencyJPY, ProductName: "Samsung Galaxy S24 128GB オニキスブラック", Vendor: "Samsung Japan", Availability: inStock},
		{Link: "https://www.amazon.co.jp/samsung-galaxy-s24", Price: "92000.00", Currency: domain.CurrencyJPY, ProductName: "Samsung Galaxy S24 128GB", Vendor: "Amazon Japan", Availability: inStock},
	},

	// Nintendo Switch
	"US_Nintendo": {
		{Link: "https://www.nintendo.com/us/gaming-systems/switch/", Price: "299.99", Currency: domain.CurrencyUSD, ProductName: "Nintendo Switch with Neon Blue and Neon Red Joy‑Con", Vendor: "Nintendo US", Availability: inStock},
		{Link: "https://www.walmart.com/nintendo-switch", Price: "299.00", Currency: domain.CurrencyUSD, ProductName: "Nintendo Switch w/ Neon Blue & Neon Red Joy-Con", Vendor: "Walmart", Availability: inStock},
		{Link: "https://www.bestbuy.com/nintendo-switch", Price: "299.99", Currency: domain.CurrencyUSD, ProductName: "Nintendo Switch Console with Gray Joy-Con", Vendor: "Best Buy", Availability: inStock},
	},
	"JP_Nintendo": {
		{Link: "https://www.nintendo.com/jp/hardware/switch/", Price: "29980.00", Currency: domain.CurrencyJPY, ProductName: "Nintendo Switch ネオンブルー・ネオンレッド", Vendor: "Nintendo Japan", Availability: inStock},
		{Link: "https://www.amazon.co.jp/dp/NintendoSwitch", Price: "32978.00", Currency: domain.CurrencyJPY, ProductName: "Nintendo Switch 本体 グレー", Vendor: "Amazon Japan", Availability: inStock},
		{Link: "https://www.yodobashi.com/nintendo-switch", Price: "29980.00", Currency: domain.CurrencyJPY, ProductName: "Nintendo Switch Joy-Con(L)/(R) グレー", Vendor: "Yodobashi Camera", Availability: inStock},
	},
	"UK_Nintendo": {
		{Link: "https://www.nintendo.co.uk/Nintendo-Switch/", Price: "279.99", Currency: domain.CurrencyGBP, ProductName: "Nintendo Switch with Neon Blue and Neon Red Joy-Con", Vendor: "Nintendo UK", Availability: inStock},
		{Link: "https://www.amazon.co.uk/nintendo-switch", Price: "279.99", Currency: domain.CurrencyGBP, ProductName: "Nintendo Switch Console with Gray Joy-Con", Vendor: "Amazon UK", Availability: inStock},
		{Link: "https://www.game.co.uk/nintendo-switch", Price: "279.99", Currency: domain.CurrencyGBP, ProductName: "Nintendo Switch Neon Console", Vendor: "GAME", Availability: inStock},
	},
	"IN_Nintendo": {
		{Link: "#", Price: "27500.00", Currency: domain.CurrencyINR, ProductName: "Nintendo Switch (Imported)", Vendor: "Local Importer", Availability: limited, Note: "Not officially available in India"},
		{Link: "#", Price: "29999.00", Currency: domain.CurrencyINR, ProductName: "Nintendo Switch Console (Import)", Vendor: "Gaming Store", Availability: limited, Note: "International warranty may not apply"},
	},
}
