package domain

// Country is a supported market
type Country struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Currency Currency `json:"currency"`
	Flag     string   `json:"flag"`
}

// Vendor is a store operating in a country
type Vendor struct {
	Name    string `json:"name"`
	BaseURL string `json:"baseUrl"`
}

// ExampleSearch is a preset search offered to clients
type ExampleSearch struct {
	Label   string `json:"label"`
	Country string `json:"country"`
	Query   string `json:"query"`
}
