package entities

// MarketPrice is one live price offer found for a product or spare part.
type MarketPrice struct {
	Title     string `json:"title"`
	Price     string `json:"price"`
	Source    string `json:"source"`
	Link      string `json:"link,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ProductPrices is the result of identifying a product in an image and pricing it.
type ProductPrices struct {
	ProductName string        `json:"productName"`
	Prices      []MarketPrice `json:"prices"`
}
