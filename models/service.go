package models

// ServiceFAQ is a question/answer pair specific to one treatment.
type ServiceFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service is immutable reference data describing one treatment offering.
type Service struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Icon             string       `json:"icon"`
	ShortDescription string       `json:"shortDescription"`
	Description      string       `json:"description"`
	PriceRange       string       `json:"priceRange"`
	Benefits         []string     `json:"benefits"`
	Image            string       `json:"image"`
	FAQs             []ServiceFAQ `json:"faqs"`
}

// PriceListEntry is one row of the pricing page.
type PriceListEntry struct {
	Title      string `json:"title"`
	PriceRange string `json:"priceRange"`
}
