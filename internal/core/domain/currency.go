package domain

// Currency represents a supported currency, keyed by its ISO-4217 code.
type Currency struct {
	Code          string `json:"code"`          // Primary Key (e.g., "USD")
	Title         string `json:"title"`         // e.g., "US Dollar"
	Symbol        string `json:"symbol"`        // e.g., "$"
	LongSymbol    string `json:"longSymbol"`    // e.g., "US$"
	DisplayFactor int32  `json:"displayFactor"` // minor units per major unit, e.g. 100 for cents
}
