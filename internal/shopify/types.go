package shopify

// ProductInput is the GraphQL ProductInput payload for productCreate.
type ProductInput struct {
	Title           string         `json:"title"`
	DescriptionHTML string         `json:"descriptionHtml,omitempty"`
	Vendor          string         `json:"vendor,omitempty"`
	Status          string         `json:"status,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	Options         []string       `json:"options,omitempty"`
	Variants        []VariantInput `json:"variants,omitempty"`
	Images          []ImageInput   `json:"images,omitempty"`
}

// VariantInput is one variant row inside ProductInput. Options holds the
// selected value per product option, in option order.
type VariantInput struct {
	Price   string   `json:"price"`
	Options []string `json:"options,omitempty"`
	SKU     string   `json:"sku,omitempty"`
}

// ImageInput attaches a remote image by URL.
type ImageInput struct {
	Src string `json:"src"`
}

// Product is the subset of fields we read back from product mutations.
type Product struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Variant is one variant read back from a product query.
type Variant struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

// UserError is Shopify's field-level mutation error.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}
