package domain

// LineItem is one row of a hosted checkout page. UnitAmount is in minor units.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type CheckoutSession struct {
	ID  string
	URL string
}

type Attachment struct {
	Filename string
	Content  []byte
}
