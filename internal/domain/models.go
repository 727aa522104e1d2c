package domain

import "github.com/shopspring/decimal"

// CurrencyINR is the only currency this module operates in.
const CurrencyINR = "INR"

// GSTBreakdown is the result of a GST calculation. For intra-state supply the
// tax splits evenly into CGST and SGST (each rounded independently, so their
// sum may differ from TotalGST by up to one paisa); for inter-state supply
// the whole tax is IGST.
type GSTBreakdown struct {
	BaseAmount   decimal.Decimal `json:"base_amount"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	TotalGST     decimal.Decimal `json:"total_gst"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	IsInterState bool            `json:"is_inter_state"`
}

// DiscountAmounts details how a discount decomposes across base and tax.
type DiscountAmounts struct {
	Type   DiscountType    `json:"type"`
	Value  decimal.Decimal `json:"value"`
	OnBase decimal.Decimal `json:"discount_on_base"`
	OnGST  decimal.Decimal `json:"discount_on_gst"`
	Total  decimal.Decimal `json:"total_discount"`
}

// Savings reports the customer-facing saving relative to the original
// tax-inclusive total.
type Savings struct {
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DiscountResult is the full before/after picture of a discount application.
type DiscountResult struct {
	Original GSTBreakdown    `json:"original"`
	Discount DiscountAmounts `json:"discount"`
	Final    GSTBreakdown    `json:"final"`
	Savings  Savings         `json:"savings"`
}

// DiscountTier is one rung of a quantity-based discount ladder.
type DiscountTier struct {
	MinQty      int             `json:"min_qty"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// BulkDiscountResult is the outcome of a quantity-based discount calculation.
// AppliedTier and Details are nil when no tier qualified.
type BulkDiscountResult struct {
	ItemPrice       decimal.Decimal `json:"item_price"`
	Quantity        int             `json:"quantity"`
	OriginalTotal   decimal.Decimal `json:"original_total"`
	AppliedTier     *DiscountTier   `json:"applied_tier,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percentage"`
	Details         *DiscountResult `json:"discount_details,omitempty"`
	FinalTotal      decimal.Decimal `json:"final_total"`
	FinalPerItem    decimal.Decimal `json:"final_per_item_price"`
}

// NormalizedAddress is a validated Indian address with canonical state data
// and cleaned PIN code.
type NormalizedAddress struct {
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	StateCode      string `json:"state_code"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
}

// OrderLine is a single priced line on an order; TotalPrice is tax-inclusive.
type OrderLine struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// LineBreakdown is the GST decomposition of one order line.
type LineBreakdown struct {
	LineID      string          `json:"line_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	BaseAmount  decimal.Decimal `json:"base_amount"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderGSTBreakdown aggregates per-line GST into order totals.
type OrderGSTBreakdown struct {
	Lines        []LineBreakdown `json:"lines"`
	BaseAmount   decimal.Decimal `json:"base_amount"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	TotalGST     decimal.Decimal `json:"total_gst"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	IsInterState bool            `json:"is_inter_state"`
}

// OrderData is the India-specific view of an order used for invoicing.
type OrderData struct {
	OrderID       string       `json:"order_id"`
	InvoiceNumber string       `json:"invoice_number"`
	CustomerGSTIN string       `json:"customer_gstin,omitempty"`
	IsB2B         bool         `json:"is_b2b"`
	PlaceOfSupply string       `json:"place_of_supply"`
	GST           GSTBreakdown `json:"gst"`
}

// Order is a gateway order as tracked by the mock gateway.
type Order struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
	Status   OrderStatus     `json:"status"`
}

// Payment is a single payment attempt against a gateway order. Every capture
// call produces a fresh Payment in a terminal state; there are no retries.
type Payment struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"order_id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	VPA              string          `json:"vpa"`
	Status           PaymentStatus   `json:"status"`
	ErrorCode        string          `json:"error_code,omitempty"`
	ErrorDescription string          `json:"error_description,omitempty"`
}

// PaymentInput is the caller-supplied request to take a UPI payment.
type PaymentInput struct {
	OrderID       string          `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        PaymentMethod   `json:"method"`
	VPA           string          `json:"upi_vpa"`
	Description   string          `json:"description"`
	CustomerEmail string          `json:"customer_email,omitempty"`
}

// UPIRequest is the wire shape handed to the gateway: amounts in paisa.
type UPIRequest struct {
	AmountPaisa int64  `json:"amount" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,eq=INR"`
	Method      string `json:"method" validate:"required,eq=upi"`
	VPA         string `json:"vpa" validate:"required"`
	OrderID     string `json:"order_id" validate:"required"`
	Description string `json:"description"`
}

// PaymentResult is the structured outcome of a payment flow; gateway declines
// surface here rather than as errors so callers can branch without unwrapping.
type PaymentResult struct {
	Success      bool            `json:"success"`
	Status       PaymentStatus   `json:"status"`
	PaymentID    string          `json:"payment_id,omitempty"`
	OrderID      string          `json:"order_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	ErrorCode    string          `json:"error_code,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}
