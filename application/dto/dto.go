package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// GetOutstandingRequest identifies a credit and the reference date for the
// outstanding view. A zero AsOf means "now".
type GetOutstandingRequest struct {
	CreditID string    `json:"credit_id"`
	AsOf     time.Time `json:"as_of,omitempty"`
}

// PreviewDiscountRequest carries the bases and the discount to apply.
type PreviewDiscountRequest struct {
	PrincipalBase decimal.Decimal `json:"principal_base"`
	MoraBase      decimal.Decimal `json:"mora_base"`
	Scope         string          `json:"scope"`
	Value         decimal.Decimal `json:"value"`
	Modality      string          `json:"modality"`
}

// SubmitPaymentRequest carries the data for a payment. RawAmount and
// RawDiscountValue accept locale-ambiguous strings as received from upstream.
type SubmitPaymentRequest struct {
	CreditID          string    `json:"credit_id"`
	InstallmentNumber int       `json:"installment_number"`
	RawAmount         string    `json:"amount"`
	MethodID          string    `json:"method_id"`
	Note              string    `json:"note,omitempty"`
	Mode              string    `json:"mode"`
	DiscountScope     string    `json:"discount_scope,omitempty"`
	RawDiscountValue  string    `json:"discount_value,omitempty"`
	AsOf              time.Time `json:"as_of,omitempty"`
}

// PreviewRefinancingRequest carries the pricing inputs for a refinancing
// offer. ManualAuthorized is the caller-supplied authorization flag for the
// manual tier.
type PreviewRefinancingRequest struct {
	Balance           decimal.Decimal `json:"balance"`
	Tier              string          `json:"tier"`
	Periodicity       string          `json:"periodicity"`
	InstallmentCount  int             `json:"installment_count"`
	ManualMonthlyRate decimal.Decimal `json:"manual_monthly_rate,omitempty"`
	ManualAuthorized  bool            `json:"manual_authorized,omitempty"`
}

// RefinanceCreditRequest closes a credit into a new plan priced by Quote.
type RefinanceCreditRequest struct {
	CreditID string           `json:"credit_id"`
	Quote    RefinancingQuote `json:"quote"`
	AsOf     time.Time        `json:"as_of,omitempty"`
}

// VoidCreditRequest identifies a credit to void.
type VoidCreditRequest struct {
	CreditID string    `json:"credit_id"`
	AsOf     time.Time `json:"as_of,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentView is the external representation of one installment's
// outstanding state. DueDate is nil for open-ended entries.
type InstallmentView struct {
	Number       int             `json:"number"`
	Scheduled    decimal.Decimal `json:"scheduled"`
	Discount     decimal.Decimal `json:"discount"`
	Paid         decimal.Decimal `json:"paid"`
	PrincipalDue decimal.Decimal `json:"principal_due"`
	Mora         decimal.Decimal `json:"mora"`
	Total        decimal.Decimal `json:"total"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	Status       string          `json:"status"`
}

// OpenEndedView is the cycle view of an open-ended credit. CycleStart and
// CycleEnd are nil when unresolved or unbounded.
type OpenEndedView struct {
	CycleIndex    int             `json:"cycle_index"`
	CycleStart    *time.Time      `json:"cycle_start,omitempty"`
	CycleEnd      *time.Time      `json:"cycle_end,omitempty"`
	Capital       decimal.Decimal `json:"capital"`
	InterestCycle decimal.Decimal `json:"interest_cycle"`
	InterestTotal decimal.Decimal `json:"interest_total"`
	MoraCycle     decimal.Decimal `json:"mora_cycle"`
	MoraTotal     decimal.Decimal `json:"mora_total"`
	TotalDueToday decimal.Decimal `json:"total_due_today"`
}

// OutstandingResponse is the computed outstanding view of a credit.
type OutstandingResponse struct {
	CreditID         string            `json:"credit_id"`
	Modality         string            `json:"modality"`
	Status           string            `json:"status"`
	TotalOutstanding decimal.Decimal   `json:"total_outstanding"`
	Installments     []InstallmentView `json:"installments,omitempty"`
	OpenEnded        *OpenEndedView    `json:"open_ended,omitempty"`
}

// DiscountPreviewResponse is the result of a discount preview.
type DiscountPreviewResponse struct {
	DiscountMora      decimal.Decimal `json:"discount_mora"`
	DiscountPrincipal decimal.Decimal `json:"discount_principal"`
	DiscountTotal     decimal.Decimal `json:"discount_total"`
	NetMora           decimal.Decimal `json:"net_mora"`
	NetPrincipal      decimal.Decimal `json:"net_principal"`
	NetBase           decimal.Decimal `json:"net_base"`
}

// PaymentResponse is the external representation of an allocation result.
type PaymentResponse struct {
	PaymentID             string          `json:"payment_id"`
	CreditID              string          `json:"credit_id"`
	InstallmentNumber     int             `json:"installment_number"`
	AppliedMora           decimal.Decimal `json:"applied_mora"`
	AppliedInterest       decimal.Decimal `json:"applied_interest"`
	AppliedPrincipal      decimal.Decimal `json:"applied_principal"`
	AppliedCapital        decimal.Decimal `json:"applied_capital"`
	Surplus               decimal.Decimal `json:"surplus"`
	SuggestedAmount       decimal.Decimal `json:"suggested_amount"`
	ExceedsRecommendation bool            `json:"exceeds_recommendation"`
	Settled               bool            `json:"settled"`
	CreditStatus          string          `json:"credit_status"`
	InstallmentStatus     string          `json:"installment_status"`
}

// RefinancingQuote is the external representation of a priced refinancing
// offer.
type RefinancingQuote struct {
	Balance           decimal.Decimal `json:"balance"`
	Tier              string          `json:"tier"`
	Periodicity       string          `json:"periodicity"`
	InstallmentCount  int             `json:"installment_count"`
	MonthlyRate       decimal.Decimal `json:"monthly_rate"`
	PeriodRate        decimal.Decimal `json:"period_rate"`
	TotalInterestPct  decimal.Decimal `json:"total_interest_pct"`
	TotalInterest     decimal.Decimal `json:"total_interest"`
	NewTotal          decimal.Decimal `json:"new_total"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
}

// CreditResponse is the external representation of a credit.
type CreditResponse struct {
	ID               string            `json:"id"`
	Modality         string            `json:"modality"`
	Periodicity      string            `json:"periodicity,omitempty"`
	Status           string            `json:"status"`
	Principal        decimal.Decimal   `json:"principal"`
	NominalRate      decimal.Decimal   `json:"nominal_rate"`
	InstallmentCount int               `json:"installment_count,omitempty"`
	OriginCreditID   string            `json:"origin_credit_id,omitempty"`
	Installments     []InstallmentView `json:"installments,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// RefinanceResponse carries the new credit draft and the origin update.
type RefinanceResponse struct {
	OriginCreditID string          `json:"origin_credit_id"`
	OriginStatus   string          `json:"origin_status"`
	NewCredit      CreditResponse  `json:"new_credit"`
	Transferred    decimal.Decimal `json:"transferred_balance"`
}

// VoidResponse confirms a void operation.
type VoidResponse struct {
	CreditID string `json:"credit_id"`
	Status   string `json:"status"`
}
