package models

// Expense is one financial transaction, either income or expense.
type Expense struct {
	ID            string  `json:"id,omitempty"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"` // "income" or "expense"
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	ReceiptURL    string  `json:"receipt_url,omitempty"`
	CreatedBy     string  `json:"created_by,omitempty"`
	MadrasaName   string  `json:"madrasa_name,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// Budget is a monthly spending cap for one expense category.
type Budget struct {
	ID          string  `json:"id,omitempty"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	CreatedBy   string  `json:"created_by,omitempty"`
	MadrasaName string  `json:"madrasa_name,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}
