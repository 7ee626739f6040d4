package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type CartResponse struct {
	Items   []CartEntry       `json:"items"`
	Grouped []GroupedCartItem `json:"grouped"`
	Total   string            `json:"total"`
}

type CheckoutResponse struct {
	Status     string `json:"status"`
	Amount     string `json:"amount"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}
