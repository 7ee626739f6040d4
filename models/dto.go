package models

type AddToCartRequest struct {
	CatalogID       int    `json:"catalogId"`
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	RetailPrice     string `json:"retailPrice" binding:"required"`
	WholesalePrice  string `json:"wholesalePrice"`
	Image           string `json:"image"`
	LongDescription string `json:"longDescription"`
	Quantity        int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type ContactRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

type OrderRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Address      string `json:"address" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Requirements string `json:"requirements"`
	NeedSample   bool   `json:"needSample"`
}

type InitiatePaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	UpiID         string `json:"upiId"`
}

type VerifyPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}
