package domain

type PaymentID int64

// PaymentRequest carries the card form for a balance top-up.
// CardNumber may contain display spacing; it is reduced to digits
// before it reaches the wire.
type PaymentRequest struct {
	Amount      float64 `validate:"required,gt=0"`
	CardNumber  string  `validate:"required"`
	CardHolder  string  `validate:"required"`
	ExpiryMonth int     `validate:"required,min=1,max=12"`
	ExpiryYear  int     `validate:"required,min=2000"`
	CVV         string  `validate:"required,min=3,max=4"`
	Phone       string
}

// Receipt is the verification outcome: the server message plus the
// updated balance.
type Receipt struct {
	Message    string
	NewBalance float64
	PaymentID  PaymentID
}
