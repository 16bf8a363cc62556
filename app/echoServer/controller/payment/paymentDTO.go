package payment

type SettlePaymentReq struct {
	Method string `json:"method" validate:"required"`
}
