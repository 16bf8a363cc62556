package car

type CreateCarReq struct {
	Model      string  `json:"model" validate:"required"`
	PlateNo    string  `json:"plate_no" validate:"required"`
	DailyPrice float64 `json:"daily_price" validate:"gte=0"`
}
