package reservation

type CreateReservationReq struct {
	CarID     int64  `json:"car_id" validate:"required,gt=0"`
	PickupDay string `json:"pickup_day" validate:"required,datetime=2006-01-02"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required"`
}
