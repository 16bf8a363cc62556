// model/car.go
package model

type Car struct {
	ID         int64   `json:"car_id"`
	Model      string  `json:"model"`
	PlateNo    string  `json:"plate_no"`
	DailyPrice float64 `json:"daily_price"`
}
