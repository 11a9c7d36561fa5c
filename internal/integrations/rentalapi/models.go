package rentalapi

// ISOFormat формат дат в теле запроса поиска (UTC, миллисекунды)
const ISOFormat = "2006-01-02T15:04:05.000Z"

type searchRequest struct {
	City        string `json:"city"`
	PickupDate  string `json:"pickup_date"`
	DropoffDate string `json:"dropoff_date"`
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// UserUpdate тело запроса обновления профиля
type UserUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type errorResponse struct {
	Message string `json:"message"`
}
