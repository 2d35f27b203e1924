package cancel_booking

// CancelResponse HTTP response model
type CancelResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Cancelled bool   `json:"cancelled"`
}
