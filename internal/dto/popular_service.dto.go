package dto

type PopularServiceDTO struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	BookingCount    int64   `json:"booking_count"`
	TotalRevenue    float64 `json:"total_revenue"`
}
