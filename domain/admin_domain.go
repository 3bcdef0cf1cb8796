package domain

var (
	MessageFailedStats        = "failed to retrieve stats"
	MessageFailedRecentOrders = "failed to retrieve recent orders"
	MessageFailedChart        = "failed to retrieve chart data"
)

type (
	AdminStatsResponse struct {
		Users       int64   `json:"users"`
		OrdersToday int64   `json:"ordersToday"`
		Revenue     float64 `json:"revenue"`
	}

	AdminOrderResponse struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}

	ChartPointResponse struct {
		Day    string  `json:"day"`
		Orders int64   `json:"orders"`
		Income float64 `json:"income"`
	}
)
