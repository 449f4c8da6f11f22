package models

// Analytics is a snapshot of platform activity for the admin overview
type Analytics struct {
	UserCount         int64            `json:"userCount"`
	LoginEntries      int64            `json:"loginEntries"`
	ExpressionEntries int64            `json:"expressionEntries"`
	DepressionResults int64            `json:"depressionResults"`
	AnxietyResults    int64            `json:"anxietyResults"`
	StressResults     int64            `json:"stressResults"`
	RecentUsers       []User           `json:"recentUsers"`
	RecentExpressions []FaceExpression `json:"recentExpressions"`
}
