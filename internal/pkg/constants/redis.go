package constants

// Redis keys
const (
	KeyCurrentRide = "taximeter:ride:current"
)

// Redis hash fields of the current ride mirror
const (
	FieldView       = "view"
	FieldStatus     = "status"
	FieldTotalPrice = "total_price"
	FieldUpdatedAt  = "updated_at"
)
