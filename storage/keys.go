package storage

// One JSON document per logical key. Every key except the model archive is
// mirrored into the public tree on write so the dashboard build can read it.
const (
	KeyTodaysServing   = "todaysserving.json"
	KeyModelData       = "dataformodel.json"
	KeyEvents          = "events.json"
	KeyPredicted       = "predicted.json"
	KeyPredictedWeekly = "predicted_weekly.json"
	KeyMetricsWeekly   = "metrics_weekly.json"
	KeyMetricsMonthly  = "metrics_monthly.json"
	KeyFoodItems       = "foodItems.json"
	KeyReserved        = "reserved.json"
	KeyCart            = "cart.json"
	KeyRequests        = "requests.json"
	KeyFeedback        = "feedback.json"
)

// mirrorExempt keys are written to the primary tree only.
var mirrorExempt = map[string]bool{
	KeyModelData: true,
}
