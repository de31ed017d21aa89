package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Base food cost: $0.0025 per calorie before preference and regional factors",
	"Calorie needs: Mifflin-St Jeor BMR scaled by activity level",
	"A month is 30 days",
	"Waste share of spending: low 5%, average 20%, high 35%",
	"Restaurant meals cost 3.5x the same calories cooked at home",
	"USDA food plan benchmarks: individual and family monthly costs",
}
