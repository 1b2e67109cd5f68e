package aggregation

import "time"

type DailySummary struct {
	FoodItems  []FoodItem  `json:"foodItems"`
	WaterItems []WaterItem `json:"waterItems"`
	Totals     Totals      `json:"totals"`
}

// FoodItem echoes a logged food with missing macros set to 0.
type FoodItem struct {
	ID        string    `json:"id"`
	FoodName  string    `json:"foodName"`
	Calories  int       `json:"calories"`
	Protein   int       `json:"protein"`
	Carbs     int       `json:"carbs"`
	Fats      int       `json:"fats"`
	Timestamp time.Time `json:"timestamp"`
}

type WaterItem struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type Totals struct {
	TotalCalories int `json:"totalCalories"`
	TotalProtein  int `json:"totalProtein"`
	TotalCarbs    int `json:"totalCarbs"`
	TotalFats     int `json:"totalFats"`
	TotalWater    int `json:"totalWater"`

	CalorieTarget int `json:"calorieTarget"`
	ProteinTarget int `json:"proteinTarget"`
	CarbsTarget   int `json:"carbsTarget"`
	FatsTarget    int `json:"fatsTarget"`
	WaterTarget   int `json:"waterTarget"`
}

type WorkoutStats struct {
	CurrentStreak         int `json:"currentStreak"`
	MonthlyWorkouts       int `json:"monthlyWorkouts"`
	ConsistencyPercentage int `json:"consistencyPercentage"`
	TotalWorkouts         int `json:"totalWorkouts"`
	// WorkoutDates are the distinct ISO dates with at least one workout, most recent first.
	WorkoutDates []string `json:"workoutDates"`
}
