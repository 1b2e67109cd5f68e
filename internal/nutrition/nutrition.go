package nutrition

import (
	"errors"
	"time"
)

var (
	ErrTargetsNotFound = errors.New("targets not found")
	ErrFoodLogNotFound = errors.New("food log not found")
)

// FoodLog is a single logged food item. Missing macros are nil, not zero.
type FoodLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FoodName  string    `json:"foodName"`
	Calories  int       `json:"calories"`
	Protein   *int      `json:"protein"`
	Carbs     *int      `json:"carbs"`
	Fats      *int      `json:"fats"`
	Timestamp time.Time `json:"timestamp"`
}

type WaterLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Targets holds the user goals. At most one per user.
type Targets struct {
	UserID        string    `json:"userId"`
	CalorieTarget *int      `json:"calorieTarget"`
	ProteinTarget *int      `json:"proteinTarget"`
	CarbsTarget   *int      `json:"carbsTarget"`
	FatsTarget    *int      `json:"fatsTarget"`
	WaterTarget   *int      `json:"waterTarget"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
