package workouts

import "time"

const DefaultWorkoutName = "General Workout"

type Workout struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Name            string    `json:"workoutName"`
	DurationMinutes *int      `json:"duration"`
	CaloriesBurned  *int      `json:"caloriesBurned"`
	Timestamp       time.Time `json:"timestamp"`
}
