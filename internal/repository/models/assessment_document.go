package models

import "time"

// AssessmentDocument is the legacy-store shape of an assessment.
type AssessmentDocument struct {
	ID        string      `bson:"_id"`
	Name      string      `bson:"name"`
	Cohort    string      `bson:"cohort"`
	Total     int         `bson:"total"`
	Title     string      `bson:"title"`
	D1        int         `bson:"d1"`
	D2        int         `bson:"d2"`
	D3        int         `bson:"d3"`
	D4        int         `bson:"d4"`
	D5        int         `bson:"d5"`
	Answers   interface{} `bson:"answers"`
	UserAgent string      `bson:"user_agent,omitempty"`
	CreatedAt time.Time   `bson:"created_at"`
}
