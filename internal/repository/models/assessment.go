package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONDocument stores a raw JSON value in a CLOB column.
type JSONDocument json.RawMessage

// Value implements the driver.Valuer interface
func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "null", nil
	}
	// CLOB binds as string
	return string(d), nil
}

// Scan implements the sql.Scanner interface
func (d *JSONDocument) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = JSONDocument(v)
	default:
		return fmt.Errorf("unsupported type for JSONDocument: %T", value)
	}
	return nil
}

// Assessment is a row of the ai_assessments table.
type Assessment struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Cohort    string         `db:"cohort"`
	Total     int            `db:"total"`
	Title     string         `db:"title"`
	D1        int            `db:"d1"`
	D2        int            `db:"d2"`
	D3        int            `db:"d3"`
	D4        int            `db:"d4"`
	D5        int            `db:"d5"`
	Answers   JSONDocument   `db:"answers"`
	UserAgent sql.NullString `db:"user_agent"`
	CreatedAt time.Time      `db:"created_at"`
}

// AssessmentSummary is the projection returned by the recent and distribution queries.
// ID, Name and Title are empty for distribution rows.
type AssessmentSummary struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	Total     int            `db:"total"`
	Title     sql.NullString `db:"title"`
	D1        int            `db:"d1"`
	D2        int            `db:"d2"`
	D3        int            `db:"d3"`
	D4        int            `db:"d4"`
	D5        int            `db:"d5"`
	CreatedAt time.Time      `db:"created_at"`
}

// AssessmentStats is a row of the ai_assessment_public_stats view.
type AssessmentStats struct {
	Cohort     string  `db:"cohort"`
	TotalCount int     `db:"total_count"`
	AvgTotal   float64 `db:"avg_total"`
	AvgD1      float64 `db:"avg_d1"`
	AvgD2      float64 `db:"avg_d2"`
	AvgD3      float64 `db:"avg_d3"`
	AvgD4      float64 `db:"avg_d4"`
	AvgD5      float64 `db:"avg_d5"`
	MinTotal   int     `db:"min_total"`
	MaxTotal   int     `db:"max_total"`
}

// TableName returns the table name for Assessment
func (Assessment) TableName() string {
	return "ai_assessments"
}
