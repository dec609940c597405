package util

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToNullString(t *testing.T) {
	assert.Equal(t, sql.NullString{}, StringToNullString(""))
	assert.Equal(t, sql.NullString{String: "curl/8.0", Valid: true}, StringToNullString("curl/8.0"))
}
