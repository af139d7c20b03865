package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CollectIndexedField gathers field[0], field[1], ... until the first gap,
// preserving submission order.
func CollectIndexedField(c *gin.Context, field string) []string {
	var values []string
	for i := 0; ; i++ {
		value := c.PostForm(fmt.Sprintf("%s[%d]", field, i))
		if value == "" {
			break
		}
		values = append(values, value)
	}
	return values
}

// ParseTimeField parses an optional timestamp form value. An empty value
// yields (nil, nil); anything else must match one of the accepted layouts.
func ParseTimeField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized time %q", value)
}

// ParseBoolField reads a checkbox-style form value.
func ParseBoolField(value string) bool {
	switch strings.ToLower(value) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}
