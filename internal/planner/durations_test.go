package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitDurationByTag(t *testing.T) {
	assert.Equal(t, 120, VisitDuration([]string{"museum"}))
	assert.Equal(t, 120, VisitDuration([]string{"art_gallery"}))
	assert.Equal(t, 90, VisitDuration([]string{"park"}))
	assert.Equal(t, 90, VisitDuration([]string{"natural_feature"}))
	assert.Equal(t, 75, VisitDuration([]string{"restaurant"}))
	assert.Equal(t, 75, VisitDuration([]string{"cafe"}))
	assert.Equal(t, 90, VisitDuration([]string{"tourist_attraction"}))
	assert.Equal(t, 90, VisitDuration(nil))
}

func TestVisitDurationPrecedenceForMultiTagged(t *testing.T) {
	// Museum wins over park, park wins over restaurant.
	assert.Equal(t, 120, VisitDuration([]string{"park", "museum"}))
	assert.Equal(t, 90, VisitDuration([]string{"cafe", "park"}))
}
