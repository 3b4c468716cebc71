package cities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByID(t *testing.T) {
	t.Run("KnownCity", func(t *testing.T) {
		city := ByID("busan")
		assert.Equal(t, "busan", city.ID)
		assert.Equal(t, "Busan", city.QueryName)
		assert.Equal(t, "부산", city.NameKo)
	})

	t.Run("UnknownIDFallsBackToSeoul", func(t *testing.T) {
		city := ByID("atlantis")
		assert.Equal(t, DefaultCityID, city.ID)
		assert.Equal(t, "Seoul", city.QueryName)
	})

	t.Run("EmptyIDFallsBackToSeoul", func(t *testing.T) {
		assert.Equal(t, DefaultCityID, ByID("").ID)
	})
}

func TestRegistry(t *testing.T) {
	assert.Len(t, All, 15)
	assert.Equal(t, DefaultCityID, All[0].ID)

	seen := make(map[string]bool)
	for _, c := range All {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.QueryName)
		assert.NotEmpty(t, c.NameKo)
		assert.False(t, seen[c.ID], "duplicate city id %q", c.ID)
		seen[c.ID] = true
	}
}
