package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typesense/typesense-go/v2/typesense"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

func TestBuildLocationDocument(t *testing.T) {
	loc := &entities.Location{ID: "r1", Name: "TP 13", Address: "Chhani Jakatnaka, Vadodara", Distance: "6 m"}

	doc := buildLocationDocument(entities.LocationKindRecent, loc, 3)

	assert.Equal(t, "recent-r1", doc["id"])
	assert.Equal(t, "r1", doc["location_id"])
	assert.Equal(t, "recent", doc["kind"])
	assert.Equal(t, 3, doc["position"])
}

func TestLocationFromDocument_RoundTrip(t *testing.T) {
	loc := entities.Location{ID: "1", Name: "Satyanarayan Township", Address: "TP 13, Vadodara", Distance: "210 m"}

	got := locationFromDocument(buildLocationDocument(entities.LocationKindNearby, &loc, 0))

	assert.Equal(t, loc, got)
}

func TestLocationFromDocument_MissingFields(t *testing.T) {
	got := locationFromDocument(map[string]interface{}{"name": "Veda 2", "position": 2.0})

	assert.Equal(t, "Veda 2", got.Name)
	assert.Empty(t, got.ID)
	assert.Empty(t, got.Distance)
}

func TestBuildSearchParams(t *testing.T) {
	t.Run("empty query lists the kind in order", func(t *testing.T) {
		params := buildSearchParams(entities.LocationKindNearby, "")

		require.NotNil(t, params.Q)
		assert.Equal(t, "*", *params.Q)
		assert.Equal(t, "kind:=nearby", *params.FilterBy)
		assert.Equal(t, "position:asc", *params.SortBy)
		assert.Nil(t, params.Infix)
	})

	t.Run("query enables infix matching", func(t *testing.T) {
		params := buildSearchParams(entities.LocationKindRecent, "chhani")

		assert.Equal(t, "chhani", *params.Q)
		assert.Equal(t, "name,address", *params.QueryBy)
		require.NotNil(t, params.Infix)
		assert.Equal(t, "always", *params.Infix)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&typesense.HTTPError{Status: 404}))
	assert.False(t, isNotFound(&typesense.HTTPError{Status: 500}))
	assert.False(t, isNotFound(errors.New("boom")))
}
