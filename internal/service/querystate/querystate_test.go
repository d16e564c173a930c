package querystate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(State{}))
	assert.Equal(t, "q=camera", Encode(State{Query: "camera"}))
	assert.Equal(t, "category=vehicles&q=toyota+camry", Encode(State{Query: "toyota camry", Category: "vehicles"}))
}

func TestDecode_IgnoresOtherParams(t *testing.T) {
	values, err := url.ParseQuery("q=%20camera%20&category=electronics&sort=price_low&minPrice=10")
	require.NoError(t, err)

	assert.Equal(t, State{Query: " camera ", Category: "electronics"}, Decode(values))
}

func TestRoundTrip(t *testing.T) {
	states := []State{
		{},
		{Query: "badminton court"},
		{Query: " "},
		{Category: "playgrounds"},
		{Query: "décor & lights", Category: "event_items"},
	}

	for _, s := range states {
		values, err := url.ParseQuery(Encode(s))
		require.NoError(t, err)
		assert.Equal(t, s, Decode(values))
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, State{}.IsEmpty())
	assert.False(t, State{Category: "vehicles"}.IsEmpty())
}
