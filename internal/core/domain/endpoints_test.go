package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsFor(t *testing.T) {
	tests := []struct {
		profile Profile
		want    Endpoints
	}{
		{ProfileProduction, Endpoints{Search: "/search", Recommendations: "/get_recommendations"}},
		{"", Endpoints{Search: "/search", Recommendations: "/get_recommendations"}},
		{ProfileExperimental, Endpoints{
			Search:          "/experimental/search",
			Recommendations: "/experimental/get_recommendations",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.profile), func(t *testing.T) {
			got, err := EndpointsFor(tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndpointsFor_Unknown(t *testing.T) {
	_, err := EndpointsFor("staging")

	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestEndpoints_Override(t *testing.T) {
	base := Endpoints{Search: "/search", Recommendations: "/get_recommendations"}

	assert.Equal(t, base, base.Override(Endpoints{}))
	assert.Equal(t,
		Endpoints{Search: "/search", Recommendations: "/recs"},
		base.Override(Endpoints{Recommendations: " recs "}),
	)
}

func TestProfile_IsValid(t *testing.T) {
	assert.True(t, ProfileProduction.IsValid())
	assert.True(t, ProfileExperimental.IsValid())
	assert.False(t, Profile("").IsValid())
	assert.False(t, Profile("staging").IsValid())
}
