package smsactivate_test

import (
	"testing"

	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryCode(t *testing.T) {
	testCases := []struct {
		iso  string
		code string
	}{
		{iso: "RU", code: "0"},
		{iso: "UA", code: "1"},
		{iso: "US", code: "187"},
		{iso: "GB", code: "16"},
		{iso: "IR", code: "10016"},
	}

	for _, tc := range testCases {
		t.Run(tc.iso, func(t *testing.T) {
			code, err := smsactivate.CountryCode(tc.iso)

			require.NoError(t, err)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestCountryCode_Unknown(t *testing.T) {
	code, err := smsactivate.CountryCode("ZZ")

	assert.Empty(t, code)
	assert.ErrorIs(t, err, smsactivate.ErrUnknownCountry)
	assert.ErrorIs(t, err, smsactivate.ErrClient)
}

func TestCountryISO_RoundTrip(t *testing.T) {
	codes := smsactivate.ISOCodes()
	require.NotEmpty(t, codes)

	for _, iso := range codes {
		code, err := smsactivate.CountryCode(iso)
		require.NoError(t, err)
		assert.Equal(t, iso, smsactivate.CountryISO(code, "--"), "provider code %s", code)
	}
}

func TestCountryISO_Default(t *testing.T) {
	assert.Equal(t, "--", smsactivate.CountryISO("99999", "--"))
	assert.Equal(t, "", smsactivate.CountryISO("", ""))
}

func TestCountryISO_USAlias(t *testing.T) {
	assert.Equal(t, "US", smsactivate.CountryISO("12", ""))
	assert.Equal(t, "US", smsactivate.CountryISO("187", ""))
}

func TestClient_CountryLookups(t *testing.T) {
	client, err := smsactivate.NewClient(smsactivate.Config{APIKey: "k"}, nil)
	require.NoError(t, err)

	code, err := client.CountryCode("KZ")
	require.NoError(t, err)
	assert.Equal(t, "2", code)
	assert.Equal(t, "KZ", client.CountryISO("2", ""))
}
