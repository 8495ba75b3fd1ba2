package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test vectors from EIP-55.
var checksummedAddresses = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestValidateAndParseAddress_Checksummed(t *testing.T) {
	for _, addr := range checksummedAddresses {
		got, err := ValidateAndParseAddress(addr)
		require.NoError(t, err, addr)
		assert.Equal(t, addr, got)
	}
}

func TestValidateAndParseAddress_SingleCaseIsNormalized(t *testing.T) {
	for _, addr := range checksummedAddresses {
		lower := "0x" + strings.ToLower(addr[2:])
		upper := "0x" + strings.ToUpper(addr[2:])

		got, err := ValidateAndParseAddress(lower)
		require.NoError(t, err, lower)
		assert.Equal(t, addr, got)

		got, err = ValidateAndParseAddress(upper)
		require.NoError(t, err, upper)
		assert.Equal(t, addr, got)
	}
}

func TestValidateAndParseAddress_BadChecksum(t *testing.T) {
	_, err := ValidateAndParseAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD")
	require.ErrorIs(t, err, ErrInvalidAddress)
	assert.Contains(t, err.Error(), "bad checksum")
}

func TestCheckValidAddress_SkipsChecksum(t *testing.T) {
	raw := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD"
	got, err := CheckValidAddress(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestStructuralFailures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe"},
		{"too long", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed0"},
		{"no prefix", "005aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		{"upper prefix", "0X5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		{"non-hex", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CheckValidAddress(tc.raw)
			assert.ErrorIs(t, err, ErrInvalidAddress)
			_, err = ValidateAndParseAddress(tc.raw)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}
