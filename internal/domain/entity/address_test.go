package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerHex = "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress(ownerHex)
	require.NoError(t, err)
	assert.Equal(t, ownerHex, addr.String())
	assert.False(t, addr.IsZero())

	// prefix and case are optional
	upper, err := ParseAddress(strings.ToUpper(ownerHex[2:]))
	require.NoError(t, err)
	assert.Equal(t, addr, upper)

	padded, err := ParseAddress("  0X" + ownerHex[2:] + "\n")
	require.NoError(t, err)
	assert.Equal(t, addr, padded)
}

func TestParseAddress_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"prefix only":   "0x",
		"short":         ownerHex[:40],
		"long":          ownerHex + "00",
		"not hex":       "0x" + strings.Repeat("zz", AddressLength),
		"double prefix": "0x0x" + ownerHex[4:],
		"inner spaces":  "0x5b38da6a701c568545dc fcb03fcb875f56beddc4",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			addr, err := ParseAddress(input)
			assert.ErrorIs(t, err, ErrInvalidAddress)
			assert.True(t, addr.IsZero())
		})
	}
}

func TestMustParseAddress_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseAddress("nope") })
	assert.NotPanics(t, func() { MustParseAddress(ownerHex) })
}

func TestAddress_JSON(t *testing.T) {
	type payload struct {
		Caller Address `json:"caller"`
	}

	data, err := json.Marshal(payload{Caller: MustParseAddress(ownerHex)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"caller":"`+ownerHex+`"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, MustParseAddress(ownerHex), decoded.Caller)

	err = json.Unmarshal([]byte(`{"caller":"0x1234"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestZeroAddress(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())
	assert.Equal(t, "0x"+strings.Repeat("0", 40), ZeroAddress.String())
}
