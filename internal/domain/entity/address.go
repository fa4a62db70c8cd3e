package entity

import (
	"encoding/hex"
	"errors"
	"strings"
)

// AddressLength is the size in bytes of an Address.
const AddressLength = 20

var ErrInvalidAddress = errors.New("invalid address")

// Address identifies a caller. The list owner is one of them.
type Address [AddressLength]byte

var ZeroAddress = Address{}

// ParseAddress accepts 40 hex digits with an optional 0x prefix, in any case.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) != AddressLength*2 {
		return ZeroAddress, ErrInvalidAddress
	}

	var addr Address
	if _, err := hex.Decode(addr[:], []byte(s)); err != nil {
		return ZeroAddress, ErrInvalidAddress
	}
	return addr, nil
}

// MustParseAddress is ParseAddress for constants and tests.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	addr, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
