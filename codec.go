// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"

	"github.com/pkg/errors"
)

const (
	// AddressBits is the width of an IPv4 address.
	AddressBits = 32

	// FullLength asks Encode for the whole 32 bit address.
	FullLength = -1

	octetBits = 8
)

// BitString is a sequence of at most 32 bits. The significant bits are
// kept left aligned in a uint32 and every bit past the length is zero,
// so equal bit strings compare equal with == and can key a map.
type BitString struct {
	bits   uint32
	length uint8
}

// mask returns a uint32 with the n most significant bits set.
func mask(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return ^uint32(0) << (AddressBits - n)
}

// NewBitString returns the first length bits of bits.
func NewBitString(bits uint32, length int) BitString {
	length = min(max(length, 0), AddressBits)
	return BitString{bits: bits & mask(length), length: uint8(length)}
}

// Len is the number of significant bits.
func (b BitString) Len() int {
	return int(b.length)
}

// Uint32 returns the bits left aligned, zero filled past Len.
func (b BitString) Uint32() uint32 {
	return b.bits
}

// Bit returns the i-th bit counted from the most significant one.
func (b BitString) Bit(i int) int {
	return int(b.bits>>(AddressBits-1-i)) & 1
}

// Prefix truncates b to its first n bits. n is clamped to [0, b.Len()].
func (b BitString) Prefix(n int) BitString {
	n = min(max(n, 0), b.Len())
	return BitString{bits: b.bits & mask(n), length: uint8(n)}
}

// HasPrefix reports whether p is a leading part of b.
func (b BitString) HasPrefix(p BitString) bool {
	return p.length <= b.length && b.bits&mask(p.Len()) == p.bits
}

// Compare orders bit strings by length first, then by value.
func (b BitString) Compare(o BitString) int {
	switch {
	case b.length < o.length:
		return -1
	case b.length > o.length:
		return 1
	case b.bits < o.bits:
		return -1
	case b.bits > o.bits:
		return 1
	}
	return 0
}

// String renders the significant bits as '0' and '1' characters.
func (b BitString) String() string {
	if b.length == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", b.Len(), b.bits>>(AddressBits-b.Len()))
}

// ParseBitString parses text made of at most 32 '0' and '1' characters.
func ParseBitString(text string) (BitString, error) {
	if len(text) > AddressBits {
		return BitString{}, errors.Errorf("lookup: bit string %q longer than %d bits", text, AddressBits)
	}
	var bits uint32
	for i, c := range text {
		switch c {
		case '0':
		case '1':
			bits |= 1 << (AddressBits - 1 - i)
		default:
			return BitString{}, errors.Errorf("lookup: bit string %q has non binary character %q", text, c)
		}
	}
	return BitString{bits: bits, length: uint8(len(text))}, nil
}

// Encode converts a dotted-decimal IPv4 address to its bit string.
//
// A prefixLength in [1,31] truncates the result to that many bits. Any
// other value, FullLength included, returns all 32 bits: route keys want
// the truncated form, queries want the full address.
func Encode(address string, prefixLength int) (BitString, error) {
	ip, err := netip.ParseAddr(strings.TrimSpace(address))
	if err != nil {
		return BitString{}, &InvalidAddressError{Address: address, Err: err}
	}
	if !ip.Is4() {
		return BitString{}, &InvalidAddressError{Address: address}
	}

	octets := ip.As4()
	full := BitString{bits: binary.BigEndian.Uint32(octets[:]), length: AddressBits}
	if prefixLength > 0 && prefixLength < AddressBits {
		return full.Prefix(prefixLength), nil
	}
	return full, nil
}

// Decode converts b back to dotted-decimal text. Bits are taken eight at
// a time, a short trailing chunk fills the high bits of its octet, and
// missing octets are written as 0, so the result always has four parts.
func Decode(b BitString) string {
	var octets [AddressBits / octetBits]byte
	binary.BigEndian.PutUint32(octets[:], b.bits)
	return netip.AddrFrom4(octets).String()
}
