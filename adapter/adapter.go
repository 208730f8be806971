// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package adapter packs composite key types into the flat byte
// sequences ptrie.Set and ptrie.Map require, and unpacks them back.
// Every adapter here except Composite supplies a pack/unpack pair
// (a Composite key is unpacked component by component) and is never imported
// by the core engine, keeping the trie itself type-agnostic about what
// its keys "mean".
package adapter

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// Uint64BE packs a uint64 as 8 big-endian bytes, so that byte-wise
// ordering matches numeric ordering the way optakt-flow-dps's and
// vechain-thor's big-endian block-height keys do.
func Uint64BE(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// UnpackUint64BE is the inverse of Uint64BE.
func UnpackUint64BE(key []byte) (uint64, error) {
	if len(key) != 8 {
		return 0, fmt.Errorf("adapter: want 8 bytes, got %d", len(key))
	}
	return binary.BigEndian.Uint64(key), nil
}

// Uint32BE packs a uint32 as 4 big-endian bytes.
func Uint32BE(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// UnpackUint32BE is the inverse of Uint32BE.
func UnpackUint32BE(key []byte) (uint32, error) {
	if len(key) != 4 {
		return 0, fmt.Errorf("adapter: want 4 bytes, got %d", len(key))
	}
	return binary.BigEndian.Uint32(key), nil
}

// Addr packs a net/netip.Addr into its raw 4- or 16-byte form, letting
// a ptrie.Set stand in for an IP address set.
func Addr(a netip.Addr) []byte {
	b := a.As16()
	if a.Is4() {
		b4 := a.As4()
		return b4[:]
	}
	return b[:]
}

// UnpackAddr is the inverse of Addr.
func UnpackAddr(key []byte) (netip.Addr, error) {
	switch len(key) {
	case 4:
		var b [4]byte
		copy(b[:], key)
		return netip.AddrFrom4(b), nil
	case 16:
		var b [16]byte
		copy(b[:], key)
		return netip.AddrFrom16(b), nil
	default:
		return netip.Addr{}, fmt.Errorf("adapter: want 4 or 16 bytes, got %d", len(key))
	}
}

// Prefix packs a net/netip.Prefix as its address (as given; host bits
// are not masked off) followed by one
// byte holding the prefix bit length, a self-describing fixed encoding
// (the bit length is always exactly one trailing byte, so no separate
// length prefix is needed).
func Prefix(p netip.Prefix) []byte {
	addr := Addr(p.Addr())
	out := make([]byte, 0, len(addr)+1)
	out = append(out, addr...)
	out = append(out, byte(p.Bits()))
	return out
}

// UnpackPrefix is the inverse of Prefix.
func UnpackPrefix(key []byte) (netip.Prefix, error) {
	if len(key) < 2 {
		return netip.Prefix{}, fmt.Errorf("adapter: key too short for a prefix: %d bytes", len(key))
	}
	addr, err := UnpackAddr(key[:len(key)-1])
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, int(key[len(key)-1])), nil
}

// Bytes self-describingly frames a variable-length byte string with a
// uvarint length prefix, the same varint-framing idiom RLP-adjacent
// tries use for their own length-prefixed fields.
func Bytes(s []byte) []byte {
	out := binary.AppendUvarint(nil, uint64(len(s)))
	return append(out, s...)
}

// UnpackBytes is the inverse of Bytes: it returns the decoded payload
// and the number of bytes of key consumed, so composite keys can chain
// several self-describing components one after another.
func UnpackBytes(key []byte) (payload []byte, consumed int, err error) {
	n, nbytes := binary.Uvarint(key)
	if nbytes <= 0 {
		return nil, 0, fmt.Errorf("adapter: malformed uvarint length prefix")
	}
	end := nbytes + int(n)
	if end > len(key) {
		return nil, 0, fmt.Errorf("adapter: length prefix %d exceeds remaining key bytes %d", n, len(key)-nbytes)
	}
	return key[nbytes:end], end, nil
}

// Composite concatenates already-encoded components into a single key.
// Each component should already be self-describing (Bytes, a
// fixed-width integer encoder, or a nested Composite) so Unpack-side
// code can walk the result component by component without ambiguity.
func Composite(components ...[]byte) []byte {
	var total int
	for _, c := range components {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range components {
		out = append(out, c...)
	}
	return out
}

// Tagged prepends a one-byte variant tag ahead of payload, for keys
// whose shape varies by case: an index tag precedes the payload.
func Tagged(tag byte, payload []byte) []byte {
	out := make([]byte, 0, len(payload)+1)
	out = append(out, tag)
	return append(out, payload...)
}

// UnpackTagged is the inverse of Tagged.
func UnpackTagged(key []byte) (tag byte, payload []byte, err error) {
	if len(key) < 1 {
		return 0, nil, fmt.Errorf("adapter: empty tagged key")
	}
	return key[0], key[1:], nil
}
