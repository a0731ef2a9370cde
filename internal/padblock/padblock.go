// Copyright 2025 Pad Crypto Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package padblock builds and parses EME-PKCS1-v1_5 and EMSA-PKCS1-v1_5
// blocks [RFC 8017].
//
// Builders produce the padding prefix placed ahead of the caller's payload:
// the block type octet, the padding string PS, the 0x00 separator and, for
// signatures, the DigestInfo prefix. The leading 0x00 octet of the full
// encoded message is not part of the prefix; it reappears as the high octet
// of the k-octet value the RSA primitive operates on.
//
// Parsers take the primitive's output for the reverse direction, which is
// k-1 octets for every well-formed block, and return the payload offset.
package padblock

import (
	"bytes"
	"errors"
	"io"
)

var (
	// ErrMessageTooLong is returned when the payload plus any DigestInfo
	// prefix exceeds k-11 octets and cannot be padded.
	ErrMessageTooLong = errors.New("padblock: message too long for key size")

	// ErrEncoding is returned for every structural failure of a type-02
	// block, without distinguishing which check failed.
	ErrEncoding = errors.New("padblock: invalid block encoding")

	// ErrSignature is returned for structural failures of a type-01 block.
	ErrSignature = errors.New("padblock: invalid signature block")
)

// minPadLen is the smallest PS the parsers accept; together with the leading
// zero, block type and separator octets it yields the k-11 payload bound.
const minPadLen = 8

// nonZeroRandomBytes fills s with random octets, none of which is zero.
func nonZeroRandomBytes(s []byte, random io.Reader) error {
	if _, err := io.ReadFull(random, s); err != nil {
		return err
	}
	for i := range s {
		for s[i] == 0 {
			if _, err := io.ReadFull(random, s[i:i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildEncrypt returns the type-02 padding prefix for a payload of msgLen
// octets under a modulus of k octets: 0x02 || PS || 0x00, where PS is
// k-msgLen-3 non-zero random octets drawn from random. The prefix length is
// k-1-msgLen.
func BuildEncrypt(k, msgLen int, random io.Reader) ([]byte, error) {
	if msgLen < 0 || msgLen > k-11 {
		return nil, ErrMessageTooLong
	}
	prefix := make([]byte, k-1-msgLen)
	prefix[0] = 0x02
	if err := nonZeroRandomBytes(prefix[1:len(prefix)-1], random); err != nil {
		return nil, err
	}
	prefix[len(prefix)-1] = 0x00
	return prefix, nil
}

// BuildSign returns the type-01 padding prefix for a payload of msgLen
// octets: 0x01 || PS || 0x00 || digestInfo, where PS is all 0xFF octets.
// digestInfo may be nil for raw signatures. The prefix length is
// k-1-msgLen.
func BuildSign(k, msgLen int, digestInfo []byte) ([]byte, error) {
	if msgLen < 0 || msgLen+len(digestInfo) > k-11 {
		return nil, ErrMessageTooLong
	}
	prefix := make([]byte, k-1-msgLen)
	psEnd := k - len(digestInfo) - msgLen - 2
	prefix[0] = 0x01
	for i := 1; i < psEnd; i++ {
		prefix[i] = 0xff
	}
	prefix[psEnd] = 0x00
	copy(prefix[psEnd+1:], digestInfo)
	return prefix, nil
}

// ParseDecrypt checks a decrypted type-02 block of the form
// 0x02 || PS || 0x00 || M and returns the offset of M within em. em is the
// primitive's output, which must be exactly k-1 octets. Every failure
// yields ErrEncoding.
func ParseDecrypt(em []byte, k int) (int, error) {
	if len(em) != k-1 {
		return 0, ErrEncoding
	}
	if em[0] != 0x02 {
		return 0, ErrEncoding
	}
	pos := 1
	for pos < len(em) && em[pos] != 0x00 {
		pos++
	}
	if pos < 1+minPadLen || pos == len(em) {
		return 0, ErrEncoding
	}
	return pos + 1, nil
}

// ParseVerify checks a recovered type-01 block of the form
// 0x01 || PS || 0x00 || digestInfo || T and returns the offset of T within
// em. digestInfo may be nil, in which case no prefix match is performed.
// A length mismatch yields ErrEncoding; every other failure yields
// ErrSignature.
func ParseVerify(em []byte, k int, digestInfo []byte) (int, error) {
	if len(em) != k-1 {
		return 0, ErrEncoding
	}
	if em[0] != 0x01 {
		return 0, ErrSignature
	}
	pos := 1
	for pos < len(em) && em[pos] == 0xff {
		pos++
	}
	if pos < 1+minPadLen || pos == len(em) || em[pos] != 0x00 {
		return 0, ErrSignature
	}
	pos++
	if len(digestInfo) > 0 {
		if len(em)-pos < len(digestInfo) ||
			!bytes.Equal(em[pos:pos+len(digestInfo)], digestInfo) {
			return 0, ErrSignature
		}
		pos += len(digestInfo)
	}
	return pos, nil
}
