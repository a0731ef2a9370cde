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

package pkcs1pad

import "errors"

var (
	// ErrNoKey is returned for any operation attempted before a key was
	// installed.
	ErrNoKey = errors.New("pkcs1pad: no key installed")

	// ErrInputTooLarge is returned when the payload, plus any DigestInfo
	// prefix, exceeds keySize-11 octets.
	ErrInputTooLarge = errors.New("pkcs1pad: input too large for key size")

	// ErrOutputOverflow is returned when the destination cannot hold the
	// result; the required length is published in Request.DstLen.
	ErrOutputOverflow = errors.New("pkcs1pad: destination too small")

	// ErrInvalidEncoding is returned uniformly for every structural
	// failure of a decrypted type-02 block, and for ciphertexts or
	// signatures of the wrong length.
	ErrInvalidEncoding = errors.New("pkcs1pad: invalid encoding")

	// ErrBadSignature is returned for every structural failure of a
	// recovered type-01 block, including a DigestInfo mismatch.
	ErrBadSignature = errors.New("pkcs1pad: bad signature")

	// ErrNotSupported is returned when the key exceeds the single-buffer
	// bound of the implementation.
	ErrNotSupported = errors.New("pkcs1pad: key size not supported")
)
