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

// Package rawrsa defines the contract between the PKCS#1 v1.5 padding layer
// and a raw RSA primitive, and ships ModExp, an in-process primitive backed
// by constant-time big naturals.
//
// A primitive performs plain modular exponentiation over an installed key
// pair. It does not pad, does not hash, and writes its output in minimal
// big-endian form: leading zero octets are absent, so the result may be
// shorter than the modulus.
package rawrsa

import (
	"errors"

	"github.com/pad-crypto/pkcs1pad-go/sgbuf"
)

// Flags carries per-request behavior bits through to the primitive.
type Flags uint8

const (
	// MaySleep marks a request whose processing may block. Advisory; an
	// in-process primitive has no use for it, one backed by a hardware
	// queue may.
	MaySleep Flags = 1 << iota

	// MayBacklog opts the request into back-pressured queueing: a primitive
	// answering ErrBusy keeps the request and completes it later.
	MayBacklog
)

var (
	// ErrInProgress reports that the primitive accepted the request and
	// will deliver the terminal status through OnComplete.
	ErrInProgress = errors.New("rawrsa: operation in progress")

	// ErrBusy reports that the primitive's queue is full. With MayBacklog
	// set the request is retained and completes through OnComplete;
	// without it ErrBusy is the terminal status.
	ErrBusy = errors.New("rawrsa: primitive busy")

	// ErrOverflow reports that the destination cannot hold the result. The
	// required length is published in Request.DstLen.
	ErrOverflow = errors.New("rawrsa: destination too small")

	// ErrKeyNotSet reports an operation before a key was installed.
	ErrKeyNotSet = errors.New("rawrsa: key not set")

	// ErrOutOfRange reports an input value not below the modulus.
	ErrOutOfRange = errors.New("rawrsa: value out of range for modulus")
)

// Request describes one raw RSA operation. Src and Dst are scatter/gather
// segment lists; SrcLen is the number of input octets to consume and DstLen
// the destination capacity on entry, overwritten with the actual output
// length on completion (including on ErrOverflow, so the caller can
// resize).
//
// An operation either returns its terminal status directly, in which case
// OnComplete is never invoked, or returns ErrInProgress (or ErrBusy against
// a MayBacklog request) and later invokes OnComplete exactly once with the
// terminal status.
type Request struct {
	Src    sgbuf.Buffers
	SrcLen int

	Dst    sgbuf.Buffers
	DstLen int

	Flags Flags

	OnComplete func(error)
}

// Primitive is the raw RSA operation set the padding layer consumes.
//
// SetPublicKey and SetPrivateKey install a key from its DER encoding; on
// success MaxSize reports the new modulus length in octets. Encrypt and
// Verify exponentiate with the public exponent, Decrypt and Sign with the
// private one. Key installation must be serialized against in-flight
// requests by the caller.
type Primitive interface {
	SetPublicKey(der []byte) error
	SetPrivateKey(der []byte) error
	MaxSize() (int, error)
	Encrypt(req *Request) error
	Decrypt(req *Request) error
	Sign(req *Request) error
	Verify(req *Request) error
}
