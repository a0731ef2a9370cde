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

// Package pkcs1pad implements the PKCS#1 v1.5 padding layer over a raw RSA
// primitive: EME-PKCS1-v1_5 encryption and decryption, and EMSA-PKCS1-v1_5
// signing and verification with an optional DigestInfo prefix.
//
// The layer pads, dispatches the raw modular exponentiation to a
// [rawrsa.Primitive], and parses or normalizes the result. It does not hash
// messages and does not interpret key material; keys pass through to the
// primitive, and only the resulting modulus size is observed.
package pkcs1pad

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/pad-crypto/pkcs1pad-go/internal/digestinfo"
	"github.com/pad-crypto/pkcs1pad-go/internal/padblock"
	"github.com/pad-crypto/pkcs1pad-go/rawrsa"
	"github.com/pad-crypto/pkcs1pad-go/sgbuf"
)

// maxKeySize bounds the modulus to what fits a single contiguous buffer
// quantum, in octets.
const maxKeySize = 4096

// Transform is a configured padding instance wrapping one RSA primitive.
//
// A Transform is safe for concurrent requests once a key is installed; key
// installation must be serialized against in-flight requests by the caller.
type Transform struct {
	child    rawrsa.Primitive
	hashName string
	keySize  int
	random   io.Reader
}

// New returns a transform over child for encryption, decryption, and raw
// (digest-less) signing and verification.
func New(child rawrsa.Primitive) *Transform {
	return &Transform{child: child, random: rand.Reader}
}

// NewWithHash returns a transform whose Sign and Verify operations carry
// the DigestInfo prefix of the named hash. The name is resolved at sign and
// verify time; an unrecognized name fails there, not here.
func NewWithHash(child rawrsa.Primitive, hashName string) *Transform {
	return &Transform{child: child, hashName: hashName, random: rand.Reader}
}

// HashName returns the configured hash name, or "" for a raw transform.
func (t *Transform) HashName() string { return t.hashName }

// SetPublicKey hands the key encoding to the primitive and, on success,
// adopts the primitive's new modulus size.
func (t *Transform) SetPublicKey(der []byte) error {
	if err := t.child.SetPublicKey(der); err != nil {
		return err
	}
	return t.adoptKeySize()
}

// SetPrivateKey hands the key encoding to the primitive and, on success,
// adopts the primitive's new modulus size.
func (t *Transform) SetPrivateKey(der []byte) error {
	if err := t.child.SetPrivateKey(der); err != nil {
		return err
	}
	return t.adoptKeySize()
}

func (t *Transform) adoptKeySize() error {
	size, err := t.child.MaxSize()
	if err != nil || size <= 0 {
		t.keySize = 0
		if err == nil {
			err = ErrNoKey
		}
		return err
	}
	t.keySize = size
	return nil
}

// MaxSize returns the maximum destination length, which equals the modulus
// size even though decrypt and verify produce less.
func (t *Transform) MaxSize() (int, error) {
	if t.keySize == 0 {
		return 0, ErrNoKey
	}
	return t.keySize, nil
}

// dispatch runs op and funnels both completion paths through complete
// exactly once: inline when the primitive finished synchronously, and on
// the OnComplete signal when it reported in-progress (or busy against a
// backlog request).
func (t *Transform) dispatch(op func(*rawrsa.Request) error, child *rawrsa.Request, complete func(error) error) error {
	done := make(chan error, 1)
	child.OnComplete = func(err error) { done <- err }
	err := op(child)
	if errors.Is(err, rawrsa.ErrInProgress) ||
		(errors.Is(err, rawrsa.ErrBusy) && child.Flags&rawrsa.MayBacklog != 0) {
		err = <-done
	}
	return complete(err)
}

// Encrypt pads Src into a type-02 block and encrypts it with the public
// key. The destination receives exactly MaxSize octets.
func (t *Transform) Encrypt(req *Request) error {
	if t.keySize == 0 {
		return ErrNoKey
	}
	srcLen := req.Src.Len()
	if srcLen > t.keySize-11 {
		return ErrInputTooLarge
	}
	if req.Dst.Len() < t.keySize {
		req.DstLen = t.keySize
		return ErrOutputOverflow
	}
	if t.keySize > maxKeySize {
		return ErrNotSupported
	}

	prefix, err := padblock.BuildEncrypt(t.keySize, srcLen, t.random)
	if err != nil {
		if errors.Is(err, padblock.ErrMessageTooLong) {
			return ErrInputTooLarge
		}
		return err
	}
	out := make([]byte, t.keySize)
	child := &rawrsa.Request{
		Src:    append(sgbuf.Buffers{prefix}, req.Src...),
		SrcLen: t.keySize - 1,
		Dst:    sgbuf.Buffers{out},
		DstLen: t.keySize,
		Flags:  req.Flags,
	}
	return t.dispatch(t.child.Encrypt, child, func(err error) error {
		return t.encryptSignComplete(req, child, prefix, out, err, false)
	})
}

// encryptSignComplete restores the leading zero octets the primitive may
// have dropped: the first keySize-primitiveLen destination octets are
// zeroed and the primitive output lands after them.
func (t *Transform) encryptSignComplete(req *Request, child *rawrsa.Request, inBuf, outBuf []byte, err error, wipeIn bool) error {
	if err == nil {
		padLen := t.keySize - child.DstLen
		req.Dst.ZeroPrefix(padLen)
		req.Dst.ScatterAt(padLen, outBuf[:child.DstLen])
	}
	req.DstLen = t.keySize
	if wipeIn {
		clear(inBuf)
	}
	clear(outBuf)
	return err
}

// Decrypt decrypts a ciphertext of exactly MaxSize octets and strips the
// type-02 padding. The destination may be shorter than MaxSize; when too
// small for the recovered payload, ErrOutputOverflow is returned with the
// required length in DstLen.
func (t *Transform) Decrypt(req *Request) error {
	if t.keySize == 0 {
		return ErrNoKey
	}
	if req.Src.Len() != t.keySize {
		return ErrInvalidEncoding
	}
	if t.keySize > maxKeySize {
		return ErrNotSupported
	}

	out := make([]byte, t.keySize)
	child := &rawrsa.Request{
		Src:    req.Src,
		SrcLen: t.keySize,
		Dst:    sgbuf.Buffers{out},
		DstLen: t.keySize,
		Flags:  req.Flags,
	}
	return t.dispatch(t.child.Decrypt, child, func(err error) error {
		return t.decryptComplete(req, child, out, err)
	})
}

func (t *Transform) decryptComplete(req *Request, child *rawrsa.Request, outBuf []byte, err error) error {
	defer func() { clear(outBuf) }()
	if errors.Is(err, rawrsa.ErrOverflow) {
		// Decrypted value did not fit the keySize-octet buffer.
		return ErrInvalidEncoding
	}
	if err != nil {
		return err
	}
	pos, perr := padblock.ParseDecrypt(outBuf[:child.DstLen], t.keySize)
	if perr != nil {
		return ErrInvalidEncoding
	}
	n := child.DstLen - pos
	req.DstLen = n
	if req.Dst.Len() < n {
		return ErrOutputOverflow
	}
	req.Dst.Scatter(outBuf[pos:child.DstLen])
	return nil
}

// Sign pads Src into a type-01 block, prefixing the configured DigestInfo
// when a hash is set, and exponentiates with the private key. Src carries
// the digest bytes; hashing is the caller's business. The destination
// receives exactly MaxSize octets.
func (t *Transform) Sign(req *Request) error {
	if t.keySize == 0 {
		return ErrNoKey
	}
	var digestInfo []byte
	if t.hashName != "" {
		entry, ok := digestinfo.Lookup(t.hashName)
		if !ok {
			return fmt.Errorf("pkcs1pad: unknown hash %q", t.hashName)
		}
		digestInfo = entry.Prefix
	}
	srcLen := req.Src.Len()
	if srcLen+len(digestInfo) > t.keySize-11 {
		return ErrInputTooLarge
	}
	if req.Dst.Len() < t.keySize {
		req.DstLen = t.keySize
		return ErrOutputOverflow
	}
	if t.keySize > maxKeySize {
		return ErrNotSupported
	}

	prefix, err := padblock.BuildSign(t.keySize, srcLen, digestInfo)
	if err != nil {
		return ErrInputTooLarge
	}
	out := make([]byte, t.keySize)
	child := &rawrsa.Request{
		Src:    append(sgbuf.Buffers{prefix}, req.Src...),
		SrcLen: t.keySize - 1,
		Dst:    sgbuf.Buffers{out},
		DstLen: t.keySize,
		Flags:  req.Flags,
	}
	return t.dispatch(t.child.Sign, child, func(err error) error {
		return t.encryptSignComplete(req, child, prefix, out, err, true)
	})
}

// Verify exponentiates a signature with the public key and parses the
// recovered type-01 block, matching the configured DigestInfo when a hash
// is set. On success the destination receives the recovered payload (the
// digest), for the caller to compare.
//
// Sources longer than MaxSize are accepted and handed to the primitive
// whole, preserving the behavior of the original implementation; with any
// reasonable primitive the trailing octets push the value past the modulus
// and the operation fails.
func (t *Transform) Verify(req *Request) error {
	if t.keySize == 0 {
		return ErrNoKey
	}
	srcLen := req.Src.Len()
	if srcLen < t.keySize {
		return ErrInvalidEncoding
	}
	if t.keySize > maxKeySize {
		return ErrNotSupported
	}

	out := make([]byte, t.keySize)
	child := &rawrsa.Request{
		Src:    req.Src,
		SrcLen: srcLen,
		Dst:    sgbuf.Buffers{out},
		DstLen: t.keySize,
		Flags:  req.Flags,
	}
	return t.dispatch(t.child.Verify, child, func(err error) error {
		return t.verifyComplete(req, child, out, err)
	})
}

func (t *Transform) verifyComplete(req *Request, child *rawrsa.Request, outBuf []byte, err error) error {
	defer func() { clear(outBuf) }()
	if errors.Is(err, rawrsa.ErrOverflow) {
		// Recovered value did not fit the keySize-octet buffer.
		return ErrInvalidEncoding
	}
	if err != nil {
		return err
	}
	var digestInfo []byte
	if t.hashName != "" {
		entry, ok := digestinfo.Lookup(t.hashName)
		if !ok {
			return ErrBadSignature
		}
		digestInfo = entry.Prefix
	}
	pos, perr := padblock.ParseVerify(outBuf[:child.DstLen], t.keySize, digestInfo)
	if perr != nil {
		if errors.Is(perr, padblock.ErrEncoding) {
			return ErrInvalidEncoding
		}
		return ErrBadSignature
	}
	n := child.DstLen - pos
	req.DstLen = n
	if req.Dst.Len() < n {
		return ErrOutputOverflow
	}
	req.Dst.Scatter(outBuf[pos:child.DstLen])
	return nil
}
