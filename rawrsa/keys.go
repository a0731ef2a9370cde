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

package rawrsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/safenum"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Keys arrive as the RFC 8017 DER structures: RSAPublicKey for the public
// half, RSAPrivateKey (two-prime, version 0) for the private one.

const maxExponent = 1<<31 - 1

var (
	errKeyEncoding         = errors.New("rawrsa: invalid key encoding")
	errPublicExponentSmall = errors.New("rawrsa: public exponent too small")
	errPublicExponentLarge = errors.New("rawrsa: public exponent too large")
)

type publicKey struct {
	n    *safenum.Modulus
	e    *safenum.Nat
	size int
}

type privateKey struct {
	publicKey
	d *safenum.Nat
}

func checkPublic(n *big.Int, e int) error {
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		return errKeyEncoding
	}
	if e < 2 {
		return errPublicExponentSmall
	}
	if e > maxExponent {
		return errPublicExponentLarge
	}
	return nil
}

func newPublicKey(n *big.Int, e int) (*publicKey, error) {
	if err := checkPublic(n, e); err != nil {
		return nil, err
	}
	mod := safenum.ModulusFromBytes(n.Bytes())
	return &publicKey{
		n:    mod,
		e:    new(safenum.Nat).SetUint64(uint64(e)),
		size: int((mod.BitLen() + 7) / 8),
	}, nil
}

// parsePublicKey decodes an RSAPublicKey structure.
func parsePublicKey(der []byte) (*publicKey, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, errKeyEncoding
	}
	n := new(big.Int)
	var e int
	if !seq.ReadASN1Integer(n) || !seq.ReadASN1Integer(&e) || !seq.Empty() {
		return nil, errKeyEncoding
	}
	return newPublicKey(n, e)
}

// parsePrivateKey decodes a two-prime RSAPrivateKey structure. The CRT
// components are validated for structure but exponentiation uses d
// directly.
func parsePrivateKey(der []byte) (*privateKey, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, errKeyEncoding
	}
	var version int
	if !seq.ReadASN1Integer(&version) {
		return nil, errKeyEncoding
	}
	if version != 0 {
		return nil, fmt.Errorf("rawrsa: unsupported RSAPrivateKey version %d", version)
	}
	n := new(big.Int)
	var e int
	d := new(big.Int)
	p := new(big.Int)
	q := new(big.Int)
	dp := new(big.Int)
	dq := new(big.Int)
	qinv := new(big.Int)
	if !seq.ReadASN1Integer(n) || !seq.ReadASN1Integer(&e) ||
		!seq.ReadASN1Integer(d) || !seq.ReadASN1Integer(p) ||
		!seq.ReadASN1Integer(q) || !seq.ReadASN1Integer(dp) ||
		!seq.ReadASN1Integer(dq) || !seq.ReadASN1Integer(qinv) ||
		!seq.Empty() {
		return nil, errKeyEncoding
	}
	if d.Sign() <= 0 {
		return nil, errKeyEncoding
	}
	// The primes must multiply back to the modulus.
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return nil, errKeyEncoding
	}
	pub, err := newPublicKey(n, e)
	if err != nil {
		return nil, err
	}
	return &privateKey{
		publicKey: *pub,
		d:         new(safenum.Nat).SetBytes(d.Bytes()),
	}, nil
}
