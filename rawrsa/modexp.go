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

	"github.com/cronokirby/safenum"
)

// ModExp is an in-process Primitive performing textbook RSA modular
// exponentiation over constant-time big naturals. All operations complete
// inline; OnComplete is never invoked.
type ModExp struct {
	pub  *publicKey
	priv *privateKey
}

var _ Primitive = (*ModExp)(nil)

// NewModExp returns a primitive with no key installed.
func NewModExp() *ModExp {
	return &ModExp{}
}

// SetPublicKey installs an RSAPublicKey DER encoding. A previously
// installed private key is discarded.
func (m *ModExp) SetPublicKey(der []byte) error {
	pub, err := parsePublicKey(der)
	if err != nil {
		return err
	}
	m.pub = pub
	m.priv = nil
	return nil
}

// SetPrivateKey installs an RSAPrivateKey DER encoding, making both
// directions available.
func (m *ModExp) SetPrivateKey(der []byte) error {
	priv, err := parsePrivateKey(der)
	if err != nil {
		return err
	}
	m.pub = &priv.publicKey
	m.priv = priv
	return nil
}

// MaxSize returns the modulus length in octets.
func (m *ModExp) MaxSize() (int, error) {
	if m.pub == nil {
		return 0, ErrKeyNotSet
	}
	return m.pub.size, nil
}

// Encrypt computes src^e mod n.
func (m *ModExp) Encrypt(req *Request) error {
	if m.pub == nil {
		return ErrKeyNotSet
	}
	return m.modexp(req, m.pub.e)
}

// Decrypt computes src^d mod n.
func (m *ModExp) Decrypt(req *Request) error {
	if m.priv == nil {
		return ErrKeyNotSet
	}
	return m.modexp(req, m.priv.d)
}

// Sign computes src^d mod n.
func (m *ModExp) Sign(req *Request) error {
	return m.Decrypt(req)
}

// Verify computes src^e mod n.
func (m *ModExp) Verify(req *Request) error {
	return m.Encrypt(req)
}

var errShortSource = errors.New("rawrsa: source shorter than SrcLen")

func (m *ModExp) modexp(req *Request, exp *safenum.Nat) error {
	in := make([]byte, req.SrcLen)
	if req.Src.Gather(in) != req.SrcLen {
		return errShortSource
	}
	x := new(safenum.Nat).SetBytes(in)
	if x.CmpMod(m.pub.n) > 0 {
		return ErrOutOfRange
	}
	y := new(safenum.Nat).Exp(x, exp, m.pub.n)
	out := y.FillBytes(make([]byte, m.pub.size))

	// Minimal big-endian form: drop leading zero octets.
	start := 0
	for start < len(out) && out[start] == 0 {
		start++
	}
	out = out[start:]

	if len(out) > req.DstLen {
		req.DstLen = len(out)
		return ErrOverflow
	}
	req.Dst.Scatter(out)
	req.DstLen = len(out)
	return nil
}
