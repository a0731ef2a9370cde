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

package pkcs1pad_test

import (
	"bytes"
	"testing"

	"github.com/pad-crypto/pkcs1pad-go/pkcs1pad"
	"github.com/pad-crypto/pkcs1pad-go/rawrsa"
)

func TestInstanceName(t *testing.T) {
	for _, tc := range []struct {
		rsaName  string
		hashName string
		want     string
	}{
		{"rsa", "", "pkcs1pad(rsa)"},
		{"rsa", "sha256", "pkcs1pad(rsa,sha256)"},
		{"rsa-hw", "sha1", "pkcs1pad(rsa-hw,sha1)"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			if got := pkcs1pad.InstanceName(tc.rsaName, tc.hashName); got != tc.want {
				t.Errorf("InstanceName(%q, %q) = %q, want %q", tc.rsaName, tc.hashName, got, tc.want)
			}
		})
	}
}

func TestParseInstanceName(t *testing.T) {
	for _, tc := range []struct {
		name     string
		wantRSA  string
		wantHash string
	}{
		{"pkcs1pad(rsa)", "rsa", ""},
		{"pkcs1pad(rsa,sha256)", "rsa", "sha256"},
		{"pkcs1pad(driver(rsa),sha512)", "driver(rsa)", "sha512"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rsaName, hashName, err := pkcs1pad.ParseInstanceName(tc.name)
			if err != nil {
				t.Fatalf("ParseInstanceName(%q) err = %v, want nil", tc.name, err)
			}
			if rsaName != tc.wantRSA || hashName != tc.wantHash {
				t.Errorf("ParseInstanceName(%q) = (%q, %q), want (%q, %q)",
					tc.name, rsaName, hashName, tc.wantRSA, tc.wantHash)
			}
		})
	}
}

func TestParseInstanceNameMalformed(t *testing.T) {
	for _, name := range []string{
		"",
		"pkcs1pad",
		"pkcs1pad()",
		"pkcs1pad(rsa",
		"pkcs1pad(rsa))",
		"pkcs1pad(rsa,)",
		"oaep(rsa)",
		"pkcs1pad(driver(rsa,sha256)",
	} {
		t.Run(name, func(t *testing.T) {
			if _, _, err := pkcs1pad.ParseInstanceName(name); err == nil {
				t.Errorf("ParseInstanceName(%q) err = nil, want error", name)
			}
		})
	}
}

func TestRegisterPrimitiveDuplicate(t *testing.T) {
	factory := func() rawrsa.Primitive { return rawrsa.NewModExp() }
	if err := pkcs1pad.RegisterPrimitive("rsa-dup-test", factory); err != nil {
		t.Fatalf("RegisterPrimitive() err = %v, want nil", err)
	}
	if err := pkcs1pad.RegisterPrimitive("rsa-dup-test", factory); err == nil {
		t.Error("RegisterPrimitive() second registration err = nil, want error")
	}
}

func TestNewFromName(t *testing.T) {
	if err := pkcs1pad.RegisterPrimitive("rsa-modexp-test", func() rawrsa.Primitive {
		return rawrsa.NewModExp()
	}); err != nil {
		t.Fatalf("RegisterPrimitive() err = %v, want nil", err)
	}

	signer, err := pkcs1pad.NewFromName("pkcs1pad(rsa-modexp-test,sha256)")
	if err != nil {
		t.Fatalf("NewFromName() err = %v, want nil", err)
	}
	if got, want := signer.HashName(), "sha256"; got != want {
		t.Errorf("HashName() = %q, want %q", got, want)
	}
	if err := signer.SetPrivateKey(privateKeyDER(t)); err != nil {
		t.Fatalf("SetPrivateKey() err = %v, want nil", err)
	}

	verifier, err := pkcs1pad.NewFromName("pkcs1pad(rsa-modexp-test,sha256)")
	if err != nil {
		t.Fatalf("NewFromName() err = %v, want nil", err)
	}
	if err := verifier.SetPublicKey(publicKeyDER(t)); err != nil {
		t.Fatalf("SetPublicKey() err = %v, want nil", err)
	}

	digest := bytes.Repeat([]byte{0x17}, 32)
	sig, err := runOp(t, signer.Sign, digest, keySize)
	if err != nil {
		t.Fatalf("Sign() err = %v, want nil", err)
	}
	recovered, err := runOp(t, verifier.Verify, sig, keySize)
	if err != nil {
		t.Fatalf("Verify() err = %v, want nil", err)
	}
	if !bytes.Equal(recovered, digest) {
		t.Errorf("Verify() recovered %x, want %x", recovered, digest)
	}
}

func TestNewFromNameErrors(t *testing.T) {
	if err := pkcs1pad.RegisterPrimitive("rsa-known-test", func() rawrsa.Primitive {
		return rawrsa.NewModExp()
	}); err != nil {
		t.Fatalf("RegisterPrimitive() err = %v, want nil", err)
	}
	for _, name := range []string{
		"pkcs1pad(rsa-unregistered)",
		"pkcs1pad(rsa-known-test,sha3-256)",
		"pkcs1pad(rsa-known-test,SHA256)",
		"notatemplate(rsa-known-test)",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := pkcs1pad.NewFromName(name); err == nil {
				t.Errorf("NewFromName(%q) err = nil, want error", name)
			}
		})
	}
}
