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

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pad-crypto/pkcs1pad-go/internal/digestinfo"
	"github.com/pad-crypto/pkcs1pad-go/rawrsa"
)

// Instances follow the crypto-framework naming convention:
// "pkcs1pad(<rsa>)" for encrypt/decrypt and raw (digest-less) sign/verify,
// and "pkcs1pad(<rsa>,<hash>)" for sign/verify with a specific digest
// algorithm.

// InstanceName returns the instance name for the given primitive name and
// optional hash name.
func InstanceName(rsaName, hashName string) string {
	if hashName == "" {
		return fmt.Sprintf("pkcs1pad(%s)", rsaName)
	}
	return fmt.Sprintf("pkcs1pad(%s,%s)", rsaName, hashName)
}

// ParseInstanceName splits an instance name into its primitive name and
// optional hash name. The primitive name may itself be a template instance;
// the hash name is whatever follows the first top-level comma.
func ParseInstanceName(name string) (rsaName, hashName string, err error) {
	inner, ok := strings.CutPrefix(name, "pkcs1pad(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return "", "", fmt.Errorf("pkcs1pad: malformed instance name %q", name)
	}
	inner = inner[:len(inner)-1]

	depth := 0
	split := -1
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", "", fmt.Errorf("pkcs1pad: malformed instance name %q", name)
			}
		case ',':
			if depth == 0 && split < 0 {
				split = i
			}
		}
	}
	if depth != 0 {
		return "", "", fmt.Errorf("pkcs1pad: malformed instance name %q", name)
	}
	if split < 0 {
		rsaName = inner
	} else {
		rsaName, hashName = inner[:split], inner[split+1:]
		if hashName == "" {
			return "", "", fmt.Errorf("pkcs1pad: malformed instance name %q", name)
		}
	}
	if rsaName == "" {
		return "", "", fmt.Errorf("pkcs1pad: malformed instance name %q", name)
	}
	return rsaName, hashName, nil
}

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]func() rawrsa.Primitive)
)

// RegisterPrimitive registers a factory for a named raw RSA primitive, to
// be consumed by NewFromName. Registering a name twice is an error.
func RegisterPrimitive(name string, factory func() rawrsa.Primitive) error {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if _, found := factories[name]; found {
		return fmt.Errorf("pkcs1pad: primitive %q already registered", name)
	}
	factories[name] = factory
	return nil
}

// NewFromName builds a transform from an instance name such as
// "pkcs1pad(rsa)" or "pkcs1pad(rsa,sha256)". The primitive name must have
// been registered and the hash name, when present, must be recognized.
func NewFromName(name string) (*Transform, error) {
	rsaName, hashName, err := ParseInstanceName(name)
	if err != nil {
		return nil, err
	}
	factoriesMu.RLock()
	factory, found := factories[rsaName]
	factoriesMu.RUnlock()
	if !found {
		return nil, fmt.Errorf("pkcs1pad: no primitive registered as %q", rsaName)
	}
	if hashName == "" {
		return New(factory()), nil
	}
	if _, ok := digestinfo.Lookup(hashName); !ok {
		return nil, fmt.Errorf("pkcs1pad: unknown hash %q", hashName)
	}
	return NewWithHash(factory(), hashName), nil
}
