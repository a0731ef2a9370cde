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

// Package digestinfo holds the ASN.1 DER DigestInfo prefixes prepended to a
// message digest before PKCS#1 v1.5 signing [RFC 4880 sec 5.2.2].
//
// Each prefix is the SEQUENCE-of-SEQUENCE header carrying the hash OID and
// the OCTET STRING tag and length; the digest bytes themselves are appended
// at signing time.
package digestinfo

// An Entry pairs a hash name with its DER DigestInfo prefix.
type Entry struct {
	Name   string
	Prefix []byte
}

var entries = []Entry{
	{"md5", []byte{
		0x30, 0x20, 0x30, 0x0c, 0x06, 0x08,
		0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05,
		0x05, 0x00, 0x04, 0x10,
	}},
	{"sha1", []byte{
		0x30, 0x21, 0x30, 0x09, 0x06, 0x05,
		0x2b, 0x0e, 0x03, 0x02, 0x1a,
		0x05, 0x00, 0x04, 0x14,
	}},
	{"rmd160", []byte{
		0x30, 0x21, 0x30, 0x09, 0x06, 0x05,
		0x2b, 0x24, 0x03, 0x02, 0x01,
		0x05, 0x00, 0x04, 0x14,
	}},
	{"sha224", []byte{
		0x30, 0x2d, 0x30, 0x0d, 0x06, 0x09,
		0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x04,
		0x05, 0x00, 0x04, 0x1c,
	}},
	{"sha256", []byte{
		0x30, 0x31, 0x30, 0x0d, 0x06, 0x09,
		0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01,
		0x05, 0x00, 0x04, 0x20,
	}},
	{"sha384", []byte{
		0x30, 0x41, 0x30, 0x0d, 0x06, 0x09,
		0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02,
		0x05, 0x00, 0x04, 0x30,
	}},
	{"sha512", []byte{
		0x30, 0x51, 0x30, 0x0d, 0x06, 0x09,
		0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03,
		0x05, 0x00, 0x04, 0x40,
	}},
}

// Lookup returns the entry for the given hash name. The match is exact and
// case-sensitive.
func Lookup(name string) (*Entry, bool) {
	for i := range entries {
		if entries[i].Name == name {
			return &entries[i], true
		}
	}
	return nil, false
}

// Names returns the recognized hash names in table order.
func Names() []string {
	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	return names
}
