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
	"github.com/pad-crypto/pkcs1pad-go/rawrsa"
	"github.com/pad-crypto/pkcs1pad-go/sgbuf"
)

// Request carries one padding operation. Src and Dst are scatter/gather
// segment lists and need not be contiguous.
//
// Encrypt and Sign read all of Src and require a destination of at least
// MaxSize octets. Decrypt requires a source of exactly MaxSize octets,
// Verify of at least MaxSize octets; their destinations may be smaller than
// MaxSize, and when too small the operation fails with ErrOutputOverflow
// after publishing the required length.
//
// DstLen is written on completion with the number of octets the operation
// produced, or with the required destination length on ErrOutputOverflow.
//
// Flags are passed through to the underlying primitive. A Request must not
// be reused while in flight.
type Request struct {
	Src sgbuf.Buffers
	Dst sgbuf.Buffers

	DstLen int

	Flags rawrsa.Flags
}
