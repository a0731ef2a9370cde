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

// Package sgbuf provides scatter/gather octet-segment lists.
//
// Sources and destinations of the padding engine are sequences of octet
// segments; callers are never required to present contiguous memory. A nil
// or empty segment is valid and contributes no octets.
package sgbuf

// Buffers is a list of octet segments, traversed front to back.
type Buffers [][]byte

// Len returns the total number of octets across all segments.
func (b Buffers) Len() int {
	var n int
	for _, seg := range b {
		n += len(seg)
	}
	return n
}

// Gather copies octets from the segment list into dst, starting at the
// front, and returns the number of octets copied. It stops when either dst
// is full or the list is exhausted.
func (b Buffers) Gather(dst []byte) int {
	var n int
	for _, seg := range b {
		if n == len(dst) {
			break
		}
		n += copy(dst[n:], seg)
	}
	return n
}

// Scatter copies src across the segment list starting at the front and
// returns the number of octets copied.
func (b Buffers) Scatter(src []byte) int {
	return b.ScatterAt(0, src)
}

// ScatterAt copies src across the segment list starting skip octets in, and
// returns the number of octets copied. Octets before the skip point are left
// untouched.
func (b Buffers) ScatterAt(skip int, src []byte) int {
	var n int
	for _, seg := range b {
		if skip >= len(seg) {
			skip -= len(seg)
			continue
		}
		n += copy(seg[skip:], src[n:])
		skip = 0
		if n == len(src) {
			break
		}
	}
	return n
}

// ZeroPrefix writes n zero octets at the front of the segment list.
func (b Buffers) ZeroPrefix(n int) {
	for _, seg := range b {
		if n <= 0 {
			return
		}
		c := n
		if c > len(seg) {
			c = len(seg)
		}
		clear(seg[:c])
		n -= c
	}
}
