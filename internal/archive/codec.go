// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/huffpack/internal/derrors"
)

// An encoder appends the fields of an archive to a byte slice.
type encoder struct {
	buf []byte
}

func (e *encoder) bytes() []byte {
	return e.buf
}

func (e *encoder) writeByte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *encoder) writeBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

func (e *encoder) writeUint32(u uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, u)
}

// A decoder reads the fields of an archive. Reading past the end of the
// input returns an error wrapping derrors.MalformedHeader.
type decoder struct {
	buf []byte
	i   int
}

func newDecoder(data []byte) *decoder {
	return &decoder{buf: data}
}

func (d *decoder) readByte() (byte, error) {
	b, err := d.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// readBytes reads and returns the given number of bytes.
// It fails if there are not enough bytes in the input.
func (d *decoder) readBytes(n int) ([]byte, error) {
	if n < 0 || n > len(d.buf)-d.i {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, d.i, len(d.buf)-d.i, derrors.MalformedHeader)
	}
	d.i += n
	return d.buf[d.i-n : d.i], nil
}

func (d *decoder) readUint32() (uint32, error) {
	b, err := d.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
