package io

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	errBufferTooSmall = errors.New("buffer too small")
	errValueTooLarge  = errors.New("value too large")
)

// WriteVarint writes an integer into an io.Writer.
func WriteVarint(writer io.Writer, v int64) error {
	var buf [binary.MaxVarintLen64]byte
	size := binary.PutVarint(buf[:], v)
	_, err := writer.Write(buf[:size])
	return err
}

// ReadVarint reads an integer from a byte slice.
func ReadVarint(data []byte) (n int64, bytesRead int, err error) {
	n, bytesRead = binary.Varint(data)
	if bytesRead > 0 {
		return n, bytesRead, nil
	}
	if bytesRead == 0 {
		return 0, 0, errBufferTooSmall
	}
	return 0, 0, errValueTooLarge
}

// WriteBytes writes a varint length prefix followed by the bytes themselves.
func WriteBytes(writer io.Writer, b []byte) error {
	if err := WriteVarint(writer, int64(len(b))); err != nil {
		return err
	}
	_, err := writer.Write(b)
	return err
}

// ReadBytes reads a length prefixed byte slice written by `WriteBytes`.
// NB: The returned slice aliases the input buffer.
func ReadBytes(data []byte) ([]byte, int, error) {
	size, bytesRead, err := ReadVarint(data)
	if err != nil {
		return nil, 0, err
	}
	if size < 0 {
		return nil, 0, fmt.Errorf("invalid byte slice size %d", size)
	}
	// NB: Compare before adding so a corrupt size cannot overflow the end offset.
	if size > int64(len(data)-bytesRead) {
		return nil, 0, fmt.Errorf("byte slice size %d exceeds available buffer size %d", size, len(data)-bytesRead)
	}
	end := bytesRead + int(size)
	return data[bytesRead:end], end, nil
}
