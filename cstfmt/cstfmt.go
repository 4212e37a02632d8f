// Package cstfmt is a binary, content-addressed snapshot format for a
// parsed vb6parse.Cst, meant for regression-testing a tree shape across
// parser changes without diffing a textual dump.
//
// The layout is MAGIC(4) | VERSION(2) | FLAGS(2) | BODY_LEN(8) | BODY,
// where BODY is the canonical CBOR encoding of a vb6parse.SerializableNode
// tree. Write returns the BLAKE2b-256 hash of BODY as a content address.
package cstfmt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	vb6parse "github.com/scriptandcompile/vb6parse-sub002"
)

const (
	// Magic is the 4-byte file magic, "VB6T" ("VB6 Tree").
	Magic = "VB6T"
	// Version is the format version; bump on breaking layout changes.
	Version uint16 = 0x0001
)

// Flags is a reserved bitmask, carried for forward compatibility with a
// future FlagCompressed/FlagSigned scheme; no bits are defined yet.
type Flags uint16

// Write encodes tree's serializable form as canonical CBOR behind the
// MAGIC|VERSION|FLAGS|LEN preamble and writes it to w, returning the
// 32-byte BLAKE2b-256 hash of the body — the tree's content address.
func Write(w io.Writer, tree *vb6parse.Cst) ([32]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return [32]byte{}, fmt.Errorf("cstfmt: build cbor encoder: %w", err)
	}
	body, err := encMode.Marshal(tree.ToSerializable())
	if err != nil {
		return [32]byte{}, fmt.Errorf("cstfmt: encode body: %w", err)
	}

	hasher, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, fmt.Errorf("cstfmt: create hasher: %w", err)
	}
	if _, err := hasher.Write(body); err != nil {
		return [32]byte{}, fmt.Errorf("cstfmt: hash body: %w", err)
	}
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))

	var preamble bytes.Buffer
	preamble.WriteString(Magic)
	var u16 [2]byte
	binary.LittleEndian.PutUint16(u16[:], Version)
	preamble.Write(u16[:])
	binary.LittleEndian.PutUint16(u16[:], uint16(Flags(0)))
	preamble.Write(u16[:])
	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], uint64(len(body)))
	preamble.Write(u64[:])

	if _, err := w.Write(preamble.Bytes()); err != nil {
		return digest, fmt.Errorf("cstfmt: write preamble: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return digest, fmt.Errorf("cstfmt: write body: %w", err)
	}
	return digest, nil
}

// Read decodes a snapshot written by Write, returning the serializable
// tree and the BLAKE2b-256 hash of its body (recomputed while reading, so
// callers can verify it against a previously recorded hash).
func Read(r io.Reader) (*vb6parse.SerializableNode, [32]byte, error) {
	var preamble [16]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, [32]byte{}, fmt.Errorf("cstfmt: read preamble: %w", err)
	}
	if string(preamble[0:4]) != Magic {
		return nil, [32]byte{}, fmt.Errorf("cstfmt: bad magic %q, want %q", preamble[0:4], Magic)
	}
	version := binary.LittleEndian.Uint16(preamble[4:6])
	if version != Version {
		return nil, [32]byte{}, fmt.Errorf("cstfmt: unsupported version 0x%04x", version)
	}
	bodyLen := binary.LittleEndian.Uint64(preamble[8:16])

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, [32]byte{}, fmt.Errorf("cstfmt: read body (%d bytes): %w", bodyLen, err)
	}

	hasher, err := blake2b.New256(nil)
	if err != nil {
		return nil, [32]byte{}, fmt.Errorf("cstfmt: create hasher: %w", err)
	}
	hasher.Write(body)
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))

	var node vb6parse.SerializableNode
	if err := cbor.Unmarshal(body, &node); err != nil {
		return nil, digest, fmt.Errorf("cstfmt: decode body: %w", err)
	}
	return &node, digest, nil
}
