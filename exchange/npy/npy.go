// Package npy loads and saves VoxelGrid as the numpy binary array
// format (.npy), v1.0 header, dtype '<u4' (little-endian uint32),
// C (row-major) order so the last axis (x) is fastest — the same
// traversal order voxel.Grid already uses internally.
//
// No example in the retrieved pack imports an npy-format library (the
// teacher's own format surface is STL/INP/3MF/DXF, none of which are
// numpy arrays), so this boundary collaborator is hand-rolled on
// encoding/binary; see DESIGN.md for the justification.
package npy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/voxel"
)

const magic = "\x93NUMPY"

var shapeRe = regexp.MustCompile(`'shape':\s*\(([^)]*)\)`)
var descrRe = regexp.MustCompile(`'descr':\s*'([^']*)'`)

// Load reads a .npy file of dtype '<u4' and shape (Nz,Ny,Nx) into a
// voxel.Grid.
func Load(path string) (*voxel.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}

// Read parses an npy stream into a voxel.Grid.
func Read(r io.Reader) (*voxel.Grid, error) {
	var head [10]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("%w: reading npy preamble: %v", automesherr.ErrIO, err)
	}
	if string(head[:6]) != magic {
		return nil, fmt.Errorf("%w: missing npy magic", automesherr.ErrInputShape)
	}
	headerLen := int(binary.LittleEndian.Uint16(head[8:10]))

	headerBuf := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("%w: reading npy header: %v", automesherr.ErrIO, err)
	}
	header := string(headerBuf)

	descrMatch := descrRe.FindStringSubmatch(header)
	if descrMatch == nil || descrMatch[1] != "<u4" {
		return nil, fmt.Errorf("%w: npy dtype must be '<u4'", automesherr.ErrInputShape)
	}

	shapeMatch := shapeRe.FindStringSubmatch(header)
	if shapeMatch == nil {
		return nil, fmt.Errorf("%w: npy header missing shape", automesherr.ErrInputShape)
	}
	dims, err := parseShape(shapeMatch[1])
	if err != nil {
		return nil, err
	}
	if len(dims) != 3 {
		return nil, fmt.Errorf("%w: npy array must be 3-D, got %d dims", automesherr.ErrInputShape, len(dims))
	}
	nz, ny, nx := dims[0], dims[1], dims[2]

	count := nx * ny * nz
	raw := make([]byte, count*4)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: reading npy payload: %v", automesherr.ErrIO, err)
	}
	labels := make([]uint32, count)
	for i := range labels {
		labels[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}

	return voxel.New(nx, ny, nz, labels)
}

// Save writes g to path as a '<u4' npy array of shape (Nz,Ny,Nx).
func Save(path string, g *voxel.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := Write(w, g); err != nil {
		return err
	}
	return w.Flush()
}

// Write serializes g as an npy stream.
func Write(w io.Writer, g *voxel.Grid) error {
	nx, ny, nz := g.Shape()
	header := fmt.Sprintf("{'descr': '<u4', 'fortran_order': False, 'shape': (%d, %d, %d), }", nz, ny, nx)

	// Pad so that len(magic)+2(version)+2(headerLen)+len(header) is a
	// multiple of 64, header ends with '\n'.
	preambleLen := len(magic) + 2 + 2
	total := preambleLen + len(header) + 1
	pad := (64 - total%64) % 64
	header += strings.Repeat(" ", pad) + "\n"

	if _, err := io.WriteString(w, magic); err != nil {
		return fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}
	if _, err := w.Write([]byte{1, 0}); err != nil {
		return fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(header)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}

	var valBuf [4]byte
	var writeErr error
	g.Each(func(ix, iy, iz int, label uint32) {
		if writeErr != nil {
			return
		}
		binary.LittleEndian.PutUint32(valBuf[:], label)
		if _, err := w.Write(valBuf[:]); err != nil {
			writeErr = fmt.Errorf("%w: %v", automesherr.ErrIO, err)
		}
	})
	return writeErr
}

func parseShape(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	var dims []int
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: bad npy shape entry %q", automesherr.ErrInputShape, p)
		}
		dims = append(dims, n)
	}
	return dims, nil
}
