// Package spn loads and saves VoxelGrid as the raw SPN stream: a flat,
// whitespace-separated list of non-negative integers in lex (x,y,z)
// order (x fastest), with the grid shape supplied out of band since
// SPN carries no dimensions of its own.
package spn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/voxel"
)

// Load reads an SPN file into a voxel.Grid of the given shape.
// automesherr.ErrInputShape if the integer count does not equal
// nx*ny*nz.
func Load(path string, nx, ny, nz int) (*voxel.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}
	defer f.Close()
	return Read(f, nx, ny, nz)
}

// Read parses an SPN stream into a voxel.Grid of the given shape.
func Read(r io.Reader, nx, ny, nz int) (*voxel.Grid, error) {
	want := nx * ny * nz
	labels := make([]uint32, 0, want)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseUint(scanner.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad SPN integer %q: %v", automesherr.ErrInputShape, scanner.Text(), err)
		}
		labels = append(labels, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}

	if len(labels) != want {
		return nil, fmt.Errorf("%w: expected %d integers for shape (%d,%d,%d), got %d",
			automesherr.ErrInputShape, want, nx, ny, nz, len(labels))
	}
	return voxel.New(nx, ny, nz, labels)
}

// Save writes g to path as a whitespace-separated SPN stream.
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

// Write serializes g as an SPN stream, one integer per line.
func Write(w io.Writer, g *voxel.Grid) error {
	bw := bufio.NewWriter(w)
	var writeErr error
	g.Each(func(ix, iy, iz int, label uint32) {
		if writeErr != nil {
			return
		}
		if _, err := fmt.Fprintf(bw, "%d\n", label); err != nil {
			writeErr = fmt.Errorf("%w: %v", automesherr.ErrIO, err)
		}
	})
	if writeErr != nil {
		return writeErr
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", automesherr.ErrIO, err)
	}
	return nil
}
