// Package rawbinary reads and writes the flat, headerless raster files of
// the ESPA raw binary format: row-major pixel data in the machine's native
// byte order, one fixed-width element per pixel. The byte order is not
// recorded in the raster file itself; the companion ENVI header carries it.
package rawbinary

import (
	"encoding/binary"
	"fmt"
	"os"
	"reflect"
)

// OpenWrite opens a raster file for binary write, truncating any existing
// file
func OpenWrite(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening raw binary file %s for write: %v", path, err)
	}
	return f, nil
}

// OpenRead opens a raster file for binary read
func OpenRead(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening raw binary file %s for read: %v", path, err)
	}
	return f, nil
}

// Write writes nlines x nsamps elements from data to the raster file in
// native byte order. data must be a slice of a fixed-width numeric type
// whose length is exactly nlines*nsamps.
func Write(f *os.File, nlines, nsamps int, data interface{}) error {
	if err := checkBuffer(nlines, nsamps, data); err != nil {
		return err
	}
	if err := binary.Write(f, binary.NativeEndian, data); err != nil {
		return fmt.Errorf("writing %d elements to raw binary file %s: %v",
			nlines*nsamps, f.Name(), err)
	}
	return nil
}

// Read reads nlines x nsamps elements from the raster file into data, which
// must be a pre-allocated slice of a fixed-width numeric type with length
// exactly nlines*nsamps.
func Read(f *os.File, nlines, nsamps int, data interface{}) error {
	if err := checkBuffer(nlines, nsamps, data); err != nil {
		return err
	}
	if err := binary.Read(f, binary.NativeEndian, data); err != nil {
		return fmt.Errorf("reading %d elements from raw binary file %s: %v",
			nlines*nsamps, f.Name(), err)
	}
	return nil
}

// NativeByteOrder reports the byte order rasters are written in on this
// machine, using the ENVI header convention: 0 for little-endian, 1 for
// big-endian
func NativeByteOrder() int {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return 0
	}
	return 1
}

func checkBuffer(nlines, nsamps int, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("raster buffer must be a slice, got %T", data)
	}
	if v.Len() != nlines*nsamps {
		return fmt.Errorf("raster buffer holds %d elements, geometry %dx%d requires %d",
			v.Len(), nlines, nsamps, nlines*nsamps)
	}
	return nil
}
