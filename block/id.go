package block

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/blockwise/scheduler/roi"
)

// computeID hashes the canonical byte encoding of
// (totalROI.begin, totalROI.shape, writeROI.begin, writeROI.shape)
// into a 64-bit FNV-1a digest.
func computeID(totalROI, writeROI roi.Roi) (ID, error) {
	h := fnv.New64a()
	for _, c := range []struct {
		begin, shape []int64
	}{
		{totalROI.Begin().Components(), totalROI.Shape().Components()},
		{writeROI.Begin().Components(), writeROI.Shape().Components()},
	} {
		if err := writeComponents(h, c.begin); err != nil {
			return 0, err
		}
		if err := writeComponents(h, c.shape); err != nil {
			return 0, err
		}
	}
	return ID(h.Sum64()), nil
}

// writeComponents appends vals to w as fixed-width little-endian int64s,
// preceded by the component count so that Coords of differing
// dimension never collide on their encoded byte stream.
func writeComponents(w interface{ Write([]byte) (int, error) }, vals []int64) error {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(vals)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], uint64(v))
	}
	_, err := w.Write(buf)
	return err
}
