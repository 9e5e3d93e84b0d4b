package ttf

import "encoding/binary"

// writer builds big-endian table data. The zero value is not usable; call
// newWriter.
type writer struct {
	buf []byte
}

func newWriter() *writer {
	return &writer{buf: make([]byte, 0, 1024)}
}

func (w *writer) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *writer) u16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *writer) i16(v int16)  { w.u16(uint16(v)) }
func (w *writer) u32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *writer) u64(v uint64) { w.buf = binary.BigEndian.AppendUint64(w.buf, v) }

func (w *writer) bytes(b []byte) { w.buf = append(w.buf, b...) }

// tag writes a 4-byte table tag.
func (w *writer) tag(s string) {
	w.bytes([]byte(s[:4]))
}

// align4 zero-pads to a 4-byte boundary.
func (w *writer) align4() {
	for len(w.buf)%4 != 0 {
		w.buf = append(w.buf, 0)
	}
}

// align2 zero-pads to a 2-byte boundary.
func (w *writer) align2() {
	if len(w.buf)%2 != 0 {
		w.buf = append(w.buf, 0)
	}
}

func (w *writer) len() int { return len(w.buf) }
