package heartrate

import (
	"encoding/binary"

	serrors "github.com/mhollis/serene/internal/errors"
)

// DecodeMeasurement decodes a Bluetooth SIG Heart Rate Measurement
// characteristic value into beats per minute. Byte 0 is a flags bitmask;
// bit 0 selects the value width: set means a little-endian uint16 at offset
// 1, clear means a uint8 at offset 1.
func DecodeMeasurement(buf []byte) (int, error) {
	if len(buf) < 2 {
		return 0, serrors.New(serrors.KindFormat, "heart-rate measurement too short: %d bytes", len(buf))
	}

	flags := buf[0]
	if flags&0x01 != 0 {
		if len(buf) < 3 {
			return 0, serrors.New(serrors.KindFormat, "heart-rate measurement missing 16-bit value")
		}
		return int(binary.LittleEndian.Uint16(buf[1:3])), nil
	}
	return int(buf[1]), nil
}
