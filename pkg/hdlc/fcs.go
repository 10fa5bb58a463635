package hdlc

// FCS-16 parameters (RFC 1662, CRC-16/X.25).
const (
	fcsPolynomial = 0x8408 // 0x1021 reflected
	fcsInit       = 0xFFFF
	fcsGood       = 0xF0B8
)

var fcsTable [256]uint16

func init() {
	for i := range fcsTable {
		v := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if v&1 != 0 {
				v = (v >> 1) ^ fcsPolynomial
			} else {
				v >>= 1
			}
		}
		fcsTable[i] = v
	}
}

// updateFCS folds b into the running FCS.
func updateFCS(fcs uint16, b byte) uint16 {
	return (fcs >> 8) ^ fcsTable[byte(fcs)^b]
}

// FCS returns the frame check sequence of data, as transmitted in the trailer.
func FCS(data []byte) uint16 {
	fcs := uint16(fcsInit)
	for _, b := range data {
		fcs = updateFCS(fcs, b)
	}
	return ^fcs
}
