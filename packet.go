package minidock

import "encoding/binary"

// The device takes one key icon as a burst of fixed 1024-byte reports.
// The first report ("page 1") embeds a complete 24-bit bitmap file
// header for the 80x80 canvas and the first 954 pixel bytes; every
// following report ("page 2") carries a short sequenced header and up
// to 1008 more pixel bytes. A full 19200-byte icon stream is therefore
// always 1 page-1 report plus 19 page-2 reports.

func page1Header(dst []byte, keyIndex int) {
	dst[0] = 0x02
	dst[1] = 0x01
	// dst[2] is the page sequence, 0 for the first page.
	// dst[4] is the last-page flag, never set on the first page.
	dst[5] = byte(keyIndex + 1)

	// Bitmap file header for the icon canvas, constant for every key.
	bmp := dst[16:]
	bmp[0] = 'B'
	bmp[1] = 'M'
	binary.LittleEndian.PutUint32(bmp[2:], 54+IconStreamSize) // file size
	binary.LittleEndian.PutUint32(bmp[10:], 54)               // pixel data offset
	binary.LittleEndian.PutUint32(bmp[14:], 40)               // DIB header size
	binary.LittleEndian.PutUint32(bmp[18:], IconSize)         // width
	binary.LittleEndian.PutUint32(bmp[22:], IconSize)         // height
	binary.LittleEndian.PutUint16(bmp[26:], 1)                // color planes
	binary.LittleEndian.PutUint16(bmp[28:], 24)               // bits per pixel
	binary.LittleEndian.PutUint32(bmp[34:], IconStreamSize)   // image size
	binary.LittleEndian.PutUint32(bmp[38:], 2835)             // x pixels per meter
	binary.LittleEndian.PutUint32(bmp[42:], 2835)             // y pixels per meter
}

func page2Header(dst []byte, keyIndex int, sequence byte) {
	dst[0] = 0x02
	dst[1] = 0x01
	dst[2] = sequence
	if sequence == lastPageSequence {
		dst[4] = 0x01
	}
	dst[5] = byte(keyIndex + 1)
}

// iconPackets splits a full icon stream into the report sequence the
// device expects, in emission order. Every packet is exactly
// PacketSize bytes, zero padded past its payload.
func iconPackets(keyIndex int, stream []byte) [][]byte {
	packets := make([][]byte, 0, 1+(IconStreamSize-Page1PayloadSize+Page2PayloadSize-1)/Page2PayloadSize)

	first := make([]byte, PacketSize)
	page1Header(first, keyIndex)
	copy(first[Page1HeaderSize:], stream[:Page1PayloadSize])
	packets = append(packets, first)

	sent := Page1PayloadSize
	for sequence := byte(1); sent < len(stream); sequence++ {
		chunk := len(stream) - sent
		if chunk > Page2PayloadSize {
			chunk = Page2PayloadSize
		}

		packet := make([]byte, PacketSize)
		page2Header(packet, keyIndex, sequence)
		copy(packet[Page2HeaderSize:], stream[sent:sent+chunk])
		packets = append(packets, packet)

		sent += chunk
	}

	return packets
}
