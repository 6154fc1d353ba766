package minidock

// USB identifiers for the 6-key deck.
const (
	vendorID  = 0x0fd9
	productID = 0x0063
)

// Protocol geometry. These values are mandated by the device firmware;
// deriving any of them at runtime breaks on-device rendering.
const (
	// NumKeys is the number of physical keys on the deck.
	NumKeys = 6

	// PacketSize is the fixed length of every image report sent to the
	// device, header and padding included.
	PacketSize = 1024

	// Page1HeaderSize is the report prologue plus the embedded bitmap
	// file header carried only by the first packet of an icon upload.
	Page1HeaderSize = 70

	// Page2HeaderSize is the short header carried by every follow-up
	// packet of an icon upload.
	Page2HeaderSize = 16

	// Page1PayloadSize and Page2PayloadSize are the pixel bytes each
	// packet kind can carry.
	Page1PayloadSize = PacketSize - Page1HeaderSize // 954
	Page2PayloadSize = PacketSize - Page2HeaderSize // 1008

	// IconSize is the side of the on-device icon canvas in pixels.
	IconSize = 80

	// ImageSize is the side of the source image callers supply; the
	// device centers it on the icon canvas behind a black margin.
	ImageSize = 72

	// IconMargin is the black border around the source image on the
	// icon canvas, in pixels.
	IconMargin = (IconSize - ImageSize) / 2

	// IconStreamSize is the byte length of one full icon canvas in the
	// device's 24-bit pixel order.
	IconStreamSize = IconSize * IconSize * 3 // 19200

	// ImageRasterSize is the byte length of the RGB raster callers hand
	// to WriteRawImageToButton.
	ImageRasterSize = ImageSize * ImageSize * 3 // 15552
)

// lastPageSequence is the page-2 sequence byte of the final chunk of a
// full icon stream: 954 + 19*1008 >= 19200.
const lastPageSequence = 0x13

// Input reports are 8 bytes: report ID, six key flags, one padding byte.
const (
	inputReportSize = 8
	keyFlagsOffset  = 1
)

// Brightness feature report: 5-byte command prefix, percentage byte,
// zero padding to 17 bytes.
const brightnessReportSize = 17

var brightnessPrefix = []byte{0x05, 0x55, 0xaa, 0xd1, 0x01}
