package minidock

import (
	"image"
	"time"

	"github.com/karalabe/hid"
	"github.com/pkg/errors"
	log "github.com/s00500/env_logger"
	"go.uber.org/atomic"
)

// Errors reported by the session itself. Transport failures are
// returned (or relayed through OnError) unmodified apart from context.
var (
	ErrNoDevicesFound    = errors.New("no deck devices found")
	ErrInvalidKeyIndex   = errors.New("invalid key index")
	ErrInvalidColorValue = errors.New("invalid color value")
	ErrInvalidBrightness = errors.New("invalid brightness percentage")
	ErrInvalidImageSize  = errors.New("invalid image size")
)

// DeviceInterface is the transport a Device talks through. The USB HID
// handle implements it; TCPClient and test fakes do too.
type DeviceInterface interface {
	Close() error
	SendFeatureReport([]byte) (int, error)
	Write([]byte) (int, error)
	Read([]byte) (int, error)
}

// Action is something a key can trigger; see the actionhandlers
// subpackage for implementations.
type Action interface {
	Pressed(keyIndex int, d *Device)
}

// Device represents one open 6-key deck and exclusively owns its
// transport handle for its lifetime.
type Device struct {
	fd     DeviceInterface
	serial string

	keys      keyStateTracker
	closed    atomic.Bool
	lastInput atomic.Time

	buttonPressListeners []func(int, *Device, bool)
	errorListeners       []func(*Device, error)
	actions              [NumKeys]Action
}

// NewDevice wraps an already-open transport and starts listening for
// input reports on it. Open and OpenPath are the usual entry points;
// use this directly for emulated transports.
func NewDevice(fd DeviceInterface) *Device {
	d := &Device{fd: fd}
	d.lastInput.Store(time.Now())
	go d.eventListener()
	return d
}

// Open enumerates the USB bus and opens the first matching deck.
func Open() (*Device, error) {
	devices := hid.Enumerate(vendorID, productID)
	if len(devices) == 0 {
		return nil, ErrNoDevicesFound
	}

	info := devices[0]
	log.Debugln(log.Indent(info))
	fd, err := info.Open()
	if err != nil {
		return nil, err
	}

	d := NewDevice(fd)
	d.serial = info.Serial
	return d, nil
}

// OpenPath opens the deck at a specific HID device path, for setups
// with more than one deck attached.
func OpenPath(path string) (*Device, error) {
	for _, info := range hid.Enumerate(vendorID, productID) {
		if info.Path != path {
			continue
		}
		fd, err := info.Open()
		if err != nil {
			return nil, err
		}
		d := NewDevice(fd)
		d.serial = info.Serial
		return d, nil
	}
	return nil, ErrNoDevicesFound
}

// Close the device.
func (d *Device) Close() error {
	d.closed.Store(true)
	return d.fd.Close()
}

// GetSerial returns the device serial, when known.
func (d *Device) GetSerial() string {
	return d.serial
}

// GetNumberOfButtons returns the number of keys on the deck.
func (d *Device) GetNumberOfButtons() int {
	return NumKeys
}

// GetImageSize returns the source image size for a key.
func (d *Device) GetImageSize() image.Point {
	return image.Point{X: ImageSize, Y: ImageSize}
}

// LastInputTime returns when the last input report arrived.
func (d *Device) LastInputTime() time.Time {
	return d.lastInput.Load()
}

// SetBrightness sets the backlight brightness; pct is a percentage
// between 0 and 100.
func (d *Device) SetBrightness(pct int) error {
	if pct < 0 || pct > 100 {
		return ErrInvalidBrightness
	}

	report := make([]byte, brightnessReportSize)
	copy(report, brightnessPrefix)
	report[len(brightnessPrefix)] = byte(pct)

	_, err := d.fd.SendFeatureReport(report)
	return errors.Wrap(err, "sending brightness report")
}

// WriteColorToButton fills the given key, margins included, with one
// color. Channels are 0-255.
func (d *Device) WriteColorToButton(btnIndex int, red, green, blue int) error {
	if err := validateKey(btnIndex); err != nil {
		return err
	}
	if err := validateChannels(red, green, blue); err != nil {
		return err
	}
	return d.writeIconStream(btnIndex, solidIconStream(byte(red), byte(green), byte(blue)))
}

// WriteRawImageToButton writes a 72x72 top-left-origin RGB raster to
// the given key. The raster is only read, never retained.
func (d *Device) WriteRawImageToButton(btnIndex int, raster []byte) error {
	if err := validateKey(btnIndex); err != nil {
		return err
	}
	stream, err := iconStream(raster)
	if err != nil {
		return err
	}
	return d.writeIconStream(btnIndex, stream)
}

// WriteImageToButton resizes an image to fit a key and writes it.
func (d *Device) WriteImageToButton(btnIndex int, img image.Image) error {
	return d.WriteRawImageToButton(btnIndex, RasterizeImage(img))
}

// WriteImageFileToButton loads an image file (png/gif/jpeg/bmp) and
// writes it to the given key.
func (d *Device) WriteImageFileToButton(btnIndex int, filename string) error {
	img, err := getImageFile(filename)
	if err != nil {
		return err
	}
	return d.WriteImageToButton(btnIndex, img)
}

// ClearButton writes a black square to one key.
func (d *Device) ClearButton(btnIndex int) error {
	return d.WriteColorToButton(btnIndex, 0, 0, 0)
}

// ClearButtons writes a black square to all keys in ascending order,
// stopping at the first write failure.
func (d *Device) ClearButtons() error {
	for i := 0; i < NumKeys; i++ {
		if err := d.ClearButton(i); err != nil {
			return err
		}
	}
	return nil
}

// Write passes a raw packet through to the transport.
func (d *Device) Write(data []byte) (int, error) {
	return d.fd.Write(data)
}

// SendFeatureReport passes a raw feature report through to the
// transport.
func (d *Device) SendFeatureReport(payload []byte) (int, error) {
	return d.fd.SendFeatureReport(payload)
}

// ButtonPress registers a callback for key transitions; pressed is
// true on down and false on up. Register before events start flowing,
// the listener slice is not locked.
func (d *Device) ButtonPress(f func(int, *Device, bool)) {
	d.buttonPressListeners = append(d.buttonPressListeners, f)
}

// OnError registers a callback for transport errors surfaced by the
// input listener. Without one, listener failures are only logged.
func (d *Device) OnError(f func(*Device, error)) {
	d.errorListeners = append(d.errorListeners, f)
}

// BindAction triggers the given action whenever the key goes down.
func (d *Device) BindAction(btnIndex int, a Action) error {
	if err := validateKey(btnIndex); err != nil {
		return err
	}
	d.actions[btnIndex] = a
	return nil
}

func validateKey(btnIndex int) error {
	if btnIndex < 0 || btnIndex >= NumKeys {
		return ErrInvalidKeyIndex
	}
	return nil
}

func validateChannels(channels ...int) error {
	for _, c := range channels {
		if c < 0 || c > 255 {
			return ErrInvalidColorValue
		}
	}
	return nil
}

func (d *Device) writeIconStream(btnIndex int, stream []byte) error {
	for _, packet := range iconPackets(btnIndex, stream) {
		if _, err := d.fd.Write(packet); err != nil {
			return errors.Wrapf(err, "writing icon packet for key %d", btnIndex)
		}
	}
	return nil
}

// eventListener reads input reports until the transport fails or the
// device is closed. It is the single writer of the key state.
func (d *Device) eventListener() {
	for {
		data := make([]byte, inputReportSize)
		_, err := d.fd.Read(data)
		if err != nil {
			if d.closed.Load() {
				return
			}
			log.Printf("Error reading from device: %v\n", err)
			d.sendErrorEvent(err)
			return
		}

		d.lastInput.Store(time.Now())
		for _, ev := range d.keys.decode(data) {
			d.sendButtonEvent(ev)
		}
	}
}

func (d *Device) sendButtonEvent(ev KeyEvent) {
	for _, f := range d.buttonPressListeners {
		f(ev.Key, d, ev.Pressed)
	}
	if ev.Pressed && d.actions[ev.Key] != nil {
		d.actions[ev.Key].Pressed(ev.Key, d)
	}
}

func (d *Device) sendErrorEvent(err error) {
	for _, f := range d.errorListeners {
		f(d, err)
	}
}
