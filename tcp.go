package minidock

import (
	"net"
)

// TCPClient implements DeviceInterface over a TCP connection, for deck
// emulators that speak the same 1024-byte report framing.
type TCPClient struct {
	conn net.Conn
}

// OpenTCP connects to an emulated deck at the given address.
func OpenTCP(addr string) (*Device, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewDevice(&TCPClient{conn: conn}), nil
}

func (t *TCPClient) Close() error {
	return t.conn.Close()
}

func (t *TCPClient) SendFeatureReport(payload []byte) (int, error) {
	// Feature reports go out padded to a full packet, regardless of
	// payload length.
	buffer := make([]byte, PacketSize)
	copy(buffer, payload)
	return t.conn.Write(buffer)
}

func (t *TCPClient) Write(data []byte) (int, error) {
	return t.conn.Write(data)
}

func (t *TCPClient) Read(data []byte) (int, error) {
	return t.conn.Read(data)
}
