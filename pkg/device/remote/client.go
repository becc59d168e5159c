package remote

import (
	"net/rpc"

	"github.com/piyonchu/sdreel/pkg/device"
)

// New dials a sectord instance and returns it as a device.Device, so a
// machine without a card reader can flash through one that has it.
func New(addr string) (device.Device, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	c := &Client{rpc: client}
	if err := client.Call("Service.SectorSize", EmptyRequest{}, &c.sectorSize); err != nil {
		return nil, err
	}

	return c, nil
}

type Client struct {
	rpc        *rpc.Client
	sectorSize int
}

func (c *Client) SectorSize() int {
	return c.sectorSize
}

func (c *Client) ReadSectors(start, count int) ([]byte, error) {
	var p []byte
	if err := c.rpc.Call("Service.ReadSectors", ReadRequest{Start: start, Count: count}, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) WriteSectors(start int, p []byte) error {
	return c.rpc.Call("Service.WriteSectors", &WriteRequest{Start: start, Data: p}, nil)
}

func (c *Client) Close() error {
	return c.rpc.Close()
}
