package iwinfo

import (
	"context"
	"errors"
	"net"
	"time"
)

var (
	ErrNotSupported      = errors.New("not supported")
	ErrScanGroupNotFound = errors.New("scan multicast group unavailable")
	ErrScanAborted       = errors.New("scan aborted by the kernel")
	ErrScanValidation    = errors.New("scan validation failed")
)

// A Client is a type which can access WiFi device actions and statistics
// using operating system-specific operations.
type Client struct {
	c *client
}

// New creates a new Client.
func New() (*Client, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}

	return &Client{
		c: c,
	}, nil
}

// Close releases resources used by a Client.
func (c *Client) Close() error {
	return c.c.Close()
}

// Connect starts connecting the interface to the specified ssid.
func (c *Client) Connect(ifi *Interface, ssid string) error {
	return c.c.Connect(ifi, ssid)
}

// Disconnect disconnects the interface.
func (c *Client) Disconnect(ifi *Interface) error {
	return c.c.Disconnect(ifi)
}

// Interfaces returns a list of the system's WiFi network interfaces.
func (c *Client) Interfaces() ([]*Interface, error) {
	return c.c.Interfaces()
}

// PHYs returns the system's wireless devices.
func (c *Client) PHYs() ([]*PHY, error) {
	return c.c.PHYs()
}

// PHY returns the wireless device with the given index.
func (c *Client) PHY(index int) (*PHY, error) {
	return c.c.PHY(index)
}

// BSS retrieves the BSS associated with a WiFi interface.
func (c *Client) BSS(ifi *Interface) (*BSS, error) {
	return c.c.BSS(ifi)
}

// AccessPoints retrieves all BSSes currently known to a WiFi interface.
func (c *Client) AccessPoints(ifi *Interface) ([]*BSS, error) {
	return c.c.AccessPoints(ifi)
}

// StationInfo retrieves all station statistics about a WiFi interface.
//
// If there are no stations, an empty slice is returned instead of an error.
func (c *Client) StationInfo(ifi *Interface) ([]*StationInfo, error) {
	return c.c.StationInfo(ifi)
}

// SurveyInfo retrieves channel surveys for a WiFi interface. When the driver
// supports it, one additional entry with RadioWide set covers all channels.
func (c *Client) SurveyInfo(ifi *Interface) ([]*SurveyInfo, error) {
	return c.c.SurveyInfo(ifi)
}

// Regulatory returns the regulatory domain in effect for a device. A negative
// phy returns the global domain.
func (c *Client) Regulatory(phy int) (*RegulatoryDomain, error) {
	return c.c.Regulatory(phy)
}

// RegulatoryDomains returns the global regulatory domain followed by the
// domains of all self-managed devices.
func (c *Client) RegulatoryDomains() ([]*RegulatoryDomain, error) {
	return c.c.RegulatoryDomains()
}

// Scan requests a scan on the interface and waits for it to complete. A nil
// opts scans all channels for any SSID. Use AccessPoints to retrieve the
// results.
func (c *Client) Scan(ctx context.Context, ifi *Interface, opts *ScanOptions) error {
	return c.c.Scan(ctx, ifi, opts)
}

// StartScheduledScan starts periodic scanning on the interface.
func (c *Client) StartScheduledScan(ifi *Interface, opts SchedScanOptions) error {
	return c.c.StartScheduledScan(ifi, opts)
}

// StopScheduledScan stops periodic scanning on the interface.
func (c *Client) StopScheduledScan(ifi *Interface) error {
	return c.c.StopScheduledScan(ifi)
}

// AddTrafficStream requests WMM admission for a traffic stream. The device
// must support WMM admission control or ErrNotSupported is returned.
func (c *Client) AddTrafficStream(ifi *Interface, ts TrafficStream) error {
	return c.c.AddTrafficStream(ifi, ts)
}

// DeleteTrafficStream tears down a traffic stream set up by AddTrafficStream.
func (c *Client) DeleteTrafficStream(ifi *Interface, tsid uint8, peer net.HardwareAddr) error {
	return c.c.DeleteTrafficStream(ifi, tsid, peer)
}

// JoinOCB starts communicating outside the context of a BSS on the given
// channel. The interface must be of type InterfaceTypeOCB.
func (c *Client) JoinOCB(ifi *Interface, ch OCBChannel) error {
	return c.c.JoinOCB(ifi, ch)
}

// LeaveOCB stops OCB communication on the interface.
func (c *Client) LeaveOCB(ifi *Interface) error {
	return c.c.LeaveOCB(ifi)
}

// TDLSChannelSwitch starts switching to an off-channel with a TDLS peer.
func (c *Client) TDLSChannelSwitch(ifi *Interface, sw TDLSChannelSwitch) error {
	return c.c.TDLSChannelSwitch(ifi, sw)
}

// TDLSCancelChannelSwitch returns to the base channel with a TDLS peer.
func (c *Client) TDLSCancelChannelSwitch(ifi *Interface, peer net.HardwareAddr) error {
	return c.c.TDLSCancelChannelSwitch(ifi, peer)
}

// MeshProxyPaths returns the mesh proxy path table of a mesh interface.
func (c *Client) MeshProxyPaths(ifi *Interface) ([]*MeshPath, error) {
	return c.c.MeshProxyPaths(ifi)
}

// Events joins the named nl80211 multicast groups and calls fn for every
// decoded notification until ctx is canceled or fn returns an error. With no
// groups, the config, scan, regulatory and mlme groups are joined.
func (c *Client) Events(ctx context.Context, fn func(Event) error, groups ...string) error {
	return c.c.Events(ctx, fn, groups...)
}

// SetDeadline sets the read and write deadlines associated with the connection.
func (c *Client) SetDeadline(t time.Time) error {
	return c.c.SetDeadline(t)
}

// SetReadDeadline sets the read deadline associated with the connection.
func (c *Client) SetReadDeadline(t time.Time) error {
	return c.c.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline associated with the connection.
func (c *Client) SetWriteDeadline(t time.Time) error {
	return c.c.SetWriteDeadline(t)
}
