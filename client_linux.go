//go:build linux
// +build linux

package iwinfo

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"github.com/openwrt-go/iwinfo/nl80211"
)

var (
	errGroupNotFound     = errors.New("nl80211 multicast group not found")
	errSchedScanInterval = errors.New("scheduled scan interval must be positive")
	errShortAttribute    = errors.New("nl80211 attribute payload too short")
)

// eventGroups are joined by Events when no groups are named.
var eventGroups = []string{
	nl80211.MulticastGroupConfig,
	nl80211.MulticastGroupScan,
	nl80211.MulticastGroupReg,
	nl80211.MulticastGroupMlme,
}

// A client is the Linux implementation of osClient, which makes use of
// netlink, generic netlink, and nl80211 to provide access to WiFi device
// actions and statistics.
type client struct {
	c             *genetlink.Conn
	familyID      uint16
	familyVersion uint8

	// scan is used to synchronize access to the Scan method.
	scan sync.Mutex
}

// newClient dials a generic netlink connection and verifies that nl80211
// is available for use by this package.
func newClient() (*client, error) {
	c, err := genetlink.Dial(nil)
	if err != nil {
		return nil, err
	}

	// Make a best effort to apply the strict options set to provide better
	// errors and validation. Strict is not applied in the constructor since
	// older kernels may reject it.
	for _, o := range []netlink.ConnOption{
		netlink.ExtendedAcknowledge,
		netlink.GetStrictCheck,
	} {
		_ = c.SetOption(o, true)
	}

	return initClient(c)
}

func initClient(c *genetlink.Conn) (*client, error) {
	family, err := c.GetFamily(nl80211.GenlName)
	if err != nil {
		// Ensure the genl socket is closed on error to avoid leaking file
		// descriptors.
		_ = c.Close()
		return nil, err
	}

	return &client{
		c:             c,
		familyID:      family.ID,
		familyVersion: family.Version,
	}, nil
}

// Close closes the client's generic netlink connection.
func (c *client) Close() error { return c.c.Close() }

// Interfaces requests that nl80211 return a list of all WiFi interfaces present
// on this system.
func (c *client) Interfaces() ([]*Interface, error) {
	// Ask nl80211 to dump a list of all WiFi interfaces
	msgs, err := c.get(
		nl80211.CmdGetInterface,
		netlink.Dump,
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return parseInterfaces(msgs)
}

// Connect starts connecting the interface to the specified ssid.
func (c *client) Connect(ifi *Interface, ssid string) error {
	// Ask nl80211 to connect to the specified SSID.
	_, err := c.get(
		nl80211.CmdConnect,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Bytes(nl80211.AttrSsid, []byte(ssid))
			ae.Uint32(nl80211.AttrAuthType, nl80211.AuthtypeOpenSystem)
		},
	)
	return err
}

// Disconnect disconnects the interface.
func (c *client) Disconnect(ifi *Interface) error {
	// Ask nl80211 to disconnect.
	_, err := c.get(
		nl80211.CmdDisconnect,
		netlink.Acknowledge,
		ifi,
		nil,
	)
	return err
}

// BSS requests that nl80211 return the BSS for the specified Interface.
func (c *client) BSS(ifi *Interface) (*BSS, error) {
	msgs, err := c.get(
		nl80211.CmdGetScan,
		netlink.Dump,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			if ifi.HardwareAddr != nil {
				ae.Bytes(nl80211.AttrMac, ifi.HardwareAddr)
			}
		},
	)
	if err != nil {
		return nil, err
	}

	return parseBSS(msgs)
}

// AccessPoints requests that nl80211 return all currently known BSS
// from the specified Interface.
func (c *client) AccessPoints(ifi *Interface) ([]*BSS, error) {
	msgs, err := c.get(
		nl80211.CmdGetScan,
		netlink.Dump,
		ifi,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return parseGetScanResult(msgs)
}

// StationInfo requests that nl80211 return all station info for the specified
// Interface.
func (c *client) StationInfo(ifi *Interface) ([]*StationInfo, error) {
	msgs, err := c.get(
		nl80211.CmdGetStation,
		netlink.Dump,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			if ifi.HardwareAddr != nil {
				ae.Bytes(nl80211.AttrMac, ifi.HardwareAddr)
			}
		},
	)
	if err != nil {
		return nil, err
	}

	stations := make([]*StationInfo, len(msgs))
	for i := range msgs {
		if stations[i], err = parseStationInfo(msgs[i].Data); err != nil {
			return nil, err
		}
	}

	return stations, nil
}

// SurveyInfo requests that nl80211 return a list of survey information for the
// specified Interface, including radio-wide statistics when available.
func (c *client) SurveyInfo(ifi *Interface) ([]*SurveyInfo, error) {
	msgs, err := c.get(
		nl80211.CmdGetSurvey,
		netlink.Dump,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Flag(nl80211.AttrSurveyRadioStats, true)
		},
	)
	if err != nil {
		return nil, err
	}

	surveys := make([]*SurveyInfo, len(msgs))
	for i := range msgs {
		if surveys[i], err = parseSurveyInfo(msgs[i].Data); err != nil {
			return nil, err
		}
	}
	return surveys, nil
}

// MeshProxyPaths requests the mesh proxy path table of the specified
// Interface.
func (c *client) MeshProxyPaths(ifi *Interface) ([]*MeshPath, error) {
	msgs, err := c.get(
		nl80211.CmdGetMpp,
		netlink.Dump,
		ifi,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return parseMeshPaths(msgs)
}

// AddTrafficStream requests WMM admission control for a traffic stream.
func (c *client) AddTrafficStream(ifi *Interface, ts TrafficStream) error {
	if ts.TSID > 7 {
		return errInvalidTSID
	}
	if ts.UserPriority > 7 {
		return errInvalidUserPriority
	}
	if ts.AdmittedTime < 0 || ts.AdmittedTime > time.Second {
		return errAdmittedTimeRange
	}
	if len(ts.Peer) != 6 {
		return errInvalidPeer
	}

	if err := c.requireFeature(ifi, nl80211.FeatureSupportsWmmAdmission); err != nil {
		return err
	}

	_, err := c.get(
		nl80211.CmdAddTxTs,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Uint8(nl80211.AttrTsid, ts.TSID)
			ae.Bytes(nl80211.AttrMac, ts.Peer)
			ae.Uint8(nl80211.AttrUserPrio, ts.UserPriority)

			// Omitting the admitted time only checks whether the stream
			// would be admitted.
			if ts.AdmittedTime > 0 {
				ae.Uint16(nl80211.AttrAdmittedTime, admittedTimeUnits(ts.AdmittedTime))
			}
		},
	)
	return err
}

// admittedTimeUnits converts medium time per second into units of 32µs.
func admittedTimeUnits(d time.Duration) uint16 {
	return uint16(d / (32 * time.Microsecond))
}

// DeleteTrafficStream removes a traffic stream added by AddTrafficStream.
func (c *client) DeleteTrafficStream(ifi *Interface, tsid uint8, peer net.HardwareAddr) error {
	if tsid > 7 {
		return errInvalidTSID
	}
	if len(peer) != 6 {
		return errInvalidPeer
	}

	if err := c.requireFeature(ifi, nl80211.FeatureSupportsWmmAdmission); err != nil {
		return err
	}

	_, err := c.get(
		nl80211.CmdDelTxTs,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Uint8(nl80211.AttrTsid, tsid)
			ae.Bytes(nl80211.AttrMac, peer)
		},
	)
	return err
}

// JoinOCB joins an OCB network on the given channel.
func (c *client) JoinOCB(ifi *Interface, ch OCBChannel) error {
	if ifi.Type != InterfaceTypeOCB {
		return errNotOCB
	}

	_, err := c.get(
		nl80211.CmdJoinOcb,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			encodeChannel(ae, ch.Frequency, ch.Width, ch.CenterFrequency1)
		},
	)
	return err
}

// LeaveOCB leaves an OCB network.
func (c *client) LeaveOCB(ifi *Interface) error {
	if ifi.Type != InterfaceTypeOCB {
		return errNotOCB
	}

	_, err := c.get(
		nl80211.CmdLeaveOcb,
		netlink.Acknowledge,
		ifi,
		nil,
	)
	return err
}

// TDLSChannelSwitch starts an off-channel switch with a TDLS peer.
func (c *client) TDLSChannelSwitch(ifi *Interface, sw TDLSChannelSwitch) error {
	if len(sw.Peer) != 6 {
		return errInvalidPeer
	}

	if err := c.requireFeature(ifi, nl80211.FeatureTdlsChannelSwitch); err != nil {
		return err
	}

	_, err := c.get(
		nl80211.CmdTdlsChannelSwitch,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Bytes(nl80211.AttrMac, sw.Peer)
			ae.Uint8(nl80211.AttrOperClass, sw.OperatingClass)
			encodeChannel(ae, sw.Frequency, sw.Width, sw.CenterFrequency1)
		},
	)
	return err
}

// TDLSCancelChannelSwitch cancels an off-channel switch with a TDLS peer.
func (c *client) TDLSCancelChannelSwitch(ifi *Interface, peer net.HardwareAddr) error {
	if len(peer) != 6 {
		return errInvalidPeer
	}

	if err := c.requireFeature(ifi, nl80211.FeatureTdlsChannelSwitch); err != nil {
		return err
	}

	_, err := c.get(
		nl80211.CmdTdlsCancelChannelSwitch,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Bytes(nl80211.AttrMac, peer)
		},
	)
	return err
}

// encodeChannel encodes a channel definition.
func encodeChannel(ae *netlink.AttributeEncoder, freq int, width ChannelWidth, cf1 int) {
	ae.Uint32(nl80211.AttrWiphyFreq, uint32(freq))
	ae.Uint32(nl80211.AttrChannelWidth, uint32(width))
	if cf1 != 0 {
		ae.Uint32(nl80211.AttrCenterFreq1, uint32(cf1))
	}
}

// requireFeature returns ErrNotSupported unless the PHY of ifi advertises
// the nl80211.Feature* bits in f.
func (c *client) requireFeature(ifi *Interface, f uint32) error {
	phy, err := c.PHY(ifi.PHY)
	if err != nil {
		return err
	}
	if !phy.HasFeature(f) {
		return ErrNotSupported
	}

	return nil
}

// Scan requests that nl80211 perform a scan for new access points using
// the specified Interface. This process is long running and uses
// a separate connection to nl80211.
//
// If a scan is already in progress, this function will return a syscall.EBUSY
// error. If the response cannot be validated, the returned error
// will include ErrScanValidation.
func (c *client) Scan(ctx context.Context, ifi *Interface, opts *ScanOptions) error {
	if opts == nil {
		opts = &ScanOptions{}
	}
	if opts.Flags&nl80211.ScanFlagRandomAddr != 0 {
		if err := c.requireFeature(ifi, nl80211.FeatureScanRandomMacAddr); err != nil {
			return err
		}
	}

	c.scan.Lock()
	defer c.scan.Unlock()

	// use secondary connection for multicast receives
	conn, familyID, err := dialMulticast(nl80211.MulticastGroupScan)
	if err != nil {
		if errors.Is(err, errGroupNotFound) {
			return ErrScanGroupNotFound
		}
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}

	enc := netlink.NewAttributeEncoder()
	ifi.encode(enc)
	opts.encode(enc)

	data, err := enc.Encode()
	if err != nil {
		return err
	}

	req := genetlink.Message{
		Header: genetlink.Header{
			Command: nl80211.CmdTriggerScan,
			Version: c.familyVersion,
		},
		Data: data,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := unblockOnDone(ctx, conn)
	defer stop()

	result := make(chan error, 1)
	go func(ctx context.Context, conn *genetlink.Conn, ifiIndex int, familyVersion uint8, result chan<- error) {
		defer close(result)
		result <- listenNewScanResults(ctx, conn, ifiIndex, familyVersion)
	}(ctx, conn, ifi.Index, c.familyVersion, result)

	flags := netlink.Request | netlink.Acknowledge

	_, err = conn.Send(req, familyID, flags)
	if err != nil {
		cancel()
	}

	err2 := <-result

	return errors.Join(err, err2)
}

// encode encodes scan request attributes.
func (o *ScanOptions) encode(ae *netlink.AttributeEncoder) {
	encodeSSIDs(ae, nl80211.AttrScanSsids, o.SSIDs)
	encodeFrequencies(ae, o.Frequencies)

	if o.Flags != 0 {
		ae.Uint32(nl80211.AttrScanFlags, o.Flags)
	}
	if o.Address != nil {
		ae.Bytes(nl80211.AttrMac, o.Address)
	}
	if o.AddressMask != nil {
		ae.Bytes(nl80211.AttrMacMask, o.AddressMask)
	}
}

// encodeSSIDs encodes a list of SSIDs, or a single wildcard SSID if ssids
// is empty.
func encodeSSIDs(ae *netlink.AttributeEncoder, typ uint16, ssids []string) {
	if len(ssids) == 0 {
		ssids = []string{""}
	}

	ae.Nested(typ, func(nae *netlink.AttributeEncoder) error {
		for i, ssid := range ssids {
			nae.Bytes(uint16(i+1), []byte(ssid))
		}
		return nil
	})
}

func encodeFrequencies(ae *netlink.AttributeEncoder, freqs []int) {
	if len(freqs) == 0 {
		return
	}

	ae.Nested(nl80211.AttrScanFrequencies, func(nae *netlink.AttributeEncoder) error {
		for i, f := range freqs {
			nae.Uint32(uint16(i+1), uint32(f))
		}
		return nil
	})
}

// StartScheduledScan starts a scheduled scan on the specified Interface.
func (c *client) StartScheduledScan(ifi *Interface, opts SchedScanOptions) error {
	if opts.Interval <= 0 {
		return errSchedScanInterval
	}
	if opts.Flags&nl80211.ScanFlagRandomAddr != 0 {
		if err := c.requireFeature(ifi, nl80211.FeatureSchedScanRandomMacAddr); err != nil {
			return err
		}
	}

	_, err := c.get(
		nl80211.CmdStartSchedScan,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Uint32(nl80211.AttrSchedScanInterval, uint32(opts.Interval/time.Millisecond))
			if opts.Delay > 0 {
				ae.Uint32(nl80211.AttrSchedScanDelay, schedScanDelaySeconds(opts.Delay))
			}

			encodeSSIDs(ae, nl80211.AttrScanSsids, opts.SSIDs)
			encodeFrequencies(ae, opts.Frequencies)

			if len(opts.MatchSSIDs) > 0 {
				ae.Nested(nl80211.AttrSchedScanMatch, func(nae *netlink.AttributeEncoder) error {
					for i, ssid := range opts.MatchSSIDs {
						nae.Nested(uint16(i+1), func(mae *netlink.AttributeEncoder) error {
							mae.Bytes(nl80211.SchedScanMatchAttrSsid, []byte(ssid))
							return nil
						})
					}
					return nil
				})
			}

			if opts.Flags != 0 {
				ae.Uint32(nl80211.AttrScanFlags, opts.Flags)
			}
			if opts.StopOnClose {
				ae.Flag(nl80211.AttrSocketOwner, true)
			}
		},
	)
	return err
}

// schedScanDelaySeconds rounds a first-cycle delay up to whole seconds.
func schedScanDelaySeconds(d time.Duration) uint32 {
	return uint32((d + time.Second - 1) / time.Second)
}

// StopScheduledScan stops a scheduled scan on the specified Interface.
func (c *client) StopScheduledScan(ifi *Interface) error {
	_, err := c.get(
		nl80211.CmdStopSchedScan,
		netlink.Acknowledge,
		ifi,
		nil,
	)
	return err
}

// Events joins nl80211 multicast groups on a separate connection and passes
// each notification to fn.
func (c *client) Events(ctx context.Context, fn func(Event) error, groups ...string) error {
	if len(groups) == 0 {
		groups = eventGroups
	}

	conn, _, err := dialMulticast(groups...)
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := unblockOnDone(ctx, conn)
	defer stop()

	return receiveEvents(ctx, conn, c.familyVersion, fn)
}

// receiveEvents decodes notifications of the given family version from conn
// until ctx is done, receiving fails, or fn returns an error.
func receiveEvents(ctx context.Context, conn *genetlink.Conn, familyVersion uint8, fn func(Event) error) error {
	for ctx.Err() == nil {
		msgs, _, err := conn.Receive()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		for _, m := range msgs {
			if m.Header.Version != familyVersion {
				continue
			}

			ev, err := parseEvent(m)
			if err != nil {
				return err
			}
			if err := fn(*ev); err != nil {
				return err
			}
		}
	}

	return ctx.Err()
}

// dialMulticast dials a generic netlink connection which has joined the
// named nl80211 multicast groups. It returns the connection and the nl80211
// family ID.
func dialMulticast(groups ...string) (*genetlink.Conn, uint16, error) {
	conn, err := genetlink.Dial(&netlink.Config{Strict: true})
	if err != nil {
		return nil, 0, err
	}

	family, err := conn.GetFamily(nl80211.GenlName)
	if err != nil {
		_ = conn.Close()
		return nil, 0, err
	}

	for _, name := range groups {
		id, ok := findGroup(family.Groups, name)
		if !ok {
			_ = conn.Close()
			return nil, 0, fmt.Errorf("%w: %q", errGroupNotFound, name)
		}

		if err := conn.JoinGroup(id); err != nil {
			_ = conn.Close()
			return nil, 0, err
		}
	}

	return conn, family.ID, nil
}

// findGroup returns the ID of the named multicast group.
func findGroup(groups []genetlink.MulticastGroup, name string) (uint32, bool) {
	for _, g := range groups {
		if g.Name == name {
			return g.ID, true
		}
	}

	return 0, false
}

// unblockOnDone expires the read deadline of conn when ctx is done, so a
// blocked Receive returns. The returned func releases the watcher.
func unblockOnDone(ctx context.Context, conn *genetlink.Conn) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.SetReadDeadline(time.Now())
		case <-done:
		}
	}()

	return func() { close(done) }
}

// SetDeadline sets the read and write deadlines associated with the connection.
func (c *client) SetDeadline(t time.Time) error {
	return c.c.SetDeadline(t)
}

// SetReadDeadline sets the read deadline associated with the connection.
func (c *client) SetReadDeadline(t time.Time) error {
	return c.c.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline associated with the connection.
func (c *client) SetWriteDeadline(t time.Time) error {
	return c.c.SetWriteDeadline(t)
}

// get performs a request/response interaction with nl80211.
func (c *client) get(
	cmd uint8,
	flags netlink.HeaderFlags,
	ifi *Interface,
	// May be nil; used to apply optional parameters.
	params func(ae *netlink.AttributeEncoder),
) ([]genetlink.Message, error) {
	ae := netlink.NewAttributeEncoder()
	ifi.encode(ae)
	if params != nil {
		// Optionally apply more parameters to the attribute encoder.
		params(ae)
	}

	return c.execute(cmd, flags, ae)
}

// execute executes the specified command with additional header flags and input
// netlink request attributes. The netlink.Request header flag is automatically
// set.
func (c *client) execute(
	cmd uint8,
	flags netlink.HeaderFlags,
	ae *netlink.AttributeEncoder,
) ([]genetlink.Message, error) {
	b, err := ae.Encode()
	if err != nil {
		return nil, err
	}

	return c.c.Execute(
		genetlink.Message{
			Header: genetlink.Header{
				Command: cmd,
				Version: c.familyVersion,
			},
			Data: b,
		},
		// Always pass the genetlink family ID and request flag.
		c.familyID,
		netlink.Request|flags,
	)
}

// listenNewScanResults listens for new scan results or scan abort messages
// from the netlink connection. It processes the messages associated with the
// specified interface index and family version, verifying attributes and
// handling context cancellations.
//
// The caller should not receive on the given connection and is responsible
// for closing it.
func listenNewScanResults(ctx context.Context, conn *genetlink.Conn, ifiIndex int, familyVersion uint8) error {
	for ctx.Err() == nil {
		msgs, _, err := conn.Receive()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		for _, msg := range msgs {
			if msg.Header.Version != familyVersion {
				break
			}

			switch msg.Header.Command {
			case nl80211.CmdScanAborted:
				return ErrScanAborted
			case nl80211.CmdNewScanResults:
				// attempt to verify the interface
				attrs, err := netlink.UnmarshalAttributes(msg.Data)
				if err != nil {
					return errors.Join(ErrScanValidation, err)
				}

				var intf Interface
				if err := (&intf).parseAttributes(attrs); err != nil {
					return errors.Join(ErrScanValidation, err)
				}

				if ifiIndex != intf.Index {
					continue
				}

				return nil
			default:
				continue
			}
		}
	}

	return ctx.Err()
}

// parseGetScanResult parses all the BSS from nl80211 CMD_GET_SCAN response messages.
func parseGetScanResult(msgs []genetlink.Message) ([]*BSS, error) {
	bsss := make([]*BSS, 0, len(msgs))
	for _, m := range msgs {
		attrs, err := netlink.UnmarshalAttributes(m.Data)
		if err != nil {
			return nil, err
		}

		for _, a := range attrs {
			if a.Type != nl80211.AttrBss {
				continue
			}

			nattrs, err := netlink.UnmarshalAttributes(a.Data)
			if err != nil {
				return nil, err
			}

			var bss BSS
			if !attrsContain(nattrs, nl80211.BssStatus) {
				bss.Status = BSSStatusNotAssociated
			}

			if err := (&bss).parseAttributes(nattrs); err != nil {
				return nil, err
			}

			bsss = append(bsss, &bss)
		}
	}
	return bsss, nil
}

// parseInterfaces parses zero or more Interfaces from nl80211 interface
// messages.
func parseInterfaces(msgs []genetlink.Message) ([]*Interface, error) {
	ifis := make([]*Interface, 0, len(msgs))
	for _, m := range msgs {
		attrs, err := netlink.UnmarshalAttributes(m.Data)
		if err != nil {
			return nil, err
		}

		var ifi Interface
		if err := (&ifi).parseAttributes(attrs); err != nil {
			return nil, err
		}

		ifis = append(ifis, &ifi)
	}

	return ifis, nil
}

// encode provides an encoding function for ifi's attributes. If ifi is nil,
// encode is a no-op.
func (ifi *Interface) encode(ae *netlink.AttributeEncoder) {
	if ifi == nil {
		return
	}

	// Mandatory.
	ae.Uint32(nl80211.AttrIfindex, uint32(ifi.Index))
}

// parseAttributes parses netlink attributes into an Interface's fields.
func (ifi *Interface) parseAttributes(attrs []netlink.Attribute) error {
	for _, a := range attrs {
		switch a.Type {
		case nl80211.AttrIfindex:
			ifi.Index = int(nlenc.Uint32(a.Data))
		case nl80211.AttrIfname:
			ifi.Name = nlenc.String(a.Data)
		case nl80211.AttrMac:
			ifi.HardwareAddr = net.HardwareAddr(a.Data)
		case nl80211.AttrWiphy:
			ifi.PHY = int(nlenc.Uint32(a.Data))
		case nl80211.AttrIftype:
			// NOTE: InterfaceType copies the ordering of nl80211's interface type
			// constants.
			ifi.Type = InterfaceType(nlenc.Uint32(a.Data))
		case nl80211.AttrWdev:
			ifi.Device = int(nlenc.Uint64(a.Data))
		case nl80211.AttrWiphyFreq:
			ifi.Frequency = int(nlenc.Uint32(a.Data))
		case nl80211.AttrChannelWidth:
			ifi.ChannelWidth = ChannelWidth(nlenc.Uint32(a.Data))
		case nl80211.AttrCenterFreq1:
			ifi.CenterFrequency1 = int(nlenc.Uint32(a.Data))
		}
	}

	return nil
}

// parseBSS parses a single BSS with a status attribute from nl80211 BSS messages.
func parseBSS(msgs []genetlink.Message) (*BSS, error) {
	for _, m := range msgs {
		attrs, err := netlink.UnmarshalAttributes(m.Data)
		if err != nil {
			return nil, err
		}

		for _, a := range attrs {
			if a.Type != nl80211.AttrBss {
				continue
			}

			nattrs, err := netlink.UnmarshalAttributes(a.Data)
			if err != nil {
				return nil, err
			}

			// The BSS which is associated with an interface will have a status
			// attribute
			if !attrsContain(nattrs, nl80211.BssStatus) {
				continue
			}

			var bss BSS
			if err := (&bss).parseAttributes(nattrs); err != nil {
				return nil, err
			}

			return &bss, nil
		}
	}

	return nil, os.ErrNotExist
}

// parseAttributes parses netlink attributes into a BSS's fields.
func (b *BSS) parseAttributes(attrs []netlink.Attribute) error {
	for _, a := range attrs {
		switch a.Type {
		case nl80211.BssBssid:
			b.BSSID = net.HardwareAddr(a.Data)
		case nl80211.BssFrequency:
			b.Frequency = int(nlenc.Uint32(a.Data))
		case nl80211.BssChanWidth:
			b.ChannelWidth = bssChannelWidth(nlenc.Uint32(a.Data))
		case nl80211.BssTsf:
			b.TSF = nlenc.Uint64(a.Data)
		case nl80211.BssBeaconTsf:
			b.BeaconTSF = nlenc.Uint64(a.Data)
		case nl80211.BssPrespData:
			b.ProbeResponse = true
		case nl80211.BssBeaconInterval:
			// Raw value is in "Time Units (TU)".  See:
			// https://en.wikipedia.org/wiki/Beacon_frame
			b.BeaconInterval = time.Duration(nlenc.Uint16(a.Data)) * 1024 * time.Microsecond
		case nl80211.BssCapability:
			b.Capability = nlenc.Uint16(a.Data)
		case nl80211.BssSignalMbm:
			b.Signal = float64(int32(nlenc.Uint32(a.Data))) / 100
		case nl80211.BssSeenMsAgo:
			b.LastSeen = time.Duration(nlenc.Uint32(a.Data)) * time.Millisecond
		case nl80211.BssStatus:
			// NOTE: BSSStatus copies the ordering of nl80211's BSS status
			// constants.
			b.Status = BSSStatus(nlenc.Uint32(a.Data))
		case nl80211.BssInformationElements:
			ies, err := parseIEs(a.Data)
			if err != nil {
				return err
			}

			for _, ie := range ies {
				switch ie.ID {
				case ieSSID:
					b.SSID = decodeSSID(ie.Data)
				case ieBSSLoad:
					load, err := decodeBSSLoad(ie.Data)
					if err != nil {
						continue // This IE is malformed
					}
					b.Load = *load
				case ieRSN:
					rsn, err := decodeRSN(ie.Data)
					if err != nil {
						continue // This IE is malformed
					}
					b.RSN = *rsn
				}
			}
		}
	}

	return nil
}

// bssChannelWidth maps an nl80211_bss_scan_width to a ChannelWidth.
func bssChannelWidth(w uint32) ChannelWidth {
	switch w {
	case nl80211.BssChanWidth10:
		return ChannelWidth10
	case nl80211.BssChanWidth5:
		return ChannelWidth5
	default:
		return ChannelWidth20
	}
}

// parseStationInfo parses StationInfo attributes from a byte slice of
// netlink attributes.
func parseStationInfo(b []byte) (*StationInfo, error) {
	attrs, err := netlink.UnmarshalAttributes(b)
	if err != nil {
		return nil, err
	}

	var info StationInfo
	for _, a := range attrs {
		switch a.Type {
		case nl80211.AttrIfindex:
			info.InterfaceIndex = int(nlenc.Uint32(a.Data))
		case nl80211.AttrMac:
			info.HardwareAddr = net.HardwareAddr(a.Data)
		case nl80211.AttrStaInfo:
			nattrs, err := netlink.UnmarshalAttributes(a.Data)
			if err != nil {
				return nil, err
			}

			if err := (&info).parseAttributes(nattrs); err != nil {
				return nil, err
			}

			// Parsed the necessary data.
			return &info, nil
		}
	}

	// No station info found
	return nil, os.ErrNotExist
}

// parseAttributes parses netlink attributes into a StationInfo's fields.
func (info *StationInfo) parseAttributes(attrs []netlink.Attribute) error {
	for _, a := range attrs {
		switch a.Type {
		case nl80211.StaInfoConnectedTime:
			// Though nl80211 does not specify, this value appears to be in seconds:
			// * @NL80211_STA_INFO_CONNECTED_TIME: time since the station is last connected
			info.Connected = time.Duration(nlenc.Uint32(a.Data)) * time.Second
		case nl80211.StaInfoInactiveTime:
			// * @NL80211_STA_INFO_INACTIVE_TIME: time since last activity (u32, msecs)
			info.Inactive = time.Duration(nlenc.Uint32(a.Data)) * time.Millisecond
		case nl80211.StaInfoRxBytes64:
			info.ReceivedBytes = int(nlenc.Uint64(a.Data))
		case nl80211.StaInfoTxBytes64:
			info.TransmittedBytes = int(nlenc.Uint64(a.Data))
		case nl80211.StaInfoSignal, nl80211.StaInfoSignalAvg, nl80211.StaInfoBeaconSignalAvg:
			//  * @NL80211_STA_INFO_SIGNAL: signal strength of last received PPDU (u8, dBm)
			// Should just be cast to int8, see code here: https://git.kernel.org/pub/scm/linux/kernel/git/jberg/iw.git/tree/station.c#n378
			v, err := attrUint8(a)
			if err != nil {
				return err
			}

			switch a.Type {
			case nl80211.StaInfoSignal:
				info.Signal = int(int8(v))
			case nl80211.StaInfoSignalAvg:
				info.SignalAverage = int(int8(v))
			case nl80211.StaInfoBeaconSignalAvg:
				info.BeaconSignalAverage = int(int8(v))
			}
		case nl80211.StaInfoChainSignal, nl80211.StaInfoChainSignalAvg:
			chains, err := parseChainSignal(a.Data)
			if err != nil {
				return err
			}

			if a.Type == nl80211.StaInfoChainSignal {
				info.ChainSignal = chains
			} else {
				info.ChainSignalAverage = chains
			}
		case nl80211.StaInfoRxPackets:
			info.ReceivedPackets = int(nlenc.Uint32(a.Data))
		case nl80211.StaInfoTxPackets:
			info.TransmittedPackets = int(nlenc.Uint32(a.Data))
		case nl80211.StaInfoTxRetries:
			info.TransmitRetries = int(nlenc.Uint32(a.Data))
		case nl80211.StaInfoTxFailed:
			info.TransmitFailed = int(nlenc.Uint32(a.Data))
		case nl80211.StaInfoBeaconLoss:
			info.BeaconLoss = int(nlenc.Uint32(a.Data))
		case nl80211.StaInfoBeaconRx:
			info.BeaconReceived = int(nlenc.Uint64(a.Data))
		case nl80211.StaInfoRxDropMisc:
			info.ReceiveDroppedMisc = int(nlenc.Uint64(a.Data))
		case nl80211.StaInfoExpectedThroughput:
			// * @NL80211_STA_INFO_EXPECTED_THROUGHPUT: expected throughput (u32, kbps)
			info.ExpectedThroughput = int(nlenc.Uint32(a.Data)) * 1000
		case nl80211.StaInfoTidStats:
			stats, err := parseTIDStats(a.Data)
			if err != nil {
				return err
			}
			info.TIDStats = stats
		case nl80211.StaInfoRxBitrate, nl80211.StaInfoTxBitrate:
			rate, err := parseRateInfo(a.Data)
			if err != nil {
				return err
			}

			switch a.Type {
			case nl80211.StaInfoRxBitrate:
				info.ReceiveBitrate = rate.Bitrate
				info.ReceiveRate = *rate
			case nl80211.StaInfoTxBitrate:
				info.TransmitBitrate = rate.Bitrate
				info.TransmitRate = *rate
			}
		}

		// Only use 32-bit counters if the 64-bit counters are not present.
		// If the 64-bit counters appear later in the slice, they will overwrite
		// these values.
		if info.ReceivedBytes == 0 && a.Type == nl80211.StaInfoRxBytes {
			info.ReceivedBytes = int(nlenc.Uint32(a.Data))
		}
		if info.TransmittedBytes == 0 && a.Type == nl80211.StaInfoTxBytes {
			info.TransmittedBytes = int(nlenc.Uint32(a.Data))
		}
	}

	return nil
}

// parseChainSignal parses per-chain signal strengths, in dBm.
func parseChainSignal(b []byte) ([]int, error) {
	attrs, err := netlink.UnmarshalAttributes(b)
	if err != nil {
		return nil, err
	}

	chains := make([]int, 0, len(attrs))
	for _, a := range attrs {
		v, err := attrUint8(a)
		if err != nil {
			return nil, err
		}
		chains = append(chains, int(int8(v)))
	}

	return chains, nil
}

// parseTIDStats parses per-TID statistics. Nested attribute types are the
// TID plus one.
func parseTIDStats(b []byte) ([]TIDStats, error) {
	attrs, err := netlink.UnmarshalAttributes(b)
	if err != nil {
		return nil, err
	}

	stats := make([]TIDStats, 0, len(attrs))
	for _, a := range attrs {
		if a.Type == 0 || a.Type > nl80211.TidNonQoS+1 {
			continue
		}

		nattrs, err := netlink.UnmarshalAttributes(a.Data)
		if err != nil {
			return nil, err
		}

		s := TIDStats{TID: int(a.Type) - 1}
		for _, na := range nattrs {
			switch na.Type {
			case nl80211.TidStatsRxMsdu:
				s.ReceivedMSDU = nlenc.Uint64(na.Data)
			case nl80211.TidStatsTxMsdu:
				s.TransmittedMSDU = nlenc.Uint64(na.Data)
			case nl80211.TidStatsTxMsduRetries:
				s.TransmitMSDURetries = nlenc.Uint64(na.Data)
			case nl80211.TidStatsTxMsduFailed:
				s.TransmitMSDUFailed = nlenc.Uint64(na.Data)
			}
		}

		stats = append(stats, s)
	}

	return stats, nil
}

// parseRateInfo parses a RateInfo from netlink attributes.
func parseRateInfo(b []byte) (*RateInfo, error) {
	attrs, err := netlink.UnmarshalAttributes(b)
	if err != nil {
		return nil, err
	}

	info := RateInfo{
		MCS:   -1,
		Width: ChannelWidth20,
	}
	for _, a := range attrs {
		switch a.Type {
		case nl80211.RateInfoBitrate32:
			info.Bitrate = int(nlenc.Uint32(a.Data))
		case nl80211.RateInfoMcs, nl80211.RateInfoVhtMcs, nl80211.RateInfoVhtNss:
			v, err := attrUint8(a)
			if err != nil {
				return nil, err
			}

			switch a.Type {
			case nl80211.RateInfoMcs:
				info.MCS = int(v)
			case nl80211.RateInfoVhtMcs:
				info.VHTMCS = int(v)
			case nl80211.RateInfoVhtNss:
				info.VHTNSS = int(v)
			}
		case nl80211.RateInfoShortGi:
			info.ShortGI = true
		case nl80211.RateInfo40MhzWidth:
			info.Width = ChannelWidth40
		case nl80211.RateInfo80MhzWidth:
			info.Width = ChannelWidth80
		case nl80211.RateInfo80p80MhzWidth:
			info.Width = ChannelWidth80P80
		case nl80211.RateInfo160MhzWidth:
			info.Width = ChannelWidth160
		case nl80211.RateInfo10MhzWidth:
			info.Width = ChannelWidth10
		case nl80211.RateInfo5MhzWidth:
			info.Width = ChannelWidth5
		}

		// Only use 16-bit counters if the 32-bit counters are not present.
		// If the 32-bit counters appear later in the slice, they will overwrite
		// these values.
		if info.Bitrate == 0 && a.Type == nl80211.RateInfoBitrate {
			info.Bitrate = int(nlenc.Uint16(a.Data))
		}
	}

	// Scale bitrate to bits/second as base unit instead of 100kbits/second.
	// * @NL80211_RATE_INFO_BITRATE: total bitrate (u16, 100kbit/s)
	info.Bitrate *= 100 * 1000

	return &info, nil
}

// parseSurveyInfo parses a single SurveyInfo from a byte slice of netlink
// attributes.
func parseSurveyInfo(b []byte) (*SurveyInfo, error) {
	attrs, err := netlink.UnmarshalAttributes(b)
	if err != nil {
		return nil, err
	}

	var info SurveyInfo
	for _, a := range attrs {
		switch a.Type {
		case nl80211.AttrIfindex:
			info.InterfaceIndex = int(nlenc.Uint32(a.Data))
		case nl80211.AttrSurveyInfo:
			nattrs, err := netlink.UnmarshalAttributes(a.Data)
			if err != nil {
				return nil, err
			}

			if err := (&info).parseAttributes(nattrs); err != nil {
				return nil, err
			}

			// Radio-wide statistics are not bound to a channel.
			info.RadioWide = !attrsContain(nattrs, nl80211.SurveyInfoFrequency)

			// Parsed the necessary data.
			return &info, nil
		}
	}

	// No survey info found
	return nil, os.ErrNotExist
}

// parseAttributes parses netlink attributes into a SurveyInfo's fields.
func (s *SurveyInfo) parseAttributes(attrs []netlink.Attribute) error {
	for _, a := range attrs {
		switch a.Type {
		case nl80211.SurveyInfoFrequency:
			s.Frequency = int(nlenc.Uint32(a.Data))
		case nl80211.SurveyInfoNoise:
			v, err := attrUint8(a)
			if err != nil {
				return err
			}
			s.Noise = int(int8(v))
		case nl80211.SurveyInfoInUse:
			s.InUse = true
		case nl80211.SurveyInfoTime:
			s.ChannelTime = time.Duration(nlenc.Uint64(a.Data)) * time.Millisecond
		case nl80211.SurveyInfoTimeBusy:
			s.ChannelTimeBusy = time.Duration(nlenc.Uint64(a.Data)) * time.Millisecond
		case nl80211.SurveyInfoTimeExtBusy:
			s.ChannelTimeExtBusy = time.Duration(nlenc.Uint64(a.Data)) * time.Millisecond
		case nl80211.SurveyInfoTimeRx:
			s.ChannelTimeRx = time.Duration(nlenc.Uint64(a.Data)) * time.Millisecond
		case nl80211.SurveyInfoTimeTx:
			s.ChannelTimeTx = time.Duration(nlenc.Uint64(a.Data)) * time.Millisecond
		case nl80211.SurveyInfoTimeScan:
			s.ChannelTimeScan = time.Duration(nlenc.Uint64(a.Data)) * time.Millisecond
		}
	}

	return nil
}

// parseMeshPaths parses mesh path table entries.
func parseMeshPaths(msgs []genetlink.Message) ([]*MeshPath, error) {
	paths := make([]*MeshPath, 0, len(msgs))
	for _, m := range msgs {
		attrs, err := netlink.UnmarshalAttributes(m.Data)
		if err != nil {
			return nil, err
		}

		var p MeshPath
		for _, a := range attrs {
			switch a.Type {
			case nl80211.AttrMac:
				p.Destination = net.HardwareAddr(a.Data)
			case nl80211.AttrMpathNextHop:
				p.NextHop = net.HardwareAddr(a.Data)
			case nl80211.AttrMpathInfo:
				nattrs, err := netlink.UnmarshalAttributes(a.Data)
				if err != nil {
					return nil, err
				}

				for _, na := range nattrs {
					switch na.Type {
					case nl80211.MpathInfoFrameQlen:
						p.FrameQueueLength = int(nlenc.Uint32(na.Data))
					case nl80211.MpathInfoSn:
						p.SequenceNumber = int(nlenc.Uint32(na.Data))
					case nl80211.MpathInfoMetric:
						p.Metric = int(nlenc.Uint32(na.Data))
					case nl80211.MpathInfoExptime:
						p.Expires = time.Duration(nlenc.Uint32(na.Data)) * time.Millisecond
					case nl80211.MpathInfoFlags:
						if p.Flags, err = attrUint8(na); err != nil {
							return nil, err
						}
					}
				}
			}
		}

		paths = append(paths, &p)
	}

	return paths, nil
}

// parseEvent decodes a multicast notification.
func parseEvent(m genetlink.Message) (*Event, error) {
	ev := Event{
		Command: m.Header.Command,
		PHY:     -1,
	}

	ad, err := netlink.NewAttributeDecoder(m.Data)
	if err != nil {
		return nil, err
	}

	for ad.Next() {
		switch ad.Type() {
		case nl80211.AttrIfindex:
			ev.InterfaceIndex = int(ad.Uint32())
		case nl80211.AttrWiphy:
			ev.PHY = int(ad.Uint32())
		case nl80211.AttrWiphyFreq:
			ev.Frequency = int(ad.Uint32())
		case nl80211.AttrChannelWidth:
			ev.ChannelWidth = ChannelWidth(ad.Uint32())
		case nl80211.AttrCenterFreq1:
			ev.CenterFrequency1 = int(ad.Uint32())
		case nl80211.AttrChSwitchCount:
			ev.ChannelSwitchCount = int(ad.Uint32())
		case nl80211.AttrRegAlpha2:
			ev.Alpha2 = ad.String()
		case nl80211.AttrRegInitiator:
			ev.Initiator = RegulatoryInitiator(ad.Uint8())
		case nl80211.AttrCqm:
			cqm := CQMEvent{RSSIThresholdEvent: -1}
			ad.Nested(cqm.decode)
			ev.CQM = &cqm
		}
	}

	if err := ad.Err(); err != nil {
		return nil, err
	}

	return &ev, nil
}

func (e *CQMEvent) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.AttrCqmRssiThresholdEvent:
			e.RSSIThresholdEvent = int(ad.Uint32())
		case nl80211.AttrCqmPktLossEvent:
			e.PacketLoss = int(ad.Uint32())
		case nl80211.AttrCqmBeaconLossEvent:
			e.BeaconLoss = true
		}
	}

	return nil
}

// attrsContain checks if a slice of netlink attributes contains an attribute
// with the specified type.
func attrsContain(attrs []netlink.Attribute, typ uint16) bool {
	for _, a := range attrs {
		if a.Type == typ {
			return true
		}
	}

	return false
}

// attrUint8 returns the value of a u8 attribute.
func attrUint8(a netlink.Attribute) (uint8, error) {
	if len(a.Data) < 1 {
		return 0, fmt.Errorf("%w: type %d", errShortAttribute, a.Type)
	}

	return a.Data[0], nil
}

// decodeSSID safely parses a byte slice into UTF-8 runes, and returns the
// resulting string from the runes.
func decodeSSID(b []byte) string {
	buf := bytes.NewBuffer(nil)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]

		buf.WriteRune(r)
	}

	return buf.String()
}

// decodeBSSLoad Decodes the BSSLoad IE. Supports Version 1 and Version 2
// values according to https://raw.githubusercontent.com/wireshark/wireshark/master/epan/dissectors/packet-ieee80211.c
// See also source code of iw (v5.19) scan.c Line 1634ff
// BSS Load ELement (with length 5) is defined by chapter 9.4.2.27 (page 1066) of the current IEEE 802.11-2020
func decodeBSSLoad(b []byte) (*BSSLoad, error) {
	var load BSSLoad
	if len(b) == 5 {
		// Wireshark calls this "802.11e CCA Version"
		// This is the version defined in IEEE 802.11 (Versions 2007, 2012, 2016 and 2020)
		load.Version = 2
		load.StationCount = binary.LittleEndian.Uint16(b[0:2])               // first 2 bytes
		load.ChannelUtilization = b[2]                                       // next 1 byte
		load.AvailableAdmissionCapacity = binary.LittleEndian.Uint16(b[3:5]) // last 2 bytes
	} else if len(b) == 4 {
		// Wireshark calls this "Cisco QBSS Version 1 - non CCA"
		load.Version = 1
		load.StationCount = binary.LittleEndian.Uint16(b[0:2]) // first 2 bytes
		load.ChannelUtilization = b[2]                         // next 1 byte
		load.AvailableAdmissionCapacity = uint16(b[3])         // next 1 byte
	} else {
		return nil, errInvalidBSSLoad
	}
	return &load, nil
}

// decodeRSN parses IEEE 802.11 Element ID 48 (RSN Information Element), as
// defined in IEEE 802.11-2020 section 9.4.2.24. Everything after the
// pairwise cipher list is optional.
func decodeRSN(b []byte) (*RSNInfo, error) {
	// version(2) + group cipher(4)
	if len(b) < 6 {
		return nil, errRSNTooShort
	}

	var ri RSNInfo
	ri.Version = binary.LittleEndian.Uint16(b[:2])
	if ri.Version == 0 {
		return nil, errRSNInvalidVersion
	}

	// Suite selectors are stored OUI first, so read them big-endian.
	ri.GroupCipher = RSNCipher(binary.BigEndian.Uint32(b[2:6]))
	b = b[6:]

	suites := func() ([]uint32, error) {
		if len(b) < 2 {
			return nil, nil
		}
		n := int(binary.LittleEndian.Uint16(b[:2]))
		b = b[2:]
		if len(b) < 4*n {
			return nil, errRSNTruncated
		}

		sels := make([]uint32, 0, n)
		for i := 0; i < n; i++ {
			sels = append(sels, binary.BigEndian.Uint32(b[4*i:]))
		}
		b = b[4*n:]
		return sels, nil
	}

	pairwise, err := suites()
	if err != nil {
		return nil, err
	}
	for _, s := range pairwise {
		ri.PairwiseCiphers = append(ri.PairwiseCiphers, RSNCipher(s))
	}

	akms, err := suites()
	if err != nil {
		return nil, err
	}
	for _, s := range akms {
		ri.AKMs = append(ri.AKMs, RSNAKM(s))
	}

	if len(b) < 2 {
		return &ri, nil
	}
	ri.Capabilities = binary.LittleEndian.Uint16(b[:2])
	b = b[2:]

	// PMKID list.
	if len(b) >= 2 {
		n := int(binary.LittleEndian.Uint16(b[:2]))
		b = b[2:]
		if len(b) < 16*n {
			return nil, errRSNTruncated
		}
		b = b[16*n:]
	}

	// Group management cipher, used by 802.11w.
	if len(b) >= 4 {
		ri.GroupMgmtCipher = RSNCipher(binary.BigEndian.Uint32(b[:4]))
	}

	return &ri, nil
}
