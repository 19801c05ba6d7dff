//go:build !linux
// +build !linux

package iwinfo

import (
	"context"
	"fmt"
	"net"
	"runtime"
	"time"
)

// errUnimplemented is returned by all functions on platforms that
// do not have package iwinfo implemented.
var errUnimplemented = fmt.Errorf("iwinfo: not implemented on %s", runtime.GOOS)

// A client is the no-op implementation of a netlink sockets connection.
type client struct{}

func newClient() (*client, error) { return nil, errUnimplemented }

func (*client) Close() error                                         { return errUnimplemented }
func (*client) Interfaces() ([]*Interface, error)                    { return nil, errUnimplemented }
func (*client) PHYs() ([]*PHY, error)                                { return nil, errUnimplemented }
func (*client) PHY(_ int) (*PHY, error)                              { return nil, errUnimplemented }
func (*client) BSS(_ *Interface) (*BSS, error)                       { return nil, errUnimplemented }
func (*client) AccessPoints(_ *Interface) ([]*BSS, error)            { return nil, errUnimplemented }
func (*client) StationInfo(_ *Interface) ([]*StationInfo, error)     { return nil, errUnimplemented }
func (*client) SurveyInfo(_ *Interface) ([]*SurveyInfo, error)       { return nil, errUnimplemented }
func (*client) Regulatory(_ int) (*RegulatoryDomain, error)          { return nil, errUnimplemented }
func (*client) RegulatoryDomains() ([]*RegulatoryDomain, error)      { return nil, errUnimplemented }
func (*client) MeshProxyPaths(_ *Interface) ([]*MeshPath, error)     { return nil, errUnimplemented }
func (*client) Connect(_ *Interface, _ string) error                 { return errUnimplemented }
func (*client) Disconnect(_ *Interface) error                        { return errUnimplemented }
func (*client) StopScheduledScan(_ *Interface) error                 { return errUnimplemented }
func (*client) AddTrafficStream(_ *Interface, _ TrafficStream) error { return errUnimplemented }
func (*client) JoinOCB(_ *Interface, _ OCBChannel) error             { return errUnimplemented }
func (*client) LeaveOCB(_ *Interface) error                          { return errUnimplemented }
func (*client) SetDeadline(_ time.Time) error                        { return errUnimplemented }
func (*client) SetReadDeadline(_ time.Time) error                    { return errUnimplemented }
func (*client) SetWriteDeadline(_ time.Time) error                   { return errUnimplemented }

func (*client) Scan(_ context.Context, _ *Interface, _ *ScanOptions) error {
	return errUnimplemented
}

func (*client) StartScheduledScan(_ *Interface, _ SchedScanOptions) error {
	return errUnimplemented
}

func (*client) DeleteTrafficStream(_ *Interface, _ uint8, _ net.HardwareAddr) error {
	return errUnimplemented
}

func (*client) TDLSChannelSwitch(_ *Interface, _ TDLSChannelSwitch) error {
	return errUnimplemented
}

func (*client) TDLSCancelChannelSwitch(_ *Interface, _ net.HardwareAddr) error {
	return errUnimplemented
}

func (*client) Events(_ context.Context, _ func(Event) error, _ ...string) error {
	return errUnimplemented
}
