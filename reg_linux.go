//go:build linux
// +build linux

package iwinfo

import (
	"os"
	"time"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/openwrt-go/iwinfo/nl80211"
)

// Regulatory requests the regulatory domain of a device, or the global
// domain if phy is negative.
func (c *client) Regulatory(phy int) (*RegulatoryDomain, error) {
	msgs, err := c.get(
		nl80211.CmdGetReg,
		0,
		nil,
		func(ae *netlink.AttributeEncoder) {
			if phy >= 0 {
				ae.Uint32(nl80211.AttrWiphy, uint32(phy))
			}
		},
	)
	if err != nil {
		return nil, err
	}

	rds, err := parseRegulatoryDomains(msgs)
	if err != nil {
		return nil, err
	}
	if len(rds) == 0 {
		return nil, os.ErrNotExist
	}

	return rds[0], nil
}

// RegulatoryDomains requests a dump of the global regulatory domain and
// those of self-managed devices.
func (c *client) RegulatoryDomains() ([]*RegulatoryDomain, error) {
	msgs, err := c.get(
		nl80211.CmdGetReg,
		netlink.Dump,
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return parseRegulatoryDomains(msgs)
}

func parseRegulatoryDomains(msgs []genetlink.Message) ([]*RegulatoryDomain, error) {
	rds := make([]*RegulatoryDomain, 0, len(msgs))
	for _, m := range msgs {
		rd := &RegulatoryDomain{PHY: -1}
		if err := decode(m.Data, rd.decode); err != nil {
			return nil, err
		}

		rds = append(rds, rd)
	}

	return rds, nil
}

func (rd *RegulatoryDomain) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.AttrRegAlpha2:
			rd.Alpha2 = ad.String()
		case nl80211.AttrDfsRegion:
			rd.DFSRegion = DFSRegion(ad.Uint8())
		case nl80211.AttrWiphy:
			rd.PHY = int(ad.Uint32())
		case nl80211.AttrWiphySelfManagedReg:
			rd.SelfManaged = true
		case nl80211.AttrRegRules:
			ad.Nested(rd.decodeRules)
		}
	}

	return nil
}

func (rd *RegulatoryDomain) decodeRules(ad *netlink.AttributeDecoder) error {
	if ad.Len() > nl80211.MaxSuppRegRules {
		return errTooManyRegRules
	}

	for ad.Next() {
		var r RegulatoryRule
		ad.Nested(r.decode)
		rd.Rules = append(rd.Rules, r)
	}

	return nil
}

func (r *RegulatoryRule) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.AttrRegRuleFlags:
			r.Flags = RuleFlags(ad.Uint32())
		case nl80211.AttrFreqRangeStart:
			r.StartKHz = int(ad.Uint32())
		case nl80211.AttrFreqRangeEnd:
			r.EndKHz = int(ad.Uint32())
		case nl80211.AttrFreqRangeMaxBw:
			r.MaxBandwidthKHz = int(ad.Uint32())
		case nl80211.AttrPowerRuleMaxAntGain:
			r.MaxAntennaGain = int(ad.Uint32())
		case nl80211.AttrPowerRuleMaxEirp:
			r.MaxEIRP = int(ad.Uint32())
		case nl80211.AttrDfsCacTime:
			r.DFSCACTime = time.Duration(ad.Uint32()) * time.Millisecond
		}
	}

	return nil
}
