//go:build linux
// +build linux

package iwinfo

import (
	"os"
	"time"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"github.com/openwrt-go/iwinfo/nl80211"
)

// PHYs requests a split dump of all wireless devices.
func (c *client) PHYs() ([]*PHY, error) {
	msgs, err := c.get(
		nl80211.CmdGetWiphy,
		netlink.Dump,
		nil,
		func(ae *netlink.AttributeEncoder) {
			ae.Flag(nl80211.AttrSplitWiphyDump, true)
		},
	)
	if err != nil {
		return nil, err
	}

	return parsePHYs(msgs)
}

// PHY requests a split dump of a single wireless device.
func (c *client) PHY(index int) (*PHY, error) {
	msgs, err := c.get(
		nl80211.CmdGetWiphy,
		netlink.Dump,
		nil,
		func(ae *netlink.AttributeEncoder) {
			ae.Uint32(nl80211.AttrWiphy, uint32(index))
			ae.Flag(nl80211.AttrSplitWiphyDump, true)
		},
	)
	if err != nil {
		return nil, err
	}

	phys, err := parsePHYs(msgs)
	if err != nil {
		return nil, err
	}

	for _, p := range phys {
		if p.Index == index {
			return p, nil
		}
	}

	return nil, os.ErrNotExist
}

// parsePHYs merges the messages of a split wiphy dump into one PHY per
// device, in the order devices first appear.
func parsePHYs(msgs []genetlink.Message) ([]*PHY, error) {
	var phys []*PHY
	byIndex := make(map[int]*PHY)

	for _, m := range msgs {
		attrs, err := netlink.UnmarshalAttributes(m.Data)
		if err != nil {
			return nil, err
		}

		idx := -1
		for _, a := range attrs {
			if a.Type == nl80211.AttrWiphy {
				idx = int(nlenc.Uint32(a.Data))
				break
			}
		}
		if idx < 0 {
			continue
		}

		p, ok := byIndex[idx]
		if !ok {
			p = &PHY{Index: idx}
			byIndex[idx] = p
			phys = append(phys, p)
		}

		if err := p.parseAttributes(attrs); err != nil {
			return nil, err
		}
	}

	return phys, nil
}

// parseAttributes parses netlink attributes into a PHY's fields. It may be
// called once per message of a split dump.
func (p *PHY) parseAttributes(attrs []netlink.Attribute) error {
	for _, a := range attrs {
		var err error
		switch a.Type {
		case nl80211.AttrWiphyName:
			p.Name = nlenc.String(a.Data)
		case nl80211.AttrSupportedIftypes:
			p.SupportedIftypes, err = decodeIftypes(a.Data)
		case nl80211.AttrSoftwareIftypes:
			p.SoftwareIftypes, err = decodeIftypes(a.Data)
		case nl80211.AttrWiphyBands:
			err = decode(a.Data, p.decodeBands)
		case nl80211.AttrInterfaceCombinations:
			err = decode(a.Data, p.decodeCombinations)
		case nl80211.AttrFeatureFlags:
			p.FeatureFlags = nlenc.Uint32(a.Data)
		case nl80211.AttrExtFeatures:
			p.ExtFeatures = append(ExtFeatures(nil), a.Data...)
		case nl80211.AttrWiphySelfManagedReg:
			p.SelfManagedReg = true
		case nl80211.AttrMaxNumScanSsids, nl80211.AttrMaxNumSchedScanSsids, nl80211.AttrMaxMatchSets:
			var v uint8
			if v, err = attrUint8(a); err != nil {
				break
			}

			switch a.Type {
			case nl80211.AttrMaxNumScanSsids:
				p.MaxScanSSIDs = int(v)
			case nl80211.AttrMaxNumSchedScanSsids:
				p.MaxSchedScanSSIDs = int(v)
			case nl80211.AttrMaxMatchSets:
				p.MaxMatchSets = int(v)
			}
		case nl80211.AttrWiphyAntennaGain:
			p.AntennaGain = int(int32(nlenc.Uint32(a.Data)))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// decode runs fn over the attributes packed in b.
func decode(b []byte, fn func(ad *netlink.AttributeDecoder) error) error {
	ad, err := netlink.NewAttributeDecoder(b)
	if err != nil {
		return err
	}

	if err := fn(ad); err != nil {
		return err
	}

	return ad.Err()
}

// decodeIftypes decodes a nested set of interface type flags.
func decodeIftypes(b []byte) ([]InterfaceType, error) {
	var types []InterfaceType
	err := decode(b, func(ad *netlink.AttributeDecoder) error {
		for ad.Next() {
			types = append(types, InterfaceType(ad.Type()))
		}
		return nil
	})

	return types, err
}

func (p *PHY) decodeBands(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		band := p.band(int(ad.Type()))
		ad.Nested(band.decode)
	}

	return nil
}

// band returns the attributes of band n, adding them if a previous message
// of the dump did not carry that band.
func (p *PHY) band(n int) *BandAttributes {
	for i := range p.BandAttributes {
		if p.BandAttributes[i].Band == n {
			return &p.BandAttributes[i]
		}
	}

	p.BandAttributes = append(p.BandAttributes, BandAttributes{Band: n})
	return &p.BandAttributes[len(p.BandAttributes)-1]
}

func (b *BandAttributes) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.BandAttrFreqs:
			ad.Nested(func(nad *netlink.AttributeDecoder) error {
				for nad.Next() {
					var f FrequencyAttrs
					nad.Nested(f.decode)
					b.FrequencyAttributes = append(b.FrequencyAttributes, f)
				}
				return nil
			})
		case nl80211.BandAttrRates:
			ad.Nested(func(nad *netlink.AttributeDecoder) error {
				for nad.Next() {
					var r BitrateAttrs
					nad.Nested(r.decode)
					b.BitrateAttributes = append(b.BitrateAttributes, r)
				}
				return nil
			})
		case nl80211.BandAttrHtMcsSet:
			copy(b.ht().SupportedMCS[:], ad.Bytes())
		case nl80211.BandAttrHtCapa:
			b.ht().decodeCapability(ad.Uint16())
		case nl80211.BandAttrHtAmpduFactor:
			b.ht().MaxRxAMPDULength = 1<<(13+uint(ad.Uint8())) - 1
		case nl80211.BandAttrHtAmpduDensity:
			b.MinRxAMPDUSpacing = ampduSpacing(ad.Uint8())
		case nl80211.BandAttrVhtMcsSet:
			copy(b.vht().SupportedMCS[:], ad.Bytes())
		case nl80211.BandAttrVhtCapa:
			b.vht().decodeCapability(ad.Uint32())
		}
	}

	return nil
}

func (b *BandAttributes) ht() *HTCapabilities {
	if b.HTCapabilities == nil {
		b.HTCapabilities = &HTCapabilities{}
	}
	return b.HTCapabilities
}

func (b *BandAttributes) vht() *VHTCapabilities {
	if b.VHTCapabilities == nil {
		b.VHTCapabilities = &VHTCapabilities{}
	}
	return b.VHTCapabilities
}

// ampduSpacing decodes the minimum MPDU start spacing field.
func ampduSpacing(v uint8) time.Duration {
	if v == 0 || v > 7 {
		return 0
	}

	// 1: 1/4us, 2: 1/2us, 3: 1us ... 7: 16us
	return 250 * time.Nanosecond << (v - 1)
}

// decodeCapability decodes the HT capability information field.
func (h *HTCapabilities) decodeCapability(c uint16) {
	h.RxLDPC = c&(1<<0) != 0
	h.CW40 = c&(1<<1) != 0

	// The field encodes 0 static, 1 dynamic and 3 disabled.
	switch (c >> 2) & 0x3 {
	case 0:
		h.SMPS = nl80211.SmpsStatic
	case 1:
		h.SMPS = nl80211.SmpsDynamic
	default:
		h.SMPS = nl80211.SmpsOff
	}

	h.HTGreenfield = c&(1<<4) != 0
	h.SGI20 = c&(1<<5) != 0
	h.SGI40 = c&(1<<6) != 0
	h.TxSTBC = c&(1<<7) != 0
	h.RxSTBCStreams = uint8((c >> 8) & 0x3)
	h.HTDelayedBlockAck = c&(1<<10) != 0
	h.LongMaxAMSDULength = c&(1<<11) != 0
	h.DSSSCCKHT40 = c&(1<<12) != 0
	h.FortyMhzIntolerant = c&(1<<14) != 0
	h.LSIGTxOPProtection = c&(1<<15) != 0
}

// decodeCapability decodes the VHT capability information field.
func (v *VHTCapabilities) decodeCapability(c uint32) {
	switch c & 0x3 {
	case 0:
		v.MaxMPDULength = 3895
	case 1:
		v.MaxMPDULength = 7991
	case 2:
		v.MaxMPDULength = 11454
	}

	switch (c >> 2) & 0x3 {
	case 1:
		v.VHT160 = true
	case 2:
		v.VHT160 = true
		v.VHT8080 = true
	}

	v.RXLDPC = c&(1<<4) != 0
	v.ShortGI80 = c&(1<<5) != 0
	v.ShortGI160 = c&(1<<6) != 0
	v.TXSTBC = c&(1<<7) != 0
	v.RXSTBC = int((c >> 8) & 0x7)
	v.SuBeamFormer = c&(1<<11) != 0
	v.SuBeamFormee = c&(1<<12) != 0
	v.BFAntenna = int((c>>13)&0x7) + 1
	v.SoundingDimension = int((c>>16)&0x7) + 1
	v.MuBeamformer = c&(1<<19) != 0
	v.MuBeamformee = c&(1<<20) != 0
	v.VTHTXOPPS = c&(1<<21) != 0
	v.HTCVHT = c&(1<<22) != 0
	v.MaxAMPDU = 1<<(13+((c>>23)&0x7)) - 1
	v.VHTLinkAdapt = int((c >> 26) & 0x3)
	v.RXAntennaPattern = c&(1<<28) != 0
	v.TXAntennaPattern = c&(1<<29) != 0
	v.ExtendedNSSBW = int((c >> 30) & 0x3)
}

func (f *FrequencyAttrs) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.FrequencyAttrFreq:
			f.Frequency = int(ad.Uint32())
		case nl80211.FrequencyAttrDisabled:
			f.Disabled = true
		case nl80211.FrequencyAttrNoIr:
			f.NoIR = true
		case nl80211.FrequencyAttrRadar:
			f.RadarDetection = true
		case nl80211.FrequencyAttrMaxTxPower:
			// mBm
			f.MaxTxPower = float32(ad.Uint32()) / 100
		case nl80211.FrequencyAttrIndoorOnly:
			f.IndoorOnly = true
		case nl80211.FrequencyAttrNoHt40Minus:
			f.NoHT40Minus = true
		case nl80211.FrequencyAttrNoHt40Plus:
			f.NoHT40Plus = true
		case nl80211.FrequencyAttrNo80mhz:
			f.No80MHz = true
		case nl80211.FrequencyAttrNo160mhz:
			f.No160MHz = true
		case nl80211.FrequencyAttrNo20mhz:
			f.No20MHz = true
		case nl80211.FrequencyAttrNo10mhz:
			f.No10MHz = true
		}
	}

	return nil
}

func (r *BitrateAttrs) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.BitrateAttrRate:
			// 100kbps
			r.Bitrate = float32(ad.Uint32()) / 10
		case nl80211.BitrateAttr2ghzShortpreamble:
			r.ShortPreamble = true
		}
	}

	return nil
}

func (p *PHY) decodeCombinations(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		var ic InterfaceCombination
		ad.Nested(ic.decode)
		p.InterfaceCombinations = append(p.InterfaceCombinations, ic)
	}

	return nil
}

func (ic *InterfaceCombination) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.IfaceCombLimits:
			ad.Nested(func(nad *netlink.AttributeDecoder) error {
				for nad.Next() {
					var l InterfaceCombinationLimit
					nad.Nested(l.decode)
					ic.CombinationLimits = append(ic.CombinationLimits, l)
				}
				return nil
			})
		case nl80211.IfaceCombMaxnum:
			ic.Total = int(ad.Uint32())
		case nl80211.IfaceCombStaApBiMatch:
			ic.StaApBiMatch = true
		case nl80211.IfaceCombNumChannels:
			ic.NumChannels = int(ad.Uint32())
		}
	}

	return nil
}

func (l *InterfaceCombinationLimit) decode(ad *netlink.AttributeDecoder) error {
	for ad.Next() {
		switch ad.Type() {
		case nl80211.IfaceLimitMax:
			l.Max = int(ad.Uint32())
		case nl80211.IfaceLimitTypes:
			ad.Nested(func(nad *netlink.AttributeDecoder) error {
				for nad.Next() {
					l.InterfaceTypes = append(l.InterfaceTypes, InterfaceType(nad.Type()))
				}
				return nil
			})
		}
	}

	return nil
}
