package iwinfo

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openwrt-go/iwinfo/nl80211"
)

func TestInterfaceTypeString(t *testing.T) {
	tests := []struct {
		t InterfaceType
		s string
	}{
		{
			t: InterfaceTypeUnspecified,
			s: "unspecified",
		},
		{
			t: InterfaceTypeAdHoc,
			s: "ad-hoc",
		},
		{
			t: InterfaceTypeStation,
			s: "station",
		},
		{
			t: InterfaceTypeAP,
			s: "access point",
		},
		{
			t: InterfaceTypeWDS,
			s: "wireless distribution",
		},
		{
			t: InterfaceTypeMonitor,
			s: "monitor",
		},
		{
			t: InterfaceTypeMeshPoint,
			s: "mesh point",
		},
		{
			t: InterfaceTypeP2PClient,
			s: "P2P client",
		},
		{
			t: InterfaceTypeP2PGroupOwner,
			s: "P2P group owner",
		},
		{
			t: InterfaceTypeP2PDevice,
			s: "P2P device",
		},
		{
			t: InterfaceTypeOCB,
			s: "outside context of BSS",
		},
		{
			t: InterfaceTypeOCB + 1,
			s: "unknown(12)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if want, got := tt.s, tt.t.String(); want != got {
				t.Fatalf("unexpected interface type string:\n- want: %q\n-  got: %q",
					want, got)
			}
		})
	}
}

func TestBSSStatusString(t *testing.T) {
	tests := []struct {
		t BSSStatus
		s string
	}{
		{
			t: BSSStatusAuthenticated,
			s: "authenticated",
		},
		{
			t: BSSStatusAssociated,
			s: "associated",
		},
		{
			t: BSSStatusNotAssociated,
			s: "unassociated",
		},
		{
			t: BSSStatusIBSSJoined,
			s: "IBSS joined",
		},
		{
			t: 4,
			s: "unknown(4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if want, got := tt.s, tt.t.String(); want != got {
				t.Fatalf("unexpected BSS status string:\n- want: %q\n-  got: %q",
					want, got)
			}
		})
	}
}

func Test_parseIEs(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		ies  []ie
		err  error
	}{
		{
			name: "empty",
		},
		{
			name: "too short",
			b:    []byte{0x00},
			err:  errInvalidIE,
		},
		{
			name: "length too long",
			b:    []byte{0x00, 0xff, 0x00},
			err:  errInvalidIE,
		},
		{
			name: "OK one",
			b:    []byte{0x00, 0x03, 'f', 'o', 'o'},
			ies: []ie{{
				ID:   0,
				Data: []byte("foo"),
			}},
		},
		{
			name: "OK three",
			b: []byte{
				0x00, 0x03, 'f', 'o', 'o',
				0x01, 0x00,
				0x02, 0x06, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
			},
			ies: []ie{
				{
					ID:   0,
					Data: []byte("foo"),
				},
				{
					ID:   1,
					Data: []byte{},
				},
				{
					ID:   2,
					Data: []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ies, err := parseIEs(tt.b)

			if want, got := tt.err, err; want != got {
				t.Fatalf("unexpected error:\n- want: %v\n-  got: %v",
					want, got)
			}
			if err != nil {
				t.Logf("err: %v", err)
				return
			}

			if want, got := tt.ies, ies; !reflect.DeepEqual(want, got) {
				t.Fatalf("unexpected ies:\n- want: %v\n-  got: %v",
					want, got)
			}
		})
	}
}

func TestChannelWidthString(t *testing.T) {
	tests := []struct {
		w ChannelWidth
		s string
	}{
		{w: ChannelWidth20NoHT, s: "20 MHz (no HT)"},
		{w: ChannelWidth40, s: "40 MHz"},
		{w: ChannelWidth80P80, s: "80+80 MHz"},
		{w: ChannelWidth5, s: "5 MHz"},
		{w: ChannelWidth10, s: "10 MHz"},
		{w: ChannelWidth10 + 1, s: "unknown(8)"},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if want, got := tt.s, tt.w.String(); want != got {
				t.Fatalf("unexpected channel width string:\n- want: %q\n-  got: %q",
					want, got)
			}
		})
	}
}

func TestRuleFlagsString(t *testing.T) {
	tests := []struct {
		name string
		f    RuleFlags
		s    string
	}{
		{
			name: "none",
			s:    "none",
		},
		{
			name: "DFS and auto bandwidth",
			f:    nl80211.RRFDfs | nl80211.RRFAutoBw,
			s:    "DFS, AUTO-BW",
		},
		{
			name: "no HT40 composite",
			f:    nl80211.RRFNoHt40,
			s:    "NO-HT40MINUS, NO-HT40PLUS",
		},
		{
			name: "new VHT restrictions",
			f:    nl80211.RRFNo80mhz | nl80211.RRFNo160mhz | nl80211.RRFNoIr,
			s:    "NO-IR, NO-80MHZ, NO-160MHZ",
		},
		{
			name: "unknown bit",
			f:    nl80211.RRFNoOfdm | 1<<20,
			s:    "NO-OFDM, 0x100000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if want, got := tt.s, tt.f.String(); want != got {
				t.Fatalf("unexpected rule flags string:\n- want: %q\n-  got: %q",
					want, got)
			}
		})
	}
}

func TestExtFeaturesHas(t *testing.T) {
	e := ExtFeatures{0x01, 0x80}

	for i, want := range map[int]bool{
		-1: false,
		0:  true,
		1:  false,
		15: true,
		16: false,
	} {
		if got := e.Has(i); want != got {
			t.Fatalf("unexpected result for feature %d: want %v, got %v", i, want, got)
		}
	}

	if (ExtFeatures(nil)).Has(0) {
		t.Fatal("empty bitmap should have no features")
	}
}

func TestPHYHasFeature(t *testing.T) {
	p := &PHY{FeatureFlags: nl80211.FeatureSupportsWmmAdmission | nl80211.FeatureTdlsChannelSwitch}

	if !p.HasFeature(nl80211.FeatureSupportsWmmAdmission) {
		t.Fatal("expected WMM admission support")
	}
	if p.HasFeature(nl80211.FeatureTdlsChannelSwitch | nl80211.FeatureScanRandomMacAddr) {
		t.Fatal("expected all requested bits to be required")
	}
}

func TestTIDStatsNonQoS(t *testing.T) {
	if (TIDStats{TID: 0}).NonQoS() {
		t.Fatal("TID 0 is QoS traffic")
	}
	if !(TIDStats{TID: nl80211.TidNonQoS}).NonQoS() {
		t.Fatal("TID 16 is non-QoS traffic")
	}
}

func TestFrequencyChannelRoundTrip(t *testing.T) {
	tests := []struct {
		band    int
		channel int
		freq    int
	}{
		{band: Band2GHz, channel: 1, freq: 2412},
		{band: Band2GHz, channel: 13, freq: 2472},
		{band: Band2GHz, channel: 14, freq: 2484},
		{band: Band5GHz, channel: 36, freq: 5180},
		{band: Band5GHz, channel: 172, freq: 5860},
		{band: Band5GHz, channel: 184, freq: 4920},
		{band: Band60GHz, channel: 2, freq: 60480},
	}

	for _, tt := range tests {
		if got := ChannelToFrequency(tt.channel, tt.band); tt.freq != got {
			t.Fatalf("unexpected frequency for channel %d: want %d, got %d", tt.channel, tt.freq, got)
		}
		if got := FrequencyToChannel(tt.freq); tt.channel != got {
			t.Fatalf("unexpected channel for %d MHz: want %d, got %d", tt.freq, tt.channel, got)
		}
	}
}

func TestStringers(t *testing.T) {
	got := []string{
		DFSETSI.String(),
		DFSRegion(9).String(),
		RegulatoryInitiatorCountryIE.String(),
		RSNCipherCCMP128.String(),
		RSNCipher(0x00501234).String(),
		RSNAKMSAE.String(),
		Event{Command: nl80211.CmdWiphyRegChange}.String(),
	}

	want := []string{
		"ETSI",
		"unknown(9)",
		"country IE",
		"CCMP",
		"unknown(0x00501234)",
		"SAE",
		"wiphy_reg_change",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected strings (-want +got):\n%s", diff)
	}
}
