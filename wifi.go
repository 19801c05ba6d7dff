package iwinfo

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/openwrt-go/iwinfo/nl80211"
)

// errInvalidIE is returned when one or more IEs are malformed.
var errInvalidIE = errors.New("invalid 802.11 information element")

// errInvalidBSSLoad is returned when BSSLoad IE has wrong length.
var errInvalidBSSLoad = errors.New("802.11 information element BSSLoad has wrong length")

// RSN IE errors.
var (
	errRSNTooShort       = errors.New("RSN information element too short")
	errRSNInvalidVersion = errors.New("RSN information element has invalid version")
	errRSNTruncated      = errors.New("RSN information element truncated")
)

// Validation errors for requests built from user input.
var (
	errInvalidTSID         = errors.New("traffic stream ID must be in range 0-7")
	errInvalidUserPriority = errors.New("user priority must be in range 0-7")
	errAdmittedTimeRange   = errors.New("admitted time must be between 0 and 1s per second")
	errNotOCB              = errors.New("interface is not in OCB mode")
	errInvalidPeer         = errors.New("peer must be a 6 byte MAC address")
	errTooManyRegRules     = fmt.Errorf("regulatory domain exceeds %d rules", nl80211.MaxSuppRegRules)
)

// An InterfaceType is the operating mode of an Interface.
type InterfaceType int

const (
	// InterfaceTypeUnspecified indicates that an interface's type is unspecified
	// and the driver determines its function.
	InterfaceTypeUnspecified InterfaceType = nl80211.IftypeUnspecified

	// InterfaceTypeAdHoc indicates that an interface is part of an independent
	// basic service set (BSS) of client devices without a controlling access
	// point.
	InterfaceTypeAdHoc InterfaceType = nl80211.IftypeAdhoc

	// InterfaceTypeStation indicates that an interface is part of a managed
	// basic service set (BSS) of client devices with a controlling access point.
	InterfaceTypeStation InterfaceType = nl80211.IftypeStation

	// InterfaceTypeAP indicates that an interface is an access point.
	InterfaceTypeAP InterfaceType = nl80211.IftypeAp

	// InterfaceTypeAPVLAN indicates that an interface is a VLAN interface
	// associated with an access point.
	InterfaceTypeAPVLAN InterfaceType = nl80211.IftypeApVlan

	// InterfaceTypeWDS indicates that an interface is a wireless distribution
	// interface, used as part of a network of multiple access points.
	InterfaceTypeWDS InterfaceType = nl80211.IftypeWds

	// InterfaceTypeMonitor indicates that an interface is a monitor interface,
	// receiving all frames from all clients in a given network.
	InterfaceTypeMonitor InterfaceType = nl80211.IftypeMonitor

	// InterfaceTypeMeshPoint indicates that an interface is part of a wireless
	// mesh network.
	InterfaceTypeMeshPoint InterfaceType = nl80211.IftypeMeshPoint

	// InterfaceTypeP2PClient indicates that an interface is a client within
	// a peer-to-peer network.
	InterfaceTypeP2PClient InterfaceType = nl80211.IftypeP2pClient

	// InterfaceTypeP2PGroupOwner indicates that an interface is the group
	// owner within a peer-to-peer network.
	InterfaceTypeP2PGroupOwner InterfaceType = nl80211.IftypeP2pGo

	// InterfaceTypeP2PDevice indicates that an interface is a device within
	// a peer-to-peer client network.
	InterfaceTypeP2PDevice InterfaceType = nl80211.IftypeP2pDevice

	// InterfaceTypeOCB indicates that an interface is outside the context
	// of a basic service set (BSS), as used by 802.11p vehicular networks.
	InterfaceTypeOCB InterfaceType = nl80211.IftypeOcb
)

// String returns the string representation of an InterfaceType.
func (t InterfaceType) String() string {
	switch t {
	case InterfaceTypeUnspecified:
		return "unspecified"
	case InterfaceTypeAdHoc:
		return "ad-hoc"
	case InterfaceTypeStation:
		return "station"
	case InterfaceTypeAP:
		return "access point"
	case InterfaceTypeAPVLAN:
		return "access point/VLAN"
	case InterfaceTypeWDS:
		return "wireless distribution"
	case InterfaceTypeMonitor:
		return "monitor"
	case InterfaceTypeMeshPoint:
		return "mesh point"
	case InterfaceTypeP2PClient:
		return "P2P client"
	case InterfaceTypeP2PGroupOwner:
		return "P2P group owner"
	case InterfaceTypeP2PDevice:
		return "P2P device"
	case InterfaceTypeOCB:
		return "outside context of BSS"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}

// A ChannelWidth is the width of an operating channel.
type ChannelWidth int

// Possible ChannelWidth values.
const (
	ChannelWidth20NoHT ChannelWidth = nl80211.ChanWidth20Noht
	ChannelWidth20     ChannelWidth = nl80211.ChanWidth20
	ChannelWidth40     ChannelWidth = nl80211.ChanWidth40
	ChannelWidth80     ChannelWidth = nl80211.ChanWidth80
	ChannelWidth80P80  ChannelWidth = nl80211.ChanWidth80p80
	ChannelWidth160    ChannelWidth = nl80211.ChanWidth160
	ChannelWidth5      ChannelWidth = nl80211.ChanWidth5
	ChannelWidth10     ChannelWidth = nl80211.ChanWidth10
)

// String returns the string representation of a ChannelWidth.
func (w ChannelWidth) String() string {
	switch w {
	case ChannelWidth20NoHT:
		return "20 MHz (no HT)"
	case ChannelWidth20:
		return "20 MHz"
	case ChannelWidth40:
		return "40 MHz"
	case ChannelWidth80:
		return "80 MHz"
	case ChannelWidth80P80:
		return "80+80 MHz"
	case ChannelWidth160:
		return "160 MHz"
	case ChannelWidth5:
		return "5 MHz"
	case ChannelWidth10:
		return "10 MHz"
	default:
		return fmt.Sprintf("unknown(%d)", w)
	}
}

// An Interface is a WiFi network interface.
type Interface struct {
	// The index of the interface.
	Index int

	// The name of the interface.
	Name string

	// The hardware address of the interface.
	HardwareAddr net.HardwareAddr

	// The physical device that this interface belongs to.
	PHY int

	// The virtual device number of this interface within a PHY.
	Device int

	// The operating mode of the interface.
	Type InterfaceType

	// The interface's wireless frequency in MHz.
	Frequency int

	// The width of the operating channel, and the center frequency of
	// that channel in MHz when it differs from Frequency.
	ChannelWidth     ChannelWidth
	CenterFrequency1 int
}

// StationInfo contains statistics about a WiFi interface operating in
// station mode.
type StationInfo struct {
	// The interface that this station is associated with.
	InterfaceIndex int

	// The hardware address of the station.
	HardwareAddr net.HardwareAddr

	// The time since the station last connected.
	Connected time.Duration

	// The time since wireless activity last occurred.
	Inactive time.Duration

	// The number of bytes received by this station.
	ReceivedBytes int

	// The number of bytes transmitted by this station.
	TransmittedBytes int

	// The number of packets received by this station.
	ReceivedPackets int

	// The number of packets transmitted by this station.
	TransmittedPackets int

	// The current data receive bitrate, in bits/second.
	ReceiveBitrate int

	// The current data transmit bitrate, in bits/second.
	TransmitBitrate int

	// Details of the current receive and transmit rates.
	ReceiveRate  RateInfo
	TransmitRate RateInfo

	// The signal strength of the last received PPDU, in dBm.
	Signal int

	// The average signal strength, in dBm.
	SignalAverage int

	// Per-chain signal strength of the last PPDU and its average, in dBm.
	ChainSignal        []int
	ChainSignalAverage []int

	// The average signal strength of beacons from this station, in dBm.
	BeaconSignalAverage int

	// The number of times the station has had to retry while sending a packet.
	TransmitRetries int

	// The number of times a packet transmission failed.
	TransmitFailed int

	// The number of times a beacon loss was detected.
	BeaconLoss int

	// The number of beacons received from this station.
	BeaconReceived int

	// The number of received packets dropped for miscellaneous reasons.
	ReceiveDroppedMisc int

	// The expected throughput to this station, in bits/second, including
	// 802.11 headers.
	ExpectedThroughput int

	// Per traffic identifier statistics, ordered by TID.
	TIDStats []TIDStats
}

// RateInfo describes a receive or transmit rate.
type RateInfo struct {
	// Bitrate in bits per second.
	Bitrate int

	// The HT MCS index, or -1 when not an HT rate.
	MCS int

	// The VHT MCS index and number of spatial streams, or 0 when not a
	// VHT rate.
	VHTMCS int
	VHTNSS int

	// The channel width used by the rate.
	Width ChannelWidth

	// Whether a short guard interval is in use.
	ShortGI bool
}

// TIDStats contains MSDU counters for a single traffic identifier.
type TIDStats struct {
	// TID is 0-15 for QoS traffic or nl80211.TidNonQoS for non-QoS traffic.
	TID int

	ReceivedMSDU        uint64
	TransmittedMSDU     uint64
	TransmitMSDURetries uint64
	TransmitMSDUFailed  uint64
}

// NonQoS reports whether s describes non-QoS traffic.
func (s TIDStats) NonQoS() bool { return s.TID == nl80211.TidNonQoS }

// BSSLoad is an Information Element containing measurements of the load on the BSS.
type BSSLoad struct {
	// Version: Indicates the version of the BSS Load Element. Can be 1 or 2.
	Version int

	// StationCount: total number of STA currently associated with this BSS.
	StationCount uint16

	// ChannelUtilization: Percentage of time (linearly scaled 0 to 255) that the AP sensed the medium was busy. Calculated only for the primary channel.
	ChannelUtilization uint8

	// AvailableAdmissionCapacity: remaining amount of medium time availible via explicit admission controll in units of 32 us/s.
	AvailableAdmissionCapacity uint16
}

// String returns the string representation of a BSSLoad.
func (l BSSLoad) String() string {
	if l.Version == 1 {
		return fmt.Sprintf("BSSLoad Version: %d    stationCount: %d    channelUtilization: %d/255     availableAdmissionCapacity: %d\n",
			l.Version, l.StationCount, l.ChannelUtilization, l.AvailableAdmissionCapacity,
		)
	} else if l.Version == 2 {
		return fmt.Sprintf("BSSLoad Version: %d    stationCount: %d    channelUtilization: %d/255     availableAdmissionCapacity: %d [*32us/s]\n",
			l.Version, l.StationCount, l.ChannelUtilization, l.AvailableAdmissionCapacity,
		)
	} else {
		return fmt.Sprintf("invalid BSSLoad Version: %d", l.Version)
	}
}

// An RSNCipher is an IEEE 802.11 cipher suite selector (OUI and type).
type RSNCipher uint32

// Known cipher suites under the IEEE 00-0F-AC OUI.
const (
	RSNCipherUseGroup RSNCipher = 0x000fac00
	RSNCipherWEP40    RSNCipher = 0x000fac01
	RSNCipherTKIP     RSNCipher = 0x000fac02
	RSNCipherCCMP128  RSNCipher = 0x000fac04
	RSNCipherWEP104   RSNCipher = 0x000fac05
	RSNCipherBIPCMAC  RSNCipher = 0x000fac06
	RSNCipherGCMP128  RSNCipher = 0x000fac08
	RSNCipherGCMP256  RSNCipher = 0x000fac09
	RSNCipherCCMP256  RSNCipher = 0x000fac0a
)

// String returns the string representation of an RSNCipher.
func (c RSNCipher) String() string {
	switch c {
	case RSNCipherUseGroup:
		return "group"
	case RSNCipherWEP40:
		return "WEP-40"
	case RSNCipherTKIP:
		return "TKIP"
	case RSNCipherCCMP128:
		return "CCMP"
	case RSNCipherWEP104:
		return "WEP-104"
	case RSNCipherBIPCMAC:
		return "BIP-CMAC-128"
	case RSNCipherGCMP128:
		return "GCMP-128"
	case RSNCipherGCMP256:
		return "GCMP-256"
	case RSNCipherCCMP256:
		return "CCMP-256"
	default:
		return fmt.Sprintf("unknown(%#08x)", uint32(c))
	}
}

// An RSNAKM is an IEEE 802.11 authentication and key management suite
// selector.
type RSNAKM uint32

// Known AKM suites under the IEEE 00-0F-AC OUI.
const (
	RSNAKM8021X       RSNAKM = 0x000fac01
	RSNAKMPSK         RSNAKM = 0x000fac02
	RSNAKMFT8021X     RSNAKM = 0x000fac03
	RSNAKMFTPSK       RSNAKM = 0x000fac04
	RSNAKM8021XSHA256 RSNAKM = 0x000fac05
	RSNAKMPSKSHA256   RSNAKM = 0x000fac06
	RSNAKMSAE         RSNAKM = 0x000fac08
	RSNAKMFTSAE       RSNAKM = 0x000fac09
	RSNAKMOWE         RSNAKM = 0x000fac12
)

// String returns the string representation of an RSNAKM.
func (a RSNAKM) String() string {
	switch a {
	case RSNAKM8021X:
		return "802.1X"
	case RSNAKMPSK:
		return "PSK"
	case RSNAKMFT8021X:
		return "FT/802.1X"
	case RSNAKMFTPSK:
		return "FT/PSK"
	case RSNAKM8021XSHA256:
		return "802.1X/SHA-256"
	case RSNAKMPSKSHA256:
		return "PSK/SHA-256"
	case RSNAKMSAE:
		return "SAE"
	case RSNAKMFTSAE:
		return "FT/SAE"
	case RSNAKMOWE:
		return "OWE"
	default:
		return fmt.Sprintf("unknown(%#08x)", uint32(a))
	}
}

// RSNInfo is the decoded RSN information element of a BSS.
type RSNInfo struct {
	Version         uint16
	GroupCipher     RSNCipher
	PairwiseCiphers []RSNCipher
	AKMs            []RSNAKM
	Capabilities    uint16
	GroupMgmtCipher RSNCipher
}

// IsInitialized reports whether the RSN element was present and decoded.
func (r RSNInfo) IsInitialized() bool { return r.Version != 0 }

// A BSS is an 802.11 basic service set.  It contains information about a wireless
// network associated with an Interface.
type BSS struct {
	// The service set identifier, or "network name" of the BSS.
	SSID string

	// BSSID: The BSS service set identifier.  In infrastructure mode, this is the
	// hardware address of the wireless access point that a client is associated
	// with.
	BSSID net.HardwareAddr

	// Frequency: The frequency used by the BSS, in MHz.
	Frequency int

	// ChannelWidth: The width of the channel the BSS was seen on. Only 20,
	// 10 and 5 MHz are reported here.
	ChannelWidth ChannelWidth

	// TSF: The timing synchronization function value of the last received
	// frame, in microseconds.
	TSF uint64

	// BeaconTSF: The TSF of the last received beacon, when it differs from TSF.
	BeaconTSF uint64

	// ProbeResponse: The data was taken from a probe response rather than a
	// beacon.
	ProbeResponse bool

	// BeaconInterval: The time interval between beacon transmissions for this BSS.
	BeaconInterval time.Duration

	// Capability: The capability information field.
	Capability uint16

	// Signal: The received signal strength in dBm.
	Signal float64

	// LastSeen: The time since the client last scanned this BSS's information.
	LastSeen time.Duration

	// Status: The status of the client within the BSS.
	Status BSSStatus

	// Load: The load element of the BSS (contains StationCount, ChannelUtilization and AvailableAdmissionCapacity).
	Load BSSLoad

	// RSN: The robust security network element of the BSS.
	RSN RSNInfo
}

// A BSSStatus indicates the current status of client within a BSS.
type BSSStatus int

const (
	// BSSStatusAuthenticated indicates that a client is authenticated with a BSS.
	BSSStatusAuthenticated BSSStatus = nl80211.BssStatusAuthenticated

	// BSSStatusAssociated indicates that a client is associated with a BSS.
	BSSStatusAssociated BSSStatus = nl80211.BssStatusAssociated

	// BSSStatusIBSSJoined indicates that a client has joined an independent BSS.
	BSSStatusIBSSJoined BSSStatus = nl80211.BssStatusIbssJoined

	// BSSStatusNotAssociated indicates that a client is not associated with
	// a BSS. The kernel has no value for this state.
	BSSStatusNotAssociated BSSStatus = nl80211.BssStatusIbssJoined + 1
)

// String returns the string representation of a BSSStatus.
func (s BSSStatus) String() string {
	switch s {
	case BSSStatusAuthenticated:
		return "authenticated"
	case BSSStatusAssociated:
		return "associated"
	case BSSStatusNotAssociated:
		return "unassociated"
	case BSSStatusIBSSJoined:
		return "IBSS joined"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// A PHY represents the physical attributes of a wireless device.
type PHY struct {
	// The index of the device.
	Index int

	// The name of the device.
	Name string

	// The interface types this device supports.
	SupportedIftypes []InterfaceType

	// The software-only interface types this device supports.
	SoftwareIftypes []InterfaceType

	// An array of attributes related to each radio frequency band.
	BandAttributes []BandAttributes

	// A description of what combinations of interfaces the device can
	// support running simultaneously, on virtual MACs.
	InterfaceCombinations []InterfaceCombination

	// Device capabilities as nl80211.Feature* bits.
	FeatureFlags uint32

	// Extended device capabilities.
	ExtFeatures ExtFeatures

	// The device manages its own regulatory domain.
	SelfManagedReg bool

	// Scan limits.
	MaxScanSSIDs      int
	MaxSchedScanSSIDs int
	MaxMatchSets      int

	// Antenna gain in dBi configured on the device. Only reported by
	// OpenWrt kernels.
	AntennaGain int
}

// HasFeature reports whether the device advertises all the nl80211.Feature*
// bits in f.
func (p *PHY) HasFeature(f uint32) bool { return p.FeatureFlags&f == f }

// ExtFeatures is the extended feature bitmap of a PHY, indexed by
// nl80211 extended feature number.
type ExtFeatures []byte

// Has reports whether the extended feature with index i is set.
func (e ExtFeatures) Has(i int) bool {
	if i < 0 || i/8 >= len(e) {
		return false
	}

	return e[i/8]&(1<<(i%8)) != 0
}

// BandAttributes represent the RF band-specific attributes.
type BandAttributes struct {
	// The band these attributes apply to, one of the Band constants.
	Band int

	// High Throughput (802.11n) device capabilities (nil if not supported).
	HTCapabilities *HTCapabilities

	// Very High Throughput (802.11ac) device capabilities (nil if not supported).
	VHTCapabilities *VHTCapabilities

	// Minimum spacing between A-MPDU frames.  Used for both HT and VHT
	// capable devices.
	MinRxAMPDUSpacing time.Duration

	// Per-frequency (channel) attributes.
	FrequencyAttributes []FrequencyAttrs

	// Per-bitrate attributes.
	BitrateAttributes []BitrateAttrs
}

// HTCapabilities represents 802.11n (High Throughput) capabilities.  This group
// of attributes is specific to each band of frequencies.  Failure to support
// any given attribute may be due to lack support in the driver or the firmware,
// not only in the hardware.  Some of them may also be overridden during station
// association.
//
// The fields represent those in the HT Capabilities element (802.11-2016,
// 9.4.2.56).
type HTCapabilities struct {
	// Device supports Low Density Parity Check codes.
	RxLDPC bool

	// Device supports 40MHz channels (in addition to 20MHz channels).
	CW40 bool

	// Spatial multiplexing power save mode, one of the nl80211.Smps* values.
	SMPS int

	// Device supports HT Greenfield (802.11n-only) mode, in which a/b/g
	// frames will be ignored.
	HTGreenfield bool

	// Device supports short guard intervals in 20MHz channels.
	SGI20 bool

	// Device supports short guard intervals in 40MHz channels.
	SGI40 bool

	// Device supports Space-Time Block Coding transmission.
	TxSTBC bool

	// Number of STBC receive streams supported by the device.  Valid values
	// are 0-3.
	RxSTBCStreams uint8

	// Device supports delayed Block Ack frames when acknowledging an
	// A-MPDU.
	HTDelayedBlockAck bool

	// Device supports long (7935 bytes) maximum A-MSDU length, compared to
	// standard 3839 bytes.
	LongMaxAMSDULength bool

	// Device supports DSSS/CCK in 40MHz channels.
	DSSSCCKHT40 bool

	// (2.4GHz) Band cannot tolerate 40MHz channels because someone has
	// requested it support 20MHz channels.
	FortyMhzIntolerant bool

	// Device supports L-SIG (non-HT) Transmit Oppportunity protection.
	LSIGTxOPProtection bool

	// Maximum receivable A-MPDU (Aggregated MAC Protocol Data Unit) frame
	// size.
	MaxRxAMPDULength int

	// Supported MCS for HT mode.
	SupportedMCS [16]byte
}

// VHTCapabilities represents 802.11ac (Very High Throughput) capabilities.
//
// The fields represent those in the VHT Capabilities element (802.11-2020,
// 9.4.2.157).
type VHTCapabilities struct {
	// Maximum MPDU length supported by the device.
	MaxMPDULength int

	// Device supports 160MHz channel width.
	VHT160 bool

	// Device supports 80+80MHz channel width (non-contiguous 160MHz) along with 160MHz channel.
	VHT8080 bool

	// Device supports receiving Low Density Parity Check codes.
	RXLDPC bool

	// Device supports short guard intervals in 80MHz channels.
	ShortGI80 bool

	// Device supports short guard intervals in 160MHz and 80+80MHz channels.
	ShortGI160 bool

	// Device supports transmission of at least 2x1 Space-Time Block Coding transmission.
	TXSTBC bool

	// Number of STBC receive streams supported by the device. Valid values are 0-4.
	RXSTBC int

	// Device supports SU (Single User) Beamforming as a transmitter.
	SuBeamFormer bool

	// Device supports SU (Single User) Beamforming as a receiver.
	SuBeamFormee bool

	// Number of sounding antennas supported by the device for SU Beamforming transmission.
	BFAntenna int

	// Maximum sounding dimensions supported by the device for SU Beamforming.
	SoundingDimension int

	// Device supports MU (Multi-User) Beamforming as a transmitter.
	MuBeamformer bool

	// Device supports MU (Multi-User) Beamforming as a receiver.
	MuBeamformee bool

	// Device supports VHT TXOP power save mode.
	VTHTXOPPS bool

	// Device supports HT Control field when operating in VHT mode.
	HTCVHT bool

	// Maximum A-MPDU (Aggregated MAC Protocol Data Unit) frame size supported by the device.
	MaxAMPDU int

	// Device supports VHT Link Adaptation capabilities. Valid values
	// specify the type of link adaptation supported (e.g., no feedback,
	// unsolicited feedback, or both).
	VHTLinkAdapt int

	// Device supports receive antenna pattern consistency.
	RXAntennaPattern bool

	// Device supports transmit antenna pattern consistency.
	TXAntennaPattern bool

	//Indicates whether the STA is capable of interpreting the Extended NSS BW
	//Support subfield of the VHT Capabilities Information field.
	ExtendedNSSBW int

	// Supported MCS for VHT mode.
	SupportedMCS [8]byte
}

// FrequencyAttrs represents the attributes of a WiFi frequency/channel.
type FrequencyAttrs struct {
	// Frequency is the radio frequency in MHz.
	Frequency int

	// Disabled indicates that the channel is disabled due to regulatory
	// requirements.
	Disabled bool

	// NoIR indicates that no mechanisms that initiate radiation are
	// permitted on this channel.
	NoIR bool

	// RadarDetection indicates that radar detection is mandatory on this
	// channel.
	RadarDetection bool

	// IndoorOnly indicates that the channel may only be used indoors.
	IndoorOnly bool

	// Channel widths not permitted with this channel as the control channel.
	NoHT40Minus bool
	NoHT40Plus  bool
	No80MHz     bool
	No160MHz    bool
	No20MHz     bool
	No10MHz     bool

	// MaxTxPower gives the maximum transmission power in dBm.
	MaxTxPower float32
}

// BitrateAttrs represents the attributes of a bitrate.
type BitrateAttrs struct {
	// Bitrate is the bitrate in Mbps.
	Bitrate float32

	// ShortPreamble indicates that a short preamble is supported in the
	// 2.4GHz band.
	ShortPreamble bool
}

// InterfaceCombination represents a group of valid combinations of interface
// types which can be simultaneously supported on a device.
type InterfaceCombination struct {
	CombinationLimits []InterfaceCombinationLimit

	// Total is the maximum number of interfaces that can be created in this
	// group.
	Total int

	// NumChannels is the number of different channels which may be used in
	// this group.
	NumChannels int

	// StaApBiMatch indicates that beacon intervals within this group must
	// all be the same, regardless of interface type.
	StaApBiMatch bool
}

// InterfaceCombinationLimit represents a single combination of interface types
// which may be run simultaneously on a device.
type InterfaceCombinationLimit struct {
	InterfaceTypes []InterfaceType

	// Max is the maximum number of interfaces that can be chosen from the
	// set of interface types in InterfaceTypes.
	Max int
}

// FrequencyToChannel returns the channel number given the frequency in MHz, as
// defined by IEEE802.11-2007, 17.3.8.3.2 and Annex J.
func FrequencyToChannel(freq int) int {
	if freq == 2484 {
		return 14
	} else if freq < 2484 {
		return (freq - 2407) / 5
	} else if freq >= 4910 && freq <= 4980 {
		return (freq - 4000) / 5
	} else if freq <= 45000 {
		return (freq - 5000) / 5
	} else if freq >= 58320 && freq <= 64800 {
		return (freq - 56160) / 2160
	} else {
		return 0
	}
}

// Constants representing the standard WiFi frequency bands.
const (
	Band2GHz  = nl80211.Band2ghz
	Band5GHz  = nl80211.Band5ghz
	Band60GHz = nl80211.Band60ghz
)

// ChannelToFrequency returns the frequency given the channel number and the
// band, as there are overlapping channel numbers between bands.
func ChannelToFrequency(channel int, band int) int {
	if channel <= 0 {
		return 0
	}

	switch band {
	case Band2GHz:
		if channel == 14 {
			return 2484
		} else if channel < 14 {
			return 2407 + channel*5
		}
	case Band5GHz:
		if channel >= 182 && channel <= 196 {
			return 4000 + channel*5
		}
		return 5000 + channel*5
	case Band60GHz:
		if channel < 5 {
			return 56160 + channel*2160
		}
	}
	return 0
}

// List of 802.11 Information Element types.
const (
	ieSSID    = 0
	ieBSSLoad = 11
	ieRSN     = 48
)

// An ie is an 802.11 information element.
type ie struct {
	ID uint8
	// Length field implied by length of data
	Data []byte
}

// parseIEs parses zero or more ies from a byte slice.
// Reference:
//
//	https://www.safaribooksonline.com/library/view/80211-wireless-networks/0596100523/ch04.html#wireless802dot112-CHP-4-FIG-31
func parseIEs(b []byte) ([]ie, error) {
	var ies []ie
	var i int
	for {
		if len(b[i:]) == 0 {
			break
		}
		if len(b[i:]) < 2 {
			return nil, errInvalidIE
		}

		id := b[i]
		i++
		l := int(b[i])
		i++

		if len(b[i:]) < l {
			return nil, errInvalidIE
		}

		ies = append(ies, ie{
			ID:   id,
			Data: b[i : i+l],
		})

		i += l
	}

	return ies, nil
}

// SurveyInfo contains channel utilization statistics for one channel, or
// for the whole radio.
type SurveyInfo struct {
	// The interface the survey was requested on.
	InterfaceIndex int

	// RadioWide is set for the entry aggregating statistics over all
	// channels. Such an entry carries no frequency.
	RadioWide bool

	// The frequency in MHz of the channel.
	Frequency int

	// The noise level in dBm.
	Noise int

	// The time the radio has spent on this channel.
	ChannelTime time.Duration

	// The time the radio has spent on this channel while it was busy.
	ChannelTimeBusy time.Duration

	// The time the radio has spent on this channel while it was busy with external traffic.
	ChannelTimeExtBusy time.Duration

	// The time the radio has spent on this channel receiving data.
	ChannelTimeRx time.Duration

	// The time the radio has spent on this channel transmitting data.
	ChannelTimeTx time.Duration

	// The time the radio has spent on this channel while it was scanning.
	ChannelTimeScan time.Duration

	// Indicates if the channel is currently in use.
	InUse bool
}

// A DFSRegion is the regulatory region that defines radar detection rules.
type DFSRegion int

// Possible DFSRegion values.
const (
	DFSUnset DFSRegion = nl80211.DfsUnset
	DFSFCC   DFSRegion = nl80211.DfsFcc
	DFSETSI  DFSRegion = nl80211.DfsEtsi
	DFSJP    DFSRegion = nl80211.DfsJp
)

// String returns the string representation of a DFSRegion.
func (r DFSRegion) String() string {
	switch r {
	case DFSUnset:
		return "unset"
	case DFSFCC:
		return "FCC"
	case DFSETSI:
		return "ETSI"
	case DFSJP:
		return "JP"
	default:
		return fmt.Sprintf("unknown(%d)", r)
	}
}

// A RegulatoryDomain is a set of regulatory rules for a country.
type RegulatoryDomain struct {
	// ISO 3166-1 alpha2 country code, or "00" for the world domain.
	Alpha2 string

	// DFS region the rules belong to.
	DFSRegion DFSRegion

	// PHY is the index of the device owning this domain, or -1 for the
	// global domain.
	PHY int

	// The owning device manages the domain itself.
	SelfManaged bool

	Rules []RegulatoryRule
}

// A RegulatoryRule describes the permitted use of a frequency range.
type RegulatoryRule struct {
	Flags RuleFlags

	// Frequency range and maximum channel bandwidth, in kHz.
	StartKHz        int
	EndKHz          int
	MaxBandwidthKHz int

	// Maximum antenna gain in mBi and maximum EIRP in mBm.
	MaxAntennaGain int
	MaxEIRP        int

	// Channel availability check time, or zero for the default.
	DFSCACTime time.Duration
}

// RuleFlags are regulatory rule flags, nl80211.RRF* bits.
type RuleFlags uint32

var ruleFlagNames = []struct {
	f    RuleFlags
	name string
}{
	{f: nl80211.RRFNoOfdm, name: "NO-OFDM"},
	{f: nl80211.RRFNoCck, name: "NO-CCK"},
	{f: nl80211.RRFNoIndoor, name: "NO-INDOOR"},
	{f: nl80211.RRFNoOutdoor, name: "NO-OUTDOOR"},
	{f: nl80211.RRFDfs, name: "DFS"},
	{f: nl80211.RRFPtpOnly, name: "PTP-ONLY"},
	{f: nl80211.RRFPtmpOnly, name: "PTMP-ONLY"},
	{f: nl80211.RRFNoIr, name: "NO-IR"},
	{f: nl80211.RRFAutoBw, name: "AUTO-BW"},
	{f: nl80211.RRFGoConcurrent, name: "GO-CONCURRENT"},
	{f: nl80211.RRFNoHt40minus, name: "NO-HT40MINUS"},
	{f: nl80211.RRFNoHt40plus, name: "NO-HT40PLUS"},
	{f: nl80211.RRFNo80mhz, name: "NO-80MHZ"},
	{f: nl80211.RRFNo160mhz, name: "NO-160MHZ"},
}

// String returns the names of the set flags separated by commas.
func (f RuleFlags) String() string {
	if f == 0 {
		return "none"
	}

	var names []string
	rest := f
	for _, n := range ruleFlagNames {
		if f&n.f != 0 {
			names = append(names, n.name)
			rest &^= n.f
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}

	return strings.Join(names, ", ")
}

// A MeshPath is an entry of a mesh point's path or proxy path table.
type MeshPath struct {
	// The destination of the path.
	Destination net.HardwareAddr

	// The next hop towards the destination, or for proxy paths the mesh
	// proxy through which the destination is reached.
	NextHop net.HardwareAddr

	FrameQueueLength int
	SequenceNumber   int
	Metric           int
	Expires          time.Duration
	Flags            uint8
}

// A TrafficStream is a WMM traffic stream with admission control.
type TrafficStream struct {
	// Traffic stream ID, 0-7.
	TSID uint8

	// The peer the stream is set up with.
	Peer net.HardwareAddr

	// 802.1d user priority, 0-7.
	UserPriority uint8

	// Medium time admitted per second. Zero requests an admission check
	// without setting up the stream.
	AdmittedTime time.Duration
}

// An OCBChannel describes the channel an interface in OCB mode
// communicates on.
type OCBChannel struct {
	Frequency        int
	Width            ChannelWidth
	CenterFrequency1 int
}

// A TDLSChannelSwitch describes an off-channel switch with a TDLS peer.
type TDLSChannelSwitch struct {
	Peer             net.HardwareAddr
	OperatingClass   uint8
	Frequency        int
	Width            ChannelWidth
	CenterFrequency1 int
}

// ScanOptions configures a triggered scan.
type ScanOptions struct {
	// SSIDs to probe for. A wildcard SSID is used when empty.
	SSIDs []string

	// Frequencies to scan in MHz. All supported frequencies when empty.
	Frequencies []int

	// nl80211.ScanFlag* bits. nl80211.ScanFlagRandomAddr requires the
	// device to advertise nl80211.FeatureScanRandomMacAddr.
	Flags uint32

	// Address and mask for MAC address randomization. Bits set in
	// AddressMask are taken from Address, the rest are randomized.
	Address     net.HardwareAddr
	AddressMask net.HardwareAddr
}

// SchedScanOptions configures a scheduled scan.
type SchedScanOptions struct {
	// Interval between scan cycles.
	Interval time.Duration

	// Delay before the first cycle, in whole seconds.
	Delay time.Duration

	// SSIDs to probe for and frequencies to scan.
	SSIDs       []string
	Frequencies []int

	// Only report BSSes matching one of these SSIDs.
	MatchSSIDs []string

	// nl80211.ScanFlag* bits.
	Flags uint32

	// Stop the scheduled scan when the client is closed.
	StopOnClose bool
}

// A RegulatoryInitiator identifies what triggered a regulatory change.
type RegulatoryInitiator int

// Possible RegulatoryInitiator values.
const (
	RegulatoryInitiatorCore      RegulatoryInitiator = nl80211.RegdomSetByCore
	RegulatoryInitiatorUser      RegulatoryInitiator = nl80211.RegdomSetByUser
	RegulatoryInitiatorDriver    RegulatoryInitiator = nl80211.RegdomSetByDriver
	RegulatoryInitiatorCountryIE RegulatoryInitiator = nl80211.RegdomSetByCountryIe
)

// String returns the string representation of a RegulatoryInitiator.
func (i RegulatoryInitiator) String() string {
	switch i {
	case RegulatoryInitiatorCore:
		return "core"
	case RegulatoryInitiatorUser:
		return "user"
	case RegulatoryInitiatorDriver:
		return "driver"
	case RegulatoryInitiatorCountryIE:
		return "country IE"
	default:
		return fmt.Sprintf("unknown(%d)", i)
	}
}

// An Event is a notification multicast by nl80211.
type Event struct {
	// The nl80211 command of the notification.
	Command uint8

	// The interface and device the event relates to. PHY is -1 when the
	// event carries no device.
	InterfaceIndex int
	PHY            int

	// Channel information for channel switch events.
	Frequency          int
	ChannelWidth       ChannelWidth
	CenterFrequency1   int
	ChannelSwitchCount int

	// Regulatory change details.
	Alpha2    string
	Initiator RegulatoryInitiator

	// Connection quality monitor details.
	CQM *CQMEvent
}

// String returns the name of the event's command.
func (e Event) String() string { return nl80211.CommandString(e.Command) }

// A CQMEvent is a connection quality monitor notification.
type CQMEvent struct {
	// RSSIThresholdEvent is one of the nl80211.CqmRssiThresholdEvent*
	// values, or -1 when no threshold was crossed.
	RSSIThresholdEvent int

	// The number of packets lost, when packet loss triggered the event.
	PacketLoss int

	// Beacons from the connected AP stopped arriving.
	BeaconLoss bool
}
