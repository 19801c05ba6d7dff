package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/openwrt-go/iwinfo"
	"github.com/openwrt-go/iwinfo/nl80211"
	"gopkg.in/yaml.v3"
)

// A report can be rendered as text, and as YAML through its struct tags.
type report interface {
	writeText(w io.Writer) error
}

// A writer renders reports in one output format.
type writer struct {
	w    io.Writer
	yaml bool
}

func newWriter(w io.Writer, format string) (*writer, error) {
	switch format {
	case "text":
		return &writer{w: w}, nil
	case "yaml":
		return &writer{w: w, yaml: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func (w *writer) write(r report) error {
	if !w.yaml {
		return r.writeText(w.w)
	}

	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// table returns a tabwriter with a bold header row.
func table(w io.Writer, columns ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	return tw
}

func heading(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.GreenString(format, a...))
}

type interfaceEntry struct {
	Name         string `yaml:"name"`
	Index        int    `yaml:"index"`
	PHY          string `yaml:"phy"`
	Mode         string `yaml:"mode"`
	HardwareAddr string `yaml:"address"`
	Frequency    int    `yaml:"frequency,omitempty"`
	Channel      int    `yaml:"channel,omitempty"`
	Width        string `yaml:"width,omitempty"`
}

func newInterfaceEntry(ifi *iwinfo.Interface) interfaceEntry {
	e := interfaceEntry{
		Name:         ifi.Name,
		Index:        ifi.Index,
		PHY:          fmt.Sprintf("phy%d", ifi.PHY),
		Mode:         ifi.Type.String(),
		HardwareAddr: ifi.HardwareAddr.String(),
	}
	if ifi.Frequency != 0 {
		e.Frequency = ifi.Frequency
		e.Channel = iwinfo.FrequencyToChannel(ifi.Frequency)
		e.Width = ifi.ChannelWidth.String()
	}

	return e
}

type interfacesReport struct {
	Interfaces []interfaceEntry `yaml:"interfaces"`
}

func newInterfacesReport(ifis []*iwinfo.Interface) *interfacesReport {
	r := &interfacesReport{Interfaces: make([]interfaceEntry, 0, len(ifis))}
	for _, ifi := range ifis {
		// P2P devices have no netdev.
		if ifi.Name == "" {
			continue
		}
		r.Interfaces = append(r.Interfaces, newInterfaceEntry(ifi))
	}

	return r
}

func (r *interfacesReport) writeText(w io.Writer) error {
	tw := table(w, "NAME", "PHY", "MODE", "ADDRESS", "CHANNEL", "WIDTH")
	for _, e := range r.Interfaces {
		ch := "-"
		if e.Channel != 0 {
			ch = fmt.Sprintf("%d (%d MHz)", e.Channel, e.Frequency)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name, e.PHY, e.Mode, e.HardwareAddr, ch, orDash(e.Width))
	}

	return tw.Flush()
}

type infoReport struct {
	Interface   interfaceEntry `yaml:"interface"`
	ESSID       string         `yaml:"essid,omitempty"`
	AccessPoint string         `yaml:"access_point,omitempty"`
	Signal      float64        `yaml:"signal_dbm,omitempty"`
	Encryption  string         `yaml:"encryption,omitempty"`
	Country     string         `yaml:"country,omitempty"`
	DFSRegion   string         `yaml:"dfs_region,omitempty"`
}

func newInfoReport(ifi *iwinfo.Interface, bss *iwinfo.BSS, rd *iwinfo.RegulatoryDomain) *infoReport {
	r := &infoReport{Interface: newInterfaceEntry(ifi)}
	if bss != nil {
		r.ESSID = bss.SSID
		r.AccessPoint = bss.BSSID.String()
		r.Signal = bss.Signal
		r.Encryption = encryption(bss)
	}
	if rd != nil {
		r.Country = rd.Alpha2
		r.DFSRegion = rd.DFSRegion.String()
	}

	return r
}

func (r *infoReport) writeText(w io.Writer) error {
	heading(w, "%s  ESSID: %q", r.Interface.Name, r.ESSID)

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "  Access Point:\t%s\n", orDash(r.AccessPoint))
	fmt.Fprintf(tw, "  Mode:\t%s\n", r.Interface.Mode)
	if r.Interface.Channel != 0 {
		fmt.Fprintf(tw, "  Channel:\t%d (%.3f GHz), width %s\n",
			r.Interface.Channel, float64(r.Interface.Frequency)/1000, r.Interface.Width)
	}
	if r.AccessPoint != "" {
		fmt.Fprintf(tw, "  Signal:\t%.1f dBm\n", r.Signal)
		fmt.Fprintf(tw, "  Encryption:\t%s\n", r.Encryption)
	}
	fmt.Fprintf(tw, "  Type:\tnl80211  PHY: %s\n", r.Interface.PHY)
	if r.Country != "" {
		fmt.Fprintf(tw, "  Country:\t%s  DFS: %s\n", r.Country, r.DFSRegion)
	}

	return tw.Flush()
}

type bssEntry struct {
	ESSID      string        `yaml:"essid"`
	Address    string        `yaml:"address"`
	Frequency  int           `yaml:"frequency"`
	Channel    int           `yaml:"channel"`
	Signal     float64       `yaml:"signal_dbm"`
	Encryption string        `yaml:"encryption"`
	Stations   *uint16       `yaml:"stations,omitempty"`
	LastSeen   time.Duration `yaml:"last_seen"`
	Status     string        `yaml:"status"`
}

type scanReport struct {
	AccessPoints []bssEntry `yaml:"access_points"`
}

func newScanReport(bsss []*iwinfo.BSS) *scanReport {
	r := &scanReport{AccessPoints: make([]bssEntry, 0, len(bsss))}
	for _, b := range bsss {
		e := bssEntry{
			ESSID:      b.SSID,
			Address:    b.BSSID.String(),
			Frequency:  b.Frequency,
			Channel:    iwinfo.FrequencyToChannel(b.Frequency),
			Signal:     b.Signal,
			Encryption: encryption(b),
			LastSeen:   b.LastSeen,
			Status:     b.Status.String(),
		}
		if b.Load.Version != 0 {
			n := b.Load.StationCount
			e.Stations = &n
		}

		r.AccessPoints = append(r.AccessPoints, e)
	}

	return r
}

func (r *scanReport) writeText(w io.Writer) error {
	tw := table(w, "ADDRESS", "ESSID", "CHANNEL", "SIGNAL", "ENCRYPTION", "STATIONS", "STATUS")
	for _, e := range r.AccessPoints {
		stations := "-"
		if e.Stations != nil {
			stations = fmt.Sprint(*e.Stations)
		}
		fmt.Fprintf(tw, "%s\t%q\t%d\t%.1f dBm\t%s\t%s\t%s\n",
			e.Address, e.ESSID, e.Channel, e.Signal, e.Encryption, stations, e.Status)
	}

	return tw.Flush()
}

// capPrivacy is the privacy bit of the 802.11 capability information field.
const capPrivacy = 1 << 4

// encryption summarizes the security of a BSS from its RSN element.
func encryption(b *iwinfo.BSS) string {
	if !b.RSN.IsInitialized() {
		if b.Capability&capPrivacy != 0 {
			return "WEP"
		}
		return "none"
	}

	var wpa2, wpa3 bool
	akms := make([]string, 0, len(b.RSN.AKMs))
	for _, a := range b.RSN.AKMs {
		switch a {
		case iwinfo.RSNAKMSAE, iwinfo.RSNAKMFTSAE, iwinfo.RSNAKMOWE:
			wpa3 = true
		default:
			wpa2 = true
		}
		akms = append(akms, a.String())
	}

	ciphers := make([]string, 0, len(b.RSN.PairwiseCiphers))
	for _, c := range b.RSN.PairwiseCiphers {
		ciphers = append(ciphers, c.String())
	}

	version := "WPA2"
	switch {
	case wpa2 && wpa3:
		version = "WPA2/WPA3"
	case wpa3:
		version = "WPA3"
	}

	return fmt.Sprintf("%s %s (%s)", version, strings.Join(akms, "/"), strings.Join(ciphers, ", "))
}

type rateEntry struct {
	Bitrate string `yaml:"bitrate"`
	MCS     string `yaml:"mcs,omitempty"`
	Width   string `yaml:"width"`
	ShortGI bool   `yaml:"short_gi,omitempty"`
}

func newRateEntry(r iwinfo.RateInfo) rateEntry {
	e := rateEntry{
		Bitrate: fmt.Sprintf("%.1f MBit/s", float64(r.Bitrate)/1e6),
		Width:   r.Width.String(),
		ShortGI: r.ShortGI,
	}
	switch {
	case r.VHTNSS > 0:
		e.MCS = fmt.Sprintf("VHT-MCS %d, VHT-NSS %d", r.VHTMCS, r.VHTNSS)
	case r.MCS >= 0:
		e.MCS = fmt.Sprintf("MCS %d", r.MCS)
	}

	return e
}

func (e rateEntry) String() string {
	s := e.Bitrate
	if e.MCS != "" {
		s += ", " + e.MCS
	}
	s += ", " + e.Width
	if e.ShortGI {
		s += ", short GI"
	}

	return s
}

type tidEntry struct {
	TID       string `yaml:"tid"`
	RxMSDU    uint64 `yaml:"rx_msdu"`
	TxMSDU    uint64 `yaml:"tx_msdu"`
	TxRetries uint64 `yaml:"tx_retries"`
	TxFailed  uint64 `yaml:"tx_failed"`
}

type stationEntry struct {
	Address            string        `yaml:"address"`
	Signal             int           `yaml:"signal_dbm"`
	SignalAverage      int           `yaml:"signal_avg_dbm"`
	ChainSignal        []int         `yaml:"chain_signal_dbm,omitempty"`
	Inactive           time.Duration `yaml:"inactive"`
	Connected          time.Duration `yaml:"connected"`
	Receive            rateEntry     `yaml:"rx"`
	Transmit           rateEntry     `yaml:"tx"`
	ReceivedPackets    int           `yaml:"rx_packets"`
	TransmittedPackets int           `yaml:"tx_packets"`
	ExpectedThroughput string        `yaml:"expected_throughput,omitempty"`
	TIDs               []tidEntry    `yaml:"tids,omitempty"`
}

type stationsReport struct {
	Stations []stationEntry `yaml:"stations"`
}

func newStationsReport(stations []*iwinfo.StationInfo) *stationsReport {
	r := &stationsReport{Stations: make([]stationEntry, 0, len(stations))}
	for _, s := range stations {
		e := stationEntry{
			Address:            s.HardwareAddr.String(),
			Signal:             s.Signal,
			SignalAverage:      s.SignalAverage,
			ChainSignal:        s.ChainSignal,
			Inactive:           s.Inactive,
			Connected:          s.Connected,
			Receive:            newRateEntry(s.ReceiveRate),
			Transmit:           newRateEntry(s.TransmitRate),
			ReceivedPackets:    s.ReceivedPackets,
			TransmittedPackets: s.TransmittedPackets,
		}
		if s.ExpectedThroughput > 0 {
			e.ExpectedThroughput = fmt.Sprintf("%.1f MBit/s", float64(s.ExpectedThroughput)/1e6)
		}

		for _, t := range s.TIDStats {
			tid := fmt.Sprint(t.TID)
			if t.NonQoS() {
				tid = "non-QoS"
			}
			e.TIDs = append(e.TIDs, tidEntry{
				TID:       tid,
				RxMSDU:    t.ReceivedMSDU,
				TxMSDU:    t.TransmittedMSDU,
				TxRetries: t.TransmitMSDURetries,
				TxFailed:  t.TransmitMSDUFailed,
			})
		}

		r.Stations = append(r.Stations, e)
	}

	return r
}

func (r *stationsReport) writeText(w io.Writer) error {
	for _, s := range r.Stations {
		heading(w, "%s  %d dBm / %d dBm (avg)  %d ms ago",
			s.Address, s.Signal, s.SignalAverage, s.Inactive.Milliseconds())

		fmt.Fprintf(w, "\tRX: %s  %d Pkts.\n", s.Receive, s.ReceivedPackets)
		fmt.Fprintf(w, "\tTX: %s  %d Pkts.\n", s.Transmit, s.TransmittedPackets)
		if s.ExpectedThroughput != "" {
			fmt.Fprintf(w, "\texpected throughput: %s\n", s.ExpectedThroughput)
		}
		if len(s.TIDs) > 0 {
			tw := table(w, "\tTID", "RX MSDU", "TX MSDU", "RETRIES", "FAILED")
			for _, t := range s.TIDs {
				fmt.Fprintf(tw, "\t%s\t%d\t%d\t%d\t%d\n",
					t.TID, t.RxMSDU, t.TxMSDU, t.TxRetries, t.TxFailed)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
	}

	return nil
}

type surveyEntry struct {
	Channel   string        `yaml:"channel"`
	Frequency int           `yaml:"frequency,omitempty"`
	Noise     int           `yaml:"noise_dbm,omitempty"`
	InUse     bool          `yaml:"in_use,omitempty"`
	Active    time.Duration `yaml:"active"`
	Busy      time.Duration `yaml:"busy"`
	Receive   time.Duration `yaml:"receive"`
	Transmit  time.Duration `yaml:"transmit"`
	Scan      time.Duration `yaml:"scan,omitempty"`
	Load      string        `yaml:"load,omitempty"`
}

type surveyReport struct {
	Surveys []surveyEntry `yaml:"surveys"`
}

func newSurveyReport(surveys []*iwinfo.SurveyInfo) *surveyReport {
	r := &surveyReport{Surveys: make([]surveyEntry, 0, len(surveys))}
	for _, s := range surveys {
		e := surveyEntry{
			Channel:   "radio",
			Frequency: s.Frequency,
			Noise:     s.Noise,
			InUse:     s.InUse,
			Active:    s.ChannelTime,
			Busy:      s.ChannelTimeBusy,
			Receive:   s.ChannelTimeRx,
			Transmit:  s.ChannelTimeTx,
			Scan:      s.ChannelTimeScan,
		}
		if !s.RadioWide {
			e.Channel = fmt.Sprint(iwinfo.FrequencyToChannel(s.Frequency))
		}
		if s.ChannelTime > 0 {
			e.Load = fmt.Sprintf("%.1f%%", 100*float64(s.ChannelTimeBusy)/float64(s.ChannelTime))
		}

		r.Surveys = append(r.Surveys, e)
	}

	return r
}

func (r *surveyReport) writeText(w io.Writer) error {
	tw := table(w, "CHANNEL", "FREQUENCY", "NOISE", "ACTIVE", "BUSY", "LOAD", "")
	for _, e := range r.Surveys {
		freq, noise := "-", "-"
		if e.Frequency != 0 {
			freq = fmt.Sprintf("%d MHz", e.Frequency)
			noise = fmt.Sprintf("%d dBm", e.Noise)
		}

		var mark string
		if e.InUse {
			mark = "[in use]"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Channel, freq, noise, e.Active, e.Busy, orDash(e.Load), mark)
	}

	return tw.Flush()
}

type frequencyEntry struct {
	Frequency  int      `yaml:"frequency"`
	Channel    int      `yaml:"channel"`
	MaxTxPower float32  `yaml:"max_tx_power_dbm"`
	Current    bool     `yaml:"current,omitempty"`
	Flags      []string `yaml:"flags,omitempty"`
}

type frequencyReport struct {
	PHY         string           `yaml:"phy"`
	Frequencies []frequencyEntry `yaml:"frequencies"`
}

func newFrequencyReport(phy *iwinfo.PHY, current int) *frequencyReport {
	r := &frequencyReport{PHY: phy.Name}
	for _, b := range phy.BandAttributes {
		for _, f := range b.FrequencyAttributes {
			r.Frequencies = append(r.Frequencies, frequencyEntry{
				Frequency:  f.Frequency,
				Channel:    iwinfo.FrequencyToChannel(f.Frequency),
				MaxTxPower: f.MaxTxPower,
				Current:    f.Frequency == current,
				Flags:      frequencyFlags(f),
			})
		}
	}

	return r
}

func frequencyFlags(f iwinfo.FrequencyAttrs) []string {
	var flags []string
	add := func(set bool, name string) {
		if set {
			flags = append(flags, name)
		}
	}

	add(f.Disabled, "disabled")
	add(f.NoIR, "no-IR")
	add(f.RadarDetection, "radar")
	add(f.IndoorOnly, "indoor-only")
	add(f.NoHT40Minus, "no-HT40-")
	add(f.NoHT40Plus, "no-HT40+")
	add(f.No80MHz, "no-80MHz")
	add(f.No160MHz, "no-160MHz")
	add(f.No20MHz, "no-20MHz")
	add(f.No10MHz, "no-10MHz")

	return flags
}

func (r *frequencyReport) writeText(w io.Writer) error {
	tw := table(w, "", "FREQUENCY", "CHANNEL", "TX POWER", "FLAGS")
	for _, f := range r.Frequencies {
		var mark string
		if f.Current {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%.3f GHz\t%d\t%.1f dBm\t%s\n",
			mark, float64(f.Frequency)/1000, f.Channel, f.MaxTxPower, strings.Join(f.Flags, ", "))
	}

	return tw.Flush()
}

type bandEntry struct {
	Band        string   `yaml:"band"`
	Frequencies int      `yaml:"frequencies"`
	HT          []string `yaml:"ht,omitempty"`
	VHT         []string `yaml:"vht,omitempty"`
}

type phyReport struct {
	Name         string      `yaml:"name"`
	Index        int         `yaml:"index"`
	Modes        []string    `yaml:"modes"`
	Bands        []bandEntry `yaml:"bands"`
	Features     []string    `yaml:"features,omitempty"`
	Combinations []string    `yaml:"combinations,omitempty"`
	SelfManaged  bool        `yaml:"self_managed_regulatory,omitempty"`
	AntennaGain  int         `yaml:"antenna_gain_dbi,omitempty"`
}

// featureNames names the device features the client acts on.
var featureNames = []struct {
	flag uint32
	name string
}{
	{nl80211.FeatureSupportsWmmAdmission, "WMM admission control"},
	{nl80211.FeatureTdlsChannelSwitch, "TDLS channel switching"},
	{nl80211.FeatureScanRandomMacAddr, "random MAC scan"},
	{nl80211.FeatureSchedScanRandomMacAddr, "random MAC scheduled scan"},
	{nl80211.FeatureStaticSmps, "static SMPS"},
	{nl80211.FeatureDynamicSmps, "dynamic SMPS"},
}

func newPHYReport(p *iwinfo.PHY) *phyReport {
	r := &phyReport{
		Name:        p.Name,
		Index:       p.Index,
		SelfManaged: p.SelfManagedReg,
		AntennaGain: p.AntennaGain,
	}
	for _, t := range p.SupportedIftypes {
		r.Modes = append(r.Modes, t.String())
	}

	for _, b := range p.BandAttributes {
		e := bandEntry{
			Band:        bandName(b.Band),
			Frequencies: len(b.FrequencyAttributes),
		}
		if ht := b.HTCapabilities; ht != nil {
			e.HT = htCapabilities(ht)
		}
		if vht := b.VHTCapabilities; vht != nil {
			e.VHT = vhtCapabilities(vht)
		}

		r.Bands = append(r.Bands, e)
	}

	for _, f := range featureNames {
		if p.HasFeature(f.flag) {
			r.Features = append(r.Features, f.name)
		}
	}

	for _, c := range p.InterfaceCombinations {
		var limits []string
		for _, l := range c.CombinationLimits {
			types := make([]string, 0, len(l.InterfaceTypes))
			for _, t := range l.InterfaceTypes {
				types = append(types, t.String())
			}
			limits = append(limits, fmt.Sprintf("#{ %s } <= %d", strings.Join(types, ", "), l.Max))
		}

		r.Combinations = append(r.Combinations, fmt.Sprintf("%s, total <= %d, #channels <= %d",
			strings.Join(limits, ", "), c.Total, c.NumChannels))
	}

	return r
}

func bandName(band int) string {
	switch band {
	case iwinfo.Band2GHz:
		return "2.4 GHz"
	case iwinfo.Band5GHz:
		return "5 GHz"
	case iwinfo.Band60GHz:
		return "60 GHz"
	default:
		return fmt.Sprintf("band %d", band)
	}
}

func htCapabilities(ht *iwinfo.HTCapabilities) []string {
	caps := []string{fmt.Sprintf("max A-MPDU %d", ht.MaxRxAMPDULength)}
	if ht.CW40 {
		caps = append(caps, "HT40")
	}
	if ht.SGI20 {
		caps = append(caps, "SGI20")
	}
	if ht.SGI40 {
		caps = append(caps, "SGI40")
	}
	if ht.RxLDPC {
		caps = append(caps, "LDPC")
	}
	switch ht.SMPS {
	case nl80211.SmpsStatic:
		caps = append(caps, "static SMPS")
	case nl80211.SmpsDynamic:
		caps = append(caps, "dynamic SMPS")
	}

	return caps
}

func vhtCapabilities(vht *iwinfo.VHTCapabilities) []string {
	caps := []string{fmt.Sprintf("max MPDU %d", vht.MaxMPDULength)}
	if vht.VHT160 {
		caps = append(caps, "VHT160")
	}
	if vht.VHT8080 {
		caps = append(caps, "VHT80+80")
	}
	if vht.ShortGI80 {
		caps = append(caps, "SGI80")
	}
	if vht.SuBeamFormer {
		caps = append(caps, "SU beamformer")
	}
	if vht.MuBeamformer {
		caps = append(caps, "MU beamformer")
	}

	return caps
}

func (r *phyReport) writeText(w io.Writer) error {
	heading(w, "%s (index %d)", r.Name, r.Index)
	fmt.Fprintf(w, "  Modes: %s\n", strings.Join(r.Modes, ", "))
	for _, b := range r.Bands {
		fmt.Fprintf(w, "  Band %s: %d frequencies\n", b.Band, b.Frequencies)
		if len(b.HT) > 0 {
			fmt.Fprintf(w, "    HT: %s\n", strings.Join(b.HT, ", "))
		}
		if len(b.VHT) > 0 {
			fmt.Fprintf(w, "    VHT: %s\n", strings.Join(b.VHT, ", "))
		}
	}
	if len(r.Features) > 0 {
		fmt.Fprintf(w, "  Features: %s\n", strings.Join(r.Features, ", "))
	}
	for _, c := range r.Combinations {
		fmt.Fprintf(w, "  Combination: %s\n", c)
	}
	if r.SelfManaged {
		fmt.Fprintln(w, "  Regulatory: self-managed")
	}
	if r.AntennaGain != 0 {
		fmt.Fprintf(w, "  Antenna gain: %d dBi\n", r.AntennaGain)
	}

	return nil
}

type ruleEntry struct {
	Range      string        `yaml:"range"`
	Bandwidth  string        `yaml:"bandwidth"`
	MaxEIRP    string        `yaml:"max_eirp"`
	DFSCACTime time.Duration `yaml:"dfs_cac_time,omitempty"`
	Flags      string        `yaml:"flags"`
}

type domainEntry struct {
	Country string      `yaml:"country"`
	DFS     string      `yaml:"dfs_region"`
	PHY     string      `yaml:"phy,omitempty"`
	Rules   []ruleEntry `yaml:"rules"`
}

type regulatoryReport struct {
	Domains []domainEntry `yaml:"domains"`
}

func newRegulatoryReport(rds []*iwinfo.RegulatoryDomain) *regulatoryReport {
	r := &regulatoryReport{Domains: make([]domainEntry, 0, len(rds))}
	for _, rd := range rds {
		d := domainEntry{
			Country: rd.Alpha2,
			DFS:     rd.DFSRegion.String(),
		}
		if rd.PHY >= 0 {
			d.PHY = fmt.Sprintf("phy%d", rd.PHY)
		}

		for _, rule := range rd.Rules {
			d.Rules = append(d.Rules, ruleEntry{
				Range:      fmt.Sprintf("%d - %d MHz", rule.StartKHz/1000, rule.EndKHz/1000),
				Bandwidth:  fmt.Sprintf("%d MHz", rule.MaxBandwidthKHz/1000),
				MaxEIRP:    fmt.Sprintf("%d dBm", rule.MaxEIRP/100),
				DFSCACTime: rule.DFSCACTime,
				Flags:      rule.Flags.String(),
			})
		}

		r.Domains = append(r.Domains, d)
	}

	return r
}

func (r *regulatoryReport) writeText(w io.Writer) error {
	for _, d := range r.Domains {
		if d.PHY != "" {
			heading(w, "%s country %s: DFS-%s", d.PHY, d.Country, d.DFS)
		} else {
			heading(w, "global country %s: DFS-%s", d.Country, d.DFS)
		}

		tw := table(w, "\tRANGE", "BANDWIDTH", "EIRP", "FLAGS")
		for _, rule := range d.Rules {
			fmt.Fprintf(tw, "\t%s\t%s\t%s\t%s\n", rule.Range, rule.Bandwidth, rule.MaxEIRP, rule.Flags)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}

type eventReport struct {
	Event     string `yaml:"event"`
	Interface int    `yaml:"ifindex,omitempty"`
	PHY       *int   `yaml:"phy,omitempty"`
	Frequency int    `yaml:"frequency,omitempty"`
	Width     string `yaml:"width,omitempty"`
	Country   string `yaml:"country,omitempty"`
	Initiator string `yaml:"initiator,omitempty"`
	Detail    string `yaml:"detail,omitempty"`
}

func newEventReport(ev iwinfo.Event) *eventReport {
	r := &eventReport{
		Event:     ev.String(),
		Interface: ev.InterfaceIndex,
		Frequency: ev.Frequency,
		Country:   ev.Alpha2,
	}
	if ev.PHY >= 0 {
		phy := ev.PHY
		r.PHY = &phy
	}
	if ev.Frequency != 0 {
		r.Width = ev.ChannelWidth.String()
	}

	switch ev.Command {
	case nl80211.CmdRegChange, nl80211.CmdWiphyRegChange:
		r.Initiator = ev.Initiator.String()
	case nl80211.CmdChSwitchStartedNotify:
		r.Detail = fmt.Sprintf("switch in %d beacons", ev.ChannelSwitchCount)
	}

	if cqm := ev.CQM; cqm != nil {
		switch {
		case cqm.BeaconLoss:
			r.Detail = "beacon loss"
		case cqm.PacketLoss > 0:
			r.Detail = fmt.Sprintf("lost %d packets", cqm.PacketLoss)
		case cqm.RSSIThresholdEvent >= 0:
			r.Detail = fmt.Sprintf("RSSI threshold event %d", cqm.RSSIThresholdEvent)
		}
	}

	return r
}

func (r *eventReport) writeText(w io.Writer) error {
	var parts []string
	if r.PHY != nil {
		parts = append(parts, fmt.Sprintf("phy#%d", *r.PHY))
	}
	if r.Interface != 0 {
		parts = append(parts, fmt.Sprintf("ifindex %d", r.Interface))
	}
	parts = append(parts, color.CyanString(r.Event))
	if r.Frequency != 0 {
		parts = append(parts, fmt.Sprintf("freq %d (%s)", r.Frequency, r.Width))
	}
	if r.Country != "" {
		parts = append(parts, "country "+r.Country)
	}
	if r.Initiator != "" {
		parts = append(parts, "by "+r.Initiator)
	}
	if r.Detail != "" {
		parts = append(parts, r.Detail)
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
