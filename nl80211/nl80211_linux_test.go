//go:build linux
// +build linux

package nl80211

import (
	"testing"

	"golang.org/x/sys/unix"
)

// TestKernelNumbering verifies that values match the numbering exported by
// the installed kernel headers, as captured by x/sys/unix.
func TestKernelNumbering(t *testing.T) {
	tests := []struct {
		name      string
		got, want uint64
	}{
		// Commands.
		{name: "CMD_GET_WIPHY", got: CmdGetWiphy, want: unix.NL80211_CMD_GET_WIPHY},
		{name: "CMD_GET_INTERFACE", got: CmdGetInterface, want: unix.NL80211_CMD_GET_INTERFACE},
		{name: "CMD_NEW_INTERFACE", got: CmdNewInterface, want: unix.NL80211_CMD_NEW_INTERFACE},
		{name: "CMD_START_AP", got: CmdStartAp, want: unix.NL80211_CMD_START_AP},
		{name: "CMD_GET_STATION", got: CmdGetStation, want: unix.NL80211_CMD_GET_STATION},
		{name: "CMD_NEW_STATION", got: CmdNewStation, want: unix.NL80211_CMD_NEW_STATION},
		{name: "CMD_GET_MPATH", got: CmdGetMpath, want: unix.NL80211_CMD_GET_MPATH},
		{name: "CMD_GET_REG", got: CmdGetReg, want: unix.NL80211_CMD_GET_REG},
		{name: "CMD_GET_SCAN", got: CmdGetScan, want: unix.NL80211_CMD_GET_SCAN},
		{name: "CMD_TRIGGER_SCAN", got: CmdTriggerScan, want: unix.NL80211_CMD_TRIGGER_SCAN},
		{name: "CMD_NEW_SCAN_RESULTS", got: CmdNewScanResults, want: unix.NL80211_CMD_NEW_SCAN_RESULTS},
		{name: "CMD_SCAN_ABORTED", got: CmdScanAborted, want: unix.NL80211_CMD_SCAN_ABORTED},
		{name: "CMD_REG_CHANGE", got: CmdRegChange, want: unix.NL80211_CMD_REG_CHANGE},
		{name: "CMD_CONNECT", got: CmdConnect, want: unix.NL80211_CMD_CONNECT},
		{name: "CMD_DISCONNECT", got: CmdDisconnect, want: unix.NL80211_CMD_DISCONNECT},
		{name: "CMD_GET_SURVEY", got: CmdGetSurvey, want: unix.NL80211_CMD_GET_SURVEY},
		{name: "CMD_NEW_SURVEY_RESULTS", got: CmdNewSurveyResults, want: unix.NL80211_CMD_NEW_SURVEY_RESULTS},
		{name: "CMD_FRAME", got: CmdFrame, want: unix.NL80211_CMD_FRAME},
		{name: "CMD_NOTIFY_CQM", got: CmdNotifyCqm, want: unix.NL80211_CMD_NOTIFY_CQM},
		{name: "CMD_START_SCHED_SCAN", got: CmdStartSchedScan, want: unix.NL80211_CMD_START_SCHED_SCAN},
		{name: "CMD_STOP_SCHED_SCAN", got: CmdStopSchedScan, want: unix.NL80211_CMD_STOP_SCHED_SCAN},
		{name: "CMD_CH_SWITCH_NOTIFY", got: CmdChSwitchNotify, want: unix.NL80211_CMD_CH_SWITCH_NOTIFY},
		{name: "CMD_VENDOR", got: CmdVendor, want: unix.NL80211_CMD_VENDOR},
		{name: "CMD_SET_QOS_MAP", got: CmdSetQosMap, want: unix.NL80211_CMD_SET_QOS_MAP},
		{name: "CMD_ADD_TX_TS", got: CmdAddTxTs, want: unix.NL80211_CMD_ADD_TX_TS},
		{name: "CMD_DEL_TX_TS", got: CmdDelTxTs, want: unix.NL80211_CMD_DEL_TX_TS},
		{name: "CMD_GET_MPP", got: CmdGetMpp, want: unix.NL80211_CMD_GET_MPP},
		{name: "CMD_JOIN_OCB", got: CmdJoinOcb, want: unix.NL80211_CMD_JOIN_OCB},
		{name: "CMD_LEAVE_OCB", got: CmdLeaveOcb, want: unix.NL80211_CMD_LEAVE_OCB},
		{name: "CMD_CH_SWITCH_STARTED_NOTIFY", got: CmdChSwitchStartedNotify, want: unix.NL80211_CMD_CH_SWITCH_STARTED_NOTIFY},
		{name: "CMD_TDLS_CHANNEL_SWITCH", got: CmdTdlsChannelSwitch, want: unix.NL80211_CMD_TDLS_CHANNEL_SWITCH},
		{name: "CMD_TDLS_CANCEL_CHANNEL_SWITCH", got: CmdTdlsCancelChannelSwitch, want: unix.NL80211_CMD_TDLS_CANCEL_CHANNEL_SWITCH},
		{name: "CMD_WIPHY_REG_CHANGE", got: CmdWiphyRegChange, want: unix.NL80211_CMD_WIPHY_REG_CHANGE},

		// Attributes.
		{name: "ATTR_WIPHY", got: AttrWiphy, want: unix.NL80211_ATTR_WIPHY},
		{name: "ATTR_IFINDEX", got: AttrIfindex, want: unix.NL80211_ATTR_IFINDEX},
		{name: "ATTR_MAC", got: AttrMac, want: unix.NL80211_ATTR_MAC},
		{name: "ATTR_STA_INFO", got: AttrStaInfo, want: unix.NL80211_ATTR_STA_INFO},
		{name: "ATTR_WIPHY_BANDS", got: AttrWiphyBands, want: unix.NL80211_ATTR_WIPHY_BANDS},
		{name: "ATTR_MPATH_NEXT_HOP", got: AttrMpathNextHop, want: unix.NL80211_ATTR_MPATH_NEXT_HOP},
		{name: "ATTR_SUPPORTED_IFTYPES", got: AttrSupportedIftypes, want: unix.NL80211_ATTR_SUPPORTED_IFTYPES},
		{name: "ATTR_REG_RULES", got: AttrRegRules, want: unix.NL80211_ATTR_REG_RULES},
		{name: "ATTR_WIPHY_FREQ", got: AttrWiphyFreq, want: unix.NL80211_ATTR_WIPHY_FREQ},
		{name: "ATTR_BSS", got: AttrBss, want: unix.NL80211_ATTR_BSS},
		{name: "ATTR_SSID", got: AttrSsid, want: unix.NL80211_ATTR_SSID},
		{name: "ATTR_SURVEY_INFO", got: AttrSurveyInfo, want: unix.NL80211_ATTR_SURVEY_INFO},
		{name: "ATTR_CQM", got: AttrCqm, want: unix.NL80211_ATTR_CQM},
		{name: "ATTR_INTERFACE_COMBINATIONS", got: AttrInterfaceCombinations, want: unix.NL80211_ATTR_INTERFACE_COMBINATIONS},
		{name: "ATTR_FEATURE_FLAGS", got: AttrFeatureFlags, want: unix.NL80211_ATTR_FEATURE_FLAGS},
		{name: "ATTR_WDEV", got: AttrWdev, want: unix.NL80211_ATTR_WDEV},
		{name: "ATTR_SCAN_FLAGS", got: AttrScanFlags, want: unix.NL80211_ATTR_SCAN_FLAGS},
		{name: "ATTR_CHANNEL_WIDTH", got: AttrChannelWidth, want: unix.NL80211_ATTR_CHANNEL_WIDTH},
		{name: "ATTR_CENTER_FREQ1", got: AttrCenterFreq1, want: unix.NL80211_ATTR_CENTER_FREQ1},
		{name: "ATTR_SPLIT_WIPHY_DUMP", got: AttrSplitWiphyDump, want: unix.NL80211_ATTR_SPLIT_WIPHY_DUMP},
		{name: "ATTR_CH_SWITCH_COUNT", got: AttrChSwitchCount, want: unix.NL80211_ATTR_CH_SWITCH_COUNT},
		{name: "ATTR_TDLS_PEER_CAPABILITY", got: AttrTdlsPeerCapability, want: unix.NL80211_ATTR_TDLS_PEER_CAPABILITY},
		{name: "ATTR_SOCKET_OWNER", got: AttrSocketOwner, want: unix.NL80211_ATTR_SOCKET_OWNER},
		{name: "ATTR_CSA_C_OFFSETS_TX", got: AttrCsaCOffsetsTx, want: unix.NL80211_ATTR_CSA_C_OFFSETS_TX},
		{name: "ATTR_MAX_CSA_COUNTERS", got: AttrMaxCsaCounters, want: unix.NL80211_ATTR_MAX_CSA_COUNTERS},
		{name: "ATTR_TDLS_INITIATOR", got: AttrTdlsInitiator, want: unix.NL80211_ATTR_TDLS_INITIATOR},
		{name: "ATTR_USE_RRM", got: AttrUseRrm, want: unix.NL80211_ATTR_USE_RRM},
		{name: "ATTR_WIPHY_DYN_ACK", got: AttrWiphyDynAck, want: unix.NL80211_ATTR_WIPHY_DYN_ACK},
		{name: "ATTR_TSID", got: AttrTsid, want: unix.NL80211_ATTR_TSID},
		{name: "ATTR_USER_PRIO", got: AttrUserPrio, want: unix.NL80211_ATTR_USER_PRIO},
		{name: "ATTR_ADMITTED_TIME", got: AttrAdmittedTime, want: unix.NL80211_ATTR_ADMITTED_TIME},
		{name: "ATTR_SMPS_MODE", got: AttrSmpsMode, want: unix.NL80211_ATTR_SMPS_MODE},
		{name: "ATTR_OPER_CLASS", got: AttrOperClass, want: unix.NL80211_ATTR_OPER_CLASS},
		{name: "ATTR_MAC_MASK", got: AttrMacMask, want: unix.NL80211_ATTR_MAC_MASK},
		{name: "ATTR_WIPHY_SELF_MANAGED_REG", got: AttrWiphySelfManagedReg, want: unix.NL80211_ATTR_WIPHY_SELF_MANAGED_REG},
		{name: "ATTR_EXT_FEATURES", got: AttrExtFeatures, want: unix.NL80211_ATTR_EXT_FEATURES},
		{name: "ATTR_SURVEY_RADIO_STATS", got: AttrSurveyRadioStats, want: unix.NL80211_ATTR_SURVEY_RADIO_STATS},
		{name: "ATTR_NETNS_FD", got: AttrNetnsFd, want: unix.NL80211_ATTR_NETNS_FD},
		{name: "ATTR_SCHED_SCAN_DELAY", got: AttrSchedScanDelay, want: unix.NL80211_ATTR_SCHED_SCAN_DELAY},

		// Nested sets.
		{name: "IFTYPE_OCB", got: IftypeOcb, want: unix.NL80211_IFTYPE_OCB},
		{name: "RATE_INFO_BITRATE32", got: RateInfoBitrate32, want: unix.NL80211_RATE_INFO_BITRATE32},
		{name: "RATE_INFO_10_MHZ_WIDTH", got: RateInfo10MhzWidth, want: unix.NL80211_RATE_INFO_10_MHZ_WIDTH},
		{name: "RATE_INFO_5_MHZ_WIDTH", got: RateInfo5MhzWidth, want: unix.NL80211_RATE_INFO_5_MHZ_WIDTH},
		{name: "STA_INFO_RX_BYTES64", got: StaInfoRxBytes64, want: unix.NL80211_STA_INFO_RX_BYTES64},
		{name: "STA_INFO_EXPECTED_THROUGHPUT", got: StaInfoExpectedThroughput, want: unix.NL80211_STA_INFO_EXPECTED_THROUGHPUT},
		{name: "STA_INFO_RX_DROP_MISC", got: StaInfoRxDropMisc, want: unix.NL80211_STA_INFO_RX_DROP_MISC},
		{name: "STA_INFO_BEACON_RX", got: StaInfoBeaconRx, want: unix.NL80211_STA_INFO_BEACON_RX},
		{name: "STA_INFO_BEACON_SIGNAL_AVG", got: StaInfoBeaconSignalAvg, want: unix.NL80211_STA_INFO_BEACON_SIGNAL_AVG},
		{name: "STA_INFO_TID_STATS", got: StaInfoTidStats, want: unix.NL80211_STA_INFO_TID_STATS},
		{name: "TID_STATS_RX_MSDU", got: TidStatsRxMsdu, want: unix.NL80211_TID_STATS_RX_MSDU},
		{name: "TID_STATS_TX_MSDU_FAILED", got: TidStatsTxMsduFailed, want: unix.NL80211_TID_STATS_TX_MSDU_FAILED},
		{name: "MPATH_INFO_DISCOVERY_RETRIES", got: MpathInfoDiscoveryRetries, want: unix.NL80211_MPATH_INFO_DISCOVERY_RETRIES},
		{name: "BAND_ATTR_VHT_CAPA", got: BandAttrVhtCapa, want: unix.NL80211_BAND_ATTR_VHT_CAPA},
		{name: "FREQUENCY_ATTR_MAX_TX_POWER", got: FrequencyAttrMaxTxPower, want: unix.NL80211_FREQUENCY_ATTR_MAX_TX_POWER},
		{name: "FREQUENCY_ATTR_NO_10MHZ", got: FrequencyAttrNo10mhz, want: unix.NL80211_FREQUENCY_ATTR_NO_10MHZ},
		{name: "ATTR_DFS_CAC_TIME", got: AttrDfsCacTime, want: unix.NL80211_ATTR_DFS_CAC_TIME},
		{name: "SCHED_SCAN_MATCH_ATTR_SSID", got: SchedScanMatchAttrSsid, want: unix.NL80211_SCHED_SCAN_MATCH_ATTR_SSID},
		{name: "SURVEY_INFO_TIME", got: SurveyInfoTime, want: unix.NL80211_SURVEY_INFO_TIME},
		{name: "SURVEY_INFO_TIME_SCAN", got: SurveyInfoTimeScan, want: unix.NL80211_SURVEY_INFO_TIME_SCAN},
		{name: "CHAN_WIDTH_10", got: ChanWidth10, want: unix.NL80211_CHAN_WIDTH_10},
		{name: "BSS_BEACON_TSF", got: BssBeaconTsf, want: unix.NL80211_BSS_BEACON_TSF},
		{name: "BSS_PRESP_DATA", got: BssPrespData, want: unix.NL80211_BSS_PRESP_DATA},
		{name: "BSS_STATUS_IBSS_JOINED", got: BssStatusIbssJoined, want: unix.NL80211_BSS_STATUS_IBSS_JOINED},
		{name: "ATTR_CQM_BEACON_LOSS_EVENT", got: AttrCqmBeaconLossEvent, want: unix.NL80211_ATTR_CQM_BEACON_LOSS_EVENT},
		{name: "WOWLAN_TRIG_NET_DETECT", got: WowlanTrigNetDetect, want: unix.NL80211_WOWLAN_TRIG_NET_DETECT},
		{name: "WOWLAN_TRIG_NET_DETECT_RESULTS", got: WowlanTrigNetDetectResults, want: unix.NL80211_WOWLAN_TRIG_NET_DETECT_RESULTS},
		{name: "IFACE_COMB_NUM_CHANNELS", got: IfaceCombNumChannels, want: unix.NL80211_IFACE_COMB_NUM_CHANNELS},
		{name: "IFACE_LIMIT_TYPES", got: IfaceLimitTypes, want: unix.NL80211_IFACE_LIMIT_TYPES},
		{name: "SMPS_DYNAMIC", got: SmpsDynamic, want: unix.NL80211_SMPS_DYNAMIC},
		{name: "BAND_60GHZ", got: Band60ghz, want: unix.NL80211_BAND_60GHZ},

		// Flags.
		{name: "RRF_AUTO_BW", got: RRFAutoBw, want: unix.NL80211_RRF_AUTO_BW},
		{name: "RRF_NO_HT40MINUS", got: RRFNoHt40minus, want: unix.NL80211_RRF_NO_HT40MINUS},
		{name: "RRF_NO_HT40PLUS", got: RRFNoHt40plus, want: unix.NL80211_RRF_NO_HT40PLUS},
		{name: "RRF_NO_80MHZ", got: RRFNo80mhz, want: unix.NL80211_RRF_NO_80MHZ},
		{name: "RRF_NO_160MHZ", got: RRFNo160mhz, want: unix.NL80211_RRF_NO_160MHZ},
		{name: "FEATURE_AP_MODE_CHAN_WIDTH_CHANGE", got: FeatureApModeChanWidthChange, want: unix.NL80211_FEATURE_AP_MODE_CHAN_WIDTH_CHANGE},
		{name: "FEATURE_SUPPORTS_WMM_ADMISSION", got: FeatureSupportsWmmAdmission, want: unix.NL80211_FEATURE_SUPPORTS_WMM_ADMISSION},
		{name: "FEATURE_TDLS_CHANNEL_SWITCH", got: FeatureTdlsChannelSwitch, want: unix.NL80211_FEATURE_TDLS_CHANNEL_SWITCH},
		{name: "FEATURE_SCAN_RANDOM_MAC_ADDR", got: FeatureScanRandomMacAddr, want: unix.NL80211_FEATURE_SCAN_RANDOM_MAC_ADDR},
		{name: "FEATURE_ND_RANDOM_MAC_ADDR", got: FeatureNdRandomMacAddr, want: unix.NL80211_FEATURE_ND_RANDOM_MAC_ADDR},
		{name: "SCAN_FLAG_RANDOM_ADDR", got: ScanFlagRandomAddr, want: unix.NL80211_SCAN_FLAG_RANDOM_ADDR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want != tt.got {
				t.Fatalf("unexpected value:\n- want: %#x\n-  got: %#x",
					tt.want, tt.got)
			}
		})
	}

	if want, got := unix.NL80211_GENL_NAME, GenlName; want != got {
		t.Fatalf("unexpected family name:\n- want: %q\n-  got: %q", want, got)
	}
	if want, got := unix.NL80211_MULTICAST_GROUP_SCAN, MulticastGroupScan; want != got {
		t.Fatalf("unexpected scan group:\n- want: %q\n-  got: %q", want, got)
	}
	if want, got := unix.NL80211_MULTICAST_GROUP_REG, MulticastGroupReg; want != got {
		t.Fatalf("unexpected regulatory group:\n- want: %q\n-  got: %q", want, got)
	}
}
