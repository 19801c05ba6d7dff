package nl80211

import (
	"math/bits"
	"testing"
)

func TestCommandsAppendOnly(t *testing.T) {
	// Commands added by the header sync, in declaration order, preceded by
	// the last command that existed before it.
	cmds := []struct {
		name string
		v    int
	}{
		{name: "set_qos_map", v: CmdSetQosMap},
		{name: "add_tx_ts", v: CmdAddTxTs},
		{name: "del_tx_ts", v: CmdDelTxTs},
		{name: "get_mpp", v: CmdGetMpp},
		{name: "join_ocb", v: CmdJoinOcb},
		{name: "leave_ocb", v: CmdLeaveOcb},
		{name: "ch_switch_started_notify", v: CmdChSwitchStartedNotify},
		{name: "tdls_channel_switch", v: CmdTdlsChannelSwitch},
		{name: "tdls_cancel_channel_switch", v: CmdTdlsCancelChannelSwitch},
		{name: "wiphy_reg_change", v: CmdWiphyRegChange},
	}

	checkAppendOnly(t, cmds, cmdAfterLast)

	if want, got := CmdWiphyRegChange, CmdMax; want != got {
		t.Fatalf("unexpected max command:\n- want: %d\n-  got: %d", want, got)
	}

	for _, c := range cmds {
		if want, got := c.name, CommandString(uint8(c.v)); want != got {
			t.Fatalf("unexpected command name:\n- want: %q\n-  got: %q", want, got)
		}
	}
}

func TestAttributesAppendOnly(t *testing.T) {
	attrs := []struct {
		name string
		v    int
	}{
		{name: "max_csa_counters", v: AttrMaxCsaCounters},
		{name: "tdls_initiator", v: AttrTdlsInitiator},
		{name: "use_rrm", v: AttrUseRrm},
		{name: "wiphy_dyn_ack", v: AttrWiphyDynAck},
		{name: "tsid", v: AttrTsid},
		{name: "user_prio", v: AttrUserPrio},
		{name: "admitted_time", v: AttrAdmittedTime},
		{name: "smps_mode", v: AttrSmpsMode},
		{name: "oper_class", v: AttrOperClass},
		{name: "mac_mask", v: AttrMacMask},
		{name: "wiphy_self_managed_reg", v: AttrWiphySelfManagedReg},
		{name: "ext_features", v: AttrExtFeatures},
		{name: "survey_radio_stats", v: AttrSurveyRadioStats},
		{name: "netns_fd", v: AttrNetnsFd},
		{name: "sched_scan_delay", v: AttrSchedScanDelay},
		{name: "wiphy_antenna_gain", v: AttrWiphyAntennaGain},
	}

	checkAppendOnly(t, attrs, attrAfterLast)

	if AttrMax != AttrWiphyAntennaGain {
		t.Fatalf("antenna gain must stay the last attribute, max is %d", AttrMax)
	}
	if NumAttr != AttrMax+1 {
		t.Fatalf("unexpected attribute count: %d (max %d)", NumAttr, AttrMax)
	}
}

func TestNestedEnumsAppendOnly(t *testing.T) {
	tests := []struct {
		name     string
		vals     []int
		sentinel int
	}{
		{
			name:     "iftype",
			vals:     []int{IftypeP2pDevice, IftypeOcb},
			sentinel: NumIftypes,
		},
		{
			name:     "rate info",
			vals:     []int{RateInfo160MhzWidth, RateInfo10MhzWidth, RateInfo5MhzWidth},
			sentinel: rateInfoAfterLast,
		},
		{
			name: "station info",
			vals: []int{
				StaInfoExpectedThroughput,
				StaInfoRxDropMisc,
				StaInfoBeaconRx,
				StaInfoBeaconSignalAvg,
				StaInfoTidStats,
			},
			sentinel: staInfoAfterLast,
		},
		{
			name: "TID stats",
			vals: []int{
				tidStatsInvalid,
				TidStatsRxMsdu,
				TidStatsTxMsdu,
				TidStatsTxMsduRetries,
				TidStatsTxMsduFailed,
			},
			sentinel: NumTidStats,
		},
		{
			name: "survey info",
			vals: []int{
				SurveyInfoInUse,
				SurveyInfoTime,
				SurveyInfoTimeBusy,
				SurveyInfoTimeExtBusy,
				SurveyInfoTimeRx,
				SurveyInfoTimeTx,
				SurveyInfoTimeScan,
			},
			sentinel: surveyInfoAfterLast,
		},
		{
			name:     "BSS",
			vals:     []int{BssChanWidth, BssBeaconTsf, BssPrespData},
			sentinel: bssAfterLast,
		},
		{
			name:     "CQM",
			vals:     []int{AttrCqmTxeIntvl, AttrCqmBeaconLossEvent},
			sentinel: attrCqmAfterLast,
		},
		{
			name: "WoWLAN triggers",
			vals: []int{
				WowlanTrigWakeupTcpNomoretokens,
				WowlanTrigNetDetect,
				WowlanTrigNetDetectResults,
			},
			sentinel: NumWowlanTrig,
		},
		{
			name:     "SMPS mode",
			vals:     []int{SmpsOff, SmpsStatic, SmpsDynamic},
			sentinel: smpsAfterLast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, v := range tt.vals {
				if v >= tt.sentinel {
					t.Fatalf("value %d is not before sentinel %d", v, tt.sentinel)
				}
				if i > 0 && v != tt.vals[i-1]+1 {
					t.Fatalf("value %d does not directly follow %d", v, tt.vals[i-1])
				}
			}

			if want, got := tt.vals[len(tt.vals)-1]+1, tt.sentinel; want != got {
				t.Fatalf("unexpected sentinel:\n- want: %d\n-  got: %d", want, got)
			}
		})
	}

	if NumExtFeatures != 0 || MaxExtFeatures != -1 {
		t.Fatalf("unexpected extended feature bounds: %d, %d", NumExtFeatures, MaxExtFeatures)
	}
}

func TestCompatibilityAliases(t *testing.T) {
	tests := []struct {
		name         string
		old, renamed int
	}{
		{name: "iface socket owner", old: AttrIfaceSocketOwner, renamed: AttrSocketOwner},
		{name: "scan generation", old: AttrScanGeneration, renamed: AttrGeneration},
		{name: "mesh params", old: AttrMeshParams, renamed: AttrMeshConfig},
		{name: "channel time", old: SurveyInfoChannelTime, renamed: SurveyInfoTime},
		{name: "channel time busy", old: SurveyInfoChannelTimeBusy, renamed: SurveyInfoTimeBusy},
		{name: "channel time ext busy", old: SurveyInfoChannelTimeExtBusy, renamed: SurveyInfoTimeExtBusy},
		{name: "channel time rx", old: SurveyInfoChannelTimeRx, renamed: SurveyInfoTimeRx},
		{name: "channel time tx", old: SurveyInfoChannelTimeTx, renamed: SurveyInfoTimeTx},
		{name: "new beacon", old: CmdNewBeacon, renamed: CmdStartAp},
		{name: "del beacon", old: CmdDelBeacon, renamed: CmdStopAp},
		{name: "register action", old: CmdRegisterAction, renamed: CmdRegisterFrame},
		{name: "action", old: CmdAction, renamed: CmdFrame},
		{name: "action tx status", old: CmdActionTxStatus, renamed: CmdFrameTxStatus},
		{name: "passive scan rule", old: RRFPassiveScan, renamed: RRFNoIr},
		{name: "no IBSS rule", old: RRFNoIbss, renamed: RRFNoIr},
		{name: "passive scan frequency", old: FrequencyAttrPassiveScan, renamed: FrequencyAttrNoIr},
		{name: "no IBSS frequency", old: FrequencyAttrNoIbss, renamed: FrequencyAttrNoIr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.old != tt.renamed {
				t.Fatalf("alias does not match renamed value:\n- want: %d\n-  got: %d",
					tt.renamed, tt.old)
			}
		})
	}

	// The renamed survey attributes must keep the numbers the old names had.
	if SurveyInfoTime != 4 || SurveyInfoTimeTx != 8 {
		t.Fatalf("survey time attributes moved: %d..%d", SurveyInfoTime, SurveyInfoTimeTx)
	}
}

func TestFlagWordsDisjoint(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		reserved uint64
		flags    []uint64
	}{
		{
			name:     "feature flags",
			width:    32,
			reserved: 1 << 13,
			flags: []uint64{
				FeatureSkTxStatus,
				FeatureHtIbss,
				FeatureInactivityTimer,
				FeatureCellBaseRegHints,
				FeatureP2pDeviceNeedsChannel,
				FeatureSae,
				FeatureLowPriorityScan,
				FeatureScanFlush,
				FeatureApScan,
				FeatureVifTxpower,
				FeatureNeedObssScan,
				FeatureP2pGoCtwin,
				FeatureP2pGoOppps,
				FeatureAdvertiseChanLimits,
				FeatureFullApClientState,
				FeatureUserspaceMpm,
				FeatureActiveMonitor,
				FeatureApModeChanWidthChange,
				FeatureDsParamSetIeInProbes,
				FeatureWfaTpcIeInProbes,
				FeatureQuiet,
				FeatureTxPowerInsertion,
				FeatureAcktoEstimation,
				FeatureStaticSmps,
				FeatureDynamicSmps,
				FeatureSupportsWmmAdmission,
				FeatureMacOnCreate,
				FeatureTdlsChannelSwitch,
				FeatureScanRandomMacAddr,
				FeatureSchedScanRandomMacAddr,
				FeatureNdRandomMacAddr,
			},
		},
		{
			name:  "regulatory rule flags",
			width: 32,
			flags: []uint64{
				RRFNoOfdm,
				RRFNoCck,
				RRFNoIndoor,
				RRFNoOutdoor,
				RRFDfs,
				RRFPtpOnly,
				RRFPtmpOnly,
				RRFNoIr,
				rrfNoIbss,
				RRFAutoBw,
				RRFGoConcurrent,
				RRFNoHt40minus,
				RRFNoHt40plus,
				RRFNo80mhz,
				RRFNo160mhz,
			},
		},
		{
			name:  "scan flags",
			width: 32,
			flags: []uint64{
				ScanFlagLowPriority,
				ScanFlagFlush,
				ScanFlagAp,
				ScanFlagRandomAddr,
			},
		},
		{
			name:  "mesh path flags",
			width: 8,
			flags: []uint64{
				MpathFlagActive,
				MpathFlagResolving,
				MpathFlagSnValid,
				MpathFlagFixed,
				MpathFlagResolved,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen uint64
			for _, f := range tt.flags {
				if bits.OnesCount64(f) != 1 {
					t.Fatalf("flag %#x is not a single bit", f)
				}
				if bits.Len64(f) > tt.width {
					t.Fatalf("flag %#x does not fit in %d bits", f, tt.width)
				}
				if seen&f != 0 {
					t.Fatalf("flag %#x shares a bit with another flag", f)
				}

				seen |= f
			}

			if seen&tt.reserved != 0 {
				t.Fatalf("reserved bits %#x are in use", seen&tt.reserved)
			}
		})
	}

	if FeatureNdRandomMacAddr != 1<<31 {
		t.Fatalf("last feature flag must occupy the top bit of the u32 word")
	}
	if want, got := RRFNoHt40minus|RRFNoHt40plus, RRFNoHt40; want != got {
		t.Fatalf("unexpected composite HT40 rule:\n- want: %#x\n-  got: %#x", want, got)
	}
	if want, got := RRFNoIr|rrfNoIbss, RRFNoIrAll; want != got {
		t.Fatalf("unexpected composite no-IR rule:\n- want: %#x\n-  got: %#x", want, got)
	}
}

func TestLimits(t *testing.T) {
	if MaxSuppRegRules != 64 {
		t.Fatalf("unexpected regulatory rule limit: %d", MaxSuppRegRules)
	}
	if MaxSuppRates != 32 || MaxSuppHTRates != 77 {
		t.Fatalf("unexpected rate limits: %d, %d", MaxSuppRates, MaxSuppHTRates)
	}
}

func TestCommandStringUnknown(t *testing.T) {
	if want, got := "unknown(200)", CommandString(200); want != got {
		t.Fatalf("unexpected command name:\n- want: %q\n-  got: %q", want, got)
	}
	if want, got := "unknown(114)", CommandString(cmdAfterLast); want != got {
		t.Fatalf("unexpected command name:\n- want: %q\n-  got: %q", want, got)
	}

	for i := CmdUnspec; i <= CmdMax; i++ {
		if commandNames[i] == "" {
			t.Fatalf("command %d has no name", i)
		}
	}
}

func TestMulticastGroups(t *testing.T) {
	if want, got := McgrpTestmode+1, len(MulticastGroups); want != got {
		t.Fatalf("unexpected number of groups:\n- want: %d\n-  got: %d", want, got)
	}
	if want, got := "scan", MulticastGroups[McgrpScan]; want != got {
		t.Fatalf("unexpected scan group:\n- want: %q\n-  got: %q", want, got)
	}
}

func checkAppendOnly(t *testing.T, vals []struct {
	name string
	v    int
}, sentinel int) {
	t.Helper()

	for i, c := range vals {
		if c.v >= sentinel {
			t.Fatalf("%s (%d) is not before the sentinel %d", c.name, c.v, sentinel)
		}
		if i == 0 {
			continue
		}
		if prev := vals[i-1]; c.v != prev.v+1 {
			t.Fatalf("%s (%d) does not directly follow %s (%d)", c.name, c.v, prev.name, prev.v)
		}
	}
}
