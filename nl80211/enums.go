package nl80211

// nl80211_iftype.
const (
	IftypeUnspecified = iota
	IftypeAdhoc
	IftypeStation
	IftypeAp
	IftypeApVlan
	IftypeWds
	IftypeMonitor
	IftypeMeshPoint
	IftypeP2pClient
	IftypeP2pGo
	IftypeP2pDevice
	IftypeOcb

	// keep last
	NumIftypes
	IftypeMax = NumIftypes - 1
)

// nl80211_rate_info.
const (
	rateInfoInvalid = iota
	RateInfoBitrate
	RateInfoMcs
	RateInfo40MhzWidth
	RateInfoShortGi
	RateInfoBitrate32
	RateInfoVhtMcs
	RateInfoVhtNss
	RateInfo80MhzWidth
	RateInfo80p80MhzWidth
	RateInfo160MhzWidth
	RateInfo10MhzWidth
	RateInfo5MhzWidth

	// keep last
	rateInfoAfterLast
	RateInfoMax = rateInfoAfterLast - 1
)

// nl80211_sta_info.
const (
	staInfoInvalid = iota
	StaInfoInactiveTime
	StaInfoRxBytes
	StaInfoTxBytes
	StaInfoLlid
	StaInfoPlid
	StaInfoPlinkState
	StaInfoSignal
	StaInfoTxBitrate
	StaInfoRxPackets
	StaInfoTxPackets
	StaInfoTxRetries
	StaInfoTxFailed
	StaInfoSignalAvg
	StaInfoRxBitrate
	StaInfoBssParam
	StaInfoConnectedTime
	StaInfoStaFlags
	StaInfoBeaconLoss
	StaInfoTOffset
	StaInfoLocalPm
	StaInfoPeerPm
	StaInfoNonpeerPm
	StaInfoRxBytes64
	StaInfoTxBytes64
	StaInfoChainSignal
	StaInfoChainSignalAvg
	StaInfoExpectedThroughput
	StaInfoRxDropMisc
	StaInfoBeaconRx
	StaInfoBeaconSignalAvg
	StaInfoTidStats

	// keep last
	staInfoAfterLast
	StaInfoMax = staInfoAfterLast - 1
)

// nl80211_tid_stats.
const (
	tidStatsInvalid = iota
	TidStatsRxMsdu
	TidStatsTxMsdu
	TidStatsTxMsduRetries
	TidStatsTxMsduFailed

	// keep last
	NumTidStats
	TidStatsMax = NumTidStats - 1
)

// nl80211_mpath_flags.
const (
	MpathFlagActive    = 1 << 0
	MpathFlagResolving = 1 << 1
	MpathFlagSnValid   = 1 << 2
	MpathFlagFixed     = 1 << 3
	MpathFlagResolved  = 1 << 4
)

// nl80211_mpath_info.
const (
	mpathInfoInvalid = iota
	MpathInfoFrameQlen
	MpathInfoSn
	MpathInfoMetric
	MpathInfoExptime
	MpathInfoFlags
	MpathInfoDiscoveryTimeout
	MpathInfoDiscoveryRetries

	// keep last
	mpathInfoAfterLast
	MpathInfoMax = mpathInfoAfterLast - 1
)

// nl80211_band_attr.
const (
	bandAttrInvalid = iota
	BandAttrFreqs
	BandAttrRates
	BandAttrHtMcsSet
	BandAttrHtCapa
	BandAttrHtAmpduFactor
	BandAttrHtAmpduDensity
	BandAttrVhtMcsSet
	BandAttrVhtCapa

	// keep last
	bandAttrAfterLast
	BandAttrMax = bandAttrAfterLast - 1
)

// nl80211_frequency_attr.
const (
	frequencyAttrInvalid = iota
	FrequencyAttrFreq
	FrequencyAttrDisabled
	FrequencyAttrNoIr
	frequencyAttrNoIbss
	FrequencyAttrRadar
	FrequencyAttrMaxTxPower
	FrequencyAttrDfsState
	FrequencyAttrDfsTime
	FrequencyAttrNoHt40Minus
	FrequencyAttrNoHt40Plus
	FrequencyAttrNo80mhz
	FrequencyAttrNo160mhz
	FrequencyAttrDfsCacTime
	FrequencyAttrIndoorOnly
	FrequencyAttrGoConcurrent
	FrequencyAttrNo20mhz
	FrequencyAttrNo10mhz

	// keep last
	frequencyAttrAfterLast
	FrequencyAttrMax = frequencyAttrAfterLast - 1
)

const (
	FrequencyAttrPassiveScan = FrequencyAttrNoIr
	FrequencyAttrNoIbss      = FrequencyAttrNoIr
)

// nl80211_bitrate_attr.
const (
	bitrateAttrInvalid = iota
	BitrateAttrRate
	BitrateAttr2ghzShortpreamble

	// keep last
	bitrateAttrAfterLast
	BitrateAttrMax = bitrateAttrAfterLast - 1
)

// nl80211_reg_initiator.
const (
	RegdomSetByCore = iota
	RegdomSetByUser
	RegdomSetByDriver
	RegdomSetByCountryIe
)

// nl80211_reg_type.
const (
	RegdomTypeCountry = iota
	RegdomTypeWorld
	RegdomTypeCustomWorld
	RegdomTypeIntersection
)

// nl80211_reg_rule_attr.
const (
	regRuleAttrInvalid = iota
	AttrRegRuleFlags

	AttrFreqRangeStart
	AttrFreqRangeEnd
	AttrFreqRangeMaxBw

	AttrPowerRuleMaxAntGain
	AttrPowerRuleMaxEirp

	AttrDfsCacTime

	// keep last
	regRuleAttrAfterLast
	RegRuleAttrMax = regRuleAttrAfterLast - 1
)

// nl80211_sched_scan_match_attr.
const (
	schedScanMatchAttrInvalid = iota
	SchedScanMatchAttrSsid
	SchedScanMatchAttrRssi

	// keep last
	schedScanMatchAttrAfterLast
	SchedScanMatchAttrMax = schedScanMatchAttrAfterLast - 1
)

// nl80211_dfs_regions.
const (
	DfsUnset = iota
	DfsFcc
	DfsEtsi
	DfsJp
)

// nl80211_survey_info.
const (
	surveyInfoInvalid = iota
	SurveyInfoFrequency
	SurveyInfoNoise
	SurveyInfoInUse
	SurveyInfoTime
	SurveyInfoTimeBusy
	SurveyInfoTimeExtBusy
	SurveyInfoTimeRx
	SurveyInfoTimeTx
	SurveyInfoTimeScan

	// keep last
	surveyInfoAfterLast
	SurveyInfoMax = surveyInfoAfterLast - 1
)

// Old survey names, kept for compatibility.
const (
	SurveyInfoChannelTime        = SurveyInfoTime
	SurveyInfoChannelTimeBusy    = SurveyInfoTimeBusy
	SurveyInfoChannelTimeExtBusy = SurveyInfoTimeExtBusy
	SurveyInfoChannelTimeRx      = SurveyInfoTimeRx
	SurveyInfoChannelTimeTx      = SurveyInfoTimeTx
)

// nl80211_chan_width.
const (
	ChanWidth20Noht = iota
	ChanWidth20
	ChanWidth40
	ChanWidth80
	ChanWidth80p80
	ChanWidth160
	ChanWidth5
	ChanWidth10
)

// nl80211_bss_scan_width.
const (
	BssChanWidth20 = iota
	BssChanWidth10
	BssChanWidth5
)

// nl80211_bss.
const (
	bssInvalid = iota
	BssBssid
	BssFrequency
	BssTsf
	BssBeaconInterval
	BssCapability
	BssInformationElements
	BssSignalMbm
	BssSignalUnspec
	BssStatus
	BssSeenMsAgo
	BssBeaconIes
	BssChanWidth
	BssBeaconTsf
	BssPrespData

	// keep last
	bssAfterLast
	BssMax = bssAfterLast - 1
)

// nl80211_bss_status.
const (
	BssStatusAuthenticated = iota
	BssStatusAssociated
	BssStatusIbssJoined
)

// nl80211_auth_type.
const (
	AuthtypeOpenSystem = iota
	AuthtypeSharedKey
	AuthtypeFt
	AuthtypeNetworkEap
	AuthtypeSae
)

// nl80211_attr_cqm.
const (
	attrCqmInvalid = iota
	AttrCqmRssiThold
	AttrCqmRssiHyst
	AttrCqmRssiThresholdEvent
	AttrCqmPktLossEvent
	AttrCqmTxeRate
	AttrCqmTxePkts
	AttrCqmTxeIntvl
	AttrCqmBeaconLossEvent

	// keep last
	attrCqmAfterLast
	AttrCqmMax = attrCqmAfterLast - 1
)

// nl80211_cqm_rssi_threshold_event.
const (
	CqmRssiThresholdEventLow = iota
	CqmRssiThresholdEventHigh

	// CqmRssiBeaconLossEvent is reserved and never sent; beacon loss is
	// reported with AttrCqmBeaconLossEvent.
	CqmRssiBeaconLossEvent
)

// nl80211_wowlan_triggers.
const (
	wowlanTrigInvalid = iota
	WowlanTrigAny
	WowlanTrigDisconnect
	WowlanTrigMagicPkt
	WowlanTrigPktPattern
	WowlanTrigGtkRekeySupported
	WowlanTrigGtkRekeyFailure
	WowlanTrigEapIdentRequest
	WowlanTrig4wayHandshake
	WowlanTrigRfkillRelease
	WowlanTrigWakeupPkt80211
	WowlanTrigWakeupPkt80211Len
	WowlanTrigWakeupPkt8023
	WowlanTrigWakeupPkt8023Len
	WowlanTrigTcpConnection
	WowlanTrigWakeupTcpMatch
	WowlanTrigWakeupTcpConnlost
	WowlanTrigWakeupTcpNomoretokens
	WowlanTrigNetDetect
	WowlanTrigNetDetectResults

	// keep last
	NumWowlanTrig
	MaxWowlanTrig = NumWowlanTrig - 1
)

// nl80211_if_combination_attrs.
const (
	ifaceCombInvalid = iota
	IfaceCombLimits
	IfaceCombMaxnum
	IfaceCombStaApBiMatch
	IfaceCombNumChannels
	IfaceCombRadarDetectWidths
	IfaceCombRadarDetectRegions

	// keep last
	NumIfaceComb
	MaxIfaceComb = NumIfaceComb - 1
)

// nl80211_iface_limit_attrs.
const (
	ifaceLimitUnspec = iota
	IfaceLimitMax
	IfaceLimitTypes

	// keep last
	NumIfaceLimit
	MaxIfaceLimit = NumIfaceLimit - 1
)

// nl80211_ext_feature_index. No extended features are defined at this
// revision; the bitmap in AttrExtFeatures is still carried and can be tested
// by index.
const (
	// add new features before the definition below
	NumExtFeatures = iota
	MaxExtFeatures = NumExtFeatures - 1
)

// nl80211_smps_mode.
const (
	SmpsOff = iota
	SmpsStatic
	SmpsDynamic

	smpsAfterLast
	SmpsMax = smpsAfterLast - 1
)

// nl80211_band.
const (
	Band2ghz = iota
	Band5ghz
	Band60ghz
)
