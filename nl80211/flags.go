package nl80211

// nl80211_feature_flags, carried in AttrFeatureFlags (u32).
const (
	FeatureSkTxStatus            = 1 << 0
	FeatureHtIbss                = 1 << 1
	FeatureInactivityTimer       = 1 << 2
	FeatureCellBaseRegHints      = 1 << 3
	FeatureP2pDeviceNeedsChannel = 1 << 4
	FeatureSae                   = 1 << 5
	FeatureLowPriorityScan       = 1 << 6
	FeatureScanFlush             = 1 << 7
	FeatureApScan                = 1 << 8
	FeatureVifTxpower            = 1 << 9
	FeatureNeedObssScan          = 1 << 10
	FeatureP2pGoCtwin            = 1 << 11
	FeatureP2pGoOppps            = 1 << 12
	// bit 13 is reserved
	FeatureAdvertiseChanLimits    = 1 << 14
	FeatureFullApClientState      = 1 << 15
	FeatureUserspaceMpm           = 1 << 16
	FeatureActiveMonitor          = 1 << 17
	FeatureApModeChanWidthChange  = 1 << 18
	FeatureDsParamSetIeInProbes   = 1 << 19
	FeatureWfaTpcIeInProbes       = 1 << 20
	FeatureQuiet                  = 1 << 21
	FeatureTxPowerInsertion       = 1 << 22
	FeatureAcktoEstimation        = 1 << 23
	FeatureStaticSmps             = 1 << 24
	FeatureDynamicSmps            = 1 << 25
	FeatureSupportsWmmAdmission   = 1 << 26
	FeatureMacOnCreate            = 1 << 27
	FeatureTdlsChannelSwitch      = 1 << 28
	FeatureScanRandomMacAddr      = 1 << 29
	FeatureSchedScanRandomMacAddr = 1 << 30
	FeatureNdRandomMacAddr        = 1 << 31
)

// nl80211_reg_rule_flags, carried in AttrRegRuleFlags (u32).
const (
	RRFNoOfdm       = 1 << 0
	RRFNoCck        = 1 << 1
	RRFNoIndoor     = 1 << 2
	RRFNoOutdoor    = 1 << 3
	RRFDfs          = 1 << 4
	RRFPtpOnly      = 1 << 5
	RRFPtmpOnly     = 1 << 6
	RRFNoIr         = 1 << 7
	rrfNoIbss       = 1 << 8
	RRFAutoBw       = 1 << 11
	RRFGoConcurrent = 1 << 12
	RRFNoHt40minus  = 1 << 13
	RRFNoHt40plus   = 1 << 14
	RRFNo80mhz      = 1 << 15
	RRFNo160mhz     = 1 << 16
)

const (
	RRFPassiveScan = RRFNoIr
	RRFNoIbss      = RRFNoIr
	RRFNoHt40      = RRFNoHt40minus | RRFNoHt40plus

	// RRFNoIrAll is for backport compatibility with older userspace.
	RRFNoIrAll = RRFNoIr | rrfNoIbss
)

// nl80211_scan_flags, carried in AttrScanFlags (u32).
const (
	ScanFlagLowPriority = 1 << 0
	ScanFlagFlush       = 1 << 1
	ScanFlagAp          = 1 << 2
	ScanFlagRandomAddr  = 1 << 3
)
