package nl80211

// nl80211_attrs.
const (
	AttrUnspec = iota

	AttrWiphy
	AttrWiphyName

	AttrIfindex
	AttrIfname
	AttrIftype

	AttrMac

	AttrKeyData
	AttrKeyIdx
	AttrKeyCipher
	AttrKeySeq
	AttrKeyDefault

	AttrBeaconInterval
	AttrDtimPeriod
	AttrBeaconHead
	AttrBeaconTail

	AttrStaAid
	AttrStaFlags
	AttrStaListenInterval
	AttrStaSupportedRates
	AttrStaVlan
	AttrStaInfo

	AttrWiphyBands

	AttrMntrFlags

	AttrMeshId
	AttrStaPlinkAction
	AttrMpathNextHop
	AttrMpathInfo

	AttrBssCtsProt
	AttrBssShortPreamble
	AttrBssShortSlotTime

	AttrHtCapability

	AttrSupportedIftypes

	AttrRegAlpha2
	AttrRegRules

	AttrMeshConfig

	AttrBssBasicRates

	AttrWiphyTxqParams
	AttrWiphyFreq
	AttrWiphyChannelType

	AttrKeyDefaultMgmt

	AttrMgmtSubtype
	AttrIe

	AttrMaxNumScanSsids

	AttrScanFrequencies
	AttrScanSsids
	AttrGeneration
	AttrBss

	AttrRegInitiator
	AttrRegType

	AttrSupportedCommands

	AttrFrame
	AttrSsid
	AttrAuthType
	AttrReasonCode

	AttrKeyType

	AttrMaxScanIeLen
	AttrCipherSuites

	AttrFreqBefore
	AttrFreqAfter

	AttrFreqFixed

	AttrWiphyRetryShort
	AttrWiphyRetryLong
	AttrWiphyFragThreshold
	AttrWiphyRtsThreshold

	AttrTimedOut

	AttrUseMfp

	AttrStaFlags2

	AttrControlPort

	AttrTestdata

	AttrPrivacy

	AttrDisconnectedByAp
	AttrStatusCode

	AttrCipherSuitesPairwise
	AttrCipherSuiteGroup
	AttrWpaVersions
	AttrAkmSuites

	AttrReqIe
	AttrRespIe

	AttrPrevBssid

	AttrKey
	AttrKeys

	AttrPid

	Attr4addr

	AttrSurveyInfo

	AttrPmkid
	AttrMaxNumPmkids

	AttrDuration

	AttrCookie

	AttrWiphyCoverageClass

	AttrTxRates

	AttrFrameMatch

	AttrAck

	AttrPsState

	AttrCqm

	AttrLocalStateChange

	AttrApIsolate

	AttrWiphyTxPowerSetting
	AttrWiphyTxPowerLevel

	AttrTxFrameTypes
	AttrRxFrameTypes
	AttrFrameType

	AttrControlPortEthertype
	AttrControlPortNoEncrypt

	AttrSupportIbssRsn

	AttrWiphyAntennaTx
	AttrWiphyAntennaRx

	AttrMcastRate

	AttrOffchannelTxOk

	AttrBssHtOpmode

	AttrKeyDefaultTypes

	AttrMaxRemainOnChannelDuration

	AttrMeshSetup

	AttrWiphyAntennaAvailTx
	AttrWiphyAntennaAvailRx

	AttrSupportMeshAuth
	AttrStaPlinkState

	AttrWowlanTriggers
	AttrWowlanTriggersSupported

	AttrSchedScanInterval

	AttrInterfaceCombinations
	AttrSoftwareIftypes

	AttrRekeyData

	AttrMaxNumSchedScanSsids
	AttrMaxSchedScanIeLen

	AttrScanSuppRates

	AttrHiddenSsid

	AttrIeProbeResp
	AttrIeAssocResp

	AttrStaWme
	AttrSupportApUapsd

	AttrRoamSupport

	AttrSchedScanMatch
	AttrMaxMatchSets

	AttrPmksaCandidate

	AttrTxNoCckRate

	AttrTdlsAction
	AttrTdlsDialogToken
	AttrTdlsOperation
	AttrTdlsSupport
	AttrTdlsExternalSetup

	AttrDeviceApSme

	AttrDontWaitForAck

	AttrFeatureFlags

	AttrProbeRespOffload

	AttrProbeResp

	AttrDfsRegion

	AttrDisableHt
	AttrHtCapabilityMask

	AttrNoackMap

	AttrInactivityTimeout

	AttrRxSignalDbm

	AttrBgScanPeriod

	AttrWdev

	AttrUserRegHintType

	AttrConnFailedReason

	AttrSaeData

	AttrVhtCapability

	AttrScanFlags

	AttrChannelWidth
	AttrCenterFreq1
	AttrCenterFreq2

	AttrP2pCtwindow
	AttrP2pOppps

	AttrLocalMeshPowerMode

	AttrAclPolicy

	AttrMacAddrs

	AttrMacAclMax

	AttrRadarEvent

	AttrExtCapa
	AttrExtCapaMask

	AttrStaCapability
	AttrStaExtCapability

	AttrProtocolFeatures
	AttrSplitWiphyDump

	AttrDisableVht
	AttrVhtCapabilityMask

	AttrMdid
	AttrIeRic

	AttrCritProtId
	AttrMaxCritProtDuration

	AttrPeerAid

	AttrCoalesceRule

	AttrChSwitchCount
	AttrChSwitchBlockTx
	AttrCsaIes
	AttrCsaCOffBeacon
	AttrCsaCOffPresp

	AttrRxmgmtFlags

	AttrStaSupportedChannels

	AttrStaSupportedOperClasses

	AttrHandleDfs

	AttrSupport5Mhz
	AttrSupport10Mhz

	AttrOpmodeNotif

	AttrVendorId
	AttrVendorSubcmd
	AttrVendorData
	AttrVendorEvents

	AttrQosMap

	AttrMacHint
	AttrWiphyFreqHint

	AttrMaxApAssocSta

	AttrTdlsPeerCapability

	AttrSocketOwner

	AttrCsaCOffsetsTx
	AttrMaxCsaCounters

	AttrTdlsInitiator

	AttrUseRrm

	AttrWiphyDynAck

	AttrTsid
	AttrUserPrio
	AttrAdmittedTime

	AttrSmpsMode

	AttrOperClass

	AttrMacMask

	AttrWiphySelfManagedReg

	AttrExtFeatures

	AttrSurveyRadioStats

	AttrNetnsFd

	AttrSchedScanDelay

	// AttrWiphyAntennaGain is the configured antenna gain (u32, dBi), used
	// to reduce transmit power to stay within regulatory limits. It is an
	// OpenWrt extension and is not part of the upstream numbering: upstream
	// kernels assign this value to a different attribute.
	AttrWiphyAntennaGain

	// add attributes here, update the policy in nl80211.c

	attrAfterLast
	NumAttr = attrAfterLast
	AttrMax = attrAfterLast - 1
)

// Source-level API compatibility.
const (
	AttrScanGeneration   = AttrGeneration
	AttrMeshParams       = AttrMeshConfig
	AttrIfaceSocketOwner = AttrSocketOwner
)

// Limits and offsets.
const (
	MaxSuppRates           = 32
	MaxSuppHTRates         = 77
	MaxSuppRegRules        = 64
	TKIPDataOffsetEncrKey  = 0
	TKIPDataOffsetTxMICKey = 16
	TKIPDataOffsetRxMICKey = 24
	HTCapabilityLen        = 26
	VHTCapabilityLen       = 12
	MaxNrCipherSuites      = 5
	MaxNrAKMSuites         = 2
	MinRemainOnChannelTime = 10
	VHTNSSMax              = 8

	// TidNonQoS is the pseudo TID used in StaInfoTidStats for non-QoS
	// frames. Nested attribute numbers there are TID+1.
	TidNonQoS = 16
)
