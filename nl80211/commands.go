package nl80211

import "fmt"

// nl80211_commands.
const (
	CmdUnspec = iota

	CmdGetWiphy
	CmdSetWiphy
	CmdNewWiphy
	CmdDelWiphy

	CmdGetInterface
	CmdSetInterface
	CmdNewInterface
	CmdDelInterface

	CmdGetKey
	CmdSetKey
	CmdNewKey
	CmdDelKey

	CmdGetBeacon
	CmdSetBeacon
	CmdStartAp
	CmdStopAp

	CmdGetStation
	CmdSetStation
	CmdNewStation
	CmdDelStation

	CmdGetMpath
	CmdSetMpath
	CmdNewMpath
	CmdDelMpath

	CmdSetBss

	CmdSetReg
	CmdReqSetReg

	CmdGetMeshConfig
	CmdSetMeshConfig

	CmdSetMgmtExtraIe

	CmdGetReg

	CmdGetScan
	CmdTriggerScan
	CmdNewScanResults
	CmdScanAborted

	CmdRegChange

	CmdAuthenticate
	CmdAssociate
	CmdDeauthenticate
	CmdDisassociate

	CmdMichaelMicFailure

	CmdRegBeaconHint

	CmdJoinIbss
	CmdLeaveIbss

	CmdTestmode

	CmdConnect
	CmdRoam
	CmdDisconnect

	CmdSetWiphyNetns

	CmdGetSurvey
	CmdNewSurveyResults

	CmdSetPmksa
	CmdDelPmksa
	CmdFlushPmksa

	CmdRemainOnChannel
	CmdCancelRemainOnChannel

	CmdSetTxBitrateMask

	CmdRegisterFrame
	CmdFrame
	CmdFrameTxStatus

	CmdSetPowerSave
	CmdGetPowerSave

	CmdSetCqm
	CmdNotifyCqm

	CmdSetChannel
	CmdSetWdsPeer

	CmdFrameWaitCancel

	CmdJoinMesh
	CmdLeaveMesh

	CmdUnprotDeauthenticate
	CmdUnprotDisassociate

	CmdNewPeerCandidate

	CmdGetWowlan
	CmdSetWowlan

	CmdStartSchedScan
	CmdStopSchedScan
	CmdSchedScanResults
	CmdSchedScanStopped

	CmdSetRekeyOffload

	CmdPmksaCandidate

	CmdTdlsOper
	CmdTdlsMgmt

	CmdUnexpectedFrame

	CmdProbeClient

	CmdRegisterBeacons

	CmdUnexpected4addrFrame

	CmdSetNoackMap

	CmdChSwitchNotify

	CmdStartP2pDevice
	CmdStopP2pDevice

	CmdConnFailed

	CmdSetMcastRate

	CmdSetMacAcl

	CmdRadarDetect

	CmdGetProtocolFeatures

	CmdUpdateFtIes
	CmdFtEvent

	CmdCritProtocolStart
	CmdCritProtocolStop

	CmdGetCoalesce
	CmdSetCoalesce

	CmdChannelSwitch

	CmdVendor

	CmdSetQosMap

	CmdAddTxTs
	CmdDelTxTs

	CmdGetMpp

	CmdJoinOcb
	CmdLeaveOcb

	CmdChSwitchStartedNotify

	CmdTdlsChannelSwitch
	CmdTdlsCancelChannelSwitch

	CmdWiphyRegChange

	// add new commands above here

	cmdAfterLast
	CmdMax = cmdAfterLast - 1
)

// Source-level compatibility names.
const (
	CmdSetMgmtExtraIE = CmdSetMgmtExtraIe
	CmdNewBeacon      = CmdStartAp
	CmdDelBeacon      = CmdStopAp
	CmdRegisterAction = CmdRegisterFrame
	CmdAction         = CmdFrame
	CmdActionTxStatus = CmdFrameTxStatus
)

var commandNames = [...]string{
	CmdUnspec:                  "unspec",
	CmdGetWiphy:                "get_wiphy",
	CmdSetWiphy:                "set_wiphy",
	CmdNewWiphy:                "new_wiphy",
	CmdDelWiphy:                "del_wiphy",
	CmdGetInterface:            "get_interface",
	CmdSetInterface:            "set_interface",
	CmdNewInterface:            "new_interface",
	CmdDelInterface:            "del_interface",
	CmdGetKey:                  "get_key",
	CmdSetKey:                  "set_key",
	CmdNewKey:                  "new_key",
	CmdDelKey:                  "del_key",
	CmdGetBeacon:               "get_beacon",
	CmdSetBeacon:               "set_beacon",
	CmdStartAp:                 "start_ap",
	CmdStopAp:                  "stop_ap",
	CmdGetStation:              "get_station",
	CmdSetStation:              "set_station",
	CmdNewStation:              "new_station",
	CmdDelStation:              "del_station",
	CmdGetMpath:                "get_mpath",
	CmdSetMpath:                "set_mpath",
	CmdNewMpath:                "new_mpath",
	CmdDelMpath:                "del_mpath",
	CmdSetBss:                  "set_bss",
	CmdSetReg:                  "set_reg",
	CmdReqSetReg:               "req_set_reg",
	CmdGetMeshConfig:           "get_mesh_config",
	CmdSetMeshConfig:           "set_mesh_config",
	CmdSetMgmtExtraIe:          "set_mgmt_extra_ie",
	CmdGetReg:                  "get_reg",
	CmdGetScan:                 "get_scan",
	CmdTriggerScan:             "trigger_scan",
	CmdNewScanResults:          "new_scan_results",
	CmdScanAborted:             "scan_aborted",
	CmdRegChange:               "reg_change",
	CmdAuthenticate:            "authenticate",
	CmdAssociate:               "associate",
	CmdDeauthenticate:          "deauthenticate",
	CmdDisassociate:            "disassociate",
	CmdMichaelMicFailure:       "michael_mic_failure",
	CmdRegBeaconHint:           "reg_beacon_hint",
	CmdJoinIbss:                "join_ibss",
	CmdLeaveIbss:               "leave_ibss",
	CmdTestmode:                "testmode",
	CmdConnect:                 "connect",
	CmdRoam:                    "roam",
	CmdDisconnect:              "disconnect",
	CmdSetWiphyNetns:           "set_wiphy_netns",
	CmdGetSurvey:               "get_survey",
	CmdNewSurveyResults:        "new_survey_results",
	CmdSetPmksa:                "set_pmksa",
	CmdDelPmksa:                "del_pmksa",
	CmdFlushPmksa:              "flush_pmksa",
	CmdRemainOnChannel:         "remain_on_channel",
	CmdCancelRemainOnChannel:   "cancel_remain_on_channel",
	CmdSetTxBitrateMask:        "set_tx_bitrate_mask",
	CmdRegisterFrame:           "register_frame",
	CmdFrame:                   "frame",
	CmdFrameTxStatus:           "frame_tx_status",
	CmdSetPowerSave:            "set_power_save",
	CmdGetPowerSave:            "get_power_save",
	CmdSetCqm:                  "set_cqm",
	CmdNotifyCqm:               "notify_cqm",
	CmdSetChannel:              "set_channel",
	CmdSetWdsPeer:              "set_wds_peer",
	CmdFrameWaitCancel:         "frame_wait_cancel",
	CmdJoinMesh:                "join_mesh",
	CmdLeaveMesh:               "leave_mesh",
	CmdUnprotDeauthenticate:    "unprot_deauthenticate",
	CmdUnprotDisassociate:      "unprot_disassociate",
	CmdNewPeerCandidate:        "new_peer_candidate",
	CmdGetWowlan:               "get_wowlan",
	CmdSetWowlan:               "set_wowlan",
	CmdStartSchedScan:          "start_sched_scan",
	CmdStopSchedScan:           "stop_sched_scan",
	CmdSchedScanResults:        "sched_scan_results",
	CmdSchedScanStopped:        "sched_scan_stopped",
	CmdSetRekeyOffload:         "set_rekey_offload",
	CmdPmksaCandidate:          "pmksa_candidate",
	CmdTdlsOper:                "tdls_oper",
	CmdTdlsMgmt:                "tdls_mgmt",
	CmdUnexpectedFrame:         "unexpected_frame",
	CmdProbeClient:             "probe_client",
	CmdRegisterBeacons:         "register_beacons",
	CmdUnexpected4addrFrame:    "unexpected_4addr_frame",
	CmdSetNoackMap:             "set_noack_map",
	CmdChSwitchNotify:          "ch_switch_notify",
	CmdStartP2pDevice:          "start_p2p_device",
	CmdStopP2pDevice:           "stop_p2p_device",
	CmdConnFailed:              "conn_failed",
	CmdSetMcastRate:            "set_mcast_rate",
	CmdSetMacAcl:               "set_mac_acl",
	CmdRadarDetect:             "radar_detect",
	CmdGetProtocolFeatures:     "get_protocol_features",
	CmdUpdateFtIes:             "update_ft_ies",
	CmdFtEvent:                 "ft_event",
	CmdCritProtocolStart:       "crit_protocol_start",
	CmdCritProtocolStop:        "crit_protocol_stop",
	CmdGetCoalesce:             "get_coalesce",
	CmdSetCoalesce:             "set_coalesce",
	CmdChannelSwitch:           "channel_switch",
	CmdVendor:                  "vendor",
	CmdSetQosMap:               "set_qos_map",
	CmdAddTxTs:                 "add_tx_ts",
	CmdDelTxTs:                 "del_tx_ts",
	CmdGetMpp:                  "get_mpp",
	CmdJoinOcb:                 "join_ocb",
	CmdLeaveOcb:                "leave_ocb",
	CmdChSwitchStartedNotify:   "ch_switch_started_notify",
	CmdTdlsChannelSwitch:       "tdls_channel_switch",
	CmdTdlsCancelChannelSwitch: "tdls_cancel_channel_switch",
	CmdWiphyRegChange:          "wiphy_reg_change",
}

// CommandString returns the lower-case name of an nl80211 command, or
// "unknown(N)" for values this package does not know about.
func CommandString(cmd uint8) string {
	if int(cmd) < len(commandNames) && commandNames[cmd] != "" {
		return commandNames[cmd]
	}

	return fmt.Sprintf("unknown(%d)", cmd)
}
