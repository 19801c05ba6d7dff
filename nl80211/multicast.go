package nl80211

// Multicast group names, as registered by the kernel for the nl80211 family.
const (
	MulticastGroupConfig   = "config"
	MulticastGroupScan     = "scan"
	MulticastGroupReg      = "regulatory"
	MulticastGroupMlme     = "mlme"
	MulticastGroupVendor   = "vendor"
	MulticastGroupTestmode = "testmode"
)

// nl80211_multicast_group enumeration from net/wireless/nl80211.c.
//
// The kernel defines this in a .c file, so it is not part of the uapi header.
// Group IDs on the wire are assigned dynamically by generic netlink; resolve
// them by name via the family's group list instead of using these indices.
const (
	McgrpConfig = iota
	McgrpScan
	McgrpRegulatory
	McgrpMlme
	McgrpVendor
	McgrpTestmode
)

// MulticastGroups lists the group names in McgrpConfig order.
var MulticastGroups = []string{
	McgrpConfig:     MulticastGroupConfig,
	McgrpScan:       MulticastGroupScan,
	McgrpRegulatory: MulticastGroupReg,
	McgrpMlme:       MulticastGroupMlme,
	McgrpVendor:     MulticastGroupVendor,
	McgrpTestmode:   MulticastGroupTestmode,
}
