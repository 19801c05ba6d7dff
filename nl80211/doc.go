// Package nl80211 contains the numeric contract of the nl80211 generic
// netlink family: commands, attributes, nested attribute sets, flag words
// and limits, synchronised with the kernel's uapi nl80211.h.
//
// Every enumeration here is append-only. New values are added immediately
// before the unexported "after last" sentinel of their block so that existing
// values never move. Renamed symbols keep their old name as an alias of the
// new one.
//
// Constants are untyped so they can be passed directly to
// netlink.AttributeEncoder methods (uint16 attribute types) and to
// genetlink.Header.Command (uint8).
package nl80211

// GenlName is the generic netlink family name of nl80211.
const GenlName = "nl80211"
