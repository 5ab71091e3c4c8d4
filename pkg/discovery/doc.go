// ABOUTME: mDNS discovery package for time servers
// ABOUTME: Advertise and browse _servertime._tcp services on the local network
// Package discovery finds server-clock time servers on the local network.
//
// A reference server advertises itself as _servertime._tcp; clients browse
// for that service type and build the timestamp endpoint URL from the first
// server found.
package discovery
