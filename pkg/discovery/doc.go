// Package discovery advertises and finds rig control daemons on the local
// network via mDNS/DNS-SD.
//
// Daemons register under the "_rigctld._tcp" service type with TXT records
// carrying the rig model number and display name. Clients browse for
// daemons and dial the advertised host:port with the network backend.
package discovery
