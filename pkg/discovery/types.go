package discovery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// ServiceType is the DNS-SD service type for rig control daemons.
	ServiceType = "_rigctld._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// MaxInstanceNameLen bounds the DNS-SD instance name.
	MaxInstanceNameLen = 63
)

// ErrNotFound means no matching service was seen before the deadline.
var ErrNotFound = errors.New("discovery: service not found")

// Service describes one advertised rig control daemon.
type Service struct {
	// InstanceName is the DNS-SD instance name.
	InstanceName string

	// Host is the advertised hostname.
	Host string

	// Port is the daemon's TCP port.
	Port uint16

	// Addresses are the resolved IP addresses, IPv4 before IPv6.
	Addresses []string

	// Model is the rig model number the daemon fronts.
	Model int

	// ModelName is the rig display name.
	ModelName string
}

// Address returns a dialable host:port for the service, preferring the
// first resolved address over the hostname.
func (s *Service) Address() string {
	host := s.Host
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return fmt.Sprintf("%s:%d", strings.TrimSuffix(host, "."), s.Port)
}

// encodeTXT renders the service metadata as TXT record strings.
func encodeTXT(model int, modelName string) []string {
	txt := []string{fmt.Sprintf("model=%d", model)}
	if modelName != "" {
		txt = append(txt, "modelname="+modelName)
	}
	return txt
}

// decodeTXT extracts service metadata from TXT record strings. A missing
// model record is not an error; the model stays zero.
func decodeTXT(txt []string) (model int, modelName string) {
	for _, record := range txt {
		key, value, ok := strings.Cut(record, "=")
		if !ok {
			continue
		}
		switch key {
		case "model":
			if n, err := strconv.Atoi(value); err == nil {
				model = n
			}
		case "modelname":
			modelName = value
		}
	}
	return model, modelName
}
