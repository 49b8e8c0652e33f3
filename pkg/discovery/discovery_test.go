package discovery

import (
	"net"
	"testing"

	"github.com/enbility/zeroconf/v3"
)

func TestTXTRoundTrip(t *testing.T) {
	txt := encodeTXT(1, "Dummy")

	model, name := decodeTXT(txt)
	if model != 1 || name != "Dummy" {
		t.Errorf("decodeTXT = %d, %q, want 1, Dummy", model, name)
	}
}

func TestEncodeTXTWithoutName(t *testing.T) {
	txt := encodeTXT(2, "")
	if len(txt) != 1 || txt[0] != "model=2" {
		t.Errorf("encodeTXT = %v, want [model=2]", txt)
	}
}

func TestDecodeTXTTolerance(t *testing.T) {
	tests := []struct {
		name      string
		txt       []string
		wantModel int
		wantName  string
	}{
		{"empty", nil, 0, ""},
		{"no equals", []string{"garbage"}, 0, ""},
		{"bad model", []string{"model=abc"}, 0, ""},
		{"unknown keys ignored", []string{"foo=bar", "model=3"}, 3, ""},
		{"value with equals", []string{"modelname=NET=rigctl"}, 0, "NET=rigctl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, name := decodeTXT(tt.txt)
			if model != tt.wantModel || name != tt.wantName {
				t.Errorf("decodeTXT(%v) = %d, %q, want %d, %q",
					tt.txt, model, name, tt.wantModel, tt.wantName)
			}
		})
	}
}

func TestServiceAddress(t *testing.T) {
	tests := []struct {
		name string
		svc  Service
		want string
	}{
		{
			"prefers resolved address",
			Service{Host: "shack.local.", Port: 4532, Addresses: []string{"192.168.1.10"}},
			"192.168.1.10:4532",
		},
		{
			"falls back to hostname",
			Service{Host: "shack.local.", Port: 4532},
			"shack.local:4532",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.svc.Address(); got != tt.want {
				t.Errorf("Address() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryToService(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "rigsimd"},
		HostName:      "shack.local.",
		Port:          4532,
		Text:          []string{"model=1", "modelname=Dummy"},
		AddrIPv4:      []net.IP{net.ParseIP("192.168.1.10")},
		AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
	}

	svc := entryToService(entry)
	if svc.InstanceName != "rigsimd" || svc.Port != 4532 {
		t.Errorf("service = %+v", svc)
	}
	if svc.Model != 1 || svc.ModelName != "Dummy" {
		t.Errorf("model metadata = %d, %q", svc.Model, svc.ModelName)
	}
	// IPv4 sorts before IPv6 so Address() dials IPv4 first.
	if len(svc.Addresses) != 2 || svc.Addresses[0] != "192.168.1.10" {
		t.Errorf("addresses = %v", svc.Addresses)
	}
}

func TestMergeAddresses(t *testing.T) {
	got := mergeAddresses([]string{"10.0.0.1"}, []string{"10.0.0.1", "10.0.0.2"})
	if len(got) != 2 || got[0] != "10.0.0.1" || got[1] != "10.0.0.2" {
		t.Errorf("mergeAddresses = %v", got)
	}
}

func TestRemoveAddresses(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		AddrIPv4: []net.IP{net.ParseIP("10.0.0.1")},
	}
	got := removeAddresses([]string{"10.0.0.1", "10.0.0.2"}, entry)
	if len(got) != 1 || got[0] != "10.0.0.2" {
		t.Errorf("removeAddresses = %v", got)
	}
}
