package configuration

import (
	"fmt"
	"net"
)

func NewHostPort(address string) (*HostPort, error) {
	host, port, err := net.SplitHostPort(address)

	if err != nil {
		return nil, err
	}

	if port == "" {
		return nil, fmt.Errorf("address %s has no port", address)
	}

	return &HostPort{
		Host: host,
		Port: port,
	}, nil
}

func (hp *HostPort) String() string {
	return net.JoinHostPort(hp.Host, hp.Port)
}
