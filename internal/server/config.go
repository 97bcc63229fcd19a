package server

import (
	"fmt"
	"net"
	"strconv"
)

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// Address returns the host:port the server listens on.
func (c HttpConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c HttpConfig) String() string {
	return fmt.Sprintf("http://%s", c.Address())
}
