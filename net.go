// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"context"
	"net"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// netHelper is the portable TCP/UDP helper brought up after the platform
// socket library.
type netHelper struct {
	dialer   net.Dialer
	listener net.ListenConfig
	resolver *net.Resolver
}

var (
	netMu    sync.Mutex
	netState *netHelper

	// Replaced in tests to exercise the failure paths.
	socketStartup = platformSocketStartup
	socketCleanup = platformSocketCleanup
	helperStartup = func() (*netHelper, error) {
		return &netHelper{resolver: net.DefaultResolver}, nil
	}
)

// NetInit brings up the process-wide network subsystem: the platform socket
// library where one must be started explicitly, then the helper used by
// DialTCP, ListenUDP and ResolveHost. If either step fails nothing stays
// initialized. Calling NetInit again before NetCleanup returns
// ErrNetInitialized.
func NetInit() error {
	netMu.Lock()
	defer netMu.Unlock()

	if netState != nil {
		return ErrNetInitialized
	}
	if err := socketStartup(); err != nil {
		Logger().Error("socket library startup failed", slog.Any("error", err))
		return errors.Wrap(err, "net init: socket library")
	}
	h, err := helperStartup()
	if err != nil {
		socketCleanup()
		Logger().Error("network helper startup failed", slog.Any("error", err))
		return errors.Wrap(err, "net init: helper")
	}
	netState = h
	return nil
}

// NetCleanup tears down the helper, then the platform socket library. It is a
// no-op when the subsystem is not initialized.
func NetCleanup() {
	netMu.Lock()
	defer netMu.Unlock()

	if netState == nil {
		return
	}
	netState = nil
	socketCleanup()
}

// NetReady reports whether NetInit has succeeded and NetCleanup not yet run.
func NetReady() bool {
	netMu.Lock()
	defer netMu.Unlock()
	return netState != nil
}

func readyHelper() (*netHelper, error) {
	netMu.Lock()
	defer netMu.Unlock()
	if netState == nil {
		return nil, ErrNetNotReady
	}
	return netState, nil
}

// DialTCP opens a TCP connection to address ("host:port").
func DialTCP(ctx context.Context, address string) (net.Conn, error) {
	h, err := readyHelper()
	if err != nil {
		return nil, err
	}
	conn, err := h.dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "dial tcp %s", address)
	}
	return conn, nil
}

// ListenUDP opens a UDP socket bound to address; ":0" picks a free port.
func ListenUDP(ctx context.Context, address string) (net.PacketConn, error) {
	h, err := readyHelper()
	if err != nil {
		return nil, err
	}
	pc, err := h.listener.ListenPacket(ctx, "udp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "listen udp %s", address)
	}
	return pc, nil
}

// ResolveHost looks up the addresses of host.
func ResolveHost(ctx context.Context, host string) ([]string, error) {
	h, err := readyHelper()
	if err != nil {
		return nil, err
	}
	addrs, err := h.resolver.LookupHost(ctx, host)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", host)
	}
	return addrs, nil
}
