// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"context"
	"math"
	"strconv"
	"time"
	"unsafe"

	"github.com/YindSoft/pal"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func (c *cli) osCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "os",
		Short: "Show the detected OS family and process identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printer(cmd).print(
				field{"os", pal.Current().String()},
				field{"library_ext", pal.LibraryExt},
				field{"heap", pal.HeapBackend()},
				field{"pid", pal.ProcessID()},
				field{"module", pal.ModuleHandle()},
			)
		},
	}
}

func (c *cli) memoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "memory",
		Short: "Show total and available physical memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms := pal.QueryMemoryStatus()
			return c.printer(cmd).print(
				field{"total_phys", ms.TotalPhys},
				field{"avail_phys", ms.AvailPhys},
				field{"summary", ms.String()},
			)
		},
	}
}

func (c *cli) prefPathCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "prefpath",
		Short: "Resolve and create the per-user preference directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			org, app := c.v.GetString("org"), c.v.GetString("app")
			dir := pal.PrefPath(org, app)
			if strict {
				var err error
				if dir, err = pal.ResolvePrefPath(org, app); err != nil {
					return err
				}
			}
			return c.printer(cmd).print(
				field{"org", org},
				field{"app", app},
				field{"path", dir},
			)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of falling back to the working directory")
	return cmd
}

// maxHeapProbe keeps the doubled size and the byte view within int.
const maxHeapProbe = math.MaxInt / 2

func (c *cli) heapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heap [size]",
		Short: "Allocate, grow and free a block on the process heap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := uint64(4096)
			if len(args) == 1 {
				n, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil || n == 0 || n > maxHeapProbe {
					return errors.Newf("invalid size %q: want 1 to %d", args[0], uint64(maxHeapProbe))
				}
				size = n
			}

			p := pal.Alloc(uintptr(size))
			if p == nil {
				return errors.Newf("allocation of %d bytes failed", size)
			}
			zeroed := true
			for _, b := range pal.Bytes(p, int(size)) {
				if b != 0 {
					zeroed = false
					break
				}
			}
			usable := pal.UsableSize(p)

			grown := pal.Realloc(p, uintptr(size*2))
			if grown == nil {
				pal.Free(p)
				return errors.Newf("reallocation to %d bytes failed", size*2)
			}
			grownUsable := pal.UsableSize(grown)
			valid := pal.ValidateHeap()
			pal.Free(grown)

			stats := pal.HeapStats()
			return c.printer(cmd).print(
				field{"backend", pal.HeapBackend()},
				field{"requested", size},
				field{"zeroed", zeroed},
				field{"usable", uint64(usable)},
				field{"grown_usable", uint64(grownUsable)},
				field{"grow_zeroes", pal.ReallocZeroFills()},
				field{"valid", valid},
				field{"allocations", stats.Allocations},
				field{"frees", stats.Frees},
				field{"failures", stats.Failures},
				field{"pointer_size", uint64(unsafe.Sizeof(uintptr(0)))},
			)
		},
	}
}

func (c *cli) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <library> [symbol...]",
		Short: "Load a shared library and resolve symbols from it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := pal.LoadLibrary(args[0])
			if err != nil {
				return err
			}
			defer lib.Close()

			fields := []field{{"library", lib.Path()}, {"handle", lib.Handle()}}
			for _, name := range args[1:] {
				sym, err := lib.Symbol(name)
				if err != nil {
					return err
				}
				fields = append(fields, field{name, sym})
			}
			return c.printer(cmd).print(fields...)
		},
	}
}

func (c *cli) netCmd() *cobra.Command {
	var (
		dial    string
		resolve string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "net",
		Short: "Bring the network subsystem up and down once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := pal.NetInit(); err != nil {
				return err
			}
			defer pal.NetCleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			fields := []field{{"ready", pal.NetReady()}}
			if resolve != "" {
				addrs, err := pal.ResolveHost(ctx, resolve)
				if err != nil {
					return err
				}
				fields = append(fields, field{"addresses", addrs})
			}
			if dial != "" {
				conn, err := pal.DialTCP(ctx, dial)
				if err != nil {
					return err
				}
				fields = append(fields, field{"remote", conn.RemoteAddr().String()})
				_ = conn.Close()
			}
			return c.printer(cmd).print(fields...)
		},
	}
	cmd.Flags().StringVar(&dial, "dial", "", "TCP address to connect to (host:port)")
	cmd.Flags().StringVar(&resolve, "resolve", "", "host name to resolve")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "timeout for dial and resolve")
	return cmd
}

func (c *cli) msgboxCmd() *cobra.Command {
	var (
		title   string
		isError bool
	)
	cmd := &cobra.Command{
		Use:   "msgbox <message>",
		Short: "Show a modal message box and wait until it is dismissed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pal.ShowMessageBox(title, args[0], isError)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "palinfo", "dialog title")
	cmd.Flags().BoolVar(&isError, "error", false, "use the error style instead of the warning style")
	return cmd
}
