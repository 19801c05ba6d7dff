// Command iwinfo prints wireless interface, device and regulatory
// information gathered over nl80211.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/openwrt-go/iwinfo"
)

const usage = `usage: iwinfo [flags] [<dev> <info|scan|assoclist|survey|freqlist|phy|reg|events>]

With no arguments, all wireless interfaces are listed.

flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("iwinfo", flag.ContinueOnError)
	format := fs.String("format", "text", "output format: text or yaml")
	timeout := fs.Duration("timeout", 10*time.Second, "time limit for requests and scans")
	verbose := fs.Bool("v", false, "enable debug logging")
	noColor := fs.Bool("no-color", false, "disable colored text output")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *noColor {
		color.NoColor = true
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	w, err := newWriter(out, *format)
	if err != nil {
		return err
	}

	if fs.NArg() != 0 && fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected a device and a command, got %d arguments", fs.NArg())
	}

	c, err := iwinfo.New()
	if err != nil {
		return fmt.Errorf("failed to open nl80211: %w", err)
	}
	defer c.Close()

	if err := c.SetDeadline(time.Now().Add(*timeout)); err != nil {
		slog.Debug("Connection deadline not applied", "error", err)
	}

	ifis, err := c.Interfaces()
	if err != nil {
		return fmt.Errorf("failed to list interfaces: %w", err)
	}
	slog.Debug("Listed interfaces", "count", len(ifis))

	if fs.NArg() == 0 {
		return w.write(newInterfacesReport(ifis))
	}

	ifi, err := findInterface(ifis, fs.Arg(0))
	if err != nil {
		return err
	}

	cmd := fs.Arg(1)
	slog.Debug("Running command", "command", cmd, "interface", ifi.Name, "phy", ifi.PHY)

	switch cmd {
	case "info":
		return info(c, w, ifi)
	case "scan":
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		return scan(ctx, c, w, ifi)
	case "assoclist":
		stations, err := c.StationInfo(ifi)
		if err != nil {
			return fmt.Errorf("failed to list stations: %w", err)
		}
		return w.write(newStationsReport(stations))
	case "survey":
		surveys, err := c.SurveyInfo(ifi)
		if err != nil {
			return fmt.Errorf("failed to survey channels: %w", err)
		}
		return w.write(newSurveyReport(surveys))
	case "freqlist":
		phy, err := c.PHY(ifi.PHY)
		if err != nil {
			return fmt.Errorf("failed to query phy%d: %w", ifi.PHY, err)
		}
		return w.write(newFrequencyReport(phy, ifi.Frequency))
	case "phy":
		phy, err := c.PHY(ifi.PHY)
		if err != nil {
			return fmt.Errorf("failed to query phy%d: %w", ifi.PHY, err)
		}
		return w.write(newPHYReport(phy))
	case "reg":
		return reg(c, w, ifi)
	case "events":
		// Events run until interrupted, not until the timeout.
		_ = c.SetDeadline(time.Time{})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return events(ctx, c, w)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func findInterface(ifis []*iwinfo.Interface, name string) (*iwinfo.Interface, error) {
	for _, ifi := range ifis {
		if ifi.Name == name {
			return ifi, nil
		}
	}

	return nil, fmt.Errorf("no wireless interface named %q", name)
}

func info(c *iwinfo.Client, w *writer, ifi *iwinfo.Interface) error {
	bss, err := c.BSS(ifi)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("Interface is not associated", "interface", ifi.Name)
		bss = nil
	case err != nil:
		return fmt.Errorf("failed to query BSS: %w", err)
	}

	rd, err := c.Regulatory(ifi.PHY)
	if err != nil {
		slog.Debug("No regulatory domain for phy", "phy", ifi.PHY, "error", err)
		rd = nil
	}

	return w.write(newInfoReport(ifi, bss, rd))
}

func scan(ctx context.Context, c *iwinfo.Client, w *writer, ifi *iwinfo.Interface) error {
	start := time.Now()
	if err := c.Scan(ctx, ifi, nil); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	slog.Debug("Scan completed", "interface", ifi.Name, "duration", time.Since(start))

	bsss, err := c.AccessPoints(ifi)
	if err != nil {
		return fmt.Errorf("failed to list access points: %w", err)
	}

	return w.write(newScanReport(bsss))
}

func reg(c *iwinfo.Client, w *writer, ifi *iwinfo.Interface) error {
	global, err := c.Regulatory(-1)
	if err != nil {
		return fmt.Errorf("failed to query regulatory domain: %w", err)
	}

	rds := []*iwinfo.RegulatoryDomain{global}

	// Self-managed devices report their own domain.
	if rd, err := c.Regulatory(ifi.PHY); err == nil && rd.PHY >= 0 {
		rds = append(rds, rd)
	}

	return w.write(newRegulatoryReport(rds))
}

func events(ctx context.Context, c *iwinfo.Client, w *writer) error {
	slog.Info("Watching nl80211 events, interrupt to stop")

	err := c.Events(ctx, func(ev iwinfo.Event) error {
		slog.Debug("Received event", "command", ev.String())
		return w.write(newEventReport(ev))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
