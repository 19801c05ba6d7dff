//go:build linux
// +build linux

package iwinfo_test

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/openwrt-go/iwinfo"
)

func TestIntegrationLinuxConcurrent(t *testing.T) {
	const (
		workers    = 4
		iterations = 1000
	)

	c := testClient(t)
	ifis, err := c.Interfaces()
	if err != nil {
		t.Fatalf("failed to retrieve interfaces: %v", err)
	}
	if len(ifis) == 0 {
		t.Skip("skipping, found no WiFi interfaces")
	}

	var names []string
	for _, ifi := range ifis {
		if ifi.Name == "" || ifi.Type != iwinfo.InterfaceTypeStation {
			continue
		}

		names = append(names, ifi.Name)
	}

	t.Logf("workers: %d, iterations: %d, interfaces: %v",
		workers, iterations, names)

	var wg sync.WaitGroup
	wg.Add(workers)
	defer wg.Wait()

	for i := 0; i < workers; i++ {
		go func(differentI int) {
			defer wg.Done()
			execN(t, iterations, names, differentI)
		}(i)
	}
}

func TestIntegrationLinuxPHYs(t *testing.T) {
	c := testClient(t)

	phys, err := c.PHYs()
	if err != nil {
		t.Fatalf("failed to retrieve PHYs: %v", err)
	}
	if len(phys) == 0 {
		t.Skip("skipping, found no wireless devices")
	}

	for _, p := range phys {
		got, err := c.PHY(p.Index)
		if err != nil {
			t.Fatalf("failed to retrieve %s: %v", p.Name, err)
		}
		if got.Name != p.Name {
			t.Fatalf("unexpected name for phy %d: %q != %q", p.Index, got.Name, p.Name)
		}

		// Split dumps merge bands by number, so no band may repeat.
		seen := make(map[int]bool)
		for _, b := range p.BandAttributes {
			if seen[b.Band] {
				t.Fatalf("%s: band %d reported twice", p.Name, b.Band)
			}
			seen[b.Band] = true
		}
	}

	rd, err := c.Regulatory(-1)
	if err != nil {
		t.Fatalf("failed to retrieve global regulatory domain: %v", err)
	}
	if len(rd.Alpha2) != 2 {
		t.Fatalf("unexpected alpha2: %q", rd.Alpha2)
	}
}

func execN(t *testing.T, n int, expect []string, worker_id int) {
	c := testClient(t)

	names := make(map[string]int)
	for i := 0; i < n; i++ {
		ifis, err := c.Interfaces()
		if err != nil {
			panicf("[worker_id %d; iteration %d] failed to retrieve interfaces: %v", worker_id, i, err)
		}

		for _, ifi := range ifis {
			if ifi.Name == "" || ifi.Type != iwinfo.InterfaceTypeStation {
				continue
			}

			if _, err := c.StationInfo(ifi); err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					panicf("[worker_id %d; iteration %d] failed to retrieve station info for device %s: %v", worker_id, i, ifi.Name, err)
				}
			}

			if _, err := c.SurveyInfo(ifi); err != nil && !errors.Is(err, os.ErrNotExist) {
				panicf("[worker_id %d; iteration %d] failed to retrieve survey info for device %s: %v", worker_id, i, ifi.Name, err)
			}

			names[ifi.Name]++
		}
	}

	for _, e := range expect {
		nn, ok := names[e]
		if !ok {
			panicf("[worker_id %d] did not find interface %q during test", worker_id, e)
		}
		if nn != n {
			panicf("[worker_id %d] wanted to find %q %d times, found %d", worker_id, e, n, nn)
		}
	}
}

func testClient(t *testing.T) *iwinfo.Client {
	t.Helper()

	c, err := iwinfo.New()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			t.Skipf("skipping, nl80211 not found: %v", err)
		}

		t.Fatalf("failed to create client: %v", err)
	}

	t.Cleanup(func() { _ = c.Close() })
	return c
}

func panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
