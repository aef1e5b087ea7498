//go:build linux

package memorymap

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadProcessMaps reads and parses /proc/[pid]/maps.
func ReadProcessMaps(pid int) ([]Region, error) {
	file, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var regions []Region
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		// Address range, e.g. "00400000-0040b000"
		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}
		start, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil {
			continue
		}

		// Pathname is the sixth column and may contain spaces.
		path := ""
		if len(fields) >= 6 {
			path = strings.Join(fields[5:], " ")
		}

		regions = append(regions, Region{
			Start: start,
			Size:  uint(end - start),
			Perms: fields[1],
			Path:  path,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}
