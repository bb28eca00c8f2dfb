// Package gtfs loads transit networks from GTFS-flavored CSV feeds.
//
// A feed is a directory containing stops.txt and links.txt. stops.txt
// follows the GTFS stop schema (stop_id, stop_name, stop_lat, stop_lon)
// extended with an optional space-separated routes column; links.txt is
// the edge list (from_stop_id, to_stop_id, link_type, weight). Columns
// are matched by header name, so ordering and extra columns are free.
//
// The loader produces a [network.Network]; it never builds graphs itself.
package gtfs

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/transitrank/pkg/errors"
	"github.com/matzehuels/transitrank/pkg/network"
)

// Feed file names looked up inside a feed directory.
const (
	StopsFile = "stops.txt"
	LinksFile = "links.txt"
)

// LoadDir reads a feed directory and assembles the network. Stops keep
// the order of stops.txt; link endpoints are resolved from stop IDs to
// positions in that order.
func LoadDir(dir string) (network.Network, error) {
	stops, err := loadStops(filepath.Join(dir, StopsFile))
	if err != nil {
		return network.Network{}, err
	}

	index := make(map[string]int, len(stops))
	for i, s := range stops {
		index[s.ID] = i
	}

	links, err := loadLinks(filepath.Join(dir, LinksFile), index)
	if err != nil {
		return network.Network{}, err
	}

	return network.Network{Stops: stops, Links: links}, nil
}

// loadStops parses stops.txt. stop_id is required per record; name,
// coordinates and routes are optional.
func loadStops(path string) ([]network.StopRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "feed is missing %s", filepath.Base(path))
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFeed, err, "read %s header", filepath.Base(path))
	}
	idx := headerIndex(header)
	if _, ok := idx["stop_id"]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidFeed, "%s has no stop_id column", filepath.Base(path))
	}

	var stops []network.StopRecord
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFeed, err, "%s line %d", filepath.Base(path), line)
		}

		id := field(record, idx, "stop_id")
		if id == "" {
			return nil, errors.New(errors.ErrCodeInvalidFeed, "%s line %d: empty stop_id", filepath.Base(path), line)
		}
		stops = append(stops, network.StopRecord{
			ID:     id,
			Name:   field(record, idx, "stop_name"),
			Lat:    floatField(record, idx, "stop_lat"),
			Lon:    floatField(record, idx, "stop_lon"),
			Routes: splitRoutes(field(record, idx, "routes")),
		})
	}
	return stops, nil
}

// loadLinks parses links.txt, resolving endpoint stop IDs against index.
func loadLinks(path string, index map[string]int) ([]network.LinkRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "feed is missing %s", filepath.Base(path))
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFeed, err, "read %s header", filepath.Base(path))
	}
	idx := headerIndex(header)
	for _, col := range []string{"from_stop_id", "to_stop_id"} {
		if _, ok := idx[col]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidFeed, "%s has no %s column", filepath.Base(path), col)
		}
	}

	var links []network.LinkRecord
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFeed, err, "%s line %d", filepath.Base(path), line)
		}

		from, ok := index[field(record, idx, "from_stop_id")]
		if !ok {
			return nil, errors.New(errors.ErrCodeStopNotFound, "%s line %d: unknown stop %q",
				filepath.Base(path), line, field(record, idx, "from_stop_id"))
		}
		to, ok := index[field(record, idx, "to_stop_id")]
		if !ok {
			return nil, errors.New(errors.ErrCodeStopNotFound, "%s line %d: unknown stop %q",
				filepath.Base(path), line, field(record, idx, "to_stop_id"))
		}

		typ := field(record, idx, "link_type")
		if typ == "" {
			typ = network.LinkRoute
		}
		if typ != network.LinkRoute && typ != network.LinkTransfer {
			return nil, errors.New(errors.ErrCodeInvalidFeed, "%s line %d: unknown link type %q",
				filepath.Base(path), line, typ)
		}

		links = append(links, network.LinkRecord{
			From:   from,
			To:     to,
			Type:   typ,
			Weight: floatField(record, idx, "weight"),
		})
	}
	return links, nil
}

// headerIndex maps lowercased column names to positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func floatField(record []string, idx map[string]int, name string) float64 {
	v, err := strconv.ParseFloat(field(record, idx, name), 64)
	if err != nil {
		return 0
	}
	return v
}

func splitRoutes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
