package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/geo"
)

// ErrMalformed marks a line that cannot be parsed.
var ErrMalformed = errors.New("loader: malformed line")

// Load reads the coordinates file then the adjacency file and builds the graph.
func Load(coordPath, adjPath string) (*core.Graph, error) {
	b := core.NewBuilder()

	cities, err := readFile(coordPath, b, ReadCoordinates)
	if err != nil {
		return nil, err
	}
	edges, err := readFile(adjPath, b, ReadAdjacencies)
	if err != nil {
		return nil, err
	}

	g := b.Build()
	log.WithFields(log.Fields{
		"cities":      cities,
		"edges":       edges,
		"coordinates": coordPath,
		"adjacencies": adjPath,
	}).Info("graph loaded")

	return g, nil
}

func readFile(path string, b *core.Builder, read func(io.Reader, *core.Builder) (int, error)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "loader")
	}
	defer f.Close()

	n, err := read(f, b)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", path)
	}

	return n, nil
}

// ReadCoordinates adds one city per "name,lat,lon" line to b and returns how
// many lines were loaded. A repeated name overwrites the earlier coordinate.
func ReadCoordinates(r io.Reader, b *core.Builder) (int, error) {
	count := 0
	err := scanLines(r, func(no int, line string) error {
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			return errors.Wrapf(ErrMalformed, "line %d: want name,lat,lon, got %q", no, line)
		}
		name := strings.TrimSpace(parts[0])
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return errors.Wrapf(ErrMalformed, "line %d: latitude %q", no, parts[1])
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return errors.Wrapf(ErrMalformed, "line %d: longitude %q", no, parts[2])
		}
		if err = b.AddCity(name, geo.Coordinate{Lat: lat, Lon: lon}); err != nil {
			return errors.Wrapf(err, "line %d", no)
		}

		log.Debugf("loaded city %s at (%g, %g)", name, lat, lon)
		count++

		return nil
	})

	return count, err
}

// ReadAdjacencies adds one undirected edge per "cityA cityB" line to b and
// returns how many edges were added.
func ReadAdjacencies(r io.Reader, b *core.Builder) (int, error) {
	count := 0
	err := scanLines(r, func(no int, line string) error {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return errors.Wrapf(ErrMalformed, "line %d: want two cities, got %q", no, line)
		}
		if err := b.AddEdge(fields[0], fields[1]); err != nil {
			return errors.Wrapf(err, "line %d", no)
		}

		log.Debugf("added edge %s <-> %s", fields[0], fields[1])
		count++

		return nil
	})

	return count, err
}

// scanLines calls fn with the 1-based number and trimmed text of every non-blank line.
func scanLines(r io.Reader, fn func(no int, line string) error) error {
	sc := bufio.NewScanner(r)
	no := 0
	for sc.Scan() {
		no++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(no, line); err != nil {
			return err
		}
	}

	return errors.Wrap(sc.Err(), "loader: read")
}
