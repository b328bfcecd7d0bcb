package voronoi

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/skeletron-go/centerline/geom"
)

// minSites is the minimum site count needed for a meaningful 2D Voronoi
// diagram.
const minSites = 5

// SubprocessDriver implements Driver by invoking an external Voronoi tool
// and speaking the "qvoronoi o" wire format over its stdin/stdout. The
// subprocess's lifetime is scoped to a single Compute call:
// stdin and stdout are fully buffered, no streaming occurs, and the
// process's exit status is checked before any output is trusted.
type SubprocessDriver struct {
	Command string
	Args    []string
}

// NewSubprocessDriver returns a driver that invokes command with args on
// every Compute call.
func NewSubprocessDriver(command string, args ...string) SubprocessDriver {
	return SubprocessDriver{Command: command, Args: args}
}

// Compute writes sites to the driver's stdin and parses its stdout.
func (d SubprocessDriver) Compute(ctx context.Context, sites []geom.Point) (Diagram, error) {
	if len(sites) < minSites {
		return Diagram{}, ErrTooFewSites
	}

	cmd := exec.CommandContext(ctx, d.Command, d.Args...)
	cmd.Stdin = strings.NewReader(encodeSites(sites))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return Diagram{}, ctx.Err()
		}
		return Diagram{}, fmt.Errorf("voronoi: %s: %w: %s", d.Command, ErrDriverFailed, strings.TrimSpace(stderr.String()))
	}

	diagram, err := parseDiagram(stdout.Bytes())
	if err != nil {
		return Diagram{}, fmt.Errorf("voronoi: parsing output of %s: %w", d.Command, err)
	}
	return diagram, nil
}

func encodeSites(sites []geom.Point) string {
	var b strings.Builder
	b.WriteString("2\n")
	fmt.Fprintf(&b, "%d\n", len(sites))
	for _, p := range sites {
		fmt.Fprintf(&b, "%.6f %.6f\n", p.X, p.Y)
	}
	return b.String()
}

func parseDiagram(out []byte) (Diagram, error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return Diagram{}, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}
	if !scanner.Scan() {
		return Diagram{}, fmt.Errorf("%w: missing header line", ErrMalformedOutput)
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 2 {
		return Diagram{}, fmt.Errorf("%w: header has fewer than 2 fields", ErrMalformedOutput)
	}
	numVertices, err := strconv.Atoi(header[0])
	if err != nil {
		return Diagram{}, fmt.Errorf("%w: vertex count: %v", ErrMalformedOutput, err)
	}
	numRegions, err := strconv.Atoi(header[1])
	if err != nil {
		return Diagram{}, fmt.Errorf("%w: region count: %v", ErrMalformedOutput, err)
	}

	vertices := make([]geom.Point, 0, numVertices)
	for i := 0; i < numVertices; i++ {
		if !scanner.Scan() {
			return Diagram{}, fmt.Errorf("%w: expected %d vertex lines, got %d", ErrMalformedOutput, numVertices, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return Diagram{}, fmt.Errorf("%w: vertex line %d has fewer than 2 fields", ErrMalformedOutput, i)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Diagram{}, fmt.Errorf("%w: vertex %d x: %v", ErrMalformedOutput, i, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Diagram{}, fmt.Errorf("%w: vertex %d y: %v", ErrMalformedOutput, i, err)
		}
		vertices = append(vertices, geom.Point{X: x, Y: y})
	}

	regions := make([]Region, 0, numRegions)
	for i := 0; i < numRegions; i++ {
		if !scanner.Scan() {
			return Diagram{}, fmt.Errorf("%w: expected %d region lines, got %d", ErrMalformedOutput, numRegions, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 1 {
			return Diagram{}, fmt.Errorf("%w: region line %d is empty", ErrMalformedOutput, i)
		}
		k, err := strconv.Atoi(fields[0])
		if err != nil {
			return Diagram{}, fmt.Errorf("%w: region %d count: %v", ErrMalformedOutput, i, err)
		}
		if len(fields) < 1+k {
			return Diagram{}, fmt.Errorf("%w: region %d declares %d indices but has fewer fields", ErrMalformedOutput, i, k)
		}
		region := make(Region, k)
		for j := 0; j < k; j++ {
			idx, err := strconv.Atoi(fields[1+j])
			if err != nil {
				return Diagram{}, fmt.Errorf("%w: region %d index %d: %v", ErrMalformedOutput, i, j, err)
			}
			region[j] = idx
		}
		regions = append(regions, region)
	}

	return Diagram{Vertices: vertices, Regions: regions}, nil
}
