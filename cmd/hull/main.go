package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/hull/advanced"
	"github.com/osuushi/hull/task"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/xfmoulet/qoi"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Computes the convex hull of a point set. Input on stdin should be newline
// separated points in the form "x y"; blank lines and lines starting with "#"
// are skipped. With --svg, points are read from circles, polygons, and
// polylines in an SVG file instead.
//
// The hull is printed one vertex per line, counterclockwise, starting at the
// pivot.

// Largest side of a rendering, in pixels, before padding.
const renderSize = 800

var (
	app = kingpin.New("hull", "Compute the convex hull of a set of integer points.")

	configFile = app.Flag("config", "YAML file with algorithm, mode, and workers.").Short('c').ExistingFile()
	algorithm  = app.Flag("algorithm", "Hull algorithm, overriding the config file.").Short('a').Enum("sweep", "wrap")
	mode       = app.Flag("mode", "Concurrency mode, overriding the config file.").Short('m').Enum("sequential", "decomposition", "reduction")
	workers    = app.Flag("workers", "Worker count, overriding the config file. 0 uses every CPU.").Short('w').Default("-1").Int()
	svgFile    = app.Flag("svg", "Read points from an SVG file instead of stdin.").ExistingFile()
	imageFile  = app.Flag("image", "Render the points and hull to a .png or .qoi file.").String()
	show       = app.Flag("show", "Print the rendering to the terminal (iTerm only).").Bool()
	profileDir = app.Flag("profile", "Write a CPU profile to this directory.").String()
	verbose    = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(); err != nil {
		app.Errorf("%v", err)
		os.Exit(1)
	}
}

// run does all of the work so that its deferred cleanup, in particular
// stopping the profiler, happens before main exits.
func run() error {
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	if *verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	config, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "config")
	}

	points, err := loadPoints()
	if err != nil {
		return errors.Wrap(err, "input")
	}

	hull, err := computeHull(points, config)
	if err != nil {
		return errors.Wrap(err, "hull")
	}

	printHull(os.Stdout, hull)
	fmt.Fprintln(os.Stderr, aurora.Cyan(fmt.Sprintf("%d of %d points on the hull (%s, %s)",
		len(hull), len(points), config.Algorithm, config.Mode)))

	if *imageFile != "" || *show {
		return errors.Wrap(render(points, hull), "render")
	}
	return nil
}

func loadConfig() (advanced.Config, error) {
	var config advanced.Config
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			return config, err
		}
		defer f.Close()
		if config, err = advanced.LoadConfig(f); err != nil {
			return config, errors.Wrap(err, *configFile)
		}
	}
	return applyFlags(config, *algorithm, *mode, *workers)
}

// Flags win over the config file. Empty names and negative worker counts mean
// the flag wasn't given.
func applyFlags(config advanced.Config, algorithm, mode string, workers int) (advanced.Config, error) {
	if algorithm != "" {
		a, err := advanced.ParseAlgorithm(algorithm)
		if err != nil {
			return config, err
		}
		config.Algorithm = a
	}
	if mode != "" {
		m, err := advanced.ParseMode(mode)
		if err != nil {
			return config, err
		}
		config.Mode = m
	}
	if workers >= 0 {
		config.Workers = workers
	}
	return config, nil
}

func loadPoints() ([]advanced.Point, error) {
	if *svgFile == "" {
		return readPoints(os.Stdin)
	}
	f, err := os.Open(*svgFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return advanced.LoadSVGPoints(f)
}

func readPoints(in io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Run the points through the task lifecycle, the same way every other caller
// of the engine does.
func computeHull(points []advanced.Point, config advanced.Config) ([]advanced.Point, error) {
	in, err := task.EncodePoints(points)
	if err != nil {
		return nil, err
	}
	data := &task.Data{
		Inputs:       [][]byte{in},
		InputsCount:  []int{len(points)},
		Outputs:      [][]byte{make([]byte, len(points)*task.PointSize)},
		OutputsCount: []int{len(points)},
	}
	if err := task.Execute(task.New(data, config)); err != nil {
		return nil, err
	}
	return task.UnmarshalPoints(data.Outputs[0], data.HullSize)
}

func printHull(w io.Writer, hull []advanced.Point) {
	for i, p := range hull {
		line := fmt.Sprintf("%d %d", p.X, p.Y)
		if i == 0 {
			fmt.Fprintln(w, aurora.Green(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
}

func render(points, hull []advanced.Point) error {
	c := advanced.DrawHull(points, hull, renderScale(points))
	if *imageFile != "" {
		if err := saveImage(c, *imageFile); err != nil {
			return err
		}
	}
	if *show {
		// imgcat needs a format the terminal understands.
		path := *imageFile
		if filepath.Ext(path) != ".png" {
			path = filepath.Join(os.TempDir(), "hull.png")
			if err := saveImage(c, path); err != nil {
				return err
			}
		}
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

// saveImage picks the encoder from the file extension.
func saveImage(c *gg.Context, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := c.SavePNG(path); err != nil {
			return errors.Wrapf(err, "could not save %s", path)
		}
		return nil
	case ".qoi":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := qoi.Encode(f, c.Image()); err != nil {
			f.Close()
			return errors.Wrapf(err, "could not encode %s", path)
		}
		return f.Close()
	}
	return errors.Errorf("unsupported image format %q (want .png or .qoi)", filepath.Ext(path))
}

// Pick a scale so the larger side of the bounding box is renderSize pixels.
func renderScale(points []advanced.Point) float64 {
	if len(points) == 0 {
		return 1
	}
	minX, minY, maxX, maxY := points[0].X, points[0].Y, points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	extent := math.Max(float64(maxX-minX), float64(maxY-minY))
	if extent == 0 {
		return 1
	}
	return renderSize / extent
}
