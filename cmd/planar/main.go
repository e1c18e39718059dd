// Command planar runs the geometry primitives over shapes read from SVG, WKT
// or plain text files.
//
//	planar locate --at 3,4 shapes.svg
//	planar distance --at 3,4 < shapes.wkt
//	planar intersect shapes.txt
//	planar steps --from 0,0 --to 2,1 --step 0.5
//	planar draw shapes.svg --out shapes.png --at 3,4 --show
package main

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planar/advanced"
	"github.com/osuushi/planar/shapeio"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logrus.WithError(err).Fatal("planar failed")
	}
}

// env is what every command gets to work with once flags and configuration
// are resolved.
type env struct {
	cfg    Config
	tol    advanced.Tolerance
	au     aurora.Aurora
	logger *logrus.Logger
	stdin  io.Reader
	stdout io.Writer
}

func (e *env) loadScene(path string) (*shapeio.Scene, error) {
	var (
		scene *shapeio.Scene
		err   error
	)
	if path == "" || path == "-" {
		scene, err = shapeio.ReadAll(e.stdin)
	} else {
		scene, err = shapeio.Load(path)
	}
	if err != nil {
		return nil, err
	}
	e.logger.WithField("shapes", scene.Len()).Debugf("scene loaded: %# v", pretty.Formatter(scene))
	return scene, nil
}

// run builds a fresh application per call so tests can drive it with their
// own arguments and writers.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := kingpin.New("planar", "Planar geometry queries over shape files.")
	app.UsageWriter(stdout).ErrorWriter(stderr)
	app.Terminate(nil)
	app.HelpFlag.Short('h')

	configPath := app.Flag("config", "TOML configuration file.").Envar("PLANAR_CONFIG").String()
	epsilon := app.Flag("epsilon", "Comparison tolerance, overriding the configuration.").Envar("PLANAR_EPSILON").String()
	noColor := app.Flag("no-color", "Disable colored output.").Envar("PLANAR_NO_COLOR").Bool()
	debug := app.Flag("debug", "Log the decisions behind each classification to stderr.").Envar("PLANAR_DEBUG").Bool()

	commands := map[string]func(*env) error{}
	registerLocate(app, commands)
	registerDistance(app, commands)
	registerIntersect(app, commands)
	registerSteps(app, commands)
	registerDraw(app, commands)

	selected, err := app.Parse(args)
	if err != nil {
		return err
	}
	command, ok := commands[selected]
	if !ok {
		// --help with no command
		return nil
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *epsilon != "" {
		cfg.Epsilon, err = strconv.ParseFloat(*epsilon, 64)
		if err != nil {
			return errors.Wrapf(advanced.ErrInvalidArgument, "invalid epsilon %q", *epsilon)
		}
	}
	if *noColor {
		cfg.Color = false
	}
	tol, err := cfg.Tolerance()
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.Formatter = &logrus.TextFormatter{
		DisableColors:   !cfg.Color,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	}
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
		advanced.SetLogger(logger)
		defer advanced.SetLogger(nil)
	}

	return command(&env{
		cfg:    cfg,
		tol:    tol,
		au:     aurora.NewAurora(cfg.Color),
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	})
}

// pointValue is a kingpin flag holding one "X,Y" point.
type pointValue advanced.Point

func (v *pointValue) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	*v = pointValue(p)
	return nil
}

func (v *pointValue) String() string {
	return advanced.Point(*v).String()
}

// pointsValue collects a repeatable "X,Y" flag.
type pointsValue []advanced.Point

func (v *pointsValue) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	*v = append(*v, p)
	return nil
}

func (v *pointsValue) String() string {
	parts := make([]string, len(*v))
	for i, p := range *v {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (v *pointsValue) IsCumulative() bool {
	return true
}

func parsePoint(s string) (advanced.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return advanced.Point{}, errors.Wrapf(advanced.ErrInvalidArgument, "expected X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(advanced.ErrInvalidArgument, "invalid x in %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(advanced.ErrInvalidArgument, "invalid y in %q", s)
	}
	return advanced.Pt(x, y), nil
}

func formatFloat(v float64) string {
	if v == 0 {
		// no "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
