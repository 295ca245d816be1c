package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-drift/sidenav/pkg/log"
	"github.com/go-drift/sidenav/pkg/preview"
	"github.com/go-drift/sidenav/pkg/script"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a gesture script",
		Long: `Replay a YAML gesture script against a drawer on a fake clock.

Prints each event with the drawer offset and state, then the final state
and the listener callbacks that fired. With --png, also writes a filmstrip
of every event frame and every settle frame.

Flags:
  --config FILE   Configuration file (default: ./sidenav.yaml if present)
  --png FILE      Write a PNG filmstrip
  --thumb N       Filmstrip thumbnail width in pixels (default: 120)`,
		Usage: "sidenav replay <script.yaml> [--config FILE] [--png FILE] [--thumb N]",
		Run:   runReplay,
	})
}

type replayOptions struct {
	script     string
	configPath string
	pngPath    string
	thumbWidth int
}

func parseReplayArgs(args []string) (replayOptions, error) {
	opts := replayOptions{thumbWidth: 120}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--config", "--png", "--thumb":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			value := args[i+1]
			i++
			switch arg {
			case "--config":
				opts.configPath = value
			case "--png":
				opts.pngPath = value
			case "--thumb":
				n, err := strconv.Atoi(value)
				if err != nil || n <= 0 {
					return opts, fmt.Errorf("--thumb must be a positive integer, got %q", value)
				}
				opts.thumbWidth = n
			}
		default:
			if opts.script != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.script = arg
		}
	}
	if opts.script == "" {
		return opts, fmt.Errorf("script is required\n\nUsage: sidenav replay <script.yaml>")
	}
	return opts, nil
}

func runReplay(args []string) error {
	opts, err := parseReplayArgs(args)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}
	s, err := script.Load(opts.script)
	if err != nil {
		return errors.Wrap(err, "Failed to load script")
	}

	log.Debugf("replaying %s (%d steps)", opts.script, len(s.Steps))
	res, err := script.Run(s, cfg)
	if err != nil {
		return errors.Wrap(err, "Replay failed")
	}
	fmt.Fprint(stdout, res.Summary())

	if opts.pngPath != "" {
		if err := writeFilmstrip(opts.pngPath, res, opts.thumbWidth); err != nil {
			return err
		}
		log.Infof("wrote %d frames to %s", len(res.Frames), opts.pngPath)
	}
	return nil
}

func writeFilmstrip(path string, res *script.Result, thumbWidth int) error {
	snapshots := make([]preview.Snapshot, 0, len(res.Frames))
	for _, f := range res.Frames {
		label := f.Event
		if label == "" {
			label = f.Time.String()
		}
		snapshots = append(snapshots, preview.Snapshot{
			Bounds:          res.Bounds,
			NavigationWidth: res.NavigationWidth,
			Offset:          f.Offset,
			Label:           label,
		})
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "Failed to create filmstrip")
	}
	defer out.Close()

	if err := preview.EncodePNG(out, preview.Filmstrip(snapshots, thumbWidth)); err != nil {
		return errors.Wrap(err, "Failed to encode filmstrip")
	}
	return errors.Wrap(out.Close(), "Failed to write filmstrip")
}
