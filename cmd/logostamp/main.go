package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/logostamp/internal/cliconfig"
	"github.com/bft-labs/logostamp/pkg/log"
	"github.com/bft-labs/logostamp/pkg/logostamp"
)

const helpDescription = `
Stamp a logo onto every photo in a folder.

Highlights:
  - Scales the logo to 30% of the image width (50% for rotated photos).
  - Places it bottom-right with a margin proportional to the width.
  - Keeps file names, formats and EXIF; writes results to a subfolder.
  - Logos are picked by short name from watermarks.json next to the binary.
`

var exampleUsage = strings.TrimSpace(`
  logostamp --path ~/Pictures/event --watermark nsh
  logostamp -p . -w eco -q 90 -d 300 --report stamp-report.json
`)

// errFailures marks a finished batch where some files failed.
var errFailures = errors.New("some files failed")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// newRootCommand builds the command that fills cfg from the config file,
// env and flags, then stamps one folder. Logs go to stderr.
func newRootCommand(cfg *cliconfig.Config, stderr io.Writer) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "logostamp",
		Short:         "Stamp a logo onto every photo in a folder",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file first (default $HOME/.logostamp/config.toml), then env, then flags
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
				return fmt.Errorf("env config: %w", err)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			table, err := cliconfig.LoadWatermarkTable(cfg.WatermarksFile)
			if err != nil {
				return err
			}
			wmPath, err := table.Resolve(cfg.Watermark)
			if err != nil {
				return err
			}

			logger, closer, err := cliconfig.NewLogger(*cfg, stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			logger.Info("configuration",
				log.Any("config", *cfg),
				log.String("watermarks", table.Path()),
				log.String("watermark_path", wmPath),
			)

			s, err := logostamp.New(logostamp.Config{
				Dir:           cfg.Path,
				WatermarkName: cfg.Watermark,
				WatermarkPath: wmPath,
				OutputDirName: cfg.OutputDir,
				Quality:       cfg.Quality,
				DPI:           cfg.DPI,
				Margin:        cfg.Margin,
				RotatedTags:   cfg.RotatedTags,
				FailFast:      cfg.FailFast,
				ReportPath:    cfg.Report,
			}, logostamp.WithLogger(logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := s.Run(ctx)
			if err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%w: %d of %d", errFailures, report.Failed, report.Total)
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.logostamp/config.toml)")
	root.Flags().StringVarP(&cfg.Path, "path", "p", "", "folder with photos (default: current directory)")
	root.Flags().StringVarP(&cfg.Watermark, "watermark", "w", cfg.Watermark, "watermark name from the lookup table")
	root.Flags().StringVar(&cfg.WatermarksFile, "watermarks", "", "watermark lookup table (default: watermarks.json next to the binary)")

	root.Flags().IntVarP(&cfg.Quality, "quality", "q", cfg.Quality, "JPEG quality, 1-100")
	root.Flags().IntVarP(&cfg.DPI, "dpi", "d", cfg.DPI, "DPI written into output files")
	root.Flags().Float64Var(&cfg.Margin, "margin", cfg.Margin, "gap to the bottom-right corner as a fraction of image width")
	root.Flags().IntSliceVar(&cfg.RotatedTags, "rotated-tags", cfg.RotatedTags, "EXIF orientation values treated as rotated")
	root.Flags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "name of the output subfolder")

	root.Flags().BoolVar(&cfg.FailFast, "fail-fast", cfg.FailFast, "stop at the first file that fails")
	root.Flags().StringVar(&cfg.Report, "report", "", "write a JSON run report to this path")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	root.Flags().StringVar(&cfg.LogFile, "log-file", "", "also write JSON logs to this rotating file")
	root.Flags().BoolVar(&cfg.Pause, "pause", cfg.Pause, "wait for Enter before exiting")

	return root
}

func main() {
	cfg := cliconfig.DefaultConfig()
	bootLog := cliconfig.Logger()

	err := newRootCommand(&cfg, os.Stderr).Execute()
	if err != nil && !errors.Is(err, errFailures) {
		bootLog.Error().Err(err).Msg("logostamp")
	}
	if cfg.Pause {
		fmt.Fprint(os.Stderr, "Press Enter to exit")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	if err != nil {
		os.Exit(1)
	}
}
