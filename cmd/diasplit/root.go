// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/diasplit"
	"github.com/ik5/diasplit/audio"
	"github.com/ik5/diasplit/diarizer"
	"github.com/ik5/diasplit/segment"
	"github.com/ik5/diasplit/track"
)

// diarizer services generally expect mono 16kHz input
const diarizeUploadRate = 16000

type options struct {
	outputDir     string
	overlapPolicy string
	logLevel      string

	diarize     bool
	diarizerURL string
	numSpeakers int
	minSpeakers int
	maxSpeakers int
	language    string
	saveJSON    string
	timeout     time.Duration
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "diasplit <audio-file> [diarization.json]",
		Short: "Split a multi-speaker recording into one track per speaker",
		Long: `diasplit separates a recording into per-speaker WAV files using a
diarization transcript: each output reproduces the original audio during
that speaker's segments and holds silence everywhere else, so all
outputs stay in sync with the source.

The transcript comes either from a JSON file
({"segments": [{"speaker", "start", "end", "text"}]} with HH:MM:SS,mmm
timestamps) or, with --diarize, from a diarization HTTP service.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.outputDir, "output-dir", "o", ".", "Directory for the per-speaker WAV files")
	flags.StringVar(&opts.overlapPolicy, "overlap-policy", "duplicate", "Overlapping speech policy: duplicate|first-wins")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	flags.BoolVar(&opts.diarize, "diarize", false, "Obtain segments from the diarization service instead of a JSON file")
	flags.StringVar(&opts.diarizerURL, "diarizer-url", "", "Diarization service base URL (default http://localhost:8388)")
	flags.IntVar(&opts.numSpeakers, "num-speakers", 0, "Exact number of speakers (0 = auto-detect)")
	flags.IntVar(&opts.minSpeakers, "min-speakers", 0, "Minimum expected number of speakers")
	flags.IntVar(&opts.maxSpeakers, "max-speakers", 0, "Maximum expected number of speakers")
	flags.StringVar(&opts.language, "language", "", "Expected audio language hint (e.g. en)")
	flags.StringVar(&opts.saveJSON, "save-json", "", "Save the diarization result to this JSON file")
	flags.DurationVar(&opts.timeout, "timeout", 5*time.Minute, "Diarization request timeout")

	viper.SetEnvPrefix("DIASPLIT")
	viper.AutomaticEnv()
	for _, name := range []string{"diarizer-url", "log-level", "output-dir"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

func run(ctx context.Context, opts *options, args []string) error {
	log := newLogger(viper.GetString("log-level"))

	policy, err := track.ParsePolicy(opts.overlapPolicy)
	if err != nil {
		return err
	}

	audioPath := args[0]

	log.Info().Str("audio", audioPath).Msg("decoding source audio")
	src, err := diasplit.DecodeFile(audioPath)
	if err != nil {
		return err
	}
	log.Info().
		Int64("duration_ms", src.DurationMs()).
		Int("sample_rate", src.Format.SampleRate).
		Int("channels", src.Format.Channels).
		Msg("source audio ready")

	set, err := loadSegments(ctx, opts, args, src, log)
	if err != nil {
		return err
	}

	speakers := set.Speakers()
	if len(speakers) == 0 {
		log.Warn().Msg("no speaker segments found, nothing to write")
		return nil
	}
	log.Info().Int("speakers", len(speakers)).Strs("labels", speakers).Msg("speakers identified")

	outDir := viper.GetString("output-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	paths, err := diasplit.Split(src, set, audioPath, outDir,
		track.WithOverlapPolicy(policy),
		track.WithLogger(log),
	)
	for _, path := range paths {
		log.Info().Str("path", path).Msg("speaker track written")
	}
	if err != nil {
		return fmt.Errorf("some tracks failed: %w", err)
	}

	return nil
}

// loadSegments gets the transcript either from the JSON file argument
// or from the diarization service.
func loadSegments(ctx context.Context, opts *options, args []string, src *audio.Buffer, log zerolog.Logger) (segment.Set, error) {
	if !opts.diarize {
		if len(args) < 2 {
			return nil, fmt.Errorf("a diarization JSON file is required unless --diarize is set")
		}
		log.Info().Str("transcript", args[1]).Msg("loading diarization file")
		return segment.LoadFile(args[1])
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	url := viper.GetString("diarizer-url")
	provider := diarizer.NewHTTPProvider(diarizer.Config{BaseURL: url, Timeout: opts.timeout}, log)

	uploadPath, cleanup, err := prepareUpload(src, args[0], log)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	log.Info().Str("provider", provider.Name()).Msg("requesting diarization")
	set, err := provider.Diarize(ctx, diarizer.Request{
		AudioPath:   uploadPath,
		NumSpeakers: opts.numSpeakers,
		MinSpeakers: opts.minSpeakers,
		MaxSpeakers: opts.maxSpeakers,
		Language:    opts.language,
	})
	if err != nil {
		return nil, err
	}

	if opts.saveJSON != "" {
		if err := segment.WriteFile(opts.saveJSON, set); err != nil {
			return nil, err
		}
		log.Info().Str("path", opts.saveJSON).Msg("diarization result saved")
	}

	return set, nil
}

// prepareUpload writes a mono 16kHz rendition of the source to a
// temporary WAV file for the diarization service.
func prepareUpload(src *audio.Buffer, sourcePath string, log zerolog.Logger) (string, func(), error) {
	mono := audio.DownmixMono(src)
	prepared, err := audio.Resample(mono, diarizeUploadRate)
	if err != nil {
		return "", nil, fmt.Errorf("prepare diarizer upload: %w", err)
	}

	dir, err := os.MkdirTemp("", "diasplit-upload-")
	if err != nil {
		return "", nil, fmt.Errorf("create upload directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	path := diasplit.TrackPath(dir, sourcePath, "upload")
	if err := diasplit.WriteTrackFile(prepared, path); err != nil {
		cleanup()
		return "", nil, err
	}

	log.Debug().
		Str("path", path).
		Int("sample_rate", prepared.Format.SampleRate).
		Msg("diarizer upload prepared")

	return path, cleanup, nil
}
