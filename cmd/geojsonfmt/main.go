package main

import (
	"os"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/convert"
	"github.com/woozymasta/geojson/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/juju/errors"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file"`
	Document   string `short:"d" long:"document"  description:"Use the named document from the configuration file as input"`
	Input      string `short:"i" long:"in"        description:"Input file path. Reads from stdin if empty"`
	Output     string `short:"o" long:"out"       description:"Output file path. Writes to stdout if empty"`
	From       string `long:"from"                description:"Input format" choice:"json" choice:"yaml" default:"json"`
	Format     string `short:"f" long:"format"    description:"Output format (overrides config)" choice:"json" choice:"yaml"`
	Indent     *int   `long:"indent"              description:"JSON indentation, 0 for compact output (overrides config)"`
	MaxDepth   *int   `long:"max-depth"           description:"Maximum object nesting depth (overrides config)"`
	Strict     bool   `short:"s" long:"strict"    description:"Reject unknown members"`
	Minify     bool   `short:"m" long:"minify"    description:"Emit the validated JSON input minified instead of re-encoding it"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	out, obj, err := process(cfg, opts)
	if err != nil {
		log.Fatal().Err(err).Str("input", opts.Input).Str("document", opts.Document).Msg("Failed to convert document")
	}

	if err := convert.WriteOutput(opts.Output, out); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}

	summary := convert.Summarize(obj)
	log.Info().
		Str("type", summary.Type).
		Int("features", summary.Features).
		Int("geometries", summary.Geometries).
		Int("positions", summary.Positions).
		Str("format", cfg.Output.Format).
		Msg("Document converted")
}

// loadConfig reads the configuration file, if any, and applies the flag
// overrides on top of it.
func loadConfig(opts Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotate(err, "invalid options")
	}
	return cfg, nil
}

// process decodes the selected inline document or the input file and
// returns the bytes to write.
func process(cfg *config.Config, opts Options) ([]byte, geojson.Object, error) {
	if opts.Document != "" {
		obj, err := cfg.Document(opts.Document)
		if err != nil {
			return nil, nil, err
		}
		out, err := convert.Encode(obj, cfg.Output.Format, cfg.Output.Indent)
		if err != nil {
			return nil, nil, err
		}
		return out, obj, nil
	}

	data, err := convert.ReadInput(opts.Input)
	if err != nil {
		return nil, nil, err
	}
	return convert.Convert(data, convert.Options{
		Decoder: cfg.GeoJSONDecoder(),
		From:    opts.From,
		Format:  cfg.Output.Format,
		Indent:  cfg.Output.Indent,
		Minify:  opts.Minify,
	})
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.Indent != nil {
		cfg.Output.Indent = *opts.Indent
	}
	if opts.MaxDepth != nil {
		cfg.Decoder.MaxDepth = *opts.MaxDepth
	}
	if opts.Strict {
		cfg.Decoder.Strict = true
	}
}
