// Command protogen compiles a protocol grammar into Go record types and a
// dispatch table.
//
//	protogen -in grammar.toml -out zz_generated.go
//	protogen -in grammar.toml -list
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/gstoney/mcproto/internal/config"
	"github.com/gstoney/mcproto/internal/gen"
)

func main() {
	in := flag.String("in", "grammar.toml", "grammar file")
	out := flag.String("out", "zz_generated.go", "generated Go file")
	list := flag.Bool("list", false, "print the packet table instead of generating code")
	level := flag.String("log-level", os.Getenv(config.EnvLogLevel), "log level")
	flag.Parse()

	config.InitLogger(*level, true)

	s, err := gen.Load(*in)
	if err != nil {
		log.Fatal().Err(err).Str("grammar", *in).Msg("invalid grammar")
	}

	if *list {
		gen.List(os.Stdout, s)
		return
	}

	src, err := gen.Generate(s, filepath.Base(*in))
	if err != nil {
		log.Fatal().Err(err).Msg("generate failed")
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal().Err(err).Str("out", *out).Msg("write failed")
	}

	log.Info().
		Str("protocol", s.Name).
		Int32("version", s.Version).
		Int("packets", len(s.Packets)).
		Str("out", *out).
		Msg("generated")
}
