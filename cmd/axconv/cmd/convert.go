package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/axia-sw/axstr"
	"github.com/axia-sw/axstr/utf"
)

var (
	toName   string
	writeBOM bool
	outDir   string
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE...",
	Short: "Transcode files into a target encoding",
	Long: `Transcode each file into the target encoding. The source encoding is
sniffed from its byte order mark, falling back to UTF-8.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&toName, "to", "t", "utf-8",
		"target encoding: utf-8, utf-16le, utf-16be, utf-32le, utf-32be")
	convertCmd.Flags().BoolVar(&writeBOM, "bom", false,
		"write a byte order mark on output")
	convertCmd.Flags().StringVarP(&outDir, "out", "o", "",
		"output directory (default: overwrite in place)")
	rootCmd.AddCommand(convertCmd)
}

func parseEncoding(name string) (utf.Encoding, error) {
	for _, e := range []utf.Encoding{
		utf.UTF8, utf.UTF16LE, utf.UTF16BE, utf.UTF32LE, utf.UTF32BE,
	} {
		if axstr.View(name).CaseEqual(axstr.View(e.String())) {
			return e, nil
		}
	}
	return utf.Unknown, fmt.Errorf("unknown encoding %q", name)
}

func convertFile(name string, target utf.Encoding) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	// Decode whatever is there into UTF-8, then re-encode.
	var s axstr.String
	defer s.Purge()
	if !s.TryAssignFromEncoding(data, utf.Unknown) {
		return fmt.Errorf("%s: out of memory decoding %d bytes", name, len(data))
	}

	bom := utf.IgnoreBOM
	if writeBOM {
		bom = utf.WriteBOM
	}
	out := s.EncodeTo(target, bom)

	dst := name
	if outDir != "" {
		dst = filepath.Join(outDir, filepath.Base(name))
	}
	return os.WriteFile(dst, out, 0o644)
}

func runConvert(cmd *cobra.Command, args []string) error {
	target, err := parseEncoding(toName)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(len(args)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(args)))
	}

	var firstErr error
	for _, name := range args {
		if err := convertFile(name, target); err != nil {
			logger.Error("convert failed", zap.String("file", name), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		} else {
			logger.Info("converted",
				zap.String("file", name), zap.String("to", target.String()))
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return firstErr
}
