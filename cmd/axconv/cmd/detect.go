package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/axia-sw/axstr/utf"
)

var detectCmd = &cobra.Command{
	Use:   "detect FILE...",
	Short: "Report the byte-order-mark encoding of each file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

// sniffFile reads just enough of a file to classify its byte order mark.
func sniffFile(name string) (utf.Encoding, int, error) {
	f, err := os.Open(name)
	if err != nil {
		return utf.Unknown, 0, err
	}
	defer f.Close()

	var head [4]byte
	n, err := f.Read(head[:])
	if err != nil && n == 0 {
		return utf.Unknown, 0, err
	}
	enc, bomLen := utf.DetectEncoding(head[:n])
	return enc, bomLen, nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	var firstErr error
	for _, name := range args {
		enc, bomLen, err := sniffFile(name)
		if err != nil {
			logger.Error("detect failed", zap.String("file", name), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if bomLen > 0 {
			fmt.Printf("%s: %s (BOM, %d bytes)\n", name, enc, bomLen)
		} else {
			fmt.Printf("%s: no BOM (assuming utf-8)\n", name)
		}
	}
	return firstErr
}
