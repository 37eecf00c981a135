package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

func PrintInfo(msg string) {
	_, _ = infoColor.Println(msg)
}

func PrintHeader(msg string) {
	_, _ = headerColor.Println(msg)
}

func PrintDim(msg string) {
	_, _ = dimColor.Println(msg)
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printKeyValue(key, value string) {
	fmt.Printf("  %-22s %s\n", key, value)
}
