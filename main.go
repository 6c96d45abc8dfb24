package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"screenbuckets/app"
	"screenbuckets/bucket"
	"screenbuckets/log"
	"screenbuckets/media"
	"screenbuckets/screen"
)

var (
	version = "0.3.0"

	widthFlag  float64
	heightFlag float64

	rootCmd = &cobra.Command{
		Use:   "screenbuckets",
		Short: "Screenbuckets - classify viewport dimensions into named breakpoint buckets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			return app.Run(context.Background(), screen.FromFloats(widthFlag, heightFlag))
		},
	}

	classifyCmd = &cobra.Command{
		Use:   "classify <width> <height>",
		Short: "Classify a viewport and print its buckets",
		Long: "Classify a viewport and print its broad, fine, and height buckets.\n" +
			"Dimensions may be fractional; fractions round up to whole pixels.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}
			h, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid height %q: %w", args[1], err)
			}

			m := screen.FromFloats(w, h)
			broad := bucket.ClassifyBroad(m.Width)
			fine := bucket.ClassifyWidth(m.Width)
			high := bucket.ClassifyHeight(m.Height)

			printRow("viewport", fmt.Sprintf("%d x %d px", m.Width, m.Height))
			printRow("broad", broad.String())
			printRow("fine", fine.String())
			printRow("height", high.String())
			printRow("width query", media.FromBucket(bucket.WidthFineTier[fine]).String())
			printRow("height query", media.FromBucket(bucket.HeightTier[high]).String())
			return nil
		},
	}

	mediaCmd = &cobra.Command{
		Use:   "media [bucket...]",
		Short: "Print catalog buckets as @media rules",
		Long: "Print the named catalog buckets as serialized @media rules.\n" +
			"With no arguments, the whole catalog is printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = bucket.CatalogNames
			}
			for _, name := range names {
				b, ok := bucket.ByName(name)
				if !ok {
					return fmt.Errorf("unknown bucket %q (see 'screenbuckets media' for the catalog)", name)
				}
				rule := media.WithMedia([]bucket.Bucket{b}, nil)
				printRow(name, rule.String())
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of screenbuckets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("screenbuckets version %s\n", version)
		},
	}
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"})
	plainWidth = 14
)

// printRow prints an aligned name/value pair, styled only when stdout is a
// terminal so piped output stays clean.
func printRow(name, value string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		name = nameStyle.Render(name)
	}
	fmt.Printf("%-*s %s\n", plainWidth, name, value)
}

func init() {
	rootCmd.Flags().Float64VarP(&widthFlag, "width", "W", 1280, "initial viewport width in pixels")
	rootCmd.Flags().Float64VarP(&heightFlag, "height", "H", 800, "initial viewport height in pixels")
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
