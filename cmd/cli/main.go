// Package main provides the glossa command-line interface.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abadojack/whatlanggo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glossa-dev/glossa/pkg/detector"
	"github.com/glossa-dev/glossa/pkg/language"
)

var (
	flagLanguages   []string
	flagMinDistance float64
	flagJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "glossa",
	Short: "Glossa natural-language identification engine",
	Long:  "A command-line interface for the Glossa language detection engine, combining script rules with statistical n-gram scoring over per-language models.",
}

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect the language of a text snippet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		det := buildDetector()
		result := det.Detect(args[0])

		if flagJSON {
			printJSON(map[string]string{
				"language": result.String(),
				"iso_code": result.IsoCode639_1(),
			})
			return
		}
		fmt.Printf("Language: %s\n", result)
		if code := result.IsoCode639_1(); code != "" {
			fmt.Printf("ISO 639-1: %s\n", code)
		}
	},
}

var confidenceCmd = &cobra.Command{
	Use:   "confidence [text]",
	Short: "Print the ranked confidence distribution for a text snippet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		det := buildDetector()
		values := det.ConfidenceValues(args[0])

		if flagJSON {
			printJSON(values)
			return
		}
		if len(values) == 0 {
			fmt.Println("No language could be identified")
			return
		}
		for _, v := range values {
			fmt.Printf("%-12s %.4f\n", v.Language, v.Value)
		}
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the bundled language catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lang := range language.AllLanguages() {
			fmt.Printf("%-12s %s\n", lang, lang.IsoCode639_1())
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [text]",
	Short: "Compare the detection against the whatlanggo baseline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		det := buildDetector()
		ours := det.Detect(args[0])

		baseline := whatlanggo.Detect(args[0])
		fmt.Printf("glossa:     %s (%s)\n", ours, ours.IsoCode639_1())
		fmt.Printf("whatlanggo: %s (confidence %.2f, reliable %t)\n",
			baseline.Lang.String(), baseline.Confidence, baseline.IsReliable())
	},
}

// buildDetector assembles a detector from the global flags.
func buildDetector() *detector.Detector {
	logger, _ := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	defer logger.Sync()

	builder := detector.NewBuilder().
		WithMinimumRelativeDistance(flagMinDistance).
		WithLogger(logger)

	if len(flagLanguages) > 0 {
		var languages []language.Language
		for _, code := range flagLanguages {
			lang, ok := language.FromIsoCode639_1(code)
			if !ok {
				fmt.Fprintf(os.Stderr, "unsupported language code %q\n", code)
				os.Exit(1)
			}
			languages = append(languages, lang)
		}
		builder = builder.FromLanguages(languages...)
	}

	det, err := builder.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return det
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&flagLanguages, "languages", nil, "restrict detection to ISO 639-1 codes (e.g. en,fr,es)")
	rootCmd.PersistentFlags().Float64Var(&flagMinDistance, "min-distance", 0.0, "minimum relative distance the winner must hold over the runner-up")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON output")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(confidenceCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
