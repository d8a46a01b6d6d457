package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/urlkit/pkg/sanitizer"
	"github.com/dmitrymomot/urlkit/pkg/slug"
	"github.com/dmitrymomot/urlkit/pkg/urlcodec"
)

// newTextCmd builds a command that maps its input through fn.
func newTextCmd(use, short string, fn func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			out, err := fn(in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func pure(fn func(string) string) func(string) (string, error) {
	return func(s string) (string, error) { return fn(s), nil }
}

func NewEncodeCmd() *cobra.Command {
	return newTextCmd("encode", "Encode text as a query value (spaces become +)", pure(urlcodec.Encode))
}

func NewDecodeCmd() *cobra.Command {
	return newTextCmd("decode", "Decode a query value (+ becomes a space)", urlcodec.Decode)
}

func NewUnescapeCmd() *cobra.Command {
	return newTextCmd("unescape", "Turn &amp; &quot; &#39; &lt; &gt; back into characters", pure(sanitizer.UnescapeHTML))
}

func NewTextCmd() *cobra.Command {
	return newTextCmd("text", "Print the readable text of a markup fragment", pure(sanitizer.TextContent))
}

// NewEscapeCmd creates the escape command.
func NewEscapeCmd() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "escape [text]",
		Short: "Escape & \" ' < > as HTML entities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sanitizer.Escaper(normalize)(in))
			return err
		},
	}
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "Apply Unicode NFC normalization first")
	return cmd
}

// NewStripCmd creates the strip command. Without --allow the configured
// DEFAULT_WHITELIST applies.
func NewStripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip [markup]",
		Short: "Remove every tag that is not whitelisted",
		Long: `Strip removes comments, <? ?> blocks and every tag whose name is not in the
whitelist. Whitelisted tags are kept with their attributes.

Examples:
  urlkit strip --allow '<b><i>' '<p><b>bold</b> <i>it</i></p>'
  curl -s https://example.com | urlkit strip`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStripCmd,
	}
	cmd.Flags().StringP("allow", "a", "", `Allowed tags, e.g. "<b><i><a>"`)
	return cmd
}

func runStripCmd(cmd *cobra.Command, args []string) error {
	allow, err := cmd.Flags().GetString("allow")
	if err != nil {
		return err
	}
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	in, err := input(cmd, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Filter.Strip(in, a.Whitelist(allow)))
	return err
}

// NewTrimCmd creates the trim command.
func NewTrimCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "trim [text]",
		Short: "Trim whitespace, or repeated --token runs, from both ends",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sanitizer.TrimRepeated(in, token))
			return err
		},
	}
	cmd.Flags().StringVarP(&token, "token", "t", "", "Literal token to strip")
	return cmd
}

// NewSlugCmd creates the slug command.
func NewSlugCmd() *cobra.Command {
	var (
		maxLength int
		separator string
		suffix    int
	)
	cmd := &cobra.Command{
		Use:   "slug [text]",
		Short: "Turn text into a URL path segment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			out := slug.Make(in, slug.MaxLength(maxLength), slug.Separator(separator), slug.WithSuffix(suffix))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVarP(&maxLength, "max-length", "m", 0, "Maximum length in bytes, 0 for none")
	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "Word separator")
	cmd.Flags().IntVar(&suffix, "suffix", 0, "Append this many random characters")
	return cmd
}
