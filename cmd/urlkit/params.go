package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/urlkit/pkg/navigation"
	"github.com/dmitrymomot/urlkit/pkg/urlparams"
)

// ErrParamNotFound is returned when --param names a parameter the URL lacks.
var ErrParamNotFound = errors.New("parameter not found")

// NewQueryCmd creates the query command.
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [url]",
		Short: "Print the query parameters of a URL as JSON",
		Long: `Query prints the query-string parameters of a URL as a JSON object in the
order they appear. With --param only that value is printed.

Examples:
  urlkit query 'https://example.com/?q=go&page=2'
  urlkit query --param q 'https://example.com/?q=go'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParamsCmd(cmd, args, urlparams.Query, urlparams.QueryParam)
		},
	}
	cmd.Flags().StringP("param", "p", "", "Print only this parameter")
	return cmd
}

// NewHashCmd creates the hash command.
func NewHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [url]",
		Short: "Print the fragment parameters of a URL as JSON",
		Long: `Hash parses a fragment such as "#a=1&b=2" into a JSON object. It prints
null when the URL has no fragment. With --param only that value is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParamsCmd(cmd, args, urlparams.ParseHash, urlparams.HashParam)
		},
	}
	cmd.Flags().StringP("param", "p", "", "Print only this parameter")
	return cmd
}

type (
	parseFunc  func(navigation.Provider, string) (*urlparams.Params, error)
	lookupFunc func(navigation.Provider, string, string) (string, bool, error)
)

func runParamsCmd(cmd *cobra.Command, args []string, parse parseFunc, lookup lookupFunc) error {
	param, err := cmd.Flags().GetString("param")
	if err != nil {
		return err
	}
	rawURL, err := input(cmd, args)
	if err != nil {
		return err
	}
	if rawURL == "" {
		return errors.New("a URL is required")
	}
	nav := navigation.NewMemory(rawURL)

	if param != "" {
		value, ok, err := lookup(nav, rawURL, param)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrParamNotFound, param)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
		return err
	}

	params, err := parse(nav, rawURL)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	return enc.Encode(params)
}
