package main

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kent-id/xmladiscover"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	formatXML   = "xml"
	formatTable = "table"
	formatArrow = "arrow"
)

var (
	restrictionArgs []string
	propertyArgs    []string
	roleName        string
	userName        string
	outputFormat    string
)

// discoverCmd runs one discover request
var discoverCmd = &cobra.Command{
	Use:   "discover [request-type]",
	Short: "Run a discover request",
	Long: "Populate a schema rowset and print it. Restrictions and properties are given as NAME=VALUE; " +
		"repeating a restriction adds an alternative value.",
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

// kindsCmd lists the registered rowset kinds
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported request types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeKinds(cmd.OutOrStdout(), xmladiscover.DefaultRegistry())
	},
}

// schemaCmd prints the XSD of one rowset kind
var schemaCmd = &cobra.Command{
	Use:   "schema [request-type]",
	Short: "Print the XML schema of a request type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := xmladiscover.DefaultRegistry().Lookup(args[0])
		if err != nil {
			return err
		}
		return xmladiscover.WriteSchema(cmd.OutOrStdout(), kind)
	},
}

func setupCommands() {
	discoverCmd.Flags().StringArrayVarP(&restrictionArgs, "restriction", "r", nil, "Restriction as COLUMN=VALUE (repeatable)")
	discoverCmd.Flags().StringArrayVarP(&propertyArgs, "property", "p", nil, "Request property as NAME=VALUE (repeatable)")
	discoverCmd.Flags().StringVar(&roleName, "role", "", "Role to connect as")
	discoverCmd.Flags().StringVar(&userName, "user", "", "User name to connect as")
	discoverCmd.Flags().StringVarP(&outputFormat, "format", "f", formatXML, "Output format: xml, table or arrow")

	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(schemaCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := buildRequest(args[0], restrictionArgs, propertyArgs)
	if err != nil {
		return err
	}
	req.RoleName = roleName
	req.Username = userName
	req.SessionID = uuid.NewString()

	d, closeSource, err := newDiscoverer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	rs, err := d.Discover(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case formatXML:
		value, _ := req.Properties.Get(xmladiscover.PropertyContent)
		content, err := xmladiscover.ParseContent(value)
		if err != nil {
			return err
		}
		return xmladiscover.WriteXML(out, rs, content)
	case formatTable:
		return writeTable(out, rs.Flatten())
	case formatArrow:
		return writeArrow(out, rs.Flatten())
	}
	return errors.Errorf("unknown output format %q", outputFormat)
}

// buildRequest parses NAME=VALUE pairs into a request.
func buildRequest(kind string, restrictions, properties []string) (*xmladiscover.Request, error) {
	req := xmladiscover.NewRequest(kind, nil)
	for _, arg := range restrictions {
		name, value, err := splitPair(arg)
		if err != nil {
			return nil, errors.Wrap(err, "restriction")
		}
		req.Restrictions.Add(name, value)
	}
	for _, arg := range properties {
		name, value, err := splitPair(arg)
		if err != nil {
			return nil, errors.Wrap(err, "property")
		}
		req.Properties[name] = value
	}
	return req, nil
}

func splitPair(arg string) (string, string, error) {
	name, value, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.Errorf("expected NAME=VALUE, got %q", arg)
	}
	return name, value, nil
}
