package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SRv6d/rpsl-parser/rpsl"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a whois response into RPSL objects",
	Long:  "Parse RPSL text from a file or stdin and print the contained objects. Server messages are recognized and dropped.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")

	_ = viper.BindPFlag("format", parseCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		src []byte
		err error
	)
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	} else {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	objects, err := rpsl.ParseWhoisResponse(string(src))
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	log.Debug("parsed response", "bytes", len(src), "objects", len(objects))

	switch format := viper.GetString("format"); format {
	case "text":
		for _, obj := range objects {
			fmt.Print(obj)
		}
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(objectDocs(objects))
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(objectDocs(objects))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// attributeDoc is the serialized form of one attribute. Both single and
// multi line values serialize as a list of lines.
type attributeDoc struct {
	Name  string   `json:"name" yaml:"name"`
	Value []string `json:"value" yaml:"value"`
}

func objectDocs(objects []rpsl.Object) [][]attributeDoc {
	docs := make([][]attributeDoc, 0, len(objects))
	for _, obj := range objects {
		attrs := make([]attributeDoc, 0, obj.Len())
		for _, attr := range obj.Attributes() {
			attrs = append(attrs, attributeDoc{
				Name:  attr.Name.String(),
				Value: attr.Value.Lines(),
			})
		}
		docs = append(docs, attrs)
	}
	return docs
}
