package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/extractors/product"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/extractors/supplier"
)

var (
	extractJSON  bool
	extractOwner string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract entities from AI conversation text",
	Long: `Recovers structured entities from free-form AI conversation text.
Input is read from the given file, or from stdin when the argument is
omitted or is "-". Text no strategy can parse yields an empty result.`,
}

var extractSuppliersCmd = &cobra.Command{
	Use:   "suppliers [file]",
	Short: "Extract suppliers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtractSuppliers,
}

var extractProductsCmd = &cobra.Command{
	Use:   "products [file]",
	Short: "Extract wishlist products",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtractProducts,
}

func init() {
	extractCmd.PersistentFlags().BoolVar(&extractJSON, "json", false, "output entities as JSON")
	extractCmd.PersistentFlags().StringVar(&extractOwner, "owner", "", "owner identifier stamped on entities")
	extractCmd.AddCommand(extractSuppliersCmd)
	extractCmd.AddCommand(extractProductsCmd)
	rootCmd.AddCommand(extractCmd)
}

func runExtractSuppliers(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	results := supplier.NewEngine().Extract(text, extractOwner, sessionKey())
	for i := range results {
		results[i].ID = uuid.NewString()
	}

	if extractJSON {
		return printJSON(cmd, results)
	}
	if len(results) == 0 {
		cmd.Println("No suppliers found.")
		return nil
	}
	for i, s := range results {
		cmd.Printf("  [%d] %s\n", i+1, s.Name)
		if len(s.BusinessDirection) > 0 {
			cmd.Printf("      Business: %s\n", strings.Join(s.BusinessDirection, ", "))
		}
		if s.ContactInfo != nil && s.ContactInfo.Phone != "" {
			cmd.Printf("      Phone: %s\n", s.ContactInfo.Phone)
		}
		if s.Website != "" {
			cmd.Printf("      Website: %s\n", s.Website)
		}
	}
	return nil
}

func runExtractProducts(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	results := product.NewEngine().Extract(text, extractOwner, sessionKey())
	for i := range results {
		results[i].ID = uuid.NewString()
	}

	if extractJSON {
		return printJSON(cmd, results)
	}
	if len(results) == 0 {
		cmd.Println("No products found.")
		return nil
	}
	for i, p := range results {
		cmd.Printf("  [%d] %s", i+1, p.Name)
		if p.Price > 0 {
			cmd.Printf(" (%s %.2f)", p.Currency, p.Price)
		}
		cmd.Println()
		if p.PurchaseURL != "" {
			cmd.Printf("      %s  [%s]\n", p.PurchaseURL, p.Platform)
		}
	}
	return nil
}

// readText loads the input text from the file argument, or stdin when
// the argument is omitted or "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
