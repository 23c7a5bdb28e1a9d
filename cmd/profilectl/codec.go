package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techno-hippies/dotheaven-sub003/codec"
	"github.com/techno-hippies/dotheaven-sub003/types"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [payload]",
	Short: "Decode a raw getProfile payload",
	Long: `Decode the raw hex return data of a getProfile call and print the
record as JSON. Reads the payload from the argument, or from stdin when
the argument is "-" or omitted.

Example:
  profilectl decode 0x0000...
  cast call $CONTRACT "getProfile(address)" $ADDR | profilectl decode -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

var encodeCmd = &cobra.Command{
	Use:   "encode <record.json>",
	Short: "Normalize a profile record into a wire input",
	Long: `Read an edited profile record from a JSON file and print the
ABI-ready write-call input as JSON. Out-of-range values are clamped and
hash-like fields normalized; this command never rejects a record.

Example:
  profilectl encode profile.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	payload, err := readPayload(args)
	if err != nil {
		return err
	}

	rec, ok := codec.DecodeProfile(payload)
	if !ok {
		fmt.Fprintln(os.Stderr, "No on-chain profile in payload")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	var rec types.ProfileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("parsing record: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(codec.BuildWireInput(&rec))
}

// readPayload reads the hex payload from the argument or stdin.
func readPayload(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
