package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"github.com/kurumiimari/goshuin/multisig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	hashRequireFirstN uint8
	hashThreshold     uint8
	hashPubkeys       []string
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Computes the blake160 commitment of a multisig script",
	Long: `Builds the multisig script for the given parameters and prints its
encoding and the blake160 commitment that belongs in the lock script's
args field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pubkeys := make([][]byte, len(hashPubkeys))
		for i, pk := range hashPubkeys {
			b, err := hex.DecodeString(pk)
			if err != nil {
				return errors.Wrapf(err, "invalid pubkey hex at position %d", i)
			}
			pubkeys[i] = b
		}

		ms, err := multisig.NewMultisigScript(hashRequireFirstN, hashThreshold, pubkeys)
		if err != nil {
			return err
		}

		return printJSON(map[string]interface{}{
			"multisig_script": hex.EncodeToString(ms.Serialize()),
			"hash":            ms.Hash().String(),
			"witness_len":     ms.WitnessLen(),
		})
	},
}

func printJSON(in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	hashCmd.Flags().Uint8Var(&hashRequireFirstN, "require-first-n", 0, "Number of leading pubkeys whose signatures are mandatory")
	hashCmd.Flags().Uint8Var(&hashThreshold, "threshold", 0, "Required signature count (0 means all)")
	hashCmd.Flags().StringArrayVar(&hashPubkeys, "pubkey", nil, "Compressed pubkey in hex; repeat once per key, in order")
	rootCmd.AddCommand(hashCmd)
}
