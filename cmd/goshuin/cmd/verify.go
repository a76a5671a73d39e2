package cmd

import (
	"github.com/kurumiimari/goshuin/multisig"
	"github.com/kurumiimari/goshuin/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io/ioutil"
	"os"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <tx-group.json>",
	Short: "Verifies a multisig input group, exiting with the verification code",
	Long: `Verifies the multisig lock of one input group. The argument is a JSON
document containing the lock script, the transaction hash, and the
group's witnesses in index order.

The exit code is the verification result: 0 on success, otherwise the
stable code of the first failed check.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "error reading transaction group file")
		}
		group, err := vm.ParseTxGroup(data)
		if err != nil {
			return err
		}
		loader, err := group.Loader()
		if err != nil {
			return err
		}

		verr := multisig.Verify(loader)
		code := multisig.ExitCode(verr)
		if verr != nil {
			log.WithFields(log.Fields{
				"code": code,
				"err":  verr,
			}).Error("verification failed")
			os.Exit(code)
		}
		log.Info("verification succeeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
