package cmd

import (
	"encoding/json"
	"github.com/gorilla/mux"
	"github.com/kurumiimari/goshuin/multisig"
	"github.com/kurumiimari/goshuin/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"net/http"
)

var serveListen string

type verifyResponse struct {
	OK   bool   `json:"ok"`
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs an HTTP API that verifies submitted transaction groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := mux.NewRouter()
		r.HandleFunc("/api/v1/verify", handleVerifyPOST).Methods("POST")
		log.WithField("listen", serveListen).Info("starting verification API")
		return http.ListenAndServe(serveListen, r)
	},
}

func handleVerifyPOST(w http.ResponseWriter, r *http.Request) {
	var group vm.TxGroup
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&group); err != nil {
		w.WriteHeader(400)
		marshalResponseJSON(w, &verifyResponse{
			Code: multisig.ErrLoadFailed.Code,
			Msg:  "Mal-formed JSON payload.",
		})
		return
	}

	loader, err := group.Loader()
	if err != nil {
		w.WriteHeader(400)
		marshalResponseJSON(w, &verifyResponse{
			Code: multisig.ErrLoadFailed.Code,
			Msg:  err.Error(),
		})
		return
	}

	verr := multisig.Verify(loader)
	code := multisig.ExitCode(verr)
	res := &verifyResponse{
		OK:   verr == nil,
		Code: code,
	}
	if verr != nil {
		res.Msg = verr.Error()
		log.WithFields(log.Fields{
			"code": code,
			"err":  verr,
		}).Debug("verification failed")
	}
	marshalResponseJSON(w, res)
}

func marshalResponseJSON(w http.ResponseWriter, out interface{}) {
	w.Header().Set("Content-Type", "application/json")
	data, err := json.Marshal(out)
	if err != nil {
		log.WithField("err", err).Panic("error marshaling JSON response")
	}
	if _, err := w.Write(data); err != nil {
		log.WithField("err", err).Warning("error writing JSON response")
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "127.0.0.1:12037", "Sets the API listen address")
	rootCmd.AddCommand(serveCmd)
}
