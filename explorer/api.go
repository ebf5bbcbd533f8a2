package explorer

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hyperledger-labs/firefly-explorer/logging"
	"github.com/hyperledger-labs/firefly-explorer/service"
	"github.com/hyperledger-labs/firefly-explorer/util"
)

// JSON mirror of the page data, for programmatic consumers.

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Logger.Errorf("explorer: write json response failed, err=%s", err.Error())
	}
}

func writeError(w http.ResponseWriter, svcErr service.Err, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(svcErr)
}

func (e *Explorer) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	ns := mux.Vars(r)["ns"]
	e.dashboard.Refresh(r.Context(), ns)
	writeJSON(w, e.dashboard.View())
}

func (e *Explorer) handleAPIMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ns, id := vars["ns"], vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, service.ErrorInvalidResourceID, http.StatusBadRequest)
		return
	}
	msg, err := e.api.GetMessage(r.Context(), ns, id)
	if err != nil {
		logging.Logger.Errorf("explorer: fetch message %s in namespace %s failed, err=%s", id, ns, err.Error())
		writeJSON(w, service.MessageDetail{})
		return
	}
	writeJSON(w, e.message.Resolve(r.Context(), ns, msg))
}

func (e *Explorer) handleAPIAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ns, poolID := vars["ns"], vars["poolProtocolID"]

	e.account.Load(r.Context(), ns, poolID)
	if rows := r.URL.Query().Get("rows"); rows != "" {
		n, err := util.StringToInt64(rows)
		if err != nil || !e.account.SetRowsPerPage(r.Context(), n) {
			writeError(w, service.ErrorInvalidRowsPerPage, http.StatusBadRequest)
			return
		}
	}
	if page := r.URL.Query().Get("page"); page != "" {
		n, err := util.StringToInt64(page)
		if err != nil || !e.account.SetPage(r.Context(), n) {
			writeError(w, service.ErrorInvalidPage, http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, e.account.View())
}
