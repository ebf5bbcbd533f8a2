// Package explorer serves the FireFly explorer web UI: a dashboard, token
// account pages with paginated transfer tables, and message and transaction
// detail pages. Pages are rendered server-side from embedded templates; a
// small JSON API mirrors the page data.
package explorer

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hyperledger-labs/firefly-explorer/logging"
	"github.com/hyperledger-labs/firefly-explorer/metrics"
	"github.com/hyperledger-labs/firefly-explorer/models"
	"github.com/hyperledger-labs/firefly-explorer/service"
	"github.com/hyperledger-labs/firefly-explorer/util"
)

// Config holds explorer server options.
type Config struct {
	BindAddress string
	Port        int

	// DefaultNamespace is where the root path redirects.
	DefaultNamespace string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns the default explorer configuration.
func DefaultConfig() Config {
	return Config{
		BindAddress:      "127.0.0.1",
		Port:             8080,
		DefaultNamespace: "default",
		ReadTimeout:      15 * time.Second,
		WriteTimeout:     15 * time.Second,
		IdleTimeout:      60 * time.Second,
	}
}

// Explorer is the explorer web server.
type Explorer struct {
	config    Config
	server    *http.Server
	api       service.CoreAPI
	dashboard *service.DashboardService
	account   *service.AccountService
	message   *service.MessageService

	templates *template.Template

	mu      sync.Mutex
	running bool
}

// New creates an explorer server over the given view services.
func New(config Config, api service.CoreAPI, dashboard *service.DashboardService, account *service.AccountService, message *service.MessageService) (*Explorer, error) {
	defaults := DefaultConfig()
	if config.BindAddress == "" {
		config.BindAddress = defaults.BindAddress
	}
	if config.Port == 0 {
		config.Port = defaults.Port
	}
	if config.DefaultNamespace == "" {
		config.DefaultNamespace = defaults.DefaultNamespace
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = defaults.ReadTimeout
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = defaults.WriteTimeout
	}
	if config.IdleTimeout == 0 {
		config.IdleTimeout = defaults.IdleTimeout
	}

	e := &Explorer{
		config:    config,
		api:       api,
		dashboard: dashboard,
		account:   account,
		message:   message,
	}
	tmpl, err := e.parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	e.templates = tmpl
	return e, nil
}

func (e *Explorer) parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"add":          func(a, b int64) int64 { return a + b },
		"sub":          func(a, b int64) int64 { return a - b },
		"truncateHash": util.TruncateHash,
		"formatTime":   formatTime,
		"orDash":       orDash,
	}

	tmpl := template.New("").Funcs(funcMap)
	if _, err := tmpl.New("layout").Parse(layoutTemplate); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if _, err := tmpl.New("cell").Parse(cellTemplate); err != nil {
		return nil, fmt.Errorf("parse cell: %w", err)
	}

	pages := map[string]string{
		"dashboard":   dashboardTemplate,
		"account":     accountTemplate,
		"message":     messageTemplate,
		"transaction": transactionTemplate,
	}
	for name, content := range pages {
		if _, err := tmpl.New(name).Parse(content); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
	}
	return tmpl, nil
}

// Router builds the explorer's route table.
func (e *Explorer) Router() *mux.Router {
	router := mux.NewRouter()

	router.PathPrefix("/static/").HandlerFunc(e.handleStatic)

	router.HandleFunc("/", e.handleHome).Methods(http.MethodGet)
	router.HandleFunc("/namespaces/{ns}", e.handleDashboard).Methods(http.MethodGet)
	router.HandleFunc("/namespaces/{ns}/messages/{id}", e.handleMessage).Methods(http.MethodGet)
	router.HandleFunc("/namespaces/{ns}/tokens/accounts/{poolProtocolID}", e.handleAccount).Methods(http.MethodGet)
	router.HandleFunc("/namespaces/{ns}/transactions/{txID}", e.handleTransaction).Methods(http.MethodGet)

	router.HandleFunc("/api/namespaces/{ns}/dashboard", e.handleAPIDashboard).Methods(http.MethodGet)
	router.HandleFunc("/api/namespaces/{ns}/messages/{id}", e.handleAPIMessage).Methods(http.MethodGet)
	router.HandleFunc("/api/namespaces/{ns}/tokens/accounts/{poolProtocolID}", e.handleAPIAccount).Methods(http.MethodGet)

	return router
}

// Start starts the explorer HTTP server and blocks until it stops.
func (e *Explorer) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return fmt.Errorf("explorer already running")
	}
	e.running = true
	e.mu.Unlock()

	addr := fmt.Sprintf("%s:%d", e.config.BindAddress, e.config.Port)
	e.server = &http.Server{
		Addr:         addr,
		Handler:      e.Router(),
		ReadTimeout:  e.config.ReadTimeout,
		WriteTimeout: e.config.WriteTimeout,
		IdleTimeout:  e.config.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		if err := e.Stop(); err != nil {
			logging.Logger.Errorf("explorer shutdown failed, err=%s", err.Error())
		}
	}()

	logging.Logger.Infof("explorer listening on %s", addr)
	return e.server.ListenAndServe()
}

// Stop gracefully stops the explorer server.
func (e *Explorer) Stop() error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return nil
	}
	e.running = false
	e.mu.Unlock()

	if e.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.server.Shutdown(ctx)
	}
	return nil
}

func (e *Explorer) handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/namespaces/"+e.config.DefaultNamespace, http.StatusFound)
}

func (e *Explorer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ns := mux.Vars(r)["ns"]
	e.dashboard.Refresh(r.Context(), ns)
	view := e.dashboard.View()

	metrics.PageRenderCount.WithLabelValues("dashboard").Inc()
	e.renderPage(w, r, "dashboard", ns, map[string]interface{}{
		"Namespace":       ns,
		"Loading":         e.dashboard.Loading(),
		"LatestSequence":  view.LatestSequence,
		"MessageRows":     MessageRows(ns, view.Messages),
		"TransactionRows": TransactionRows(ns, view.Transactions),
	})
}

func (e *Explorer) handleMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ns, id := vars["ns"], vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	data := map[string]interface{}{
		"Namespace": ns,
		"Detail":    service.MessageDetail{},
	}
	msg, err := e.api.GetMessage(r.Context(), ns, id)
	if err != nil {
		logging.Logger.Errorf("explorer: fetch message %s in namespace %s failed, err=%s", id, ns, err.Error())
	} else {
		data["Detail"] = e.message.Resolve(r.Context(), ns, msg)
	}

	metrics.PageRenderCount.WithLabelValues("message").Inc()
	e.renderPage(w, r, "message", ns, data)
}

func (e *Explorer) handleAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ns, poolID := vars["ns"], vars["poolProtocolID"]

	e.account.Load(r.Context(), ns, poolID)
	if rows := r.URL.Query().Get("rows"); rows != "" {
		if n, err := util.StringToInt64(rows); err == nil {
			e.account.SetRowsPerPage(r.Context(), n)
		}
	}
	if page := r.URL.Query().Get("page"); page != "" {
		if n, err := util.StringToInt64(page); err == nil {
			e.account.SetPage(r.Context(), n)
		}
	}
	view := e.account.View()

	metrics.PageRenderCount.WithLabelValues("account").Inc()
	e.renderPage(w, r, "account", ns, map[string]interface{}{
		"Namespace":      ns,
		"PoolProtocolID": poolID,
		"Loading":        e.account.Loading(),
		"Account":        view.Account,
		"TransferRows":   TransferRows(view.Transfers),
		"Pagination":     view.Pagination,
		"HasNext":        view.Pagination.RowsPerPage*(view.Pagination.CurrentPage+1) < view.Pagination.TotalCount,
		"RowOptions":     []int64{5, 10, 25},
	})
}

func (e *Explorer) handleTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ns, txID := vars["ns"], vars["txID"]
	if _, err := uuid.Parse(txID); err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	data := map[string]interface{}{"Namespace": ns}
	tx, err := e.api.GetTransaction(r.Context(), ns, txID)
	if err != nil {
		logging.Logger.Errorf("explorer: fetch transaction %s in namespace %s failed, err=%s", txID, ns, err.Error())
	} else {
		data["Transaction"] = tx
	}

	metrics.PageRenderCount.WithLabelValues("transaction").Inc()
	e.renderPage(w, r, "transaction", ns, data)
}

func (e *Explorer) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/static/")
	content, contentType, ok := getStaticAsset(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write([]byte(content))
}

// namespaces lists the namespaces for the nav picker. Failures degrade to the
// current namespace alone.
func (e *Explorer) namespaces(ctx context.Context, current string) []*models.Namespace {
	list, err := e.api.GetNamespaces(ctx)
	if err != nil {
		logging.Logger.Errorf("explorer: list namespaces failed, err=%s", err.Error())
	}
	if len(list) == 0 {
		return []*models.Namespace{{Name: current}}
	}
	return list
}

func (e *Explorer) renderPage(w http.ResponseWriter, r *http.Request, name, ns string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var contentBuf strings.Builder
	if err := e.templates.ExecuteTemplate(&contentBuf, name, data); err != nil {
		logging.Logger.Errorf("explorer: render %s failed, err=%s", name, err.Error())
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	pageData := map[string]interface{}{
		"PageName":   name,
		"Namespace":  ns,
		"Namespaces": e.namespaces(r.Context(), ns),
		"Content":    template.HTML(contentBuf.String()),
	}
	if err := e.templates.ExecuteTemplate(w, "layout", pageData); err != nil {
		logging.Logger.Errorf("explorer: render layout failed, err=%s", err.Error())
	}
}

func formatTime(t strfmt.DateTime) string {
	if time.Time(t).IsZero() {
		return Placeholder
	}
	return time.Time(t).UTC().Format("2006-01-02 15:04:05 UTC")
}

func orDash(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
